package credential

import (
	"fmt"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service/clouderr"
)

const defaultAWSRegion = "us-east-1"

func NewService() *service {
	return &service{}
}

// Resolve validates the blob's required fields per provider tag and returns
// the typed credential. It fails fast with an InvalidCredentialError naming
// the first missing field and never attempts a network call.
func (s *service) Resolve(client *model.Client) (model.Credential, error) {
	if client == nil {
		return nil, fmt.Errorf("resolve credential: nil client")
	}

	switch client.Provider {
	case model.ProviderAWS:
		return resolveAWS(client.Credentials)
	case model.ProviderAzure:
		return resolveAzure(client.Credentials)
	case model.ProviderGCP:
		return resolveGCP(client.Credentials)
	}

	return nil, &clouderr.InvalidCredentialError{
		Provider: string(client.Provider),
		Field:    "provider",
	}
}

func resolveAWS(blob map[string]string) (model.Credential, error) {
	cred := model.AWSCredential{
		AccessKeyID:     lookup(blob, "access_key_id", "accessKeyId", "clientId"),
		SecretAccessKey: lookup(blob, "secret_access_key", "secretAccessKey", "clientSecret"),
		Region:          lookup(blob, "region"),
		Profile:         lookup(blob, "profile"),
	}
	if cred.Region == "" {
		cred.Region = defaultAWSRegion
	}

	// A shared-config profile is a valid alternative to a key pair.
	if cred.Profile != "" && cred.AccessKeyID == "" {
		return cred, nil
	}
	if cred.AccessKeyID == "" {
		return nil, missing(model.ProviderAWS, "access_key_id")
	}
	if cred.SecretAccessKey == "" {
		return nil, missing(model.ProviderAWS, "secret_access_key")
	}
	return cred, nil
}

func resolveAzure(blob map[string]string) (model.Credential, error) {
	cred := model.AzureCredential{
		TenantID:       lookup(blob, "tenant_id", "tenantId"),
		ClientID:       lookup(blob, "client_id", "clientId"),
		ClientSecret:   lookup(blob, "client_secret", "clientSecret"),
		SubscriptionID: lookup(blob, "subscription_id", "subscriptionId"),
	}
	switch {
	case cred.TenantID == "":
		return nil, missing(model.ProviderAzure, "tenant_id")
	case cred.ClientID == "":
		return nil, missing(model.ProviderAzure, "client_id")
	case cred.ClientSecret == "":
		return nil, missing(model.ProviderAzure, "client_secret")
	case cred.SubscriptionID == "":
		return nil, missing(model.ProviderAzure, "subscription_id")
	}
	return cred, nil
}

func resolveGCP(blob map[string]string) (model.Credential, error) {
	cred := model.GCPCredential{
		ProjectID:   lookup(blob, "project_id", "projectId"),
		ClientEmail: lookup(blob, "client_email", "clientEmail"),
		PrivateKey:  lookup(blob, "private_key", "privateKey"),
	}
	switch {
	case cred.ProjectID == "":
		return nil, missing(model.ProviderGCP, "project_id")
	case cred.PrivateKey == "":
		return nil, missing(model.ProviderGCP, "private_key")
	case cred.ClientEmail == "":
		return nil, missing(model.ProviderGCP, "client_email")
	}
	return cred, nil
}

func missing(provider model.Provider, field string) error {
	return &clouderr.InvalidCredentialError{Provider: string(provider), Field: field}
}

func lookup(blob map[string]string, keys ...string) string {
	for _, key := range keys {
		if v, ok := blob[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

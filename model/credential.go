package model

import "fmt"

// Credential is resolved, typed auth material for one provider.
// Implementations must never expose secret fields through String.
type Credential interface {
	Provider() Provider
}

// AWSCredential holds an access key pair, or alternatively a shared-config
// profile name. Region defaults to us-east-1 at resolution time.
type AWSCredential struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Profile         string
}

func (c AWSCredential) Provider() Provider { return ProviderAWS }

func (c AWSCredential) String() string {
	if c.Profile != "" {
		return fmt.Sprintf("aws credential (profile %s, region %s)", c.Profile, c.Region)
	}
	return fmt.Sprintf("aws credential (key %s, region %s)", redact(c.AccessKeyID), c.Region)
}

// AzureCredential holds Azure AD client-credential material for one subscription.
type AzureCredential struct {
	TenantID       string
	ClientID       string
	ClientSecret   string
	SubscriptionID string
}

func (c AzureCredential) Provider() Provider { return ProviderAzure }

func (c AzureCredential) String() string {
	return fmt.Sprintf("azure credential (client %s, subscription %s)", redact(c.ClientID), c.SubscriptionID)
}

// GCPCredential holds the fields of a service-account key.
type GCPCredential struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

func (c GCPCredential) Provider() Provider { return ProviderGCP }

func (c GCPCredential) String() string {
	return fmt.Sprintf("gcp credential (%s, project %s)", c.ClientEmail, c.ProjectID)
}

// redact keeps the first four characters of an identifier for log correlation.
func redact(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// ConnectionTestResult reports the outcome of a minimal authenticated call.
// Auth failure is a negative result, not an error.
type ConnectionTestResult struct {
	OK       bool
	Provider Provider
	Details  string
}

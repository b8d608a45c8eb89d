package model

// Provider identifies a supported cloud provider.
type Provider string

const (
	ProviderAWS   Provider = "aws"
	ProviderAzure Provider = "azure"
	ProviderGCP   Provider = "gcp"
)

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP:
		return true
	}
	return false
}

// Client represents a registered cloud account. The credential blob is
// provider-specific and opaque until the credential resolver types it.
type Client struct {
	ID          string
	Name        string
	Provider    Provider
	Credentials map[string]string
}

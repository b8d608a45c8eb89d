package gcpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/elC0mpa/cloud-optimizer/model"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sqladmin/v1"
	"google.golang.org/api/storage/v1"
)

// serviceAccountKey is the JSON shape the Google auth libraries expect.
type serviceAccountKey struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// NewService builds the adapter from a resolved credential by reassembling
// a service-account key for the Google API clients.
func NewService(ctx context.Context, cred model.GCPCredential) (*service, error) {
	keyJSON, err := json.Marshal(serviceAccountKey{
		Type:        "service_account",
		ProjectID:   cred.ProjectID,
		PrivateKey:  cred.PrivateKey,
		ClientEmail: cred.ClientEmail,
		TokenURI:    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble service account key: %w", err)
	}

	// Parsing the key up front rejects a malformed key before any API
	// client is built.
	jwtConfig, err := google.JWTConfigFromJSON(keyJSON, compute.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account key: %w", err)
	}

	opts := []option.ClientOption{option.WithTokenSource(jwtConfig.TokenSource(ctx))}

	computeClient, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Compute client: %w", err)
	}

	sqlClient, err := sqladmin.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud SQL client: %w", err)
	}

	storageClient, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}

	return &service{
		projectID:     cred.ProjectID,
		computeClient: computeClient,
		sqlClient:     sqlClient,
		storageClient: storageClient,
	}, nil
}

func (s *service) Provider() model.Provider {
	return model.ProviderGCP
}

// ListVMs implements service.ProviderAdapter
// Compute Engine instances are zonal, so every zone of the project is
// walked. Zones that fail to list fail the category.
func (s *service) ListVMs(ctx context.Context) ([]model.Resource, error) {
	zonesResp, err := s.computeClient.Zones.List(s.projectID).Context(ctx).Do()
	if err != nil {
		return nil, classify("Zones.List", err)
	}

	var resources []model.Resource
	for _, zone := range zonesResp.Items {
		instancesResp, err := s.computeClient.Instances.List(s.projectID, zone.Name).Context(ctx).Do()
		if err != nil {
			return nil, classify("Instances.List", err)
		}

		for _, instance := range instancesResp.Items {
			resources = append(resources, model.Resource{
				ID:         instance.Name,
				Name:       instance.Name,
				Category:   model.CategoryVM,
				Provider:   model.ProviderGCP,
				Region:     zone.Name,
				Size:       path.Base(instance.MachineType),
				State:      strings.ToLower(instance.Status),
				CPUPercent: model.CPUUnknown,
				Metadata:   map[string]string{"creation_timestamp": instance.CreationTimestamp},
			})
		}
	}

	return resources, nil
}

// ListDatabases implements service.ProviderAdapter
func (s *service) ListDatabases(ctx context.Context) ([]model.Resource, error) {
	resp, err := s.sqlClient.Instances.List(s.projectID).Context(ctx).Do()
	if err != nil {
		return nil, classify("Instances.List", err)
	}

	var resources []model.Resource
	for _, instance := range resp.Items {
		resource := model.Resource{
			ID:         instance.Name,
			Name:       instance.Name,
			Category:   model.CategoryDatabase,
			Provider:   model.ProviderGCP,
			Region:     instance.Region,
			State:      strings.ToLower(instance.State),
			CPUPercent: model.CPUUnknown,
			Engine:     strings.ToLower(instance.DatabaseVersion),
		}
		if instance.Settings != nil {
			resource.Size = instance.Settings.Tier
			resource.StorageGB = float64(instance.Settings.DataDiskSizeGb)
			regional := instance.Settings.AvailabilityType == "REGIONAL"
			resource.MultiAZ = &regional
		}
		resources = append(resources, resource)
	}

	return resources, nil
}

// ListStorage implements service.ProviderAdapter
func (s *service) ListStorage(ctx context.Context) ([]model.Resource, error) {
	resp, err := s.storageClient.Buckets.List(s.projectID).Context(ctx).Do()
	if err != nil {
		return nil, classify("Buckets.List", err)
	}

	var resources []model.Resource
	for _, bucket := range resp.Items {
		encrypted := bucket.Encryption != nil
		versioned := bucket.Versioning != nil && bucket.Versioning.Enabled

		resources = append(resources, model.Resource{
			ID:         bucket.Name,
			Name:       bucket.Name,
			Category:   model.CategoryStorage,
			Provider:   model.ProviderGCP,
			Region:     strings.ToLower(bucket.Location),
			Size:       strings.ToLower(bucket.StorageClass),
			CPUPercent: model.CPUUnknown,
			Encrypted:  &encrypted,
			Versioned:  &versioned,
			Metadata:   map[string]string{"type": "gcs_bucket"},
		})
	}

	return resources, nil
}

// TestConnection implements service.ProviderAdapter
func (s *service) TestConnection(ctx context.Context) (string, error) {
	if _, err := s.computeClient.Zones.List(s.projectID).MaxResults(1).Context(ctx).Do(); err != nil {
		return "", classify("Zones.List", err)
	}
	return fmt.Sprintf("authenticated against project %s", s.projectID), nil
}

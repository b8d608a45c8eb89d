package azureadapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/elC0mpa/cloud-optimizer/model"
)

// NewService builds the adapter from a resolved credential using the Azure
// AD client-credentials flow.
func NewService(cred model.AzureCredential) (*service, error) {
	identity, err := azidentity.NewClientSecretCredential(cred.TenantID, cred.ClientID, cred.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	vmClient, err := armcompute.NewVirtualMachinesClient(cred.SubscriptionID, identity, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create VM client: %w", err)
	}

	sqlServersClient, err := armsql.NewServersClient(cred.SubscriptionID, identity, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL servers client: %w", err)
	}

	sqlDatabasesClient, err := armsql.NewDatabasesClient(cred.SubscriptionID, identity, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL databases client: %w", err)
	}

	storageClient, err := armstorage.NewAccountsClient(cred.SubscriptionID, identity, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage accounts client: %w", err)
	}

	subscriptionsClient, err := armsubscriptions.NewClient(identity, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID:      cred.SubscriptionID,
		vmClient:            vmClient,
		sqlServersClient:    sqlServersClient,
		sqlDatabasesClient:  sqlDatabasesClient,
		storageClient:       storageClient,
		subscriptionsClient: subscriptionsClient,
	}, nil
}

func (s *service) Provider() model.Provider {
	return model.ProviderAzure
}

// ListVMs implements service.ProviderAdapter
// Power state requires a per-VM instance view; VMs whose view cannot be
// read keep an empty state rather than failing the category.
func (s *service) ListVMs(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource

	pager := s.vmClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, classify("VirtualMachines.ListAll", err)
		}

		for _, vm := range page.Value {
			if vm == nil || vm.ID == nil {
				continue
			}

			name := ""
			if vm.Name != nil {
				name = *vm.Name
			}

			size := ""
			if vm.Properties != nil && vm.Properties.HardwareProfile != nil && vm.Properties.HardwareProfile.VMSize != nil {
				size = string(*vm.Properties.HardwareProfile.VMSize)
			}

			location := ""
			if vm.Location != nil {
				location = *vm.Location
			}

			resources = append(resources, model.Resource{
				ID:         *vm.ID,
				Name:       name,
				Category:   model.CategoryVM,
				Provider:   model.ProviderAzure,
				Region:     location,
				Size:       size,
				State:      s.powerState(ctx, *vm.ID, name),
				CPUPercent: model.CPUUnknown,
				Metadata:   map[string]string{"resource_group": extractResourceGroup(*vm.ID)},
			})
		}
	}

	return resources, nil
}

func (s *service) powerState(ctx context.Context, vmID, vmName string) string {
	resourceGroup := extractResourceGroup(vmID)
	if resourceGroup == "" || vmName == "" {
		return ""
	}

	view, err := s.vmClient.InstanceView(ctx, resourceGroup, vmName, nil)
	if err != nil {
		return ""
	}

	for _, status := range view.Statuses {
		if status.Code != nil && strings.HasPrefix(*status.Code, "PowerState/") {
			return strings.TrimPrefix(*status.Code, "PowerState/")
		}
	}
	return ""
}

// ListDatabases implements service.ProviderAdapter
// Walks every SQL server in the subscription and lists its databases,
// skipping the master system database.
func (s *service) ListDatabases(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource

	serverPager := s.sqlServersClient.NewListPager(nil)
	for serverPager.More() {
		page, err := serverPager.NextPage(ctx)
		if err != nil {
			return nil, classify("Servers.List", err)
		}

		for _, server := range page.Value {
			if server == nil || server.ID == nil || server.Name == nil {
				continue
			}

			dbs, err := s.listServerDatabases(ctx, extractResourceGroup(*server.ID), *server.Name)
			if err != nil {
				return nil, err
			}
			resources = append(resources, dbs...)
		}
	}

	return resources, nil
}

func (s *service) listServerDatabases(ctx context.Context, resourceGroup, serverName string) ([]model.Resource, error) {
	var resources []model.Resource

	pager := s.sqlDatabasesClient.NewListByServerPager(resourceGroup, serverName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, classify("Databases.ListByServer", err)
		}

		for _, db := range page.Value {
			if db == nil || db.ID == nil || db.Name == nil || strings.EqualFold(*db.Name, "master") {
				continue
			}

			resource := model.Resource{
				ID:         *db.ID,
				Name:       *db.Name,
				Category:   model.CategoryDatabase,
				Provider:   model.ProviderAzure,
				Engine:     "sqlserver",
				CPUPercent: model.CPUUnknown,
				Metadata:   map[string]string{"server": serverName},
			}
			if db.Location != nil {
				resource.Region = *db.Location
			}
			if db.SKU != nil && db.SKU.Name != nil {
				resource.Size = *db.SKU.Name
			}
			if db.Properties != nil {
				if db.Properties.Status != nil {
					resource.State = strings.ToLower(string(*db.Properties.Status))
				}
				if db.Properties.MaxSizeBytes != nil {
					resource.StorageGB = float64(*db.Properties.MaxSizeBytes) / (1 << 30)
				}
				resource.MultiAZ = db.Properties.ZoneRedundant
			}

			resources = append(resources, resource)
		}
	}

	return resources, nil
}

// ListStorage implements service.ProviderAdapter
func (s *service) ListStorage(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource

	pager := s.storageClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, classify("Accounts.List", err)
		}

		for _, account := range page.Value {
			if account == nil || account.ID == nil {
				continue
			}

			resource := model.Resource{
				ID:         *account.ID,
				Category:   model.CategoryStorage,
				Provider:   model.ProviderAzure,
				CPUPercent: model.CPUUnknown,
				Metadata:   map[string]string{"type": "storage_account"},
			}
			if account.Name != nil {
				resource.Name = *account.Name
			}
			if account.Location != nil {
				resource.Region = *account.Location
			}
			if account.SKU != nil && account.SKU.Name != nil {
				resource.Size = string(*account.SKU.Name)
			}
			if account.Properties != nil {
				encrypted := account.Properties.Encryption != nil
				resource.Encrypted = &encrypted
			}

			resources = append(resources, resource)
		}
	}

	return resources, nil
}

// TestConnection implements service.ProviderAdapter
func (s *service) TestConnection(ctx context.Context) (string, error) {
	resp, err := s.subscriptionsClient.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return "", classify("Subscriptions.Get", err)
	}

	displayName := s.subscriptionID
	if resp.DisplayName != nil {
		displayName = *resp.DisplayName
	}
	return fmt.Sprintf("authenticated against subscription %s", displayName), nil
}

// extractResourceGroup extracts the resource group from an Azure resource ID
// e.g. "/subscriptions/.../resourceGroups/my-rg/providers/..." returns "my-rg".
func extractResourceGroup(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	for i, part := range parts {
		if strings.EqualFold(part, "resourceGroups") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

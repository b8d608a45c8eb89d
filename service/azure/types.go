package azureadapter

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

type service struct {
	subscriptionID      string
	vmClient            *armcompute.VirtualMachinesClient
	sqlServersClient    *armsql.ServersClient
	sqlDatabasesClient  *armsql.DatabasesClient
	storageClient       *armstorage.AccountsClient
	subscriptionsClient *armsubscriptions.Client
}

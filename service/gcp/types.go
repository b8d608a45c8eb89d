package gcpadapter

import (
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/sqladmin/v1"
	"google.golang.org/api/storage/v1"
)

type service struct {
	projectID     string
	computeClient *compute.Service
	sqlClient     *sqladmin.Service
	storageClient *storage.Service
}

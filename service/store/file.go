package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service"
)

// clientRecord is the on-disk shape of one registered client.
type clientRecord struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Provider    string            `json:"provider"`
	Credentials map[string]string `json:"credentials"`
}

// FileStore reads registered clients from a JSON file. The file is loaded
// once at construction since registration is managed outside this tool.
type FileStore struct {
	clients map[string]*model.Client
}

var _ service.ClientStore = (*FileStore)(nil)

func NewFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clients file: %w", err)
	}

	var records []clientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse clients file %s: %w", path, err)
	}

	clients := make(map[string]*model.Client, len(records))
	for _, record := range records {
		provider := model.Provider(record.Provider)
		if !provider.Valid() {
			return nil, fmt.Errorf("client %s has unsupported provider %q", record.ID, record.Provider)
		}
		clients[record.ID] = &model.Client{
			ID:          record.ID,
			Name:        record.Name,
			Provider:    provider,
			Credentials: record.Credentials,
		}
	}

	return &FileStore{clients: clients}, nil
}

// GetClientByID implements service.ClientStore
func (s *FileStore) GetClientByID(_ context.Context, id string) (*model.Client, error) {
	client, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %s not found", id)
	}
	return client, nil
}

package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Repository loads the published menu document from wherever it lives.
type Repository interface {
	Load(ctx context.Context) (Document, error)
}

// --------------------------------------------------
// Local file (development / single-node deployments)
// --------------------------------------------------

type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load(ctx context.Context) (Document, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	return doc, nil
}

// --------------------------------------------------
// Object storage (the published document in R2)
// --------------------------------------------------

// ObjectStore is the slice of the storage client the repository needs.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

type R2Repository struct {
	store ObjectStore
	key   string
}

func NewR2Repository(store ObjectStore, key string) *R2Repository {
	return &R2Repository{store: store, key: key}
}

func (r *R2Repository) Load(ctx context.Context) (Document, error) {
	data, err := r.store.Download(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("download menu object: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse menu object: %w", err)
	}
	return doc, nil
}

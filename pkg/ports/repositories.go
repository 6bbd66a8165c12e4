package ports

import (
	"context"

	"sonata-vnfd/pkg/models"
)

// DescriptorRepository is the port definition for a boarded descriptor
// package store.
type DescriptorRepository interface {
	// Save will persist the supplied package.
	Save(ctx context.Context, pkg *models.Package) error
	// Get will get the package with the given id.
	Get(ctx context.Context, id string) (*models.Package, error)
	// GetAll will get all boarded packages.
	GetAll(ctx context.Context) ([]*models.Package, error)
	// Delete will delete the package with the given id.
	Delete(ctx context.Context, id string) error
	// Exists checks to see if the package exists in the repo.
	Exists(ctx context.Context, id string) (bool, error)
}

package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/spf13/afero"

	"sonata-vnfd/pkg/defaults"
	"sonata-vnfd/pkg/descriptor"
	"sonata-vnfd/pkg/errors"
	"sonata-vnfd/pkg/models"
	"sonata-vnfd/pkg/ports"
)

const (
	metadataFile   = "package.json"
	descriptorFile = "vnfd.yml"
)

// Config holds the catalogue repository configuration.
type Config struct {
	// StateRootDir is the directory boarded packages are stored under, one
	// subdirectory per package id.
	StateRootDir string
}

// NewRepository creates a filesystem backed descriptor package repo.
func NewRepository(cfg *Config, fs afero.Fs) ports.DescriptorRepository {
	return &fsRepo{
		config: cfg,
		fs:     fs,
	}
}

type fsRepo struct {
	config *Config
	fs     afero.Fs
	mu     sync.RWMutex
}

// packageMetadata is the on-disk metadata record kept next to the
// descriptor document.
type packageMetadata struct {
	ID        string        `json:"service_uuid"`
	Digest    digest.Digest `json:"digest"`
	BoardedAt time.Time     `json:"boarded_at"`
}

func (r *fsRepo) Save(ctx context.Context, pkg *models.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.packageDir(pkg.ID)
	if err := r.fs.MkdirAll(dir, defaults.DataDirPerm); err != nil {
		return fmt.Errorf("creating package dir %s: %w", dir, err)
	}

	metadata, err := json.Marshal(packageMetadata{
		ID:        pkg.ID,
		Digest:    pkg.Digest,
		BoardedAt: pkg.BoardedAt,
	})
	if err != nil {
		return fmt.Errorf("marshalling package metadata: %w", err)
	}

	contents, err := descriptor.Marshal(pkg.Descriptor)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(r.fs, filepath.Join(dir, descriptorFile), contents, defaults.DataFilePerm); err != nil {
		return fmt.Errorf("writing descriptor: %w", err)
	}

	if err := afero.WriteFile(r.fs, filepath.Join(dir, metadataFile), metadata, defaults.DataFilePerm); err != nil {
		return fmt.Errorf("writing package metadata: %w", err)
	}

	return nil
}

func (r *fsRepo) Get(ctx context.Context, id string) (*models.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.get(id)
}

func (r *fsRepo) GetAll(ctx context.Context) ([]*models.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exists, err := afero.DirExists(r.fs, r.config.StateRootDir)
	if err != nil {
		return nil, fmt.Errorf("checking catalogue dir: %w", err)
	}

	// nothing boarded yet
	if !exists {
		return nil, nil
	}

	entries, err := afero.ReadDir(r.fs, r.config.StateRootDir)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue dir %s: %w", r.config.StateRootDir, err)
	}

	var packages []*models.Package

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pkg, err := r.get(entry.Name())
		if err != nil {
			return nil, err
		}

		packages = append(packages, pkg)
	}

	return packages, nil
}

func (r *fsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := afero.DirExists(r.fs, r.packageDir(id))
	if err != nil {
		return fmt.Errorf("checking package dir: %w", err)
	}

	if !exists {
		return errors.ErrPackageNotFound
	}

	if err := r.fs.RemoveAll(r.packageDir(id)); err != nil {
		return fmt.Errorf("deleting package %s: %w", id, err)
	}

	return nil
}

func (r *fsRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exists, err := afero.DirExists(r.fs, r.packageDir(id))
	if err != nil {
		return false, fmt.Errorf("checking package dir: %w", err)
	}

	return exists, nil
}

func (r *fsRepo) get(id string) (*models.Package, error) {
	dir := r.packageDir(id)

	exists, err := afero.DirExists(r.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("checking package dir: %w", err)
	}

	if !exists {
		return nil, errors.ErrPackageNotFound
	}

	rawMetadata, err := afero.ReadFile(r.fs, filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("reading package metadata: %w", err)
	}

	metadata := packageMetadata{}
	if err := json.Unmarshal(rawMetadata, &metadata); err != nil {
		return nil, fmt.Errorf("unmarshalling package metadata: %w", err)
	}

	contents, err := afero.ReadFile(r.fs, filepath.Join(dir, descriptorFile))
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	vnfd, err := descriptor.Parse(contents)
	if err != nil {
		return nil, err
	}

	return &models.Package{
		ID:         metadata.ID,
		Digest:     metadata.Digest,
		BoardedAt:  metadata.BoardedAt,
		Descriptor: vnfd,
	}, nil
}

func (r *fsRepo) packageDir(id string) string {
	return filepath.Join(r.config.StateRootDir, id)
}

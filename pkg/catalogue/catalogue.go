// Package catalogue boards VNF descriptor packages the way the SONATA
// gatekeeper does: a document is parsed, validated and stored under a
// fresh service uuid. The catalogue stores descriptors, it never
// instantiates them.
package catalogue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"

	"sonata-vnfd/pkg/descriptor"
	cerrs "sonata-vnfd/pkg/errors"
	"sonata-vnfd/pkg/log"
	"sonata-vnfd/pkg/models"
	"sonata-vnfd/pkg/ports"
)

// Service is the descriptor catalogue.
type Service struct {
	ports *ports.Collection
}

// New creates a catalogue service backed by the supplied ports.
func New(portsCollection *ports.Collection) *Service {
	return &Service{
		ports: portsCollection,
	}
}

// Board parses and validates a descriptor document and, if it is
// well-formed, stores it under a fresh service uuid.
func (s *Service) Board(ctx context.Context, contents []byte) (*models.Package, error) {
	logger := log.GetLogger(ctx).WithField("service", "catalogue")

	vnfd, err := descriptor.Parse(contents)
	if err != nil {
		rejectedTotal.WithLabelValues("parse").Inc()

		return nil, fmt.Errorf("%w: %v", cerrs.ErrMalformedDescriptor, err)
	}

	if err := descriptor.Validate(vnfd); err != nil {
		rejectedTotal.WithLabelValues("validation").Inc()

		return nil, fmt.Errorf("validating descriptor %s: %w", vnfd.FQName(), err)
	}

	pkg := &models.Package{
		ID:         uuid.NewString(),
		Digest:     digest.FromBytes(contents),
		BoardedAt:  s.ports.Clock(),
		Descriptor: vnfd,
	}

	if err := s.ports.Repo.Save(ctx, pkg); err != nil {
		return nil, fmt.Errorf("saving package %s: %w", pkg.ID, err)
	}

	boardedTotal.Inc()
	packagesStored.Inc()
	logger.Infof("boarded descriptor %s as package %s", vnfd.FQName(), pkg.ID)

	return pkg, nil
}

// Get returns the package with the given service uuid.
func (s *Service) Get(ctx context.Context, id string) (*models.Package, error) {
	return s.ports.Repo.Get(ctx, id)
}

// List returns all boarded packages.
func (s *Service) List(ctx context.Context) ([]*models.Package, error) {
	return s.ports.Repo.GetAll(ctx)
}

// Delete removes the package with the given service uuid.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.ports.Repo.Delete(ctx, id); err != nil {
		return err
	}

	packagesStored.Dec()
	log.GetLogger(ctx).WithField("service", "catalogue").Infof("deleted package %s", id)

	return nil
}

// DefaultClock is the clock used when none is supplied.
func DefaultClock() time.Time {
	return time.Now().UTC()
}

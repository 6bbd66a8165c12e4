package catalogue

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonata-vnfd/pkg/errors"
	"sonata-vnfd/pkg/ports"
)

const wellFormedDoc = `
descriptor_version: "vnfd-schema-01"
vendor: "eu.sonata-nfv"
name: "sap_vnf"
version: "0.1"
virtual_deployment_units:
  - id: "vdu01"
    vm_image: "sonatanfv/son-emu-sap"
    vm_image_format: "docker"
    resource_requirements:
      cpu:
        vcpus: 1
      memory:
        size: 1
        size_unit: "GB"
      storage:
        size: 1
        size_unit: "GB"
    connection_points:
      - id: "vdu01:cp01"
        type: "interface"
virtual_links:
  - id: "mgmt"
    connectivity_type: "E-Line"
    connection_points_reference:
      - "vdu01:cp01"
      - "mgmt"
connection_points:
  - id: "mgmt"
    type: "interface"
`

const danglingRefDoc = `
descriptor_version: "vnfd-schema-01"
vendor: "eu.sonata-nfv"
name: "sap_vnf"
version: "0.1"
virtual_deployment_units:
  - id: "vdu01"
    vm_image: "sonatanfv/son-emu-sap"
    vm_image_format: "docker"
    resource_requirements:
      cpu:
        vcpus: 1
      memory:
        size: 1
        size_unit: "GB"
      storage:
        size: 1
        size_unit: "GB"
virtual_links:
  - id: "mgmt"
    connectivity_type: "E-Line"
    connection_points_reference:
      - "vdu01:cp02"
      - "mgmt"
connection_points:
  - id: "mgmt"
    type: "interface"
`

func testService() *Service {
	repo := NewRepository(&Config{StateRootDir: "/packages"}, afero.NewMemMapFs())

	return New(&ports.Collection{
		Repo:  repo,
		Clock: func() time.Time { return time.Unix(1700000000, 0).UTC() },
	})
}

func TestBoardAndGet(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	pkg, err := svc.Board(ctx, []byte(wellFormedDoc))
	require.NoError(t, err)
	require.NotNil(t, pkg)
	assert.NotEmpty(t, pkg.ID)
	assert.Equal(t, "eu.sonata-nfv.sap_vnf.0.1", pkg.Descriptor.FQName())
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), pkg.BoardedAt)

	got, err := svc.Get(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, got.ID)
	assert.Equal(t, pkg.Digest, got.Digest)
	assert.Equal(t, pkg.Descriptor, got.Descriptor)
}

func TestBoard_rejectsDanglingReference(t *testing.T) {
	svc := testService()

	pkg, err := svc.Board(context.Background(), []byte(danglingRefDoc))
	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.Contains(t, err.Error(), "vdu01:cp02")

	// nothing must be stored for a rejected package
	packages, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestBoard_rejectsMalformedDocument(t *testing.T) {
	svc := testService()

	pkg, err := svc.Board(context.Background(), []byte("\t{not yaml"))
	require.Error(t, err)
	assert.Nil(t, pkg)
}

func TestList(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	first, err := svc.Board(ctx, []byte(wellFormedDoc))
	require.NoError(t, err)
	second, err := svc.Board(ctx, []byte(wellFormedDoc))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	packages, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, packages, 2)
}

func TestDelete(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	pkg, err := svc.Board(ctx, []byte(wellFormedDoc))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, pkg.ID))

	_, err = svc.Get(ctx, pkg.ID)
	assert.ErrorIs(t, err, errors.ErrPackageNotFound)
}

func TestDelete_missingPackage(t *testing.T) {
	svc := testService()

	err := svc.Delete(context.Background(), "no-such-package")
	assert.ErrorIs(t, err, errors.ErrPackageNotFound)
}

func TestGetAll_emptyStateDir(t *testing.T) {
	svc := testService()

	packages, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, packages)
}

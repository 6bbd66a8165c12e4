package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonata-vnfd/pkg/api"
	"sonata-vnfd/pkg/catalogue"
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
`

func testRouter() http.Handler {
	repo := catalogue.NewRepository(&catalogue.Config{StateRootDir: "/packages"}, afero.NewMemMapFs())
	svc := catalogue.New(&ports.Collection{
		Repo:  repo,
		Clock: func() time.Time { return time.Unix(1700000000, 0).UTC() },
	})

	return api.NewServer(&api.Config{}, svc).Router()
}

func boardDocument(t *testing.T, router http.Handler, doc string) string {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/packages", bytes.NewBufferString(doc))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ServiceUUID string `json:"service_uuid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ServiceUUID)

	return resp.ServiceUUID
}

func TestBoardPackage(t *testing.T) {
	router := testRouter()

	id := boardDocument(t, router, wellFormedDoc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/packages", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		ServiceUUIDList []string `json:"service_uuid_list"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []string{id}, list.ServiceUUIDList)
}

func TestBoardPackage_multipartUpload(t *testing.T) {
	router := testRouter()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "sap_vnfd.yml")
	require.NoError(t, err)
	_, err = part.Write([]byte(wellFormedDoc))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/packages", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestBoardPackage_danglingReference(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/packages", bytes.NewBufferString(danglingRefDoc))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "vdu01:cp02")
}

func TestBoardPackage_malformedDocument(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/packages", bytes.NewBufferString("\t{not yaml"))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBoardPackage_emptyBody(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/packages", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPackage(t *testing.T) {
	router := testRouter()
	id := boardDocument(t, router, wellFormedDoc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/packages/"+id, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sap_vnf"`)
	assert.Contains(t, rec.Body.String(), `"sha256:`)
}

func TestGetPackage_notFound(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/packages/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePackage(t *testing.T) {
	router := testRouter()
	id := boardDocument(t, router, wellFormedDoc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/packages/"+id, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/packages/"+id, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vnfd_catalogue_packages_boarded_total")
}

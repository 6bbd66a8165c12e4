package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	cerrs "sonata-vnfd/pkg/errors"
)

// maxDescriptorSize caps uploads; descriptors are small hand-authored
// documents.
const maxDescriptorSize = 1 << 20

type boardResponse struct {
	ServiceUUID string `json:"service_uuid"`
}

type listResponse struct {
	ServiceUUIDList []string `json:"service_uuid_list"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) boardPackage(w http.ResponseWriter, r *http.Request) {
	contents, err := readDescriptor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	pkg, err := s.catalogue.Board(r.Context(), contents)
	if err != nil {
		if errors.Is(err, cerrs.ErrMalformedDescriptor) {
			writeError(w, http.StatusBadRequest, err)

			return
		}

		writeError(w, http.StatusUnprocessableEntity, err)

		return
	}

	writeJSON(w, http.StatusCreated, boardResponse{ServiceUUID: pkg.ID})
}

func (s *Server) listPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := s.catalogue.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	uuids := make([]string, 0, len(packages))
	for _, pkg := range packages {
		uuids = append(uuids, pkg.ID)
	}

	writeJSON(w, http.StatusOK, listResponse{ServiceUUIDList: uuids})
}

func (s *Server) getPackage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["uuid"]

	pkg, err := s.catalogue.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, cerrs.ErrPackageNotFound) {
			writeError(w, http.StatusNotFound, err)

			return
		}

		writeError(w, http.StatusInternalServerError, err)

		return
	}

	writeJSON(w, http.StatusOK, pkg)
}

func (s *Server) deletePackage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["uuid"]

	if err := s.catalogue.Delete(r.Context(), id); err != nil {
		if errors.Is(err, cerrs.ErrPackageNotFound) {
			writeError(w, http.StatusNotFound, err)

			return
		}

		writeError(w, http.StatusInternalServerError, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readDescriptor accepts either a raw document body or a multipart upload
// with a "file" field, which is what the SONATA tooling sends.
func readDescriptor(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxDescriptorSize); err != nil {
			return nil, fmt.Errorf("parsing multipart form: %w", err)
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("reading uploaded file: %w", err)
		}
		defer file.Close()

		return io.ReadAll(io.LimitReader(file, maxDescriptorSize))
	}

	contents, err := io.ReadAll(io.LimitReader(r.Body, maxDescriptorSize))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}

	if len(contents) == 0 {
		return nil, errors.New("empty request body")
	}

	return contents, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("writing response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

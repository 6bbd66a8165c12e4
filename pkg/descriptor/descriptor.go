// Package descriptor parses and validates virtual network function
// descriptors (VNFDs). A VNFD is a static declarative document: parsing
// turns it into a models.Vnfd and Validate checks its structural
// self-consistency. Nothing here instantiates anything, that is the
// orchestrator's job.
package descriptor

import (
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"

	"sonata-vnfd/pkg/models"
)

// Parse decodes a VNFD document. Unknown fields are rejected so that
// typos in hand-authored descriptors surface at parse time instead of
// being silently dropped.
func Parse(contents []byte) (*models.Vnfd, error) {
	vnfd := &models.Vnfd{}

	if err := yaml.UnmarshalStrict(contents, vnfd); err != nil {
		return nil, fmt.Errorf("unmarshalling descriptor: %w", err)
	}

	return vnfd, nil
}

// ParseReader decodes a VNFD document from the supplied reader.
func ParseReader(reader io.Reader) (*models.Vnfd, error) {
	contents, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	return Parse(contents)
}

// ParseFile decodes the VNFD document at the supplied path.
func ParseFile(path string) (*models.Vnfd, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor file %s: %w", path, err)
	}

	return Parse(contents)
}

// Marshal encodes a descriptor back to its YAML representation.
func Marshal(vnfd *models.Vnfd) ([]byte, error) {
	contents, err := yaml.Marshal(vnfd)
	if err != nil {
		return nil, fmt.Errorf("marshalling descriptor: %w", err)
	}

	return contents, nil
}

package models

import (
	"time"

	"github.com/opencontainers/go-digest"
)

// Package is a descriptor boarded into the catalogue. The descriptor
// itself is immutable once boarded; re-boarding a changed document yields
// a new package with a new id.
type Package struct {
	// ID is the service uuid assigned when the package was boarded.
	ID string `json:"service_uuid"`
	// Digest is the content digest of the boarded descriptor document.
	Digest digest.Digest `json:"digest"`
	// BoardedAt is when the package was accepted into the catalogue.
	BoardedAt time.Time `json:"boarded_at"`
	// Descriptor is the parsed descriptor.
	Descriptor *Vnfd `json:"descriptor"`
}

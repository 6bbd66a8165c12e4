package errors

import (
	"errors"
	"fmt"
)

var (
	ErrDescriptorVersionRequired = errors.New("descriptor_version is required")
	ErrVendorRequired            = errors.New("vendor is required")
	ErrNameRequired              = errors.New("name is required")
	ErrVersionRequired           = errors.New("version is required")
	ErrVDURequired               = errors.New("no virtual deployment units specified, at least 1 is required")
	ErrVDUIDRequired             = errors.New("id for virtual deployment unit is required")
	ErrVMImageRequired           = errors.New("vm image reference is required")
	ErrConnectionPointIDRequired = errors.New("id for connection point is required")
	ErrVirtualLinkIDRequired     = errors.New("id for virtual link is required")
	ErrPackageNotFound           = errors.New("descriptor package not found")
	ErrMalformedDescriptor       = errors.New("malformed descriptor document")
)

type unsupportedImageFormatError struct {
	vduID  string
	format string
}

// Error returns the error message.
func (e unsupportedImageFormatError) Error() string {
	return fmt.Sprintf("vdu %s: unsupported vm image format %q", e.vduID, e.format)
}

func NewUnsupportedImageFormat(vduID, format string) error {
	return unsupportedImageFormatError{
		vduID:  vduID,
		format: format,
	}
}

type invalidVCPUCountError struct {
	vduID string
	vcpus int
}

// Error returns the error message.
func (e invalidVCPUCountError) Error() string {
	return fmt.Sprintf("vdu %s: vcpus must be a positive integer, got %d", e.vduID, e.vcpus)
}

func NewInvalidVCPUCount(vduID string, vcpus int) error {
	return invalidVCPUCountError{
		vduID: vduID,
		vcpus: vcpus,
	}
}

type invalidSizeError struct {
	vduID    string
	resource string
	size     int
	unit     string
}

// Error returns the error message.
func (e invalidSizeError) Error() string {
	return fmt.Sprintf("vdu %s: invalid %s size %d %q", e.vduID, e.resource, e.size, e.unit)
}

func NewInvalidSize(vduID, resource string, size int, unit string) error {
	return invalidSizeError{
		vduID:    vduID,
		resource: resource,
		size:     size,
		unit:     unit,
	}
}

// DuplicateIDError is returned when an identifier that must be unique
// within the document is declared more than once.
type DuplicateIDError struct {
	Kind string
	ID   string
}

// Error returns the error message.
func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id %q", e.Kind, e.ID)
}

// DanglingReferenceError is returned when a virtual link references a
// connection point that is not declared anywhere in the document.
type DanglingReferenceError struct {
	LinkID    string
	Reference string
}

// Error returns the error message.
func (e DanglingReferenceError) Error() string {
	return fmt.Sprintf("virtual link %s: connection point reference %q does not resolve to a declared connection point", e.LinkID, e.Reference)
}

type invalidLinkEndpointsError struct {
	linkID    string
	endpoints int
}

// Error returns the error message.
func (e invalidLinkEndpointsError) Error() string {
	return fmt.Sprintf("virtual link %s: at least 2 connection point references are required, got %d", e.linkID, e.endpoints)
}

func NewInvalidLinkEndpoints(linkID string, endpoints int) error {
	return invalidLinkEndpointsError{
		linkID:    linkID,
		endpoints: endpoints,
	}
}

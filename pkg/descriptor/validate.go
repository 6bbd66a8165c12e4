package descriptor

import (
	"errors"

	cerrs "sonata-vnfd/pkg/errors"
	"sonata-vnfd/pkg/models"
)

var supportedImageFormats = map[models.ImageFormat]struct{}{
	models.ImageFormatDocker: {},
	models.ImageFormatQCOW2:  {},
	models.ImageFormatRaw:    {},
}

// Validate runs every structural self-consistency check against the
// descriptor and returns the findings joined into a single error, so one
// pass reports all problems in a document rather than the first.
func Validate(vnfd *models.Vnfd) error {
	var findings []error

	findings = append(findings, validateIdentity(vnfd)...)
	findings = append(findings, validateVDUs(vnfd)...)
	findings = append(findings, validateConnectionPoints(vnfd)...)
	findings = append(findings, validateVirtualLinks(vnfd)...)

	return errors.Join(findings...)
}

func validateIdentity(vnfd *models.Vnfd) []error {
	var findings []error

	if vnfd.DescriptorVersion == "" {
		findings = append(findings, cerrs.ErrDescriptorVersionRequired)
	}

	if vnfd.Vendor == "" {
		findings = append(findings, cerrs.ErrVendorRequired)
	}

	if vnfd.Name == "" {
		findings = append(findings, cerrs.ErrNameRequired)
	}

	if vnfd.Version == "" {
		findings = append(findings, cerrs.ErrVersionRequired)
	}

	return findings
}

func validateVDUs(vnfd *models.Vnfd) []error {
	var findings []error

	if len(vnfd.VirtualDeploymentUnits) == 0 {
		findings = append(findings, cerrs.ErrVDURequired)
	}

	seen := map[string]struct{}{}

	for _, vdu := range vnfd.VirtualDeploymentUnits {
		if vdu.ID == "" {
			findings = append(findings, cerrs.ErrVDUIDRequired)

			continue
		}

		if _, ok := seen[vdu.ID]; ok {
			findings = append(findings, cerrs.DuplicateIDError{Kind: "virtual deployment unit", ID: vdu.ID})
		}

		seen[vdu.ID] = struct{}{}

		if vdu.VMImage == "" {
			findings = append(findings, cerrs.ErrVMImageRequired)
		}

		if _, ok := supportedImageFormats[vdu.VMImageFormat]; !ok {
			findings = append(findings, cerrs.NewUnsupportedImageFormat(vdu.ID, string(vdu.VMImageFormat)))
		}

		findings = append(findings, validateResources(vdu)...)
	}

	return findings
}

func validateResources(vdu models.VirtualDeploymentUnit) []error {
	var findings []error

	req := vdu.ResourceRequirements

	if req.CPU.VCPUs < 1 {
		findings = append(findings, cerrs.NewInvalidVCPUCount(vdu.ID, req.CPU.VCPUs))
	}

	for resource, size := range map[string]models.SizeRequirements{
		"memory":  req.Memory,
		"storage": req.Storage,
	} {
		if size.Size < 1 {
			findings = append(findings, cerrs.NewInvalidSize(vdu.ID, resource, size.Size, size.SizeUnit))

			continue
		}

		if _, err := size.Bytes(); err != nil {
			findings = append(findings, cerrs.NewInvalidSize(vdu.ID, resource, size.Size, size.SizeUnit))
		}
	}

	return findings
}

func validateConnectionPoints(vnfd *models.Vnfd) []error {
	var findings []error

	seen := map[string]struct{}{}

	for _, id := range vnfd.ConnectionPointIDs() {
		if id == "" {
			findings = append(findings, cerrs.ErrConnectionPointIDRequired)

			continue
		}

		if _, ok := seen[id]; ok {
			findings = append(findings, cerrs.DuplicateIDError{Kind: "connection point", ID: id})
		}

		seen[id] = struct{}{}
	}

	return findings
}

func validateVirtualLinks(vnfd *models.Vnfd) []error {
	var findings []error

	declared := map[string]struct{}{}
	for _, id := range vnfd.ConnectionPointIDs() {
		declared[id] = struct{}{}
	}

	seen := map[string]struct{}{}

	for _, link := range vnfd.VirtualLinks {
		if link.ID == "" {
			findings = append(findings, cerrs.ErrVirtualLinkIDRequired)

			continue
		}

		if _, ok := seen[link.ID]; ok {
			findings = append(findings, cerrs.DuplicateIDError{Kind: "virtual link", ID: link.ID})
		}

		seen[link.ID] = struct{}{}

		if len(link.ConnectionPointsReference) < 2 {
			findings = append(findings, cerrs.NewInvalidLinkEndpoints(link.ID, len(link.ConnectionPointsReference)))
		}

		for _, ref := range link.ConnectionPointsReference {
			if _, ok := declared[ref]; !ok {
				findings = append(findings, cerrs.DanglingReferenceError{LinkID: link.ID, Reference: ref})
			}
		}
	}

	return findings
}

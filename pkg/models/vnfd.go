package models

import (
	"fmt"

	units "github.com/docker/go-units"
)

// SchemaVersion identifies the descriptor schema a document conforms to.
type SchemaVersion string

const (
	// SchemaVersionV1 is the vnfd-schema-01 descriptor schema.
	SchemaVersionV1 SchemaVersion = "vnfd-schema-01"
)

// ImageFormat is the packaging format of a VDU image reference.
type ImageFormat string

const (
	ImageFormatDocker ImageFormat = "docker"
	ImageFormatQCOW2  ImageFormat = "qcow2"
	ImageFormatRaw    ImageFormat = "raw"
)

// ConnectivityType describes the topology of a virtual link.
type ConnectivityType string

const (
	// ConnectivityELine is a point-to-point link between two connection points.
	ConnectivityELine ConnectivityType = "E-Line"
	// ConnectivityELAN is a multipoint link joining two or more connection points.
	ConnectivityELAN ConnectivityType = "E-LAN"
	// ConnectivityETree is a rooted multipoint link.
	ConnectivityETree ConnectivityType = "E-Tree"
)

// ConnectionPointType is the type tag of a connection point.
type ConnectionPointType string

const (
	ConnectionPointTypeInterface ConnectionPointType = "interface"
)

// Vnfd is a virtual network function descriptor. It is a declarative
// record: authored once, read by an orchestrator, replaced wholesale on
// update.
type Vnfd struct {
	// DescriptorVersion is the schema tag, e.g. "vnfd-schema-01".
	DescriptorVersion SchemaVersion `yaml:"descriptor_version" json:"descriptor_version"`
	// Vendor is the vendor namespace of the function, e.g. "eu.sonata-nfv".
	Vendor string `yaml:"vendor" json:"vendor"`
	// Name is the function name, unique within the vendor namespace.
	Name string `yaml:"name" json:"name"`
	// Version is the function version.
	Version string `yaml:"version" json:"version"`
	// Author is free text naming the descriptor author.
	Author string `yaml:"author,omitempty" json:"author,omitempty"`
	// Description is free text describing the function.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// VirtualDeploymentUnits are the deployable units composing the function.
	VirtualDeploymentUnits []VirtualDeploymentUnit `yaml:"virtual_deployment_units" json:"virtual_deployment_units"`
	// VirtualLinks are the logical networks joining connection points.
	VirtualLinks []VirtualLink `yaml:"virtual_links,omitempty" json:"virtual_links,omitempty"`
	// ConnectionPoints are the function-level connection points exposing
	// VDU-level ones to the outside world.
	ConnectionPoints []ConnectionPoint `yaml:"connection_points,omitempty" json:"connection_points,omitempty"`
}

// FQName returns the vendor-qualified identity of the descriptor.
func (v *Vnfd) FQName() string {
	return fmt.Sprintf("%s.%s.%s", v.Vendor, v.Name, v.Version)
}

// ConnectionPointIDs returns the ids of every connection point declared in
// the document, both VDU-level and function-level.
func (v *Vnfd) ConnectionPointIDs() []string {
	var ids []string

	for _, vdu := range v.VirtualDeploymentUnits {
		for _, cp := range vdu.ConnectionPoints {
			ids = append(ids, cp.ID)
		}
	}

	for _, cp := range v.ConnectionPoints {
		ids = append(ids, cp.ID)
	}

	return ids
}

// VirtualDeploymentUnit is a single deployable unit (one VM or container)
// of the function.
type VirtualDeploymentUnit struct {
	// ID is the identifier of the unit, unique within the document.
	ID string `yaml:"id" json:"id"`
	// VMImage is the image reference to instantiate the unit from.
	VMImage string `yaml:"vm_image" json:"vm_image"`
	// VMImageFormat is the packaging format of VMImage, e.g. "docker".
	VMImageFormat ImageFormat `yaml:"vm_image_format" json:"vm_image_format"`
	// ResourceRequirements is the sizing the orchestrator must provide.
	ResourceRequirements ResourceRequirements `yaml:"resource_requirements" json:"resource_requirements"`
	// ConnectionPoints are the network attachment points of the unit.
	ConnectionPoints []ConnectionPoint `yaml:"connection_points,omitempty" json:"connection_points,omitempty"`
}

// ResourceRequirements is the compute sizing of a VDU.
type ResourceRequirements struct {
	CPU     CPURequirements  `yaml:"cpu" json:"cpu"`
	Memory  SizeRequirements `yaml:"memory" json:"memory"`
	Storage SizeRequirements `yaml:"storage" json:"storage"`
}

// CPURequirements is the vCPU sizing of a VDU.
type CPURequirements struct {
	VCPUs int `yaml:"vcpus" json:"vcpus"`
}

// SizeRequirements is a size with a unit, e.g. 1 GB of memory.
type SizeRequirements struct {
	Size     int    `yaml:"size" json:"size"`
	SizeUnit string `yaml:"size_unit" json:"size_unit"`
}

// Bytes resolves the size against its unit, e.g. {1, "GB"} -> 10^9.
func (s SizeRequirements) Bytes() (int64, error) {
	size, err := units.FromHumanSize(fmt.Sprintf("%d%s", s.Size, s.SizeUnit))
	if err != nil {
		return 0, fmt.Errorf("resolving size %d %q: %w", s.Size, s.SizeUnit, err)
	}

	return size, nil
}

// ConnectionPoint is a named network attachment point on a VDU or on the
// function as a whole.
type ConnectionPoint struct {
	// ID is the identifier of the connection point, e.g. "vdu01:cp01".
	ID string `yaml:"id" json:"id"`
	// Type is the type tag of the connection point, e.g. "interface".
	Type ConnectionPointType `yaml:"type" json:"type"`
}

// VirtualLink is a logical network joining two or more connection points.
type VirtualLink struct {
	// ID is the identifier of the link.
	ID string `yaml:"id" json:"id"`
	// ConnectivityType is the link topology, e.g. "E-Line".
	ConnectivityType ConnectivityType `yaml:"connectivity_type" json:"connectivity_type"`
	// ConnectionPointsReference lists the ids of the connection points the
	// link joins. Each entry must resolve to a connection point declared
	// elsewhere in the same document.
	ConnectionPointsReference []string `yaml:"connection_points_reference" json:"connection_points_reference"`
}

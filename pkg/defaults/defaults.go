package defaults

const (
	// HTTPAPIEndpoint is the default bind address for the catalogue HTTP API.
	HTTPAPIEndpoint = "0.0.0.0:5000"

	// StateRootDir is the default directory boarded packages are stored under.
	StateRootDir = "/var/lib/son-catalogue"

	// ConfigFile is the default catalogue configuration file.
	ConfigFile = "catalogue.toml"

	// DataDirPerm is the permissions to use for data folders.
	DataDirPerm = 0o755

	// DataFilePerm is the permissions to use for data files.
	DataFilePerm = 0o644
)

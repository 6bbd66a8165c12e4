package version

// Set by the linker at build time.
var (
	// PackageName is the name of the tool.
	PackageName = "sonata-vnfd"
	// Version is the release version.
	Version = "undefined"
	// CommitHash is the git commit the binary was built from.
	CommitHash = "undefined"
	// BuildDate is when the binary was built.
	BuildDate = "undefined"
)

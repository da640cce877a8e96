package domain

// ConfigFileNames lists the accepted configuration file names in priority order.
// Only these exact spellings match.
var ConfigFileNames = []string{
	"wandler.yml",
	".wandler.yml",
	"wandler.yaml",
	".wandler.yaml",
	"Wandler.yaml",
	".Wandler.yaml",
	"Wandler.yml",
	".Wandler.yml",
}

const (
	// DefaultConfigFileName is the name used when referring to the configuration file in messages.
	DefaultConfigFileName = "wandler.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

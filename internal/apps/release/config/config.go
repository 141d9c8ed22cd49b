package releaseconfig

import (
	"os"
	"path/filepath"
)

// DefaultVersionFile is the version record location, relative to the
// repository root.
const DefaultVersionFile = "VERSION"

// DefaultImage is the image repository the build command tags by default.
const DefaultImage = "deakai/openehr-mcp-server"

func ConfigBasePath() string {
	homedir, err := os.UserHomeDir()
	if err != nil {
		homedir = "/usr/local/config/openehr-release"
	}

	return filepath.Join(homedir, ".config", "openehr-release")
}

func StateDBFile() string {
	return filepath.Join(ConfigBasePath(), "state.db")
}

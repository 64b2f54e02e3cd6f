package assets

import (
	"embed"
	"io/fs"

	"github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS is the embedded asset tree; levels live under "levels".
func FS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded map with the configured options.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(assetFS, config.Level.Dir, config.Level.Options())
}

package catconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/stackcats/configs"
	"github.com/reusee/stackcats/logs"
)

//go:embed schema.cue
var schema string

var configFileNames = []string{
	"stackcats.cue",
	".stackcats.cue",
}

// ConfigDirs are searched in precedence order.
type ConfigDirs []string

func (Module) ConfigDirs() ConfigDirs {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	dirs ConfigDirs,
	logger logs.Logger,
) configs.Loader {

	var paths []string
	for _, dir := range dirs {
		for _, filename := range configFileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

package lispconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tailisp/cmds"
	"github.com/reusee/tailisp/configs"
	"github.com/reusee/tailisp/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

var filenames = []string{
	"lisp.cue",
	".lisp.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFiles...)
	paths = append(paths, discover()...)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

// discover finds config files in the working directory, the user config dir and /etc, in that order.
func discover() (paths []string) {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

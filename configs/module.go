package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/cmds"
)

type Module struct {
	dscope.Module
}

var configPath = cmds.Var[string]("-config")

func (Module) Loader() Loader {
	var paths []string

	if *configPath != "" {
		paths = append(paths, *configPath)
	}

	// stratgen.cue next to the working directory
	if _, err := os.Stat("stratgen.cue"); err == nil {
		paths = append(paths, "stratgen.cue")
	}

	// user config
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "stratgen", "config.cue")
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return NewLoader(paths, "")
}

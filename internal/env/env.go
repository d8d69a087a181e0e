package env

import (
	"fmt"
	"os"
	"path/filepath"
)

type Env struct {
	HOME    string
	LOGFILE string
}

func CljselHome() string {
	dir := os.Getenv("CLJSEL_HOME")
	if dir != "" {
		return dir
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		panic(fmt.Errorf("couldn't get user config dir: %w", err))
	}
	return filepath.Join(dir, "cljsel")
}

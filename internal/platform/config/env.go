package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

// DefaultEnvFile is read when CORE_ENV_FILE is unset
const DefaultEnvFile = ".env"

// LoadEnvFile loads dotenv style KEY=VALUE pairs into the process env
// variables already set win; a missing file is not an error
func LoadEnvFile(path string) (bool, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultEnvFile
	}
	if err := gotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// LoadDefaultEnv loads the file named by CORE_ENV_FILE or DefaultEnvFile
func LoadDefaultEnv() (bool, error) {
	return LoadEnvFile(os.Getenv("CORE_ENV_FILE"))
}

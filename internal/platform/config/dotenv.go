package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is the file consulted when no explicit path is given.
const DefaultDotEnvPath = ".env"

// LoadDotEnv loads key/value pairs from a dotenv file into the process
// environment. Variables already set in the environment win. A missing file
// is not an error so deployments without one keep working.
func LoadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultDotEnvPath
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load dotenv %s: %w", path, err)
	}
	return nil
}

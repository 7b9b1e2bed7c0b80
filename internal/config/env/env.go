package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Dir is where per-environment .env files live, relative to the working directory.
var Dir = filepath.Join("internal", "config", "env")

// Candidates returns the .env files to try for the given environment, most specific first.
func Candidates(environment string) []string {
	if environment == "" {
		environment = "development"
	}
	return []string{
		filepath.Join(Dir, fmt.Sprintf(".env.%s", environment)),
		".env",
	}
}

// LoadEnv loads the first .env file that exists for the current ENV.
// godotenv never overrides variables already present in the process environment.
// It returns the path that was loaded, or "" when no file was found.
func LoadEnv() (string, error) {
	for _, path := range Candidates(os.Getenv("ENV")) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("error loading env file %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

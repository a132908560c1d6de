package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig   = ".config"
	appName     = "supernovafit"
	datasetName = "dataset.json"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

// Dataset is the file read when neither a flag nor SUPERNOVA_DATASET names one.
func Dataset() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, datasetName), nil
}

// Resolve returns the first non-empty candidate, else the default dataset path.
func Resolve(candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return c, nil
		}
	}
	return Dataset()
}

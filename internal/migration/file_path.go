package migration

import (
	"fmt"
	"os"
	"path/filepath"
)

// getMigrationsDir walks up from the working directory until it finds the
// migrations folder, so the migrator works from the repo root and from cmd/.
func getMigrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory not found")
		}
		dir = parent
	}
}

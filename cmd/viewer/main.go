package main

import (
	"os"
	"path/filepath"
	"strings"

	"volview/internal/viewer"
)

func main() {
	// Change working directory to executable location for deployed builds, so
	// config/interaction.yaml resolves next to the binary. Skip this for
	// "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	viewer.New().Run()
}

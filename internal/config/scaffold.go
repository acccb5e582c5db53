package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scaffold writes a starter bank document to bankPath, creating its directory.
// It refuses to overwrite an existing file.
func Scaffold(bankPath string, document []byte) error {
	if bankPath == "" {
		return fmt.Errorf("bank path is required")
	}
	if len(document) == 0 {
		return fmt.Errorf("bank document is empty")
	}
	if info, err := os.Stat(bankPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("bank path %q is a directory", bankPath)
		}
		return fmt.Errorf("bank file already exists at %q", bankPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat bank file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(bankPath), 0o755); err != nil {
		return fmt.Errorf("create bank dir: %w", err)
	}
	if err := os.WriteFile(bankPath, document, 0o644); err != nil {
		return fmt.Errorf("write bank file: %w", err)
	}
	return nil
}

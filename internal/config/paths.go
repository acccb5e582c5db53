package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Bank path constants used by the CLI and loaders.
const (
	BankDirName  = ".quizpage"
	BankFileName = "bank.yml"
)

// ErrBankNotFound reports that no bank file exists in the searched directories.
var ErrBankNotFound = errors.New("bank file not found")

// BankDir returns the .quizpage directory under root.
func BankDir(root string) string {
	return filepath.Join(root, BankDirName)
}

// BankPath returns the full bank file path under root.
func BankPath(root string) string {
	return filepath.Join(BankDir(root), BankFileName)
}

// FindBankPath searches upward from a directory for a bank file.
func FindBankPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		bankDir := BankDir(dir)
		bankPath := filepath.Join(bankDir, BankFileName)
		info, err := os.Stat(bankPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("bank path %q is a directory", bankPath)
			}
			return bankPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat bank path %q: %w", bankPath, err)
		}
		if dirInfo, dirErr := os.Stat(bankDir); dirErr == nil && dirInfo.IsDir() {
			return "", fmt.Errorf("found %q but %s is missing", bankDir, BankFileName)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s in %s or parent directories: %w", filepath.Join(BankDirName, BankFileName), abs, ErrBankNotFound)
		}
		dir = parent
	}
}

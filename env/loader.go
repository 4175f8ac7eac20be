package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ReadFile parses a .env file into a map. A missing file yields an empty map.
func ReadFile(path string) (map[string]string, error) {
	path = filepath.Clean(path)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to open env file: %w", err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}
	return values, nil
}

// LoadFile reads path and sets every variable that is not already present in
// the process environment.
func LoadFile(path string) error {
	return LoadFileInto(path, OS(), OS())
}

// LoadFileInto reads path and writes every variable missing from src to dst.
func LoadFileInto(path string, src Lookup, dst Setter) error {
	values, err := ReadFile(path)
	if err != nil {
		return err
	}
	for _, kv := range MapToSlice(values) {
		key, value, _ := strings.Cut(kv, "=")
		if _, exists := src.Lookup(key); exists {
			continue
		}
		if err := dst.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

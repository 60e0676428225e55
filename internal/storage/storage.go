// Package storage provides the .cart/ workspace and the key-value backends
// the cart is persisted to.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// cartDir is the name of the workspace directory.
	cartDir = ".cart"
	// dataDir is the subdirectory used by the file backend.
	dataDir = "data"
	// configFile is the name of the workspace config file within .cart/.
	configFile = "config.yaml"
	// buntFile is the database file used by the bunt backend.
	buntFile = "cart.db"
)

// WorkspaceConfig contains settings stored in .cart/config.yaml.
type WorkspaceConfig struct {
	Version int `yaml:"version"`
}

// Storage provides access to a .cart/ directory.
type Storage struct {
	root string // path to directory containing .cart/
}

// Open returns a Storage for the given directory.
// Returns error if .cart/ does not exist.
func Open(dir string) (*Storage, error) {
	path := filepath.Join(dir, cartDir)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".cart/ directory not found in %s (run `cart init`)", dir)
		}
		return nil, fmt.Errorf("failed to access .cart/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".cart is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Init creates the .cart/ directory with an empty data store.
// Returns error if .cart/ already exists.
func Init(dir string) (*Storage, error) {
	path := filepath.Join(dir, cartDir)

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf(".cart/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .cart/: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(path, dataDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create .cart/data/: %w", err)
	}

	cfg := WorkspaceConfig{Version: 1}
	cfgData, err := yaml.Marshal(&cfg)
	if err != nil {
		os.RemoveAll(path)
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(path, configFile), cfgData, 0644); err != nil {
		os.RemoveAll(path)
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	return &Storage{root: dir}, nil
}

// Root returns the root directory containing .cart/.
func (s *Storage) Root() string {
	return s.root
}

// CartPath returns the path to the .cart/ directory.
func (s *Storage) CartPath() string {
	return filepath.Join(s.root, cartDir)
}

// DataPath returns the directory used by the file backend.
func (s *Storage) DataPath() string {
	return filepath.Join(s.root, cartDir, dataDir)
}

// BuntPath returns the database path used by the bunt backend.
func (s *Storage) BuntPath() string {
	return filepath.Join(s.root, cartDir, buntFile)
}

// LoadWorkspaceConfig reads .cart/config.yaml.
func (s *Storage) LoadWorkspaceConfig() (*WorkspaceConfig, error) {
	data, err := os.ReadFile(filepath.Join(s.CartPath(), configFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}
	var cfg WorkspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
	}
	return &cfg, nil
}

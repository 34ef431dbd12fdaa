package service

import (
	"fmt"
	"os"

	"github.com/casecollector/Case-Collector-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	dataDir string
}

// NewSystemService creates a new SystemService
func NewSystemService(dataDir string) *SystemService {
	return &SystemService{
		dataDir: dataDir,
	}
}

// CheckHealth checks that the data directory exists and is a directory.
func (s *SystemService) CheckHealth() error {
	info, err := os.Stat(s.dataDir)
	if err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", s.dataDir)
	}
	return nil
}

func (s *SystemService) CheckVersion() string {
	return version.Version
}

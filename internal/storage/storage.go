package storage

import (
	"fmt"
)

// Storage provides a unified interface to all storage managers
type Storage struct {
	db       *DB
	Settings *SettingsManager
}

// NewStorage opens the database at path and wires the managers
func NewStorage(path string) (*Storage, error) {
	db, err := NewDB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	return &Storage{
		db:       db,
		Settings: NewSettingsManager(db),
	}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database for advanced operations
func (s *Storage) GetDB() *DB {
	return s.db
}

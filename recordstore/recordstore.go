// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recordstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/danielhkuo/member-registry/models"
)

// Store is an append-only CSV file of registration submissions. Rows are
// keyed by insertion order only; nothing is ever updated or deleted.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Initialize creates the store with the fixed column header if the
// backing file does not exist. Safe to call multiple times.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat record store: %w", err)
	}

	return s.createWithHeader()
}

// Append writes one registration to the end of the store, creating the
// file with its header first if needed. The record is immutable once
// written.
func (s *Store) Append(rec models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.createWithHeader(); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat record store: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rec.Row()); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush record: %w", err)
	}

	return nil
}

// LoadAll reads every stored registration in insertion order. A missing
// file is not an error - the store just has nothing yet.
func (s *Store) LoadAll() ([]models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		slog.Warn("record store not found, treating as empty", "path", s.path)
		return []models.Registration{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		// Empty file, e.g. truncated by hand. Treat like a fresh store.
		return []models.Registration{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record store header: %w", err)
	}
	if len(header) != len(models.RegistrationColumns) {
		return nil, fmt.Errorf("record store header has %d columns, expected %d",
			len(header), len(models.RegistrationColumns))
	}

	records := []models.Registration{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record store: %w", err)
		}

		rec, err := models.RegistrationFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("corrupt record at line %d: %w", len(records)+2, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// createWithHeader writes a fresh file containing only the column
// header. Callers hold s.mu.
func (s *Store) createWithHeader() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create record store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.RegistrationColumns); err != nil {
		return fmt.Errorf("failed to write record store header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush record store header: %w", err)
	}

	return nil
}

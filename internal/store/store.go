// Package store persists the whole application state as one JSON document.
//
// Every read loads the full file and every mutation rewrites it. Mutations go
// through Update, which holds the store lock across load, change and save so
// counters and inserts cannot interleave within the process.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"dinoledger/internal/model"
)

// Document is the on-disk layout.
type Document struct {
	Users      []model.User `json:"users"`
	Items      []model.Item `json:"dinos"`
	NextUserID int          `json:"next_user_id"`
	NextItemID int          `json:"next_dino_id"`
}

// Empty returns a document with no records and both counters at 1.
func Empty() Document {
	return Document{
		Users:      []model.User{},
		Items:      []model.Item{},
		NextUserID: 1,
		NextItemID: 1,
	}
}

// Store reads and writes a Document at a fixed path.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by the file at path. The file need not exist.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the current document. A missing, unreadable or malformed file
// yields Empty(); the failure is logged, never returned.
func (s *Store) Load() Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: read %s: %v, starting from an empty document", s.path, err)
		}
		return Empty()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("store: decode %s: %v, starting from an empty document", s.path, err)
		return Empty()
	}
	normalize(&doc)
	return doc
}

// Save overwrites the backing file with doc.
func (s *Store) Save(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update loads the document, applies fn and saves the result. If fn returns
// an error nothing is written and the error is returned as is.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.Load()
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(doc)
}

// Encode renders doc exactly as Save writes it.
func Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Store) write(doc Document) error {
	normalize(&doc)
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// normalize replaces nil lists and repairs counters that would reissue ids.
func normalize(doc *Document) {
	if doc.Users == nil {
		doc.Users = []model.User{}
	}
	if doc.Items == nil {
		doc.Items = []model.Item{}
	}

	maxUser := 0
	for _, u := range doc.Users {
		if u.ID > maxUser {
			maxUser = u.ID
		}
	}
	if doc.NextUserID <= maxUser {
		doc.NextUserID = maxUser + 1
	}

	maxItem := 0
	for _, it := range doc.Items {
		if it.ID > maxItem {
			maxItem = it.ID
		}
	}
	if doc.NextItemID <= maxItem {
		doc.NextItemID = maxItem + 1
	}
}

package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Store manages the file-backed goal document.
type Store struct {
	Path   string // e.g., ~/.local/share/nower/goals_actions.json
	Format Format
	logger *log.Logger
}

// NewStore creates a Store for the given file.
// It creates the parent directory if it doesn't exist. A nil logger discards output.
func NewStore(path string, logger *log.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Store{
		Path:   path,
		Format: FormatFor(path),
		logger: logger,
	}, nil
}

// Dir returns the directory holding the store file.
func (s *Store) Dir() string {
	return filepath.Dir(s.Path)
}

// Load reads the document from disk. A missing file yields an empty Document;
// content that cannot be decoded yields a *ParseError.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		s.logger.Debug("store file missing, starting empty", "path", s.Path)
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}

	doc, err := Decode(data, s.Format)
	if err != nil {
		return nil, &ParseError{Path: s.Path, Err: err}
	}
	s.logger.Debug("loaded document", "path", s.Path, "goals", len(doc.Goals))
	return doc, nil
}

// Save overwrites the store file with the full document.
func (s *Store) Save(doc *Document) error {
	data, err := Encode(doc, s.Format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	s.logger.Debug("saved document", "path", s.Path, "goals", len(doc.Goals))
	return nil
}

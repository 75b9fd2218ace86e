package leaderboard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Backend reads and writes raw named records.
// Read returns ErrNotFound when the record has never been written.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// Board is the leaderboard over a persistence backend.
type Board struct {
	backend Backend
	log     *log.Logger
}

// New creates a board. A nil logger means log.Default().
func New(backend Backend, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	return &Board{backend: backend, log: logger}
}

// Load returns the stored entries, best first. Missing or unreadable data
// yields an empty board; problems are logged, never returned.
func (b *Board) Load() []Entry {
	entries, err := b.read()
	switch {
	case err == nil:
		return entries
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		b.log.Warn("leaderboard unreadable, starting empty", "error", err)
		return nil
	}
}

// Qualifies reports whether score would enter the current board.
func (b *Board) Qualifies(score float64) bool {
	return Qualifies(b.Load(), score)
}

// Save inserts a run and persists the board. Returns the new board.
// A missing or corrupt record is replaced; any other read failure aborts
// the save so stored entries are never overwritten blind.
func (b *Board) Save(name string, score float64) ([]Entry, error) {
	current, err := b.read()
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
	case errors.Is(err, ErrCorrupt):
		b.log.Warn("replacing unreadable leaderboard", "error", err)
	default:
		return nil, fmt.Errorf("leaderboard: cannot read record: %w", err)
	}

	entries := Insert(current, Entry{Name: name, Score: score})
	if err := b.write(entries); err != nil {
		return nil, err
	}
	b.log.Debug("leaderboard saved", "name", SanitizeName(name), "score", score)
	return entries, nil
}

// Clear removes every entry.
func (b *Board) Clear() error {
	return b.write(nil)
}

// read loads and validates the record.
func (b *Board) read() ([]Entry, error) {
	data, err := b.backend.Read(RecordKey)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// write encodes and stores the record.
func (b *Board) write(entries []Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := b.backend.Write(RecordKey, data); err != nil {
		return fmt.Errorf("leaderboard: cannot write record: %w", err)
	}
	return nil
}

// Encode serializes entries as a YAML sequence.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot encode: %w", err)
	}
	return data, nil
}

// Decode parses a YAML sequence of entries and normalizes it.
// Empty input is an empty board.
func Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return normalize(entries), nil
}

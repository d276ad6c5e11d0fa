package watchlist

import (
	"errors"
	"log"
	"strings"
	"sync"
)

var (
	// ErrDuplicateSymbol reports an Add for a symbol already tracked.
	ErrDuplicateSymbol = errors.New("symbol already in watchlist")
	// ErrNotFound reports a Remove for a symbol that is not tracked.
	ErrNotFound = errors.New("symbol not in watchlist")
)

// Store holds the ordered set of tracked symbols with concurrency safety.
// Every mutation persists a full snapshot to disk; a save failure is logged
// and the in-memory state kept, so the application keeps running.
type Store struct {
	mu       sync.Mutex
	symbols  []string
	filePath string
}

// NewStore creates a Store, loading any previously persisted watchlist.
// A missing or corrupt file starts an empty watchlist, never an error.
func NewStore(filePath string) *Store {
	symbols, err := loadSymbols(filePath)
	if err != nil {
		log.Printf("[WARN] load watchlist: %v, starting empty", err)
		symbols = nil
	}
	return &Store{symbols: symbols, filePath: filePath}
}

// Add appends symbol to the watchlist and persists. Symbols are
// case-insensitive and stored upper-case.
func (s *Store) Add(symbol string) error {
	symbol = normalize(symbol)
	if symbol == "" {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.symbols {
		if existing == symbol {
			return ErrDuplicateSymbol
		}
	}
	s.symbols = append(s.symbols, symbol)
	s.save()
	return nil
}

// Remove deletes symbol from the watchlist and persists.
func (s *Store) Remove(symbol string) error {
	symbol = normalize(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.symbols {
		if existing == symbol {
			s.symbols = append(s.symbols[:i], s.symbols[i+1:]...)
			s.save()
			return nil
		}
	}
	return ErrNotFound
}

// List returns the tracked symbols in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Contains reports whether symbol is currently tracked.
func (s *Store) Contains(symbol string) bool {
	symbol = normalize(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.symbols {
		if existing == symbol {
			return true
		}
	}
	return false
}

// Len returns the number of tracked symbols.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.symbols)
}

func (s *Store) save() {
	if err := saveSymbols(s.filePath, s.symbols); err != nil {
		log.Printf("[ERROR] save watchlist: %v", err)
	}
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

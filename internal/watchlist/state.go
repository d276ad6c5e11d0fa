package watchlist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// fileState is the persisted watchlist snapshot. The full file is
// overwritten on every mutation; there is no incremental log.
type fileState struct {
	Symbols   []string  `json:"symbols"`
	UpdatedAt time.Time `json:"updated_at"`
}

// loadSymbols reads the watchlist file. A missing file yields an empty
// list and no error.
func loadSymbols(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state.Symbols, nil
}

// saveSymbols writes the full watchlist snapshot, creating the parent
// directory when needed.
func saveSymbols(filePath string, symbols []string) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	state := fileState{Symbols: symbols, UpdatedAt: time.Now()}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

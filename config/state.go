package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sidenav/log"
)

const StateFileName = "state.json"

// State represents the UI state that persists between runs
type State struct {
	// NavigationOpen is whether the navigation panel was revealed on exit.
	NavigationOpen bool `json:"navigation_open"`
	// SelectedSite is the id of the last loaded navigation item.
	SelectedSite string `json:"selected_site"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{}
}

func statePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, StateFileName), nil
}

// LoadState loads the state from disk. If it cannot be done, we return the default state.
// This function acquires a shared lock to allow concurrent reads.
func LoadState() *State {
	path, err := statePath()
	if err != nil {
		log.ErrorLog.Printf("%v", err)
		return DefaultState()
	}

	if _, err := os.Stat(filepath.Dir(path)); err == nil {
		lock := NewFileLock(path)
		if err := lock.RLock(); err != nil {
			// Continue without lock - better to have stale data than fail
			log.WarningLog.Printf("failed to acquire read lock: %v", err)
		} else {
			defer lock.Unlock()
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WarningLog.Printf("failed to get state file: %v", err)
		}
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return DefaultState()
	}
	return &state
}

// SaveState saves the state to disk.
// This function acquires an exclusive lock to prevent concurrent writes.
func SaveState(state *State) error {
	path, err := statePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ResetState deletes the persisted state. A missing file is not an error.
func ResetState() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Dir(path)); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	lock := NewFileLock(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}

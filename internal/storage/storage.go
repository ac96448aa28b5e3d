package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"piggy/internal/model"
)

// BaseDir returns the root data directory (~/.piggy).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".piggy"), nil
}

// statePath returns the path of the single persistent state slot.
func statePath(base string) string {
	return filepath.Join(base, "state.json")
}

// Load reads the persisted application state. A missing slot yields the
// empty default state. A malformed slot is backed up to state.json.corrupt
// and likewise replaced by the default: corrupt local data must never
// brick the tracker.
func Load(base string) (model.State, error) {
	path := statePath(base)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.NewState(), nil
	}
	if err != nil {
		return model.State{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var st model.State
	if err := json.Unmarshal(data, &st); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		logrus.WithFields(logrus.Fields{
			"path":   path,
			"backup": backupPath,
		}).Warn("corrupt state slot, starting from the empty default")
		return model.NewState(), nil
	}
	if st.Entries == nil {
		st.Entries = map[string]model.Entry{}
	}
	return st, nil
}

// Save atomically writes the full application state to the slot.
func Save(base string, st model.State) error {
	path := statePath(base)
	if err := os.MkdirAll(base, 0o700); err != nil {
		return fmt.Errorf("storage error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Debug("state persisted")
	return nil
}

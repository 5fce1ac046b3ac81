package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"cloudeng.io/logging/ctxlog"
)

// ErrNotFound is returned when the availability file does not exist.
var ErrNotFound = errors.New("availability file not found")

// Parse decodes an availability document.
func Parse(data []byte) (*Set, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse availability JSON: %w", err)
	}
	return NewSet(f)
}

// LoadFromFile loads availability data from a JSON file.
func LoadFromFile(ctx context.Context, path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read availability file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ctxlog.Logger(ctx).Info("availability loaded", "path", path, "blocked", set.Len(), "minimumNights", set.MinimumNights())
	return set, nil
}

// DefaultPath returns the availability file location under the user cache
// directory.
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "datepick", "availability.json"), nil
}

// IsFresh reports whether the file at path exists and was modified within
// maxAge of now.
func IsFresh(path string, maxAge time.Duration, now time.Time) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.ModTime().After(now.Add(-maxAge)), nil
}

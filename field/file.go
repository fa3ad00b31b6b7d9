package field

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Result describes a field written to disk.
type Result struct {
	Stats
	Path   string
	SHA256 string // hex digest of the bytes written
}

// WriteFile creates or truncates path and streams the field described by cfg
// into it. The file is closed on every return path. On failure the file may
// hold a partial field; it is not removed.
func WriteFile(path string, cfg Config) (Result, error) {
	res := Result{Path: path}
	if err := cfg.Validate(); err != nil {
		return res, err
	}

	f, err := os.Create(path)
	if err != nil {
		return res, fmt.Errorf("%w: open %q: %w", ErrIO, path, err)
	}

	hasher := sha256.New()
	stats, genErr := Generate(cfg, io.MultiWriter(f, hasher))
	res.Stats = stats

	closeErr := f.Close()
	if genErr != nil {
		return res, fmt.Errorf("write %q: %w", path, genErr)
	}
	if closeErr != nil {
		return res, fmt.Errorf("%w: close %q: %w", ErrIO, path, closeErr)
	}

	res.SHA256 = hex.EncodeToString(hasher.Sum(nil))
	return res, nil
}

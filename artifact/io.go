package artifact

import (
	"io"
	"os"
	"path/filepath"
)

// writeAtomic writes the fingerprint followed by fn's output to a
// temporary file beside path, then renames it into place. The temporary
// file is removed on any error so a failed write never leaves a partial
// or missing-fingerprint file where path expects to find a complete one
// (§7 write-rename discipline).
func writeAtomic(path string, fn func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = writeFingerprint(tmp); err != nil {
		return err
	}
	if err = fn(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// readWithFingerprint opens path, checks its fingerprint, and hands the
// remaining stream to fn.
func readWithFingerprint(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := readFingerprint(f); err != nil {
		return err
	}

	return fn(f)
}

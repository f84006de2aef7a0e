package artifact

import "io"

// WriteTimestamp writes an arbitrary build-identity string to path, read
// back at load so a running server can report its dataset's identity
// (§6.1 ".timestamp").
func WriteTimestamp(path string, stamp string) error {
	return writeAtomic(path, func(w io.Writer) error {
		return writeString(w, stamp)
	})
}

// ReadTimestamp reads back what WriteTimestamp wrote.
func ReadTimestamp(path string) (string, error) {
	var stamp string
	err := readWithFingerprint(path, func(r io.Reader) error {
		s, err := readString(r)
		if err != nil {
			return err
		}
		stamp = s

		return nil
	})

	return stamp, err
}

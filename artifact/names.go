package artifact

import (
	"io"

	"github.com/meridian-routing/meridian/names"
)

// WriteNames writes t's interned strings to path, in id order.
func WriteNames(path string, t *names.Table) error {
	all := t.All()

	return writeAtomic(path, func(w io.Writer) error {
		if err := writeCount(w, len(all)); err != nil {
			return err
		}
		for _, s := range all {
			if err := writeString(w, s); err != nil {
				return err
			}
		}

		return nil
	})
}

// ReadNames reads back what WriteNames wrote and rebuilds a names.Table
// from it.
func ReadNames(path string) (*names.Table, error) {
	var strings []string
	err := readWithFingerprint(path, func(r io.Reader) error {
		n, err := readCount(r)
		if err != nil {
			return err
		}

		strings = make([]string, n)
		for i := 0; i < n; i++ {
			s, err := readString(r)
			if err != nil {
				return err
			}
			strings[i] = s
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return names.FromStrings(strings), nil
}

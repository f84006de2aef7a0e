package artifact

import (
	"encoding/binary"
	"io"
)

func writeCount(w io.Writer, n int) error {
	return binary.Write(w, binary.LittleEndian, uint32(n))
}

func readCount(r io.Reader) (int, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, err
	}

	return int(n), nil
}

// writeSlice writes a length-prefixed array of fixed-size records.
func writeSlice[T any](w io.Writer, s []T) error {
	if err := writeCount(w, len(s)); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}

	return binary.Write(w, binary.LittleEndian, s)
}

// readSlice reads back what writeSlice wrote.
func readSlice[T any](r io.Reader) ([]T, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	out := make([]T, n)
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		return nil, err
	}

	return out, nil
}

// writeString writes a length-prefixed UTF-8 string.
func writeString(w io.Writer, s string) error {
	if err := writeCount(w, len(s)); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)

	return err
}

// readString reads back what writeString wrote.
func readString(r io.Reader) (string, error) {
	n, err := readCount(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

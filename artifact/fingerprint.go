package artifact

import (
	"encoding/binary"
	"fmt"
	"io"
)

// schemaVersion is bumped whenever any record layout in this package
// changes incompatibly. Stamped as the first 4 bytes of every artifact
// file (§6.1 "all files start with a 4-byte fingerprint derived from the
// schema version").
const schemaVersion uint32 = 1

func writeFingerprint(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, schemaVersion)
}

func readFingerprint(r io.Reader) error {
	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return err
	}
	if v != schemaVersion {
		return fmt.Errorf("%w: file stamped %d, this build understands %d", ErrFingerprintMismatch, v, schemaVersion)
	}

	return nil
}

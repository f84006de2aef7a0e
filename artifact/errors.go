package artifact

import "errors"

// ErrFingerprintMismatch is returned when a file's leading fingerprint
// doesn't match the schema version this build understands.
var ErrFingerprintMismatch = errors.New("artifact: fingerprint mismatch, regenerate this file")

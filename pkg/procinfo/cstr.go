package procinfo

import (
	"bytes"
	"unicode/utf8"
)

// cstrBytes bounds a kernel-filled byte array at its first NUL. Fields that
// exactly fill their array are not NUL padded, so a missing terminator means
// the whole array is content, not an error.
func cstrBytes(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// textField decodes a fixed-size byte array as NUL-bounded UTF-8 text.
func textField(b []byte) (string, error) {
	s := cstrBytes(b)
	if !utf8.Valid(s) {
		return "", ErrInvalidString
	}
	return string(s), nil
}

// pathField decodes a fixed-size byte array as a NUL-bounded path. Paths
// carry no encoding guarantee, so any byte sequence is accepted.
func pathField(b []byte) string {
	return string(cstrBytes(b))
}

package paths

import (
	"net/url"
	"strings"

	"github.com/arthur-debert/jsonstore/pkg/errors"
)

// RecordExt is the suffix every record file carries.
const RecordExt = ".json"

const upperhex = "0123456789ABCDEF"

// ValidateKey rejects keys before any filesystem access: an empty key is
// missing, a whitespace-only key is invalid.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New(errors.ErrMissingKey, "missing key")
	}
	if strings.TrimSpace(key) == "" {
		return errors.Newf(errors.ErrInvalidKey, "invalid key %q", key).WithDetail("key", key)
	}
	return nil
}

// RecordFileName returns the escaped file name that stores key.
func RecordFileName(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	name := baseName(key)
	if name != RecordExt {
		name = strings.TrimSuffix(name, RecordExt)
	}
	return escapeFileName(name + RecordExt), nil
}

// KeyFromFileName reverses RecordFileName for a directory entry. ok is false
// when name is not a record file. Names that do not unescape cleanly are
// returned as they are on disk.
func KeyFromFileName(name string) (key string, ok bool) {
	if !strings.HasSuffix(name, RecordExt) {
		return "", false
	}
	base := strings.TrimSuffix(name, RecordExt)
	if decoded, err := url.PathUnescape(base); err == nil {
		return decoded, true
	}
	return base, true
}

// baseName returns the last slash-separated element of key, ignoring
// trailing slashes.
func baseName(key string) string {
	trimmed := strings.TrimRight(key, "/")
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return trimmed
}

// escapeFileName percent-encodes every byte outside the encodeURIComponent
// unreserved set.
func escapeFileName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

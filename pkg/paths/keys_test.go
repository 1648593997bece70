package paths_test

import (
	"testing"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		code errors.ErrorCode
	}{
		{"empty is missing", "", errors.ErrMissingKey},
		{"spaces are invalid", "   ", errors.ErrInvalidKey},
		{"tabs and newlines are invalid", "\t\n", errors.ErrInvalidKey},
		{"plain key", "settings", ""},
		{"padded key is fine", "  settings  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := paths.ValidateKey(tt.key)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestRecordFileName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"foo", "foo.json"},
		{"foo.json", "foo.json"},
		{"foo.json.json", "foo.json.json"},
		{"foo.data", "foo.data.json"},
		{".json", ".json.json"},
		{"dir/.json", ".json.json"},
		{"dir/sub/name", "name.json"},
		{"name/", "name.json"},
		{"a b", "a%20b.json"},
		{"a:b?c", "a%3Ab%3Fc.json"},
		{"100%", "100%25.json"},
		{`back\slash`, "back%5Cslash.json"},
		{"it's(ok)!*~-_", "it's(ok)!*~-_.json"},
		{"ünï", "%C3%BCn%C3%AF.json"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := paths.RecordFileName(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyFromFileName(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"foo.json", "foo", true},
		{"a%20b.json", "a b", true},
		{"%C3%BCn%C3%AF.json", "ünï", true},
		{"foo.data.json", "foo.data", true},
		{".json.json", ".json", true},
		{"bad%zz.json", "bad%zz", true},
		{"notes.txt", "", false},
		{"json", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := paths.KeyFromFileName(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, key := range []string{"plain", "with space", "colon:key", "percent%", "ünï", "q?&=+"} {
		name, err := paths.RecordFileName(key)
		require.NoError(t, err)

		back, ok := paths.KeyFromFileName(name)
		require.True(t, ok)
		assert.Equal(t, key, back)
	}
}

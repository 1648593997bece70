package storage

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/logging"
	"github.com/arthur-debert/jsonstore/pkg/paths"
	"github.com/arthur-debert/jsonstore/pkg/types"
)

// recordPattern matches record files inside the root.
const recordPattern = "*" + paths.RecordExt

// stagingSeq numbers staging files so concurrent writers never share one.
var stagingSeq atomic.Uint64

// Store is a key-value store backed by one JSON file per key.
type Store struct {
	fs       types.FS
	resolver *paths.Resolver
	opts     Options
	logger   zerolog.Logger
}

// New creates a Store that keeps records on fsys under the resolver's root.
func New(fsys types.FS, resolver *paths.Resolver, opts ...Option) *Store {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}

	logger := logging.GetLogger("storage")
	if options.Logger != nil {
		logger = *options.Logger
	}

	return &Store{
		fs:       fsys,
		resolver: resolver,
		opts:     options,
		logger:   logger,
	}
}

// Root returns the directory records are stored in.
func (s *Store) Root() string {
	return s.resolver.Root()
}

// Path returns the file that stores key.
func (s *Store) Path(key string) (string, error) {
	return s.resolver.RecordPath(key)
}

// SetRootDirectory changes the root of this store. See paths.Resolver.SetRoot.
func (s *Store) SetRootDirectory(directory string, replace bool) error {
	if err := s.resolver.SetRoot(directory, replace); err != nil {
		return err
	}
	s.logger.Debug().Str("root", s.resolver.Root()).Msg("Root directory changed")
	return nil
}

// WithRootDirectory returns a new Store sharing this store's filesystem and
// options, rooted elsewhere. The receiver is left unchanged.
func (s *Store) WithRootDirectory(directory string, replace bool) (*Store, error) {
	resolver, err := s.resolver.WithRoot(directory, replace)
	if err != nil {
		return nil, err
	}
	return &Store{
		fs:       s.fs,
		resolver: resolver,
		opts:     s.opts,
		logger:   s.logger,
	}, nil
}

// Set serializes value as JSON and writes it as the record for key,
// replacing any previous record.
func (s *Store) Set(key string, value any) error {
	path, err := s.resolver.RecordPath(key)
	if err != nil {
		return err
	}

	data, err := s.encode(value)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSerialization, "failed to serialize value for key %q", key).
			WithDetail("key", key)
	}

	if s.opts.CreateRoot {
		dir := filepath.Dir(path)
		if err := s.fs.MkdirAll(dir, s.opts.DirMode); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to create directory %s", dir).
				WithDetail("key", key).
				WithDetail("path", dir)
		}
	}

	if err := s.write(path, data); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write record %q", key).
			WithDetail("key", key).
			WithDetail("path", path)
	}

	s.logger.Debug().Str("key", key).Str("path", path).Int("bytes", len(data)).Msg("Record written")
	return nil
}

// Get returns the decoded record for key. A missing record yields an empty
// object.
func (s *Store) Get(key string) (any, error) {
	var value any
	found, err := s.GetInto(key, &value)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]any{}, nil
	}
	return value, nil
}

// GetInto decodes the record for key into v. found is false, and v is left
// untouched, when no record exists.
func (s *Store) GetInto(key string, v any) (found bool, err error) {
	path, err := s.resolver.RecordPath(key)
	if err != nil {
		return false, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			s.logger.Trace().Str("key", key).Msg("Record not found")
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrIO, "failed to read record %q", key).
			WithDetail("key", key).
			WithDetail("path", path)
	}

	if err := s.decode(data, v); err != nil {
		return false, errors.Wrapf(err, errors.ErrCorruptRecord, "record %q is not valid JSON", key).
			WithDetail("key", key).
			WithDetail("path", path)
	}

	return true, nil
}

// Has reports whether a record exists for key.
func (s *Store) Has(key string) (bool, error) {
	path, err := s.resolver.RecordPath(key)
	if err != nil {
		return false, err
	}

	if _, err := s.fs.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrIO, "failed to stat record %q", key).
			WithDetail("key", key).
			WithDetail("path", path)
	}
	return true, nil
}

// Remove deletes the record for key. Removing a missing record succeeds.
func (s *Store) Remove(key string) error {
	path, err := s.resolver.RecordPath(key)
	if err != nil {
		return err
	}

	if err := s.fs.RemoveAll(path); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to remove record %q", key).
			WithDetail("key", key).
			WithDetail("path", path)
	}

	s.logger.Debug().Str("key", key).Str("path", path).Msg("Record removed")
	return nil
}

// Clear removes every record file directly inside the root. Other files and
// subdirectories are left alone. A missing root is already clear.
func (s *Store) Clear() error {
	defer logging.LogOperationStart(s.logger, "clear")()

	root := s.resolver.Root()
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrIO, "failed to list %s", root).WithDetail("path", root)
	}

	removed := 0
	for _, entry := range entries {
		if !isRecordFile(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if err := s.fs.RemoveAll(path); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to remove %s", path).WithDetail("path", path)
		}
		removed++
	}

	s.logger.Debug().Str("root", root).Int("removed", removed).Msg("Store cleared")
	return nil
}

// Keys lists the keys of all records in the root, in directory order.
// A missing root is an error.
func (s *Store) Keys() ([]string, error) {
	root := s.resolver.Root()
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to list %s", root).WithDetail("path", root)
	}

	keys := []string{}
	for _, entry := range entries {
		key, ok := paths.KeyFromFileName(entry.Name())
		if !ok || key == "" {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *Store) encode(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if s.opts.Indent != "" {
		enc.SetIndent("", s.opts.Indent)
	}
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// decode parses exactly one JSON document from data into v.
func (s *Store) decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if s.opts.UseNumber {
		dec.UseNumber()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return stderrors.New("unexpected data after JSON value")
	}
	return nil
}

// write replaces path with data, going through a temporary sibling and a
// rename when atomic writes are on and the filesystem supports it.
func (s *Store) write(path string, data []byte) error {
	renamer, ok := s.fs.(types.Renamer)
	if !s.opts.AtomicWrites || !ok {
		return s.fs.WriteFile(path, data, s.opts.FileMode)
	}

	tmp := tempPath(path)
	if err := s.fs.WriteFile(tmp, data, s.opts.FileMode); err != nil {
		return err
	}
	if err := renamer.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}

// tempPath names a fresh staging file for path. It is hidden, unique per
// write and never carries the record extension, so Keys and Clear do not
// see it.
func tempPath(path string) string {
	name := fmt.Sprintf(".%s.%d-%d.tmp", filepath.Base(path), os.Getpid(), stagingSeq.Add(1))
	return filepath.Join(filepath.Dir(path), name)
}

func isRecordFile(name string) bool {
	matched, err := filepath.Match(recordPattern, name)
	return err == nil && matched
}

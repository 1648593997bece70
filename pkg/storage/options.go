package storage

import (
	"io/fs"

	"github.com/rs/zerolog"
)

// Options configures a Store.
type Options struct {
	// FileMode is the permission record files are created with.
	FileMode fs.FileMode
	// DirMode is the permission used when the root has to be created.
	DirMode fs.FileMode
	// CreateRoot creates the root directory on write and watch.
	CreateRoot bool
	// AtomicWrites writes to a temporary file and renames it into place
	// when the filesystem can rename.
	AtomicWrites bool
	// Indent pretty-prints records when non-empty.
	Indent string
	// UseNumber decodes numbers as json.Number so they keep the digits
	// they were written with.
	UseNumber bool
	// Concurrency bounds the number of reads GetMany runs at once.
	Concurrency int
	// Logger overrides the package logger.
	Logger *zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options a Store uses when none are given.
func DefaultOptions() Options {
	return Options{
		FileMode:     0644,
		DirMode:      0755,
		CreateRoot:   true,
		AtomicWrites: true,
		Concurrency:  8,
	}
}

// WithFileMode sets the permission of record files.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *Options) {
		o.FileMode = mode
	}
}

// WithDirMode sets the permission of a created root directory.
func WithDirMode(mode fs.FileMode) Option {
	return func(o *Options) {
		o.DirMode = mode
	}
}

// WithCreateRoot toggles creating the root directory on demand.
func WithCreateRoot(create bool) Option {
	return func(o *Options) {
		o.CreateRoot = create
	}
}

// WithAtomicWrites toggles temp-file-and-rename writes.
func WithAtomicWrites(atomic bool) Option {
	return func(o *Options) {
		o.AtomicWrites = atomic
	}
}

// WithIndent pretty-prints records using indent for each level.
func WithIndent(indent string) Option {
	return func(o *Options) {
		o.Indent = indent
	}
}

// WithUseNumber decodes record numbers as json.Number instead of float64.
func WithUseNumber(use bool) Option {
	return func(o *Options) {
		o.UseNumber = use
	}
}

// WithConcurrency bounds GetMany. Values below one mean one.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithLogger routes store logging to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = &logger
	}
}

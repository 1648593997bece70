// Package storage implements a key-value store that keeps every value as
// its own JSON file.
//
// A Store resolves keys to files through a paths.Resolver and performs one
// filesystem operation per call through a types.FS. Nothing is cached: each
// call observes the latest on-disk state, and concurrent writers to the same
// key race with last-writer-wins semantics.
//
// Missing records are not errors. Get yields an empty object, Has yields
// false and Remove succeeds. Malformed JSON on disk is reported as a
// CORRUPT_RECORD error rather than being silently swallowed.
//
//	fsys := filesystem.NewOS()
//	resolver, _ := paths.New("")
//	store := storage.New(fsys, resolver)
//
//	_ = store.Set("settings", map[string]any{"theme": "dark"})
//	v, _ := store.Get("settings")
package storage

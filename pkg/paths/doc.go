// Package paths resolves record keys to files on disk.
//
// A Resolver owns a root directory and maps every key to exactly one file
// beneath it:
//
//	root + "/" + escape(basename(key) without ".json" + ".json")
//
// The escaping keeps the characters encodeURIComponent keeps and turns every
// other byte into %XX, so keys may contain characters that are reserved in
// some filesystem namespaces (":" or "?" on Windows, for instance).
//
// Keys "foo" and "foo.json" therefore share a file, while "foo.data" is
// stored as "foo.data.json".
//
// # Default root
//
// When no root is configured the first provider that answers wins:
//
//   - JSONSTORE_DATA_DIR, if set
//   - $XDG_DATA_HOME/jsonstore (the per-user application data directory)
//   - a "jsonstore" directory next to the running executable
//
// # Usage
//
//	r, err := paths.New("")          // default root
//	if err != nil {
//	    return err
//	}
//	p, err := r.RecordPath("settings") // <root>/settings.json
package paths

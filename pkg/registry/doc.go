// Package registry provides a generic, thread-safe registry of named
// items. Filesystem backends are registered here under the names accepted
// by the storage.backend setting.
package registry

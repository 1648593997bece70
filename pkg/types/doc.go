// Package types defines the interfaces shared between the record store and
// its collaborators: the filesystem it reads and writes through, and the
// provider of the default root directory.
package types

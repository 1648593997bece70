// Package filesystem provides the types.FS backends the record store can
// run on: the OS filesystem, afero (in-memory or any afero.Fs) and synthfs.
package filesystem

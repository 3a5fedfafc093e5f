// Package storage is the file-storage collaborator: resumes go in as bytes,
// a reference path comes back, and the reference resolves to a serving URL.
package storage

type FileStore interface {
	// Store persists the file and returns its reference path.
	Store(data []byte, ext, category string) (string, error)
	// Resolve turns a stored reference into a retrievable URL.
	Resolve(ref string) (string, error)
	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(ref string) error
	// MaxSize is the upload size ceiling in bytes.
	MaxSize() int64
}

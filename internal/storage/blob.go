package storage

import "io"

// BlobStore keeps uploaded documents.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Path(key string) string // local path handed to text extractors
}

package storage

import "io"

// DocStore holds exported paper documents outside the database, keyed by
// relative paths like "papers/<id>.html".
type DocStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}

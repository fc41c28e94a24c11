package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains the content-store abstraction for generated
// artifacts. Two implementations exist: a local directory store (default)
// and an S3-compatible object store. Both perform whole-object writes only;
// callers must not assume a partially written object is usable.

// ErrObjectNotFound is returned by Get, Stat and Delete for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for storing objects.
// Size should be the exact number of bytes if known, -1 otherwise.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the content store holding generated artifacts, keyed by
// filename. Implementations must be safe for concurrent use.
type Storage interface {
	// Put stores an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Stat returns object info without content.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Delete removes an object. Deleting a missing key returns ErrObjectNotFound.
	Delete(ctx context.Context, key string) error
	// List returns all objects sorted by LastModified descending. Listings are
	// eventually consistent with concurrent writers and deleters: an object
	// created or removed mid-listing may or may not appear.
	List(ctx context.Context) ([]ObjectInfo, error)
}

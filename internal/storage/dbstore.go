package storage

import "context"

// DBStore implements PhotoStore for the embedded-database deployment: the
// photo is not written anywhere here, it is handed back as an inline
// reference and persisted on the profile row by the repository.
type DBStore struct{}

func NewDBStore() *DBStore {
	return &DBStore{}
}

func (s *DBStore) Save(_ context.Context, _ string, data []byte, contentType string) (PhotoRef, error) {
	return InlinePhoto(data, contentType), nil
}

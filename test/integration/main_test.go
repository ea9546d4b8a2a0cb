package integration_test

import (
	"testing"

	"patitas_backend/test/helpers"
)

// newServer starts a fresh server on the shared test database with empty
// tables and no session.
func newServer(t *testing.T) *helpers.TestServer {
	ts := helpers.NewTestServer(t)
	t.Cleanup(func() { ts.Close() })
	ts.ClearTables(t)
	return ts
}

package testsupport

import (
	"testing"

	"punini/internal/config"
	"punini/internal/library"
)

// MustOpenStore opens a library store against the test config and closes it
// when the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()
	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("open library store: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Errorf("close library store: %v", closeErr)
		}
	})
	return store
}

package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store/storetest"
)

func makeSQLiteStore(t *testing.T) store.Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "assistant.db"))
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	return s
}

func TestSQLiteStore_Compliance(t *testing.T) {
	storetest.Run(t, makeSQLiteStore)
}

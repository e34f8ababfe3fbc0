//go:build invariants
// +build invariants

package invariants

import (
	"fmt"
	"os"
	"testing"
	"time"
)

// Runs against a live deployment:
//
//	ASSISTANT_BASE_URL=http://localhost:8080 go test -tags invariants ./internal/invariants/
func liveChecker(t *testing.T) *Checker {
	t.Helper()
	baseURL := os.Getenv("ASSISTANT_BASE_URL")
	if baseURL == "" {
		t.Skip("ASSISTANT_BASE_URL not set; skipping live contract checks")
	}
	return NewChecker(baseURL)
}

func liveUser(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestLive_TurnAlternation(t *testing.T) {
	liveChecker(t).TestTurnAlternation(t, liveUser("inv-turns"), 3)
}

func TestLive_PersonalityRejection(t *testing.T) {
	liveChecker(t).TestPersonalityRejection(t, liveUser("inv-persona"))
}

func TestLive_OwnerIsolation(t *testing.T) {
	c := liveChecker(t)
	c.TestOwnerIsolation(t, liveUser("inv-owner"), liveUser("inv-other"))
}

func TestLive_ArchiveExclusion(t *testing.T) {
	liveChecker(t).TestArchiveExclusion(t, liveUser("inv-archive"))
}

package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithEnv_Levels(t *testing.T) {
	cases := []struct {
		levelStr string
		want     zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"not-a-level", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		log := newWithEnv("assistant-service", tc.levelStr, "production")
		if got := log.GetLevel(); got != tc.want {
			t.Fatalf("level %q: got %v, want %v", tc.levelStr, got, tc.want)
		}
	}
}

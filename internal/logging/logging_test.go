package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConfigure_Levels(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  log.Level
	}{
		{"default", Flags{}, log.WarnLevel},
		{"verbose", Flags{Verbose: true}, log.DebugLevel},
		{"quiet", Flags{Quiet: true}, log.ErrorLevel},
		{"quiet wins over verbose", Flags{Verbose: true, Quiet: true}, log.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLogger(&bytes.Buffer{})
			Configure(l, tt.flags)
			if got := l.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLogger_DefaultLevel(t *testing.T) {
	l := NewLogger(&bytes.Buffer{})
	if l.GetLevel() != log.WarnLevel {
		t.Errorf("default level = %v, want WarnLevel", l.GetLevel())
	}
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldMigrate(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		force bool
		want  bool
	}{
		{"debug mode migrates by default", "debug", false, true},
		{"empty mode migrates by default", "", false, true},
		{"release mode skips migration", "release", false, false},
		{"release mode with force flag migrates", "release", true, true},
		{"debug mode with force flag migrates", "debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldMigrate(tt.mode, tt.force))
		})
	}
}

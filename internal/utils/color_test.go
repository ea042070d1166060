package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHexColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "full form", input: "#6366f1", expected: "#6366f1"},
		{name: "uppercase lowered", input: "#6366F1", expected: "#6366f1"},
		{name: "shorthand expanded", input: "#abc", expected: "#aabbcc"},
		{name: "surrounding whitespace", input: "  #6366f1  ", expected: "#6366f1"},
		{name: "missing hash", input: "6366f1", wantErr: true},
		{name: "wrong length", input: "#6366f", wantErr: true},
		{name: "non-hex characters", input: "#zzzzzz", wantErr: true},
		{name: "named color", input: "blue", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeHexColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

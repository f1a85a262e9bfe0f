//go:build unit

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenEqual(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		presented string
		want      bool
	}{
		{name: "matching tokens", stored: "wh_5f3a9c", presented: "wh_5f3a9c", want: true},
		{name: "different tokens of equal length", stored: "wh_5f3a9c", presented: "wh_5f3a9d", want: false},
		{name: "different lengths", stored: "wh_5f3a9c", presented: "wh_5f", want: false},
		{name: "empty presented token", stored: "wh_5f3a9c", presented: "", want: false},
		{name: "both empty", stored: "", presented: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenEqual(tt.stored, tt.presented))
		})
	}
}

package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nairobi", "nairobi"},
		{"  Muranga   Road ", "muranga road"},
		{"Ñandú Café", "nandu cafe"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%kenyatta%", LikePattern("kenyatta"))
	assert.Equal(t, `%50\%\_off%`, LikePattern("50%_off"))
}

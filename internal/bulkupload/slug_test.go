package bulkupload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"QA Team!!", "qa-team"},
		{"qa-team", "qa-team"},
		{"  Platform / Infra  ", "platform-infra"},
		{"Café Ops", "cafe-ops"},
		{"already_snake_case", "already-snake-case"},
		{"---", ""},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

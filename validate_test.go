package vibe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vibecod3rs/vibe"
)

func TestCatalog_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		tracks []vibe.Track
		ok     bool
	}{
		{"single track", []vibe.Track{{ID: "a", Title: "A"}}, true},
		{"empty", nil, false},
		{"empty id", []vibe.Track{{Title: "A"}}, false},
		{"duplicate id", []vibe.Track{{ID: "a", Title: "A"}, {ID: "a", Title: "B"}}, false},
		{"empty title", []vibe.Track{{ID: "a"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := vibe.NewCatalog(tt.tracks).Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, vibe.ErrValidation)
		})
	}
}

func TestChatConfig_Validate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, vibe.DefaultChatConfig().Validate())
	assert.ErrorIs(t, vibe.ChatConfig{Model: "m"}.Validate(), vibe.ErrValidation)
}

package vibe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecod3rs/vibe"
)

func TestDefaultEvent(t *testing.T) {
	t.Parallel()
	e := vibe.DefaultEvent()
	assert.Equal(t, "30 Ноября", e.Date)
	assert.Equal(t, "https://t.me/vibecod3rs", e.CommunityURL)
	require.Len(t, e.Prizes, 3)
	assert.Equal(t, "Победитель", e.Prizes[2].Title)
}

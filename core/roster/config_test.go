package roster_test

import (
	"testing"

	"team-inventory/core/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestConfig_Tag(t *testing.T) {
	tag, err := roster.Config{}.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)

	tag, err = roster.Config{Locale: "sv"}.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.Swedish, tag)

	_, err = roster.Config{Locale: "not a locale!"}.Tag()
	assert.Error(t, err)
}

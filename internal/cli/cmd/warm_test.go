package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifiers(t *testing.T) {
	input := `# bookmarks
github.com

  https://go.dev/doc  
# comment
example.org
`

	ids, err := parseIdentifiers(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"github.com", "https://go.dev/doc", "example.org"}, ids)
}

func TestParseIdentifiers_Empty(t *testing.T) {
	ids, err := parseIdentifiers(strings.NewReader("\n# nothing\n"))

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"fetch", "color", "warm", "clear", "path", "config", "about"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple command", "ls", []string{"ls"}},
		{"surrounding whitespace", "  ls   -l  ", []string{"ls", "-l"}},
		{"tabs and newline", "\tls\t-l\t/tmp\n", []string{"ls", "-l", "/tmp"}},
		{"carriage return", "ls -l\r\n", []string{"ls", "-l"}},
		{"empty", "", nil},
		{"only whitespace", "   \t  \n  ", nil},
		{"quotes are literal", `echo "hello world"`, []string{"echo", `"hello`, `world"`}},
		{"escapes are literal", `echo hello\ world`, []string{"echo", `hello\`, "world"}},
		{"variables are literal", "echo $HOME", []string{"echo", "$HOME"}},
		{"pipes are literal", "ls | wc", []string{"ls", "|", "wc"}},
		{"pipes don't merge tokens", "a|b", []string{"a|b"}},
		{"dots and commas kept", "cat notes.txt a,b", []string{"cat", "notes.txt", "a,b"}},
		{"unicode whitespace", "ls\u00a0-l\u3000/tmp", []string{"ls", "-l", "/tmp"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.input))
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Run("command with arguments", func(t *testing.T) {
		cmd, err := ParseLine("  echo_test hi there ")
		require.NoError(t, err)

		assert.Equal(t, "echo_test", cmd.Name)
		assert.Equal(t, []string{"hi", "there"}, cmd.Args)
		assert.Equal(t, []string{"echo_test", "hi", "there"}, cmd.Argv())
		assert.Nil(t, cmd.Entry)
	})

	t.Run("command alone", func(t *testing.T) {
		cmd, err := ParseLine("ls")
		require.NoError(t, err)
		assert.Empty(t, cmd.Args)
		assert.Equal(t, []string{"ls"}, cmd.Argv())
	})

	for _, blank := range []string{"", " ", "\t\t", "\n"} {
		cmd, err := ParseLine(blank)
		assert.Nil(t, cmd)
		assert.Equal(t, ErrEmptyInput, err)
	}
}

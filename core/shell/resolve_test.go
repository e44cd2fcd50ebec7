package shell

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/josephlewis42/simplesh/core/pathindex"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTable indexes empty executables at the given paths, searching their
// directories in the order they first appear.
func memTable(t *testing.T, paths ...string) *pathindex.Table {
	t.Helper()

	testFs := afero.NewMemMapFs()
	seen := make(map[string]bool)
	var searchPath []string
	for _, p := range paths {
		require.NoError(t, testFs.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, afero.WriteFile(testFs, p, nil, 0755))

		if dir := filepath.Dir(p); !seen[dir] {
			seen[dir] = true
			searchPath = append(searchPath, dir)
		}
	}

	table, _, err := (&pathindex.Indexer{Fs: testFs}).Build(searchPath)
	require.NoError(t, err)
	return table
}

func TestResolve_termination(t *testing.T) {
	tables := map[string]*pathindex.Table{
		"empty":        memTable(t),
		"populated":    memTable(t, "/bin/ls", "/bin/cat"),
		"exit-on-path": memTable(t, "/bin/exit", "/bin/quit"),
	}

	for tn, table := range tables {
		t.Run(tn, func(t *testing.T) {
			for _, keyword := range []string{"exit", "quit"} {
				cmd := &ParsedCommand{Name: keyword}
				outcome, err := Resolve(table, cmd)

				assert.NoError(t, err)
				assert.Equal(t, Termination, outcome)
				assert.Nil(t, cmd.Entry)
			}
		})
	}
}

func TestResolve_keywordsAreCaseSensitive(t *testing.T) {
	table := memTable(t)
	for _, name := range []string{"EXIT", "Quit", "exit!", "exi"} {
		outcome, err := Resolve(table, &ParsedCommand{Name: name})
		assert.Equal(t, NotFound, outcome, name)
		assert.True(t, errors.Is(err, ErrCommandNotFound), name)
	}
}

func TestResolve_resolved(t *testing.T) {
	table := memTable(t, "/usr/bin/ls", "/bin/ls", "/bin/cat")

	cmd := &ParsedCommand{Name: "ls", Args: []string{"-l"}}
	outcome, err := Resolve(table, cmd)
	require.NoError(t, err)

	assert.Equal(t, Resolved, outcome)
	require.NotNil(t, cmd.Entry)
	assert.Equal(t, pathindex.Entry{Name: "ls", Path: "/usr/bin/ls"}, *cmd.Entry)
	assert.Equal(t, []string{"ls", "-l"}, cmd.Argv(), "argument 0 is the typed name")
}

func TestResolve_notFound(t *testing.T) {
	table := memTable(t, "/bin/cat")

	for _, name := range []string{"ca", "cats", "/bin/cat", "CAT"} {
		cmd := &ParsedCommand{Name: name}
		outcome, err := Resolve(table, cmd)

		assert.Equal(t, NotFound, outcome, name)
		assert.Nil(t, cmd.Entry)

		var notFound *CommandNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, name, notFound.Name)
		assert.Equal(t, name+": command not found", err.Error())
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Termination", Termination.String())
	assert.Equal(t, "Outcome(42)", Outcome(42).String())
}

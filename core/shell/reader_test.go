package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedReader(t *testing.T) {
	var prompts bytes.Buffer
	r := NewBufferedReader(strings.NewReader("ls -l\r\n\nlast"), &prompts)

	for _, want := range []string{"ls -l", "", "last"} {
		line, err := r.ReadLine("> ")
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := r.ReadLine("> ")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "> > > > ", prompts.String())
}

func TestLineGate(t *testing.T) {
	src, sink := io.Pipe()
	gate := newLineGate(src)
	defer sink.Close()

	reads := make(chan string)
	go func() {
		buf := make([]byte, 16)
		for {
			n, err := gate.Read(buf)
			if err != nil {
				close(reads)
				return
			}
			reads <- string(buf[:n])
		}
	}()

	gate.open()
	go sink.Write([]byte("ab"))
	assert.Equal(t, "ab", <-reads)
	go sink.Write([]byte("c\n"))
	assert.Equal(t, "c\n", <-reads)

	// The gate is closed after a newline, so this stays in the pipe.
	go sink.Write([]byte("child input"))
	select {
	case got := <-reads:
		t.Fatalf("read %q through a closed gate", got)
	case <-time.After(50 * time.Millisecond):
	}

	gate.open()
	assert.Equal(t, "child input", <-reads)
}

func TestLineGate_openIsIdempotent(t *testing.T) {
	gate := newLineGate(strings.NewReader("x"))
	gate.open()
	gate.open()
	assert.Len(t, gate.permits, 1)
}

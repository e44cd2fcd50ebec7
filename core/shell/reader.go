/*
Copyright © 2021 Joseph Lewis <joseph@josephlewis.net>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package shell

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
)

// ErrInterrupt is returned by a LineReader when the user interrupts the line
// they're typing.
var ErrInterrupt = errors.New("interrupt")

// LineReader reads one line of input per call after showing a prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// BufferedReader reads lines from a plain stream such as a pipe or file.
type BufferedReader struct {
	r *bufio.Reader
	w io.Writer
}

var _ LineReader = (*BufferedReader)(nil)

// NewBufferedReader reads lines from r, writing prompts to w.
func NewBufferedReader(r io.Reader, w io.Writer) *BufferedReader {
	return &BufferedReader{r: bufio.NewReader(r), w: w}
}

func (b *BufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(b.w, prompt)

	line, err := b.r.ReadString('\n')
	switch {
	case err == io.EOF && line != "":
		// Last line without a trailing newline.
	case err != nil:
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadlineReader reads lines from a terminal with line editing and history.
type ReadlineReader struct {
	instance *readline.Instance
	gate     *lineGate
}

var _ LineReader = (*ReadlineReader)(nil)

// NewReadlineReader creates a line editor on a terminal. If historyFile is
// set, lines are persisted to it.
func NewReadlineReader(stdin io.Reader, stdout, stderr io.Writer, historyFile string) (*ReadlineReader, error) {
	gate := newLineGate(stdin)

	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(gate),
		Stdout:      stdout,
		Stderr:      stderr,
		HistoryFile: historyFile,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &ReadlineReader{instance: instance, gate: gate}, nil
}

func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.gate.open()
	r.instance.SetPrompt(prompt)

	line, err := r.instance.Readline()
	if err == readline.ErrInterrupt {
		return "", ErrInterrupt
	}
	return line, err
}

// Close releases the terminal.
func (r *ReadlineReader) Close() error {
	return r.instance.Close()
}

// lineGate only lets reads through while a line is being edited so keystrokes
// meant for a child process aren't consumed by the line editor's background
// reader. It closes itself after passing through the end of a line.
type lineGate struct {
	r       io.Reader
	permits chan struct{}
}

func newLineGate(r io.Reader) *lineGate {
	return &lineGate{r: r, permits: make(chan struct{}, 1)}
}

func (g *lineGate) open() {
	select {
	case g.permits <- struct{}{}:
	default:
	}
}

func (g *lineGate) Read(p []byte) (int, error) {
	<-g.permits

	n, err := g.r.Read(p)
	if !bytes.ContainsAny(p[:n], "\r\n") {
		g.open()
	}
	return n, err
}

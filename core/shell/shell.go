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

// Package shell implements the read, resolve and dispatch loop of the
// interactive shell.
package shell

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/josephlewis42/simplesh/core/logger"
)

const (
	// DefaultPrompt is shown when no prompt is configured.
	DefaultPrompt = "Simple_shell"
	// DefaultMaxLineLength is the longest line accepted by default, in bytes.
	DefaultMaxLineLength = 4096
)

// EventRecorder stores events about the session.
type EventRecorder interface {
	Record(event logger.LogType) error
}

// Shell runs the interactive loop. Each line moves through
//
//	Idle -> ReadingLine -> Tokenizing -> Resolving
//	     -> Terminating | Dispatching | AwaitingNextInput -> Idle
//
// and Terminating is the only way out of the loop.
type Shell struct {
	State      *State
	Input      LineReader
	Dispatcher *Dispatcher

	// Stdout receives prompts and the exit summary, Stderr receives notices.
	Stdout io.Writer
	Stderr io.Writer

	// Prompt is shown before the % marker, DefaultPrompt if empty.
	Prompt string
	// MaxLineLength is the longest line accepted in bytes,
	// DefaultMaxLineLength if zero.
	MaxLineLength int
	// TruncateOverlong cuts long lines down to MaxLineLength instead of
	// rejecting them.
	TruncateOverlong bool
	// Color enables colored prompts and notices.
	Color bool

	// Events records what happened in the session, it may be nil.
	Events EventRecorder
	// Logger receives diagnostics, it may be nil.
	Logger *log.Logger
}

// Run reads and executes lines until the user terminates the shell or the
// input ends. It only returns an error if input can no longer be read.
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.Stdout)
		line, err := s.Input.ReadLine(s.prompt())

		switch {
		case err == io.EOF:
			s.terminate("EOF")
			return nil

		case errors.Is(err, ErrInterrupt):
			// Interrupt clears line.
			continue

		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		if outcome, cmd := s.Execute(line); outcome == Termination {
			s.terminate(cmd.Name)
			return nil
		}
	}
}

// Execute runs a single line of input and reports how it was handled. The
// parsed command is returned for every outcome except EmptyInput and
// Rejected.
func (s *Shell) Execute(line string) (Outcome, *ParsedCommand) {
	line, ok := s.limitLength(line)
	if !ok {
		return Rejected, nil
	}

	cmd, err := ParseLine(line)
	if err != nil {
		return EmptyInput, nil
	}

	outcome, err := Resolve(s.State.Table, cmd)
	switch outcome {
	case NotFound:
		s.notice("%v", err)
		s.record(&logger.LogEntry_UnknownCommand{
			UnknownCommand: &logger.UnknownCommand{Command: cmd.Argv()},
		})
	case Resolved:
		s.dispatch(cmd)
	}

	return outcome, cmd
}

func (s *Shell) dispatch(cmd *ParsedCommand) {
	result, err := s.Dispatcher.Dispatch(cmd)

	var spawnErr *ProcessSpawnError
	var replaceErr *ImageReplacementError
	switch {
	case errors.As(err, &spawnErr):
		s.notice("%s: %v", cmd.Name, spawnErr.Err)
		s.record(&logger.LogEntry_DispatchError{DispatchError: &logger.DispatchError{
			Command: cmd.Argv(),
			Kind:    logger.DispatchKindSpawn,
			Error:   spawnErr.Err.Error(),
		}})
		return

	case errors.As(err, &replaceErr):
		s.State.countExecuted()
		s.notice("%s: %v", cmd.Name, replaceErr)
		s.record(&logger.LogEntry_DispatchError{DispatchError: &logger.DispatchError{
			Command:    cmd.Argv(),
			Kind:       logger.DispatchKindExec,
			Error:      replaceErr.Err.Error(),
			ExitStatus: int32(replaceErr.Status),
		}})
		return

	case result == nil:
		s.notice("%s: %v", cmd.Name, err)
		return
	}

	s.State.countExecuted()
	if err != nil {
		s.logf("%s: %v", cmd.Name, err)
	}
	s.record(&logger.LogEntry_RunCommand{RunCommand: &logger.RunCommand{
		Command:             cmd.Argv(),
		ResolvedCommandPath: cmd.Entry.Path,
		ExitStatus:          int32(result.Status),
		Signaled:            result.Signaled,
	}})
}

// limitLength applies the line length policy, returning false if the line
// should be discarded.
func (s *Shell) limitLength(line string) (string, bool) {
	limit := s.MaxLineLength
	if limit <= 0 {
		limit = DefaultMaxLineLength
	}
	if len(line) <= limit {
		return line, true
	}

	if !s.TruncateOverlong {
		s.notice("line too long (%d > %d bytes)", len(line), limit)
		return "", false
	}

	// Don't split a multi-byte character.
	cut := limit
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut], true
}

func (s *Shell) terminate(keyword string) {
	fmt.Fprintf(s.Stdout, "Executed %d commands\n", s.State.Executed())
	fmt.Fprintln(s.Stdout, "Terminating successfully")
	s.record(&logger.LogEntry_Termination{Termination: &logger.Termination{
		Keyword:          keyword,
		ExecutedCommands: int32(s.State.Executed()),
	}})
}

func (s *Shell) prompt() string {
	prompt := s.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	prompt += "% "

	if s.Color {
		c := color.New(color.FgGreen, color.Bold)
		c.EnableColor()
		return c.Sprint(prompt)
	}
	return prompt
}

func (s *Shell) notice(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if s.Color {
		c := color.New(color.FgRed)
		c.EnableColor()
		msg = c.Sprint(msg)
	}
	fmt.Fprintln(s.Stderr, msg)
}

func (s *Shell) record(event logger.LogType) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Record(event); err != nil {
		s.logf("couldn't record event: %v", err)
	}
}

func (s *Shell) logf(format string, a ...interface{}) {
	l := s.Logger
	if l == nil {
		l = log.New(ioutil.Discard, "", 0)
	}
	l.Printf(format, a...)
}

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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
)

const (
	// ExitNotExecutable is the status of a child whose program was found but
	// couldn't be executed.
	ExitNotExecutable = 126
	// ExitCommandNotFound is the status of a child whose program disappeared
	// before it could be executed.
	ExitCommandNotFound = 127
)

// ProcessSpawnError is returned when the child process couldn't be created.
type ProcessSpawnError struct {
	Name string
	Err  error
}

func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("couldn't start %s: %v", e.Name, e.Err)
}

func (e *ProcessSpawnError) Unwrap() error {
	return e.Err
}

// ImageReplacementError is returned when the child was created but the
// program couldn't replace its image, for example because the file was
// removed or lost its execute bit after the table was built.
type ImageReplacementError struct {
	Path string
	// Status is the exit status the child terminated with.
	Status int
	Err    error
}

func (e *ImageReplacementError) Error() string {
	return fmt.Sprintf("%s: %v (exit status %d)", e.Path, e.Err, e.Status)
}

func (e *ImageReplacementError) Unwrap() error {
	return e.Err
}

// Result holds how a child process ended.
type Result struct {
	// Status is the exit status, or the signal number if Signaled is set.
	Status   int
	Signaled bool
}

func (r *Result) String() string {
	if r.Signaled {
		return fmt.Sprintf("signal %d", r.Status)
	}
	return fmt.Sprintf("exit status %d", r.Status)
}

// Dispatcher runs resolved commands as child processes.
type Dispatcher struct {
	// Stdin is given to the child, if nil the child reads from the null device.
	Stdin io.Reader
	// Stdout and Stderr are given to the child, if nil output is discarded.
	Stdout io.Writer
	Stderr io.Writer
	// Environ returns the child's environment, it defaults to the shell's
	// environment.
	Environ func() []string
}

// Dispatch starts the command's executable and blocks until that child exits.
//
// A *ProcessSpawnError means no child was created. A *ImageReplacementError
// means a child was created but couldn't run the program, a result holding
// the child's status is returned alongside it.
func (d *Dispatcher) Dispatch(cmd *ParsedCommand) (*Result, error) {
	if cmd.Entry == nil {
		return nil, fmt.Errorf("dispatch of unresolved command %q", cmd.Name)
	}

	environ := os.Environ
	if d.Environ != nil {
		environ = d.Environ
	}

	child := &exec.Cmd{
		Path:   cmd.Entry.Path,
		Args:   cmd.Argv(),
		Env:    environ(),
		Stdin:  d.Stdin,
		Stdout: d.Stdout,
		Stderr: d.Stderr,
	}

	if err := child.Start(); err != nil {
		startErr := classifyStartError(cmd, err)
		if replaceErr, ok := startErr.(*ImageReplacementError); ok {
			return &Result{Status: replaceErr.Status}, replaceErr
		}
		return nil, startErr
	}

	err := child.Wait()
	if child.ProcessState == nil {
		return nil, fmt.Errorf("waiting for %s: %w", cmd.Name, err)
	}
	result := resultFromState(child.ProcessState)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// The child ran, but copying its output failed.
		return result, err
	}
	return result, nil
}

// classifyStartError splits failures to start a child into those that
// happened creating the process and those that happened replacing its image.
func classifyStartError(cmd *ParsedCommand, err error) error {
	if status, ok := execFailureStatus(err); ok {
		cause := err
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			cause = pathErr.Err
		}

		return &ImageReplacementError{
			Path:   cmd.Entry.Path,
			Status: status,
			Err:    cause,
		}
	}

	return &ProcessSpawnError{Name: cmd.Name, Err: err}
}

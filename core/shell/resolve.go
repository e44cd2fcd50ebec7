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

	"github.com/josephlewis42/simplesh/core/pathindex"
)

// Outcome is the result of resolving a line of input.
type Outcome int

const (
	// EmptyInput means the line held no command.
	EmptyInput Outcome = iota
	// Termination means the user asked the shell to exit.
	Termination
	// Resolved means the command was found in the table.
	Resolved
	// NotFound means the command isn't a keyword or in the table.
	NotFound
	// Rejected means the line was discarded before it was tokenized.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case EmptyInput:
		return "EmptyInput"
	case Termination:
		return "Termination"
	case Resolved:
		return "Resolved"
	case NotFound:
		return "NotFound"
	case Rejected:
		return "Rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

var terminationKeywords = map[string]bool{
	"exit": true,
	"quit": true,
}

// IsTerminationKeyword reports whether name ends the shell. Matching is
// case-sensitive.
func IsTerminationKeyword(name string) bool {
	return terminationKeywords[name]
}

// ErrCommandNotFound matches every CommandNotFoundError.
var ErrCommandNotFound = errors.New("command not found")

// CommandNotFoundError is returned when a name isn't on the search path.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, ErrCommandNotFound)
}

func (e *CommandNotFoundError) Is(target error) bool {
	return target == ErrCommandNotFound
}

// Resolve looks the command up by exact name. Termination keywords are
// checked first so an executable named exit can't shadow them. On success
// cmd.Entry is set.
func Resolve(table *pathindex.Table, cmd *ParsedCommand) (Outcome, error) {
	if IsTerminationKeyword(cmd.Name) {
		return Termination, nil
	}

	entry, ok := table.Lookup(cmd.Name)
	if !ok {
		return NotFound, &CommandNotFoundError{Name: cmd.Name}
	}

	cmd.Entry = &entry
	return Resolved, nil
}

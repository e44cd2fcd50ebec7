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
	"strings"
	"unicode"

	"github.com/josephlewis42/simplesh/core/pathindex"
)

// ErrEmptyInput is returned for lines that contain nothing but whitespace.
var ErrEmptyInput = errors.New("empty input")

// Tokenize splits a line into whitespace separated words.
//
// Words are taken literally: there is no quoting, escaping or expansion, and
// operator characters like | are ordinary characters.
func Tokenize(line string) []string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)

	var tokens []string
	for _, unit := range strings.FieldsFunc(line, unicode.IsSpace) {
		if unit = strings.TrimSpace(unit); unit != "" {
			tokens = append(tokens, unit)
		}
	}
	return tokens
}

// ParsedCommand is a single line of input split into a command and its
// arguments. It's owned by the loop iteration that parsed it.
type ParsedCommand struct {
	// Name is the command as typed.
	Name string
	// Args holds the arguments following the name.
	Args []string
	// Entry is set once the command resolves to an executable.
	Entry *pathindex.Entry
}

// ParseLine tokenizes line, returning ErrEmptyInput if there's no command.
func ParseLine(line string) (*ParsedCommand, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	return &ParsedCommand{
		Name: tokens[0],
		Args: tokens[1:],
	}, nil
}

// Argv returns the argument vector for the command, argument 0 is the name
// as typed.
func (c *ParsedCommand) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

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

import "github.com/josephlewis42/simplesh/core/pathindex"

// State is everything the shell keeps between lines of input.
//
// SearchPath and Table are fixed when the state is created.
type State struct {
	SearchPath []string
	Table      *pathindex.Table

	executed int
}

// NewState bundles the search path and the table built from it.
func NewState(searchPath []string, table *pathindex.Table) *State {
	return &State{
		SearchPath: searchPath,
		Table:      table,
	}
}

// Executed returns the number of commands a child process was created for.
func (s *State) Executed() int {
	return s.executed
}

func (s *State) countExecuted() {
	s.executed++
}

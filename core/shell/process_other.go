//go:build !unix

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
	"io/fs"
	"os"
)

func execFailureStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ExitCommandNotFound, true
	case errors.Is(err, fs.ErrPermission):
		return ExitNotExecutable, true
	default:
		return 0, false
	}
}

func resultFromState(state *os.ProcessState) *Result {
	return &Result{Status: state.ExitCode()}
}

//go:build unix

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
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// execFailureStatus maps errors execve can return to the status a shell
// reports for them. Anything else is a failure to create the process.
func execFailureStatus(err error) (int, bool) {
	for _, errno := range []error{unix.ENOENT, unix.ENOTDIR, unix.ELOOP, unix.ENAMETOOLONG} {
		if errors.Is(err, errno) {
			return ExitCommandNotFound, true
		}
	}

	for _, errno := range []error{unix.EACCES, unix.EPERM, unix.ENOEXEC, unix.ETXTBSY, unix.EISDIR, unix.E2BIG} {
		if errors.Is(err, errno) {
			return ExitNotExecutable, true
		}
	}

	return 0, false
}

func resultFromState(state *os.ProcessState) *Result {
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return &Result{Status: int(status.Signal()), Signaled: true}
	}
	return &Result{Status: state.ExitCode()}
}

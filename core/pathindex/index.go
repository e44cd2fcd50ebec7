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

// Package pathindex builds the table of commands available on a search path.
//
// Directories are scanned once, in search path order. When two directories
// hold an executable with the same name the one in the earlier directory wins
// and the later one is recorded as shadowed, the same order a POSIX shell
// uses when it walks PATH.
package pathindex

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ownerExecute is the owner execute permission bit (S_IXUSR).
const ownerExecute fs.FileMode = 0100

// ErrTableFull is returned when more commands are found than the indexer is
// allowed to hold.
var ErrTableFull = errors.New("command table is full")

// ScanError is reported for a search path directory that couldn't be read.
// It's never fatal, the directory is skipped.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("skipping %q: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// SplitSearchPath splits a PATH style list into its directories, dropping
// empty elements.
func SplitSearchPath(value string) []string {
	var out []string
	for _, dir := range filepath.SplitList(value) {
		if dir == "" {
			continue
		}
		out = append(out, dir)
	}
	return out
}

// Indexer scans search path directories for executables.
type Indexer struct {
	// Fs is the filesystem to scan.
	Fs afero.Fs
	// MaxEntries limits the size of the table, zero means no limit.
	MaxEntries int
}

// NewIndexer creates an unlimited indexer over the OS filesystem.
func NewIndexer() *Indexer {
	return &Indexer{Fs: afero.NewOsFs()}
}

// Build scans every directory in searchPath and returns the resulting table
// along with the directories that were skipped.
//
// The only error returned is ErrTableFull.
func (idx *Indexer) Build(searchPath []string) (*Table, []*ScanError, error) {
	table := newTable()
	var skipped []*ScanError

	for _, dir := range searchPath {
		infos, err := afero.ReadDir(idx.Fs, dir)
		if err != nil {
			skipped = append(skipped, &ScanError{Dir: dir, Err: err})
			continue
		}

		for _, info := range infos {
			if !isFileOrLink(info.Mode()) {
				continue
			}

			candidate := filepath.Join(dir, info.Name())
			if !idx.isExecutable(candidate) {
				continue
			}

			entry := Entry{Name: info.Name(), Path: candidate}
			if _, taken := table.Lookup(entry.Name); !taken && idx.MaxEntries > 0 && table.Len() >= idx.MaxEntries {
				return nil, skipped, fmt.Errorf("%w: limit of %d reached at %q", ErrTableFull, idx.MaxEntries, candidate)
			}
			table.add(entry)
		}
	}

	return table, skipped, nil
}

func isFileOrLink(mode fs.FileMode) bool {
	return mode.IsRegular() || mode&fs.ModeSymlink != 0
}

// isExecutable checks the target of path, following links, is a
// non-directory with the owner execute bit set.
func (idx *Indexer) isExecutable(path string) bool {
	info, err := idx.Fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode().Perm()&ownerExecute != 0
}

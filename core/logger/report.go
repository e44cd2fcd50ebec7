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

package logger

import (
	"encoding/json"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var rawEntry json.RawMessage
		if err := decoder.Decode(&rawEntry); err != nil {
			return err
		}

		var logEntry LogEntry
		if err := protojson.Unmarshal(rawEntry, &logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       StrCounter `json:"sessions"`
	InvalidEntries int        `json:"invalid_entries,omitempty"`

	RunCommand     RunCommandReport     `json:"run_command_report"`
	UnknownCommand UnknownCommandReport `json:"unknown_command_report"`
	DispatchError  DispatchErrorReport  `json:"dispatch_error_report"`
	ScanError      ScanErrorReport      `json:"scan_error_report"`
	Termination    TerminationReport    `json:"termination_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	if le.GetSessionId() != "" {
		r.Sessions.Increment(le.GetSessionId())
	}

	switch event := le.GetLogType().(type) {
	case *LogEntry_RunCommand:
		r.RunCommand.update(event.RunCommand)
	case *LogEntry_UnknownCommand:
		r.UnknownCommand.update(event.UnknownCommand)
	case *LogEntry_DispatchError:
		r.DispatchError.update(event.DispatchError)
	case *LogEntry_ScanError:
		r.ScanError.update(event.ScanError)
	case *LogEntry_Termination:
		r.Termination.update(event.Termination)
	default:
		r.InvalidEntries++
	}
}

type RunCommandReport struct {
	// Name of the resolved command
	ResolvedCommandPaths StrCounter `json:"resolved_command_paths"`
	// Name of the command as typed
	CommandNames StrCounter `json:"command_names"`
	// Exit statuses, signaled processes are prefixed with "signal "
	ExitStatuses StrCounter `json:"exit_statuses"`
}

func (r *RunCommandReport) update(rc *RunCommand) {
	r.ResolvedCommandPaths.Increment(rc.ResolvedCommandPath)
	if len(rc.Command) > 0 {
		r.CommandNames.Increment(rc.Command[0])
	}
	if rc.Signaled {
		r.ExitStatuses.Increment(fmt.Sprintf("signal %d", rc.ExitStatus))
	} else {
		r.ExitStatuses.Increment(fmt.Sprintf("%d", rc.ExitStatus))
	}
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
}

func (r *UnknownCommandReport) update(logEntry *UnknownCommand) {
	if len(logEntry.Command) > 0 {
		r.CommandNames.Increment(logEntry.Command[0])
	}
}

type DispatchErrorReport struct {
	Kinds        StrCounter `json:"kinds"`
	CommandNames StrCounter `json:"command_names"`
}

func (r *DispatchErrorReport) update(logEntry *DispatchError) {
	r.Kinds.Increment(logEntry.Kind)
	if len(logEntry.Command) > 0 {
		r.CommandNames.Increment(logEntry.Command[0])
	}
}

type ScanErrorReport struct {
	Dirs StrCounter `json:"dirs"`
}

func (r *ScanErrorReport) update(logEntry *ScanError) {
	r.Dirs.Increment(logEntry.Dir)
}

type TerminationReport struct {
	Keywords         StrCounter `json:"keywords"`
	ExecutedCommands int        `json:"executed_commands"`
}

func (r *TerminationReport) update(logEntry *Termination) {
	r.Keywords.Increment(logEntry.Keyword)
	r.ExecutedCommands += int(logEntry.GetExecutedCommands())
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// Len returns the number of distinct keys seen.
func (s *StrCounter) Len() int {
	return len(s.internal)
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

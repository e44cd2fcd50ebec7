package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func fixedTime() time.Time {
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestJsonLinesLogRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewJsonLinesLogRecorder(buf)
	logger.Now = fixedTime

	session := logger.Sessionless()
	require.NoError(t, session.Record(&LogEntry_UnknownCommand{
		UnknownCommand: &UnknownCommand{Command: []string{"nope", "-x"}},
	}))

	require.True(t, strings.HasSuffix(buf.String(), "}\n"), "one entry per line")
	assert.JSONEq(t,
		`{"timestampMicros":"1136171045000000","unknownCommand":{"command":["nope","-x"]}}`,
		buf.String())
}

func TestReadJSONLinesLog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewJsonLinesLogRecorder(buf)
	logger.Now = fixedTime
	session := logger.NewSession()

	events := []LogType{
		&LogEntry_ScanError{ScanError: &ScanError{Dir: "/missing", Error: "not found"}},
		&LogEntry_RunCommand{RunCommand: &RunCommand{Command: []string{"ls", "-l"}, ResolvedCommandPath: "/bin/ls"}},
		&LogEntry_RunCommand{RunCommand: &RunCommand{Command: []string{"false"}, ResolvedCommandPath: "/bin/false", ExitStatus: 1}},
		&LogEntry_RunCommand{RunCommand: &RunCommand{Command: []string{"sleep", "9"}, ResolvedCommandPath: "/bin/sleep", ExitStatus: 9, Signaled: true}},
		&LogEntry_UnknownCommand{UnknownCommand: &UnknownCommand{Command: []string{"nope"}}},
		&LogEntry_DispatchError{DispatchError: &DispatchError{Command: []string{"gone"}, Kind: DispatchKindExec, Error: "no such file", ExitStatus: 127}},
		&LogEntry_Termination{Termination: &Termination{Keyword: "quit", ExecutedCommands: 4}},
	}
	for _, event := range events {
		require.NoError(t, session.Record(event))
	}

	var entries []*LogEntry
	require.NoError(t, ReadJSONLinesLog(buf, func(le *LogEntry) {
		entries = append(entries, le)
	}))

	require.Len(t, entries, len(events))
	for i, le := range entries {
		want := &LogEntry{
			TimestampMicros: fixedTime().UnixNano() / int64(time.Microsecond),
			SessionId:       session.SessionID(),
			LogType:         events[i],
		}
		assert.True(t, proto.Equal(want, le), "entry %d: got %v", i, le)
	}
}

func TestReadJSONLinesLog_invalid(t *testing.T) {
	err := ReadJSONLinesLog(strings.NewReader("{not json"), func(*LogEntry) {})
	assert.Error(t, err)

	err = ReadJSONLinesLog(strings.NewReader(`{"noSuchField":1}`), func(*LogEntry) {})
	assert.Error(t, err, "unknown fields are rejected")
}

func TestReport(t *testing.T) {
	var report Report
	for _, le := range []*LogEntry{
		{SessionId: "a", LogType: &LogEntry_RunCommand{RunCommand: &RunCommand{Command: []string{"ls"}, ResolvedCommandPath: "/bin/ls"}}},
		{SessionId: "a", LogType: &LogEntry_RunCommand{RunCommand: &RunCommand{Command: []string{"ls", "/"}, ResolvedCommandPath: "/bin/ls", ExitStatus: 2}}},
		{SessionId: "a", LogType: &LogEntry_RunCommand{RunCommand: &RunCommand{Command: []string{"yes"}, ResolvedCommandPath: "/bin/yes", ExitStatus: 15, Signaled: true}}},
		{SessionId: "a", LogType: &LogEntry_UnknownCommand{UnknownCommand: &UnknownCommand{Command: []string{"nope"}}}},
		{SessionId: "a", LogType: &LogEntry_DispatchError{DispatchError: &DispatchError{Command: []string{"gone"}, Kind: DispatchKindExec}}},
		{SessionId: "a", LogType: &LogEntry_Termination{Termination: &Termination{Keyword: "exit", ExecutedCommands: 4}}},
		{SessionId: "b", LogType: &LogEntry_ScanError{ScanError: &ScanError{Dir: "/missing"}}},
		{SessionId: "b", LogType: &LogEntry_Termination{Termination: &Termination{Keyword: "quit", ExecutedCommands: 1}}},
		{},
	} {
		report.Update(le)
	}

	assert.Equal(t, 9, report.LogEntries)
	assert.Equal(t, 1, report.InvalidEntries)
	assert.Equal(t, 2, report.Sessions.Len())
	assert.Equal(t, 2, report.RunCommand.CommandNames.Count("ls"))
	assert.Equal(t, 2, report.RunCommand.ResolvedCommandPaths.Count("/bin/ls"))
	assert.Equal(t, 1, report.RunCommand.ExitStatuses.Count("0"))
	assert.Equal(t, 1, report.RunCommand.ExitStatuses.Count("2"))
	assert.Equal(t, 1, report.RunCommand.ExitStatuses.Count("signal 15"))
	assert.Equal(t, 1, report.UnknownCommand.CommandNames.Count("nope"))
	assert.Equal(t, 1, report.DispatchError.Kinds.Count(DispatchKindExec))
	assert.Equal(t, 1, report.ScanError.Dirs.Count("/missing"))
	assert.Equal(t, 5, report.Termination.ExecutedCommands)
	assert.Equal(t, 1, report.Termination.Keywords.Count("quit"))
}

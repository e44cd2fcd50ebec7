// Package logger is a standardized event logging framework for the shell.
//
// Events are written as newline delimited JSON so sessions can be audited
// and summarized after the fact with the events report command.
package logger

//go:generate protoc --go_out=. --go_opt=paths=source_relative log.proto
//go:generate protoc --go-json_out=paths=source_relative:. log.proto

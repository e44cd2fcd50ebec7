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

// Values of DispatchError.Kind.
const (
	DispatchKindSpawn = "spawn"
	DispatchKindExec  = "exec"
)

// LogType is implemented by the wrapper of every event that can be recorded,
// for example *LogEntry_RunCommand.
type LogType = isLogEntry_LogType

// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fern

// SetDebugChecks toggles post-parse structural assertions and returns a
// function that restores the previous setting.
func SetDebugChecks(on bool) (restore func()) {
	prev := debugChecks
	debugChecks = on
	return func() { debugChecks = prev }
}

// ValidateBlockStructure exposes the brace invariant checker to tests
// that build trees by hand.
var ValidateBlockStructure = validateBlockStructure

// ReparseFastPaths returns how many incremental reparses have succeeded
// since process start.
func ReparseFastPaths() int64 { return reparseFastPaths.Load() }

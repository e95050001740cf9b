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

// Package fern is a lossless, error-tolerant syntax tree library for the
// Fern language, built to back interactive tooling.
//
// Three properties hold unconditionally:
//
//  1. No byte of input is ever lost: the tree's text reproduces the source
//     exactly, whitespace, comments, and malformed fragments included.
//  2. Parsing never fails: however broken the input, [Parse] returns a
//     [File], with syntax errors recorded as diagnostics beside the tree.
//  3. Edits never mutate: [File.Reparse] returns a new File sharing every
//     untouched subtree with the old one, which stays valid.
//
// Reparse reflects a single edit incrementally when it can prove the fast
// path safe, and silently falls back to a full reparse when it cannot;
// callers observe only the resulting File.
package fern

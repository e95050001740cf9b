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

// Package syntax implements Fern's lossless syntax tree.
//
// The tree comes in two layers. The green layer ([GreenNode]) is an
// immutable, position-free value: a composite node knows only its kind and
// its ordered children, a leaf knows its kind and its exact source text.
// Because green nodes store no absolute offsets and no parent links, any
// subtree can be shared by reference between arbitrarily many tree
// versions, which is what makes incremental reparsing cheap.
//
// The red layer ([Node]) is an ephemeral, position-aware view computed on
// demand from a tree root and a path into it. It exposes kinds, absolute
// spans, text, and parent/sibling/child navigation. Red nodes are plain
// values; constructing one allocates nothing beyond its path.
//
// Trees are built through [Builder], the tree-construction contract driven
// by the grammar: a balanced sequence of StartNode/Token/FinishNode calls,
// with Error recording diagnostics along the way.
package syntax

//go:generate go run ../internal/enum kind.go.yaml

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

// enum generates boilerplate for Go enums from a yaml description.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/fernlang/fern/internal/enum foo.go.yaml
//
// The yaml file describes a single enum: its name, underlying type, doc
// comment, values, and the membership-test methods to derive from each
// value's set tags. The output is written next to the config with the
// .yaml suffix stripped.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

type Enum struct {
	Name    string   `yaml:"name"` // The name of the new type.
	Type    string   `yaml:"type"` // The underlying type.
	Docs    string   `yaml:"docs"` // Documentation for the type.
	Methods []Method `yaml:"methods"`
	Values  []Value  `yaml:"values"`
}

type Value struct {
	Name string   `yaml:"name"` // The name of the value.
	Doc  string   `yaml:"doc"`  // Documentation for the value.
	Sets []string `yaml:"sets"` // Membership sets this value belongs to.
}

// Display returns the value's String() representation: its name with the
// enum's own name stripped off the front.
func (v Value) Display(e Enum) string {
	return strings.TrimPrefix(v.Name, e.Name)
}

type Method struct {
	Name string `yaml:"name"` // The method's name.
	Doc  string `yaml:"doc"`  // Documentation for the method.
	Set  string `yaml:"set"`  // The set the method tests membership of.
}

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts data into doc comments.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// members returns the names of the enum values tagged with set.
func members(e Enum, set string) []string {
	var names []string
	for _, v := range e.Values {
		if slices.Contains(v.Sets, set) {
			names = append(names, v.Name)
		}
	}
	return names
}

func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	var input struct {
		Package, Path, Config string
		YAML                  Enum
	}
	input.Package = os.Getenv("GOPACKAGE")
	input.Config = filepath.Base(config)
	input.Path = strings.TrimSuffix(config, ".yaml")

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(text, &input.YAML); err != nil {
		return err
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"members":  members,
		"join":     strings.Join,
	}).Parse(tmplText)
	if err != nil {
		return err
	}

	out, err := os.Create(input.Path)
	if err != nil {
		return err
	}
	defer out.Close()
	return tmpl.ExecuteTemplate(out, "enum.go.tmpl", input)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

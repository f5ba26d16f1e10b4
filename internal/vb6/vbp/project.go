// Package vbp parses `.vbp` project manifest files: VB6's line-oriented
// key=value format listing a project's modules, forms, classes, type
// library references, and build settings (spec §6, ".vbp": "line-oriented
// key=value project manifest"). Unlike the other four file kinds, `.vbp`
// carries no code section and is never handed to the token lexer or
// parser — it is read line-by-line, the same key=value idiom
// `internal/vb6/formheader`'s property lines use, grounded on the same
// source.
package vbp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
)

// Project is a parsed `.vbp` file. VB6's repeated keys (Module=, Class=,
// Form=, UserControl=, Designer=, RelatedDoc=, Reference=, Object=) collect
// into slices in file order; every other singular key (Name, Title, Type,
// ExeName32, Startup, Command32, ...) lands in Properties; any
// `[SectionName]` block VB6 appends for add-in or MTS settings lands in
// Sections.
type Project struct {
	Modules      []ModuleRef
	Classes      []ModuleRef
	Forms        []string
	UserControls []string
	Designers    []string
	RelatedDocs  []string
	References   []Reference
	Objects      []Reference
	Properties   map[string]string
	Sections     map[string]map[string]string
}

func newProject() *Project {
	return &Project{
		Properties: make(map[string]string),
		Sections:   make(map[string]map[string]string),
	}
}

// Get returns the raw Properties value for key and whether it was present.
func (p *Project) Get(key string) (string, bool) {
	v, ok := p.Properties[key]
	return v, ok
}

// GetDefault returns the raw Properties value for key, or def if key is
// absent.
func (p *Project) GetDefault(key, def string) string {
	if v, ok := p.Properties[key]; ok {
		return v
	}
	return def
}

// Parse reads a `.vbp` file's bytes into a Project, plus a diagnostic for
// every line that isn't blank, a `[Section]` header, or a `Key=Value`
// pair.
func Parse(fileName string, src []byte) (*Project, []diag.Diagnostic) {
	proj := newProject()
	var diags []diag.Diagnostic
	section := ""

	pos := 0
	for pos <= len(src) {
		lineStart := pos
		nl := bytes.IndexByte(src[pos:], '\n')
		var lineBytes []byte
		if nl < 0 {
			if pos == len(src) {
				break
			}
			lineBytes = src[pos:]
			pos = len(src) + 1
		} else {
			lineBytes = src[pos : pos+nl]
			pos += nl + 1
		}

		line := strings.TrimRight(string(lineBytes), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
			if _, ok := proj.Sections[section]; !ok {
				proj.Sections[section] = make(map[string]string)
			}
			continue
		}

		key, value, ok := splitKeyValue(trimmed)
		if !ok {
			diags = append(diags, diag.New(diag.MalformedPropertyLine, fileName, src, lineStart,
				fmt.Sprintf("malformed .vbp line %q", trimmed)))
			continue
		}
		value = unquote(value)

		if section != "" {
			proj.Sections[section][key] = value
			continue
		}
		proj.applyKey(key, value)
	}

	return proj, diags
}

// applyKey routes one General-section key=value pair: VB6's repeated keys
// into their slices, everything else into Properties.
func (p *Project) applyKey(key, value string) {
	switch key {
	case "Module":
		p.Modules = append(p.Modules, parseModuleRef(value))
	case "Class":
		p.Classes = append(p.Classes, parseModuleRef(value))
	case "Form":
		p.Forms = append(p.Forms, value)
	case "UserControl":
		p.UserControls = append(p.UserControls, value)
	case "Designer":
		p.Designers = append(p.Designers, value)
	case "RelatedDoc":
		p.RelatedDocs = append(p.RelatedDocs, value)
	case "Reference":
		p.References = append(p.References, parseReference(value))
	case "Object":
		p.Objects = append(p.Objects, parseObjectRef(value))
	default:
		p.Properties[key] = value
	}
}

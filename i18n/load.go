// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

import (
	"encoding/json"
	"errors"
	"io/fs"
	"path"
	"strings"

	"cogentcore.org/material/grr"
	"gopkg.in/yaml.v3"
)

// File is the content of a translation file, in JSON:
//
//	{"language": "en-US", "strings": {"ok": "OK"}}
//
// or the same shape in YAML.
type File struct {
	Language string            `json:"language" yaml:"language"`
	Strings  map[string]string `json:"strings" yaml:"strings"`
}

// ParseFile decodes a translation file, choosing JSON or YAML from the
// extension of name (.json, .yaml or .yml).
func ParseFile(name string, data []byte) (*File, error) {
	f := &File{}
	var err error
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		err = json.Unmarshal(data, f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, f)
	default:
		return nil, &grr.ParseError{Kind: "translation file extension", Input: name}
	}
	if err != nil {
		return nil, &grr.ParseError{Kind: "translation file", Input: name, Err: err}
	}
	if f.Language == "" {
		return nil, &grr.ParseError{Kind: "translation file", Input: name, Err: errors.New("missing language")}
	}
	return f, nil
}

// Load adds every translation file in fsys matching the glob pattern.
// Files that fail to parse are skipped; their errors are joined into
// the returned error. It returns the number of files loaded.
func (l *Localizer) Load(fsys fs.FS, pattern string) (int, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return 0, err
	}
	n := 0
	var errs []error
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		f, err := ParseFile(name, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		l.Add(f.Language, f.Strings)
		n++
	}
	return n, errors.Join(errs...)
}

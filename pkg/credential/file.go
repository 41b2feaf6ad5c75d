package credential

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileHeader is the license comment block written verbatim before the
// YAML body of every generated credential file.
const FileHeader = `# SPDX-FileCopyrightText: Copyright 2022-2024 EDF (Électricité de France S.A.)
# SPDX-License-Identifier: BSD-3-Clause
# See README for all details on copyright, authorship and license.
`

// File is a credential record together with the path it was read from.
type File struct {
	Path   string
	Record *Record
}

// Load reads and parses a single credential file.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &r, nil
}

// LoadDir loads every *.yaml file in dir, in lexical filename order.
func LoadDir(dir string) ([]File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	files := make([]File, 0, len(paths))
	for _, path := range paths {
		r, err := Load(path)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: path, Record: r})
	}
	return files, nil
}

// Save writes the record as <audience>.yaml under dir, header block
// first, overwriting any existing file. It returns the written path.
func (r *Record) Save(dir string) (string, error) {
	body, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", r.Audience, err)
	}
	path := filepath.Join(dir, r.Audience+".yaml")
	data := append([]byte(FileHeader), body...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

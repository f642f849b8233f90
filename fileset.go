// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import (
	"fmt"
	"os"
)

// FileSet is a list of documents to obtain configuration from in descending
// order of precedence.
type FileSet []*Document

// ParseFiles parses the files at the given paths and returns a FileSet. If
// the returned error is nil, the set's length equals the number of
// arguments. ParseFiles stops on the first I/O error, but ignores missing
// file errors, instead filling the corresponding element of the set with a
// nil *Document. Rejected lines land in each document's own error log.
func ParseFiles(opts *ParseOptions, paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %w", err)
		}
		parsed, err := Parse(f, opts)
		f.Close() // Close errors irrelevant.
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %s: %w", p, err)
		}
		fset = append(fset, parsed)
	}
	return fset, nil
}

// Get returns the value associated with the given section and key from the
// first document in the set that has it. Passing an empty section name
// searches the properties outside any section.
func (fset FileSet) Get(section, key string) (string, bool) {
	for _, d := range fset {
		if v, ok := d.Get(section, key); ok {
			return v, true
		}
	}
	return "", false
}

// Errors returns the rejected lines of every document in the set, in set
// order. Nil elements contribute nothing.
func (fset FileSet) Errors() []string {
	var errs []string
	for _, d := range fset {
		errs = append(errs, d.Errors()...)
	}
	return errs
}

// Merge collapses the set into a single document. Sections and keys keep
// their first-seen insertion order and earlier documents take precedence: a
// key already present in the merged document is never overwritten by a
// later document. The merged error logs are available via Errors on the
// result, concatenated in set order.
func (fset FileSet) Merge() *Document {
	merged := new(Document)
	for _, d := range fset {
		if d == nil {
			continue
		}
		for _, sec := range d.sections {
			m := merged.ensureSection(sec.name)
			for _, p := range sec.props {
				if _, ok := m.Get(p.key); !ok {
					m.props = append(m.props, p)
				}
			}
		}
		merged.errs = append(merged.errs, d.errs...)
	}
	return merged
}

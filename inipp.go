// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// A Document is an ordered collection of sections plus a log of input lines
// that failed to parse. The zero value is an empty document.
//
// A document is owned by its caller: Parse, DefaultSection, and Interpolate
// all mutate it in place and none of them are safe to invoke concurrently
// on the same document without external synchronization. The read accessors
// tolerate a nil receiver.
type Document struct {
	sections []*Section
	errs     []string
}

// A Section is a named, ordered collection of key-value pairs. Keys are
// unique within a section. The zero value is an empty section named by the
// empty string.
type Section struct {
	name  string
	props []property
}

type property struct {
	key   string
	value string
}

// NewSection returns an empty section with the given name. The name only
// matters for sections stored in a document; sections passed to
// Document.DefaultSection may use any name.
func NewSection(name string) *Section {
	return &Section{name: name}
}

// ParseOptions holds optional parameters for Parse. Nil options are treated
// identically as passing the zero value.
type ParseOptions struct {
	// IsComment reports whether a line whose first rune is c is a comment.
	// If nil, only lines starting with ';' are comments.
	IsComment func(c rune) bool

	// NormalizeSection is called on each section name to apply text
	// transformations. This can be used to make names case-insensitive,
	// for instance. If nil, no transformations are made.
	NormalizeSection func(name string) string

	// NormalizeKey is called on each key to apply text transformations.
	// Normalization happens before duplicate detection. If nil, no
	// transformations are made.
	NormalizeKey func(section, key string) string
}

func (opts *ParseOptions) isComment(c rune) bool {
	if opts != nil && opts.IsComment != nil {
		return opts.IsComment(c)
	}
	return defaultIsComment(c)
}

// Parse parses an INI document. Malformed lines do not stop the parse: they
// are recorded in the document's error log, available via Errors. The
// returned error reflects only a failure to read from r.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader, opts *ParseOptions) (*Document, error) {
	d := new(Document)
	err := d.Parse(r, opts)
	return d, err
}

// ParseString is like Parse but reads from a string.
func ParseString(s string, opts *ParseOptions) (*Document, error) {
	return Parse(strings.NewReader(s), opts)
}

// Parse reads INI text from r into d. Existing sections are merged into:
// a section header naming a known section continues inserting into it, and
// keys already present win over newly read duplicates. The current-section
// state is local to this call and starts at the unnamed section.
func (d *Document) Parse(r io.Reader, opts *ParseOptions) error {
	s := bufio.NewScanner(r)
	var curr *Section
	for s.Scan() {
		line := trimSpace(s.Text())
		if line == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		switch {
		case opts.isComment(first):
			// No entry, no error.
		case first == '[':
			if !strings.HasSuffix(line, "]") {
				d.errs = append(d.errs, line)
				continue
			}
			name := line[1 : len(line)-1]
			if opts != nil && opts.NormalizeSection != nil {
				name = opts.NormalizeSection(name)
			}
			curr = d.ensureSection(name)
		default:
			i := strings.IndexByte(line, '=')
			if i <= 0 {
				d.errs = append(d.errs, line)
				continue
			}
			key := trimRightSpace(line[:i])
			value := trimLeftSpace(line[i+1:])
			if curr == nil {
				curr = d.ensureSection("")
			}
			if opts != nil && opts.NormalizeKey != nil {
				key = opts.NormalizeKey(curr.name, key)
			}
			if _, ok := curr.Get(key); ok {
				d.errs = append(d.errs, line)
				continue
			}
			curr.props = append(curr.props, property{key: key, value: value})
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("parse ini: %w", err)
	}
	return nil
}

func (d *Document) ensureSection(name string) *Section {
	for _, sec := range d.sections {
		if sec.name == name {
			return sec
		}
	}
	sec := &Section{name: name}
	d.sections = append(d.sections, sec)
	return sec
}

// Get returns the value associated with key in the named section. Passing
// an empty section name searches the properties outside any section.
func (d *Document) Get(section, key string) (string, bool) {
	return d.Section(section).Get(key)
}

// Section returns the named section, or nil if the document has no section
// with that name. The returned section is shared with the document:
// mutating it mutates the document.
func (d *Document) Section(name string) *Section {
	if d == nil {
		return nil
	}
	for _, sec := range d.sections {
		if sec.name == name {
			return sec
		}
	}
	return nil
}

// Sections returns the document's sections in insertion order.
func (d *Document) Sections() []*Section {
	if d == nil {
		return nil
	}
	return append([]*Section(nil), d.sections...)
}

// SectionNames returns the section names in insertion order.
func (d *Document) SectionNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.sections))
	for _, sec := range d.sections {
		names = append(names, sec.name)
	}
	return names
}

// Errors returns the input lines rejected by Parse, trimmed of surrounding
// whitespace, in input order.
func (d *Document) Errors() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.errs...)
}

// Set sets key to value in the named section, creating the section at the
// end of the document if it does not exist. Unlike parsing, Set overwrites
// an existing value.
func (d *Document) Set(section, key, value string) {
	d.ensureSection(section).Set(key, value)
}

// DefaultSection inserts each pair of defaults, in order, into every
// section of the document that does not already have the pair's key.
// Existing values are never overwritten and no section is created.
func (d *Document) DefaultSection(defaults *Section) {
	if d == nil || defaults == nil {
		return
	}
	for _, sec := range d.sections {
		for _, p := range defaults.props {
			if _, ok := sec.Get(p.key); !ok {
				sec.props = append(sec.props, p)
			}
		}
	}
}

// Clear resets d to an empty document with an empty error log.
func (d *Document) Clear() {
	d.sections = nil
	d.errs = nil
}

// Name returns the section's name.
func (s *Section) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Get returns the value associated with key.
func (s *Section) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, p := range s.props {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Set sets key to value, overwriting an existing value or appending a new
// pair in insertion order.
func (s *Section) Set(key, value string) {
	for i := range s.props {
		if s.props[i].key == key {
			s.props[i].value = value
			return
		}
	}
	s.props = append(s.props, property{key: key, value: value})
}

// Keys returns the section's keys in insertion order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.props))
	for _, p := range s.props {
		keys = append(keys, p.key)
	}
	return keys
}

// Len returns the number of key-value pairs in the section.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

// maxInterpolationDepth caps the number of global substitution passes, which
// bounds chains of references and circular references alike.
const maxInterpolationDepth = 10

// A symbol is a (pattern, replacement) pair applied transiently during
// interpolation.
type symbol struct {
	pattern     string
	replacement string
}

// Interpolate resolves ${key} and ${section:key} references in every value
// of the document, in place.
//
// First, within each section, every literal occurrence of ${key} naming a
// key of that section is rewritten to ${section:key}; a bare reference
// never resolves against another section. Then the document is repeatedly
// rewritten: each pass builds the table of ${section:key} patterns mapped
// to the values as they currently stand (in section insertion order, then
// key insertion order) and applies each entry to every value as a literal
// substring replacement. Passes repeat until nothing changes or a fixed cap
// is reached.
//
// Because replacement is textual rather than token-exact, a pattern can
// match inside unrelated text that happens to contain it, and a replacement
// string that itself contains a pattern may be rewritten by a later symbol
// in the same pass. Circular references are not detected; once the pass cap
// is reached, whatever placeholders remain are left in the values
// literally. Interpolate never fails.
func (d *Document) Interpolate() {
	if d == nil {
		return
	}
	for _, sec := range d.sections {
		replaceSymbols(sec.localSymbols(), sec)
	}
	for depth := 0; depth < maxInterpolationDepth; depth++ {
		syms := d.globalSymbols()
		changed := false
		for _, sec := range d.sections {
			if replaceSymbols(syms, sec) {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func localPattern(key string) string {
	return "${" + key + "}"
}

func globalPattern(section, key string) string {
	return "${" + section + ":" + key + "}"
}

// localSymbols maps each bare ${key} of the section to its
// section-qualified ${name:key} form.
func (s *Section) localSymbols() []symbol {
	syms := make([]symbol, 0, len(s.props))
	for _, p := range s.props {
		syms = append(syms, symbol{
			pattern:     localPattern(p.key),
			replacement: globalPattern(s.name, p.key),
		})
	}
	return syms
}

// globalSymbols maps every ${section:key} in the document to its current
// value, in section insertion order, then key insertion order.
func (d *Document) globalSymbols() []symbol {
	var syms []symbol
	for _, sec := range d.sections {
		for _, p := range sec.props {
			syms = append(syms, symbol{
				pattern:     globalPattern(sec.name, p.key),
				replacement: p.value,
			})
		}
	}
	return syms
}

func replaceSymbols(syms []symbol, sec *Section) bool {
	changed := false
	for _, sym := range syms {
		for i := range sec.props {
			if v, ok := replaceAll(sec.props[i].value, sym.pattern, sym.replacement); ok {
				sec.props[i].value = v
				changed = true
			}
		}
	}
	return changed
}

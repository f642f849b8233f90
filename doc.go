// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

/*
Package inipp provides a parser, interpolator, and serializer for INI-style
configuration text.

Parsing is best effort: lines that cannot be classified are collected into
the document's error log instead of aborting the parse, so a corrupt input
always yields a partial document plus the list of offending lines.

Syntax

An INI file consists of zero or more properties. A property is a key and
value written on a single line, separated by an equals sign ('='):

	key=value

Whitespace at the beginning and end of a line, after a key, and before a
value is ignored. The whitespace set is fixed to the C locale's (space,
tab, newline, vertical tab, form feed, carriage return) regardless of the
process environment, so parsing is deterministic. A key may not be empty.
The first occurrence of a key within a section wins; a later line defining
the same key is rejected into the error log and the existing value is kept.

Properties may be grouped into sections. A section is started by writing
its name in square brackets ('[' and ']') on its own line:

	[section]
	key1=value1
	key2=value2

Properties encountered before a section header belong to the section named
by the empty string, as do properties under an explicit "[]" header.
Writing a section header a second time continues inserting into the
existing section. A header missing its closing bracket is rejected into the
error log and leaves the current section unchanged.

If the first non-whitespace character of a line is a semicolon (';'), the
line is a comment and produces neither a property nor an error. The
comment marker set can be customized through ParseOptions.IsComment, for
example with CommentChars(";'") to also accept Visual Basic style
comments. Inline comments are not supported.

Interpolation

Values may reference other values with ${key} (a key in the same section)
or ${section:key} (a key anywhere in the document). Document.Interpolate
expands such references in place by repeated textual substitution until the
document stops changing or a fixed iteration cap is reached. Unresolvable
and circular references are left in the text literally; interpolation never
fails. See Document.Interpolate for the exact substitution rules.
*/
package inipp

// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import "bytes"

// MarshalText serializes the document in INI format: for each section in
// insertion order, a [name] header line (the unnamed section is written as
// "[]"), one key=value line per pair in insertion order, and a blank line
// after the section's block.
//
// No escaping is performed. Values that contain structurally significant
// characters (newlines, '=' in keys, a leading '[') will not survive a
// serialize/re-parse round trip.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	var buf []byte
	for _, sec := range d.sections {
		buf = append(buf, '[')
		buf = append(buf, sec.name...)
		buf = append(buf, "]\n"...)
		for _, p := range sec.props {
			buf = append(buf, p.key...)
			buf = append(buf, '=')
			buf = append(buf, p.value...)
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')
	}
	return buf, nil
}

// UnmarshalText parses the INI data with default options, replacing the
// document's sections and error log. Rejected lines are recorded in the
// error log rather than returned as an error.
func (d *Document) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data), nil)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// String returns the document in INI text form.
func (d *Document) String() string {
	text, _ := d.MarshalText()
	return string(text)
}

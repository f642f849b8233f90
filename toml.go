// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// MarshalTOML renders the document as TOML. Named sections become tables
// and properties outside any section are emitted at the top level, both in
// the encoder's sorted key order. All values are emitted as strings; use
// Decode for typed access.
func (d *Document) MarshalTOML() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	data := make(map[string]any)
	for _, sec := range d.sections {
		if sec.name == "" {
			for _, p := range sec.props {
				data[p.key] = p.value
			}
			continue
		}
		t := make(map[string]string, len(sec.props))
		for _, p := range sec.props {
			t[p.key] = p.value
		}
		data[sec.name] = t
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("marshal toml: %w", err)
	}
	return buf.Bytes(), nil
}

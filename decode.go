// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Decode decodes the named section into target, which must be a non-nil
// pointer to a struct. Fields are matched by the "ini" tag, falling back to
// a case-insensitive match on the field name. Decoding is weakly typed:
// "8080" fills an int field, "true" a bool, "30s" a time.Duration, and
// comma-separated values fill a slice. Decoding a section that does not
// exist leaves target unchanged.
func (d *Document) Decode(section string, target any) error {
	m := make(map[string]any)
	if sec := d.Section(section); sec != nil {
		for _, p := range sec.props {
			m[p.key] = p.value
		}
	}
	return decodeMap(m, target)
}

// DecodeAll decodes the whole document into target. Named sections match
// struct fields of target; properties outside any section match target's
// top-level fields directly.
func (d *Document) DecodeAll(target any) error {
	m := make(map[string]any)
	if d != nil {
		for _, sec := range d.sections {
			if sec.name == "" {
				for _, p := range sec.props {
					m[p.key] = p.value
				}
				continue
			}
			sm := make(map[string]any, len(sec.props))
			for _, p := range sec.props {
				sm[p.key] = p.value
			}
			m[sec.name] = sm
		}
	}
	return decodeMap(m, target)
}

func decodeMap(m map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "ini",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decode ini: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("decode ini: %w", err)
	}
	return nil
}

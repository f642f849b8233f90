// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   map[string]map[string]string
	}{
		{
			name:   "CrossSection",
			source: "[default]\nip=127.0.0.1\n[net]\naddress=${default:ip}:80\n",
			want: map[string]map[string]string{
				"default": {"ip": "127.0.0.1"},
				"net":     {"address": "127.0.0.1:80"},
			},
		},
		{
			name:   "LocalReference",
			source: "[s]\na=1\nb=${a}\n",
			want: map[string]map[string]string{
				"s": {"a": "1", "b": "1"},
			},
		},
		{
			name:   "LocalReferenceInGlobalSection",
			source: "x=1\ny=${x}2\n",
			want: map[string]map[string]string{
				"": {"x": "1", "y": "12"},
			},
		},
		{
			name:   "LocalReferenceIsSectionScoped",
			source: "[a]\nx=1\n[b]\ny=${x}\n",
			want: map[string]map[string]string{
				"a": {"x": "1"},
				"b": {"y": "${x}"},
			},
		},
		{
			name:   "MultipleOccurrences",
			source: "[a]\nb=7\n[c]\nd=${a:b}${a:b}\n",
			want: map[string]map[string]string{
				"a": {"b": "7"},
				"c": {"d": "77"},
			},
		},
		{
			name:   "UnknownReferenceKept",
			source: "[s]\na=${nope:x}\n",
			want: map[string]map[string]string{
				"s": {"a": "${nope:x}"},
			},
		},
		{
			name:   "ReplacementTextRewrittenInSamePass",
			source: "[a]\nx=${b:y}!\n[b]\ny=VAL\n",
			want: map[string]map[string]string{
				"a": {"x": "VAL!"},
				"b": {"y": "VAL"},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := ParseString(test.source, nil)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			d.Interpolate()
			if diff := cmp.Diff(test.want, contents(d), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("sections (-want +got):\n%s", diff)
			}
		})
	}
}

// A chain of sections each referencing the previous one resolves to the
// terminal literal, and a second Interpolate call finds nothing to change.
func TestInterpolateChainStabilizes(t *testing.T) {
	d := new(Document)
	d.Set("s1", "v", "end")
	for i := 2; i <= 15; i++ {
		d.Set(fmt.Sprintf("s%d", i), "v", fmt.Sprintf("${s%d:v}", i-1))
	}
	d.Interpolate()
	before := contents(d)
	d.Interpolate()
	if diff := cmp.Diff(before, contents(d)); diff != "" {
		t.Errorf("second Interpolate changed the document (-first +second):\n%s", diff)
	}
	if v, _ := d.Get("s15", "v"); v != "end" {
		t.Errorf("s15.v = %q; want %q", v, "end")
	}
}

// Circular references are bounded by the pass cap; the placeholders remain
// in the text and no error is raised.
func TestInterpolateCircular(t *testing.T) {
	d := new(Document)
	d.Set("a", "x", "${b:y}")
	d.Set("b", "y", "${a:x}")
	d.Interpolate()
	ax, _ := d.Get("a", "x")
	by, _ := d.Get("b", "y")
	if !strings.Contains(ax, "${") {
		t.Errorf("a.x = %q; want an unresolved placeholder", ax)
	}
	if !strings.Contains(by, "${") {
		t.Errorf("b.y = %q; want an unresolved placeholder", by)
	}
}

// Interpolation happens after parsing, so values added programmatically and
// by DefaultSection participate like parsed ones.
func TestInterpolateAfterDefaults(t *testing.T) {
	d, err := ParseString("[net]\naddress=${host}:${port}\nhost=example.com\n", nil)
	if err != nil {
		t.Fatal("Parse:", err)
	}
	defaults := NewSection("")
	defaults.Set("port", "8080")
	d.DefaultSection(defaults)
	d.Interpolate()
	if v, _ := d.Get("net", "address"); v != "example.com:8080" {
		t.Errorf("net.address = %q; want %q", v, "example.com:8080")
	}
}

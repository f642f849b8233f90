// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.ini", "[net]\nport=9999\n")
	system := writeFile(t, dir, "system.ini", "[net]\nport=80\nhost=example.com\nbroken line\n")
	missing := filepath.Join(dir, "does-not-exist.ini")

	fset, err := ParseFiles(nil, user, missing, system)
	if err != nil {
		t.Fatal("ParseFiles:", err)
	}
	if len(fset) != 3 {
		t.Fatalf("len(fset) = %d; want 3", len(fset))
	}
	if fset[1] != nil {
		t.Error("missing file should yield a nil document")
	}

	// First file wins.
	if v, ok := fset.Get("net", "port"); !ok || v != "9999" {
		t.Errorf("Get(net, port) = %q, %t; want %q, true", v, ok, "9999")
	}
	// Fall through to later files for keys the first lacks.
	if v, ok := fset.Get("net", "host"); !ok || v != "example.com" {
		t.Errorf("Get(net, host) = %q, %t; want %q, true", v, ok, "example.com")
	}
	if _, ok := fset.Get("net", "nope"); ok {
		t.Error("Get(net, nope) reported ok")
	}
	if diff := cmp.Diff([]string{"broken line"}, fset.Errors()); diff != "" {
		t.Errorf("Errors (-want +got):\n%s", diff)
	}
}

func TestFileSetMerge(t *testing.T) {
	d1, err := ParseString("[net]\nport=9999\n", nil)
	if err != nil {
		t.Fatal("Parse:", err)
	}
	d2, err := ParseString("[net]\nport=80\nhost=example.com\n[extra]\na=1\n", nil)
	if err != nil {
		t.Fatal("Parse:", err)
	}
	merged := FileSet{d1, nil, d2}.Merge()
	want := map[string]map[string]string{
		"net":   {"port": "9999", "host": "example.com"},
		"extra": {"a": "1"},
	}
	if diff := cmp.Diff(want, contents(merged), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("merged sections (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"net", "extra"}, merged.SectionNames()); diff != "" {
		t.Errorf("section order (-want +got):\n%s", diff)
	}
}

func TestEnvSection(t *testing.T) {
	t.Setenv("INIPPTEST_PORT", "8080")
	t.Setenv("INIPPTEST_HOST", "localhost")
	t.Setenv("OTHER_IGNORED", "x")

	sec := EnvSection("INIPPTEST_")
	if diff := cmp.Diff([]string{"host", "port"}, sec.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v, ok := sec.Get("port"); !ok || v != "8080" {
		t.Errorf("Get(port) = %q, %t; want %q, true", v, ok, "8080")
	}

	d, err := ParseString("[server]\nhost=example.com\n", nil)
	if err != nil {
		t.Fatal("Parse:", err)
	}
	d.DefaultSection(sec)
	if v, _ := d.Get("server", "host"); v != "example.com" {
		t.Errorf("host = %q; want file value to win", v)
	}
	if v, _ := d.Get("server", "port"); v != "8080" {
		t.Errorf("port = %q; want environment default", v)
	}
}

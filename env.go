// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import (
	"os"
	"sort"
	"strings"
)

// EnvSection builds a section from the environment variables whose names
// start with prefix. The prefix is stripped and the remainder of the name
// is lowercased, so with prefix "APP_" the variable APP_PORT=8080 yields
// the pair port=8080. Variables are inserted in sorted name order for
// deterministic serialization. The result is meant to be passed to
// Document.DefaultSection to layer environment defaults under file
// configuration.
func EnvSection(prefix string) *Section {
	environ := os.Environ()
	sort.Strings(environ)
	sec := new(Section)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, prefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(k, prefix))
		if name == "" {
			continue
		}
		sec.Set(name, v)
	}
	return sec
}

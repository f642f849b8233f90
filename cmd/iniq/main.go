// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

// iniq parses an INI file and prints a value, a section, or the whole
// document.
//
// Usage:
//
//	iniq [flags] FILE [SECTION [KEY]]
//
// With FILE alone, the parsed document is printed in the format selected by
// -format. With SECTION, that section's key=value pairs are printed. With
// SECTION and KEY, the single value is printed. Rejected input lines are
// logged as warnings and do not stop processing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/CyberDNIWE/inipp"
	"zombiezen.com/go/log"
)

func main() {
	defaultsPath := flag.String("defaults", "", "INI file whose global properties are merged into every section as defaults")
	interpolate := flag.Bool("interpolate", false, "resolve ${key} and ${section:key} references before printing")
	format := flag.String("format", "ini", "output format for whole-document dumps (ini or toml)")
	comments := flag.String("comments", ";", "characters that start a comment line")
	flag.Parse()

	ctx := context.Background()
	if err := run(ctx, flag.Args(), *defaultsPath, *interpolate, *format, *comments); err != nil {
		log.Errorf(ctx, "iniq: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, defaultsPath string, interpolate bool, format, comments string) error {
	if len(args) < 1 || len(args) > 3 {
		return errors.New("usage: iniq [flags] FILE [SECTION [KEY]]")
	}
	opts := &inipp.ParseOptions{IsComment: inipp.CommentChars(comments)}
	doc, err := parseFile(args[0], opts)
	if err != nil {
		return err
	}
	for _, line := range doc.Errors() {
		log.Warnf(ctx, "%s: rejected line: %s", args[0], line)
	}
	if defaultsPath != "" {
		defaults, err := parseFile(defaultsPath, opts)
		if err != nil {
			return err
		}
		for _, line := range defaults.Errors() {
			log.Warnf(ctx, "%s: rejected line: %s", defaultsPath, line)
		}
		if sec := defaults.Section(""); sec != nil {
			doc.DefaultSection(sec)
		}
	}
	if interpolate {
		doc.Interpolate()
	}

	switch len(args) {
	case 3:
		v, ok := doc.Get(args[1], args[2])
		if !ok {
			return fmt.Errorf("%s: no key %q in section %q", args[0], args[2], args[1])
		}
		fmt.Println(v)
	case 2:
		sec := doc.Section(args[1])
		if sec == nil {
			return fmt.Errorf("%s: no section %q", args[0], args[1])
		}
		for _, k := range sec.Keys() {
			v, _ := sec.Get(k)
			fmt.Printf("%s=%s\n", k, v)
		}
	default:
		var out []byte
		var err error
		switch format {
		case "ini":
			out, err = doc.MarshalText()
		case "toml":
			out, err = doc.MarshalTOML()
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return err
		}
		os.Stdout.Write(out)
	}
	return nil
}

func parseFile(path string, opts *inipp.ParseOptions) (*inipp.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return inipp.Parse(f, opts)
}

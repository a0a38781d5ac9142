// Copyright (C) 2025 hashdiese. All Rights Reserved.

// Program json-fixer reads almost-JSON text and writes repaired JSON.
// It is a thin wrapper over the jsonfixer library.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	jsonfixer "github.com/hashdiese/json-fixer"
)

var cli struct {
	Input   string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Pretty  bool   `help:"Indent output over multiple lines." short:"p"`
	Indent  int    `help:"Spaces per indent level." default:"4"`
	Space   bool   `help:"Insert a space after each ':' and ','." short:"s"`
	Sort    bool   `help:"Render object keys in sorted order."`
	MaxLine int    `help:"Warn when an output line exceeds this many characters."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("json-fixer"),
		kong.Description("Repair almost-JSON text and print valid JSON."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	input, err := readInput()
	if err != nil {
		return err
	}

	cfg := jsonfixer.Config{
		Pretty:        cli.Pretty,
		IndentSize:    cli.Indent,
		SpaceBetween:  cli.Space,
		SortKeys:      cli.Sort,
		MaxLineLength: cli.MaxLine,
	}
	out, err := jsonfixer.FixWithConfig(input, cfg)
	if err != nil {
		return err
	}

	// Formatting checks are advisory; report them without failing.
	for _, ferr := range jsonfixer.ValidateFormat(out, cfg) {
		fmt.Fprintln(os.Stderr, "warning:", ferr)
	}

	if cli.Output == "" {
		_, err := fmt.Println(out)
		return err
	}
	return os.WriteFile(cli.Output, []byte(out+"\n"), 0o644)
}

func readInput() (string, error) {
	if cli.Input == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(cli.Input)
	return string(data), err
}

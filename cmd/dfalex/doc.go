/*
Command dfalex is a command line front end for table-driven scanners.

	dfalex scan [source]       scan a source to completion and list its tokens
	dfalex repl [source]       step through a source interactively
	dfalex tables              show statistics of the active tables, or export them
	dfalex verify [source…]    cross-check the active tables with a reference lexer

Without further configuration the embedded tables of the default C-like language
are used. Flags --scan, --token and --keyword replace single tables by table
files. Configuration may also be given by a JSON file (--config) or by
environment variables, e.g. DFALEX_TABLES_SCAN=my/scan.csv.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dfalex.cli'
func tracer() tracing.Trace {
	return tracing.Select("dfalex.cli")
}

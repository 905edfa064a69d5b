/*
Package dfalex is a table-driven scanner toolbox.

DFALex tokenizes source text one token at a time, driven by a deterministic
finite automaton which is loaded at runtime from plain delimited text files.
Changing the scanning grammar therefore does not require re-building a program.
Package structure is as follows:

■ tables: Package tables loads, validates and exports the three tables driving
a scanner: the transition table, the token table and the keyword set.

■ scanner: Package scanner implements the scanning engine (DFA loop with
maximal munch and one-character pushback) and the scanning session.

■ deflang: Package deflang embeds a default set of tables for a C-like language.

■ tokenizer: Package tokenizer wraps a scanner into a token stream, applying
caller-side filtering policies.

■ lexmach: Package lexmach provides a lexmachine-based reference lexer to
cross-check hand-edited tables.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dfalex

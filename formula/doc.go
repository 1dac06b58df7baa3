// Package formula defines the opaque propositional-formula type the rest of
// this module operates on, plus a reference tokenizer/parser for the
// concrete syntax described below.
//
// The core kernel-extraction and search packages never inspect a Formula's
// internal structure — they pass it, verbatim, to an oracle.Oracle. Parsing
// exists only so the bundled reference oracle (oracle.Subprocess) has a
// concrete AST to hand to the Tseitin encoder in package tseitin; callers
// that supply their own oracle.Oracle never need this package at all.
//
// Grammar:
//
//	atom       := [A-Za-z_][A-Za-z0-9_]*
//	const      := "+" | "-"               // true | false
//	unary      := "!" factor
//	factor     := atom | const | "(" expr ")" | unary
//	and        := factor ( "&&" factor )*
//	or         := and ( "||" and )*
//	xor        := or ( "^^" or )*
//	implies    := xor ( "=>" implies )?    // right-associative
//	expr       := implies ( "<=>" implies )*
//
// Whitespace is insignificant. One formula per line in file input.
package formula

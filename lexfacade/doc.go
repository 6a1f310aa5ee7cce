/*
Package lexfacade adapts external lexers to the minimal contract package
parser depends on: reset, advance, symbol, lexeme, position, full. The
lexer's internal DFA — literal-vs-regex token classification, Unicode
handling, and so on — is out of scope here, exactly as it is out of scope
for the parser driver itself; this package only ever forwards to an
already-built lexer.

Two façades are provided: GoScanner, backed by the standard library's
text/scanner (grounded on lr/scanner/scanner.go), and the lexmach
subpackage, backed by github.com/timtadh/lexmachine (grounded on
lr/scanner/lexmach/lexmachine.go).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package lexfacade

/*
Package stack implements the parser's frame stack: an ordered sequence of
ParserNode frames, each carrying a state, the symbol that led into it, its
lexeme, and its computed semantic value.

The stack is generic over the semantic-value type V so that hosts can plug
in whatever "UserData" representation their grammar's actions produce — a
plain interface{}, a tagged union, or (as in cmd/lalrepl) a float64.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package stack

/*
Package calcenv is a small variable environment for the calculator demo
grammar's `ident = expr` assignment rule: a tree of scopes, each holding a
symbol table of variable bindings, so semantic actions can resolve and
define names while a parse is running.

It plays the same structural role as a compiler's static-scope analysis —
scopes pushed and popped in lockstep with a block structure, names resolved
outward through parent scopes when not found locally — but the tags it
stores are live numeric values produced by reductions, not compile-time
type information.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package calcenv

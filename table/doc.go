/*
Package table is a read-only view of a compiled LALR(1) grammar: states,
transitions, symbols and productions. It is consumed, never produced, by
package parser — table construction lives in package grammar, which plays
the role of the external table-compiler (`lalrc`) named in the design this
repo follows.

A StateMachine is assumed immutable for the lifetime of any parser built
over it; multiple parsers may share one StateMachine concurrently, each
with its own stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package table

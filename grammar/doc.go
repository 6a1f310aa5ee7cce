/*
Package grammar is a small grammar builder and SLR(1) table compiler: it
plays the role of the external `lalrc` tool the core runtime (package
parser) depends on but never links against. Given a set of rules built
with Builder, Compile runs the classic closure/goto-set construction
(Fisher & LeBlanc, "Crafting a Compiler", §6.2.1) over the grammar's LR(0)
item sets and emits a table.StateMachine — augmenting the caller's start
symbol internally so package parser's acceptance shortcut (reduction to
the augmenting symbol implies "stack is exactly [sentinel, final_frame]")
holds by construction.

This is deliberately not a general-purpose, conflict-resolving LALR(1)
compiler: Compile reports shift/reduce and reduce/reduce conflicts as
errors rather than resolving them via precedence declarations. It is
sized to build conflict-free tables for straightforward grammars (the
demo calculator, the parser package's hand-built test fixtures do not
use it and build table.StateMachine values directly, but cmd/lalrepl
does).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package grammar

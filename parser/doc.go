/*
Package parser is the shift/reduce driver: the table-driven LALR(1) parser
runtime itself. Given a table.StateMachine and a stream of tokens produced
by a Lexer, it runs the shift/reduce algorithm, dispatches semantic actions
on reduction (package action), synthesizes a value for the accepted start
symbol, and performs Yacc-style error recovery using the state machine's
designated error symbol.

Package parser never constructs or mutates a table.StateMachine — table
construction is package grammar's job, analogous to the external `lalrc`
tool. It never advances or resets a Lexer on its own behalf either, beyond
what Parse's drive loop needs; Lexer implementations live in package
lexfacade.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package parser

/*
Package errpolicy is the structured sink the driver reports through: a
replacement for the source's variadic printf-style error/debug formatting
(Design Notes, point 3).

Two implementations are provided: Default, which logs through
github.com/npillmayer/schuko/tracing the way the rest of this module's
packages do, and Pretty, which additionally renders notifications through
github.com/pterm/pterm for interactive use (see cmd/lalrepl).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package errpolicy

/*
Package action binds semantic-action callbacks to productions by identifier
and dispatches them on reduction.

Per Design Notes, the parallel (action-descriptor, callback) array the
source used is collapsed here to a single slice indexed by action index
holding only the callback slot, plus an identifier→index map built once at
construction — avoiding the O(#actions) linear `strcmp` scan per
set_handler call while preserving its observable "first/unique match,
silent no-op on unknown identifier" policy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package action

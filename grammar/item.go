package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// dotShift bounds the longest RHS any rule may have: items are packed as
// rule*dotShift+dot so they fit gods' int-keyed treeset.Set without a
// bespoke comparator. 64 symbols on one production's right-hand side is
// far beyond anything a hand-written demo grammar needs.
const dotShift = 64

func itemKey(rule, dot int) int { return rule*dotShift + dot }

func decodeItem(key int) (rule, dot int) { return key / dotShift, key % dotShift }

func newItemSet() *treeset.Set { return treeset.NewWith(utils.IntComparator) }

// symbolAfterDot returns the RHS symbol immediately following the item's
// dot, or -1 if the dot is at the end (the item is "complete").
func symbolAfterDot(rules []Rule, key int) int {
	rule, dot := decodeItem(key)
	rhs := rules[rule].RHS
	if dot >= len(rhs) {
		return -1
	}
	return rhs[dot]
}

// closure computes the closure of an LR(0) item set (Fisher & LeBlanc
// §6.2.1): repeatedly add, for every item with a nonterminal A right
// after the dot, every A-rule's initial item (dot at position 0).
func closure(rules []Rule, kernel *treeset.Set) *treeset.Set {
	C := newItemSet()
	C.Add(kernel.Values()...)
	worklist := append([]interface{}{}, kernel.Values()...)
	for len(worklist) > 0 {
		key := worklist[0].(int)
		worklist = worklist[1:]
		A := symbolAfterDot(rules, key)
		if A < 0 {
			continue
		}
		for ruleIdx, r := range rules {
			if r.LHS != A {
				continue
			}
			newItem := itemKey(ruleIdx, 0)
			if !C.Contains(newItem) {
				C.Add(newItem)
				worklist = append(worklist, newItem)
			}
		}
	}
	return C
}

// gotoSet advances every item in C whose dot sits right before symbol A,
// returning the (not yet closed) kernel of the resulting state.
func gotoSet(rules []Rule, C *treeset.Set, A int) *treeset.Set {
	next := newItemSet()
	for _, v := range C.Values() {
		key := v.(int)
		if symbolAfterDot(rules, key) == A {
			rule, dot := decodeItem(key)
			next.Add(itemKey(rule, dot+1))
		}
	}
	return next
}

// sameItems reports whether two item sets contain exactly the same items,
// used to dedupe CFSM states during construction.
func sameItems(a, b *treeset.Set) bool {
	if a.Size() != b.Size() {
		return false
	}
	for _, v := range a.Values() {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}

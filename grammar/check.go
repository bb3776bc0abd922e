package grammar

import (
	"github.com/ava12/httplint/internal/ints"
)

// Check verifies the graphs of given rules and freezes every reachable rule.
// It reports unbound forward placeholders and left recursion (a cycle that
// can be reentered without consuming input). On error nothing is frozen.
func Check(rules ...*Rule) error {
	byID := make(map[int]*Rule)
	order := collect(rules, byID)
	if len(order) == 0 {
		return nil
	}

	var unbound []string
	for _, id := range order {
		r := byID[id]
		if r.kind == ForwardRule && r.target == nil {
			unbound = append(unbound, r.String())
		}
	}
	if len(unbound) > 0 {
		return unboundError(unbound)
	}

	nullable := findNullable(order, byID)
	recursive := findRecursions(order, byID, nullable)
	if !recursive.IsEmpty() {
		names := make([]string, 0, recursive.Len())
		for _, id := range recursive.ToSlice() {
			names = append(names, byID[id].String())
		}
		return recursionError(names)
	}

	for _, id := range order {
		r := byID[id]
		r.nullable = nullable.Contains(id)
		r.frozen = true
	}
	return nil
}

// MustCheck is Check that panics on error. Grammars call it during initialization,
// so malformed grammars fail at process startup.
func MustCheck(rules ...*Rule) {
	if e := Check(rules...); e != nil {
		panic(e)
	}
}

func children(r *Rule) []*Rule {
	if r.kind == ForwardRule {
		if r.target == nil {
			return nil
		}
		return []*Rule{r.target}
	}
	return r.items
}

// collect returns ids of reachable rules that are not frozen yet, in breadth-first order.
func collect(rules []*Rule, byID map[int]*Rule) []int {
	var order []int
	q := ints.NewQueue()
	for _, r := range rules {
		if r != nil && !r.frozen && byID[r.id] == nil {
			byID[r.id] = r
			q.Append(r.id)
		}
	}

	for !q.IsEmpty() {
		id := q.First()
		order = append(order, id)
		for _, c := range children(byID[id]) {
			if !c.frozen && byID[c.id] == nil {
				byID[c.id] = c
				q.Append(c.id)
			}
		}
	}
	return order
}

func knownNullable(r *Rule, nullable *ints.Set) bool {
	return nullable.Contains(r.id) || (r.frozen && r.nullable)
}

func isNullable(r *Rule, nullable *ints.Set) bool {
	if r.frozen {
		return r.nullable
	}

	switch r.kind {
	case EmptyRule, MaybeRule:
		return true
	case LiteralRule:
		return r.text == ""
	case RangeRule:
		return false
	case SeqRule:
		for _, item := range r.items {
			if !knownNullable(item, nullable) {
				return false
			}
		}
		return true
	case RepeatRule:
		if r.min == 0 {
			return true
		}
	}

	for _, c := range children(r) {
		if knownNullable(c, nullable) {
			return true
		}
	}
	return false
}

func findNullable(order []int, byID map[int]*Rule) *ints.Set {
	nullable := ints.NewSet()
	for changed := true; changed; {
		changed = false
		for _, id := range order {
			if !nullable.Contains(id) && isNullable(byID[id], nullable) {
				nullable.Add(id)
				changed = true
			}
		}
	}
	return nullable
}

// leftItems returns sub-rules that may be applied at the position where r is applied.
func leftItems(r *Rule, nullable *ints.Set) []*Rule {
	if r.kind != SeqRule {
		return children(r)
	}

	for i, item := range r.items {
		if !knownNullable(item, nullable) {
			return r.items[:i+1]
		}
	}
	return r.items
}

func findRecursions(order []int, byID map[int]*Rule, nullable *ints.Set) *ints.Set {
	result := ints.NewSet()
	done := ints.NewSet()
	active := ints.NewSet()
	var stack []int

	var visit func(id int)
	visit = func(id int) {
		active.Add(id)
		stack = append(stack, id)
		for _, c := range leftItems(byID[id], nullable) {
			if c.frozen {
				continue
			}
			if active.Contains(c.id) {
				for i := len(stack) - 1; i >= 0; i-- {
					result.Add(stack[i])
					if stack[i] == c.id {
						break
					}
				}
			} else if !done.Contains(c.id) {
				visit(c.id)
			}
		}
		stack = stack[:len(stack)-1]
		active.Remove(id)
		done.Add(id)
	}

	for _, id := range order {
		if !done.Contains(id) {
			visit(id)
		}
	}
	return result
}

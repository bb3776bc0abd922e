package grammar

import (
	"strings"

	"github.com/ava12/httplint"
)

// Error codes of malformed grammars:
const (
	// forward placeholder was never bound
	UnboundError = httplint.GrammarErrors + iota
	// rule can reenter itself without consuming input
	RecursionError
	// attempt to modify a rule after Check
	FrozenError
	// forward placeholder bound twice
	ReboundError
	// Bind called for a rule that is not a forward placeholder
	NotForwardError
	// nil sub-rule or function
	NilItemError
	// incorrect repetition counts
	BoundsError
	// module declares the same name twice
	DuplicateNameError
)

func unboundError(names []string) *httplint.Error {
	return httplint.FormatError(UnboundError, "unbound forward rules: %s", strings.Join(names, ", "))
}

func recursionError(names []string) *httplint.Error {
	return httplint.FormatError(RecursionError, "found left-recursive rules: %s", strings.Join(names, ", "))
}

func frozenError(r *Rule) *httplint.Error {
	return httplint.FormatError(FrozenError, "cannot modify frozen rule %s", r)
}

func reboundError(r *Rule) *httplint.Error {
	return httplint.FormatError(ReboundError, "forward rule %s is already bound", r)
}

func notForwardError(r *Rule) *httplint.Error {
	return httplint.FormatError(NotForwardError, "cannot bind %s rule %s", r.kind, r)
}

func nilItemError(k Kind) *httplint.Error {
	return httplint.FormatError(NilItemError, "nil item for %s rule", k)
}

func boundsError(min, max int) *httplint.Error {
	return httplint.FormatError(BoundsError, "incorrect repetition bounds: %d..%d", min, max)
}

func duplicateNameError(module, name string) *httplint.Error {
	return httplint.FormatError(DuplicateNameError, "rule %q already declared in %s", name, module)
}

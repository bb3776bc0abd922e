package grammar

// Forward creates a placeholder for a rule that is defined later,
// e.g. for a rule that refers to itself.
// The placeholder must be bound exactly once before Check.
func Forward(name string) *Rule {
	r := newRule(ForwardRule)
	r.name = name
	return r
}

// Bind binds a forward placeholder to its definition and returns the placeholder.
// Binding a placeholder twice or binding a frozen rule panics.
func (r *Rule) Bind(definition *Rule) *Rule {
	if r.kind != ForwardRule {
		panic(notForwardError(r))
	}
	if definition == nil {
		panic(nilItemError(ForwardRule))
	}
	r.checkMutable()
	if r.target != nil {
		panic(reboundError(r))
	}

	r.target = definition
	return r
}

// Ref creates a placeholder already bound to target.
// It lets the same rule be declared under another name with its own metadata.
func Ref(target *Rule) *Rule {
	r := newRule(ForwardRule)
	return r.Bind(target)
}

package grammar

// Empty matches empty string, the value is nil.
func Empty() *Rule {
	return newRule(EmptyRule)
}

// Literal matches text case-insensitively, the value is the matched text.
func Literal(text string) *Rule {
	r := newRule(LiteralRule)
	r.text = text
	r.caseless = true
	return r
}

// Exact matches text case-sensitively.
func Exact(text string) *Rule {
	r := newRule(LiteralRule)
	r.text = text
	return r
}

// Octet matches a single byte.
func Octet(b byte) *Rule {
	return Range(b, b)
}

// Range matches a single byte in lo..hi (inclusive).
func Range(lo, hi byte) *Rule {
	r := newRule(RangeRule)
	r.lo, r.hi = lo, hi
	return r
}

// Seq matches items one after another.
func Seq(items ...*Rule) *Rule {
	return newRule(SeqRule, items...)
}

// Concat matches items one after another, the value is the text of all kept values joined.
func Concat(items ...*Rule) *Rule {
	r := newRule(SeqRule, items...)
	r.join = true
	return r
}

// Skip matches item, the value is discarded by enclosing Seq and Concat.
func Skip(item *Rule) *Rule {
	return newRule(SkipRule, item)
}

// Alt matches the first item that leads to a successful parse.
// Items are tried in declaration order.
func Alt(items ...*Rule) *Rule {
	return newRule(AltRule, items...)
}

// Times matches item from min to max times (max may be Unbounded), greedily.
func Times(item *Rule, min, max int) *Rule {
	if min < 0 || (max != Unbounded && max < min) {
		panic(boundsError(min, max))
	}

	r := newRule(RepeatRule, item)
	r.min, r.max = min, max
	return r
}

// Many matches item zero or more times.
func Many(item *Rule) *Rule {
	return Times(item, 0, Unbounded)
}

// Many1 matches item one or more times.
func Many1(item *Rule) *Rule {
	return Times(item, 1, Unbounded)
}

// StringTimes is Times producing joined text.
func StringTimes(item *Rule, min, max int) *Rule {
	r := Times(item, min, max)
	r.join = true
	return r
}

// String is Many producing joined text.
func String(item *Rule) *Rule {
	return StringTimes(item, 0, Unbounded)
}

// String1 is Many1 producing joined text.
func String1(item *Rule) *Rule {
	return StringTimes(item, 1, Unbounded)
}

// Maybe matches item or empty string, in the latter case the value is def.
func Maybe(item *Rule, def any) *Rule {
	r := newRule(MaybeRule, item)
	r.def = def
	return r
}

// MaybeString is Maybe with empty string default.
func MaybeString(item *Rule) *Rule {
	return Maybe(item, "")
}

// Map applies conv to the value of a successful match.
func Map(item *Rule, conv func(any) any) *Rule {
	if conv == nil {
		panic(nilItemError(MapRule))
	}

	r := newRule(MapRule, item)
	r.conv = conv
	return r
}

// Subst replaces the value of a successful match with value.
func Subst(item *Rule, value any) *Rule {
	return Map(item, func(any) any {
		return value
	})
}

// Act applies a semantic action that may raise notices to the value of a successful match.
func Act(item *Rule, action Action) *Rule {
	if action == nil {
		panic(nilItemError(ActionRule))
	}

	r := newRule(ActionRule, item)
	r.action = action
	return r
}

// Text replaces the value of a successful match with raw matched bytes.
func Text(item *Rule) *Rule {
	return newRule(TextRule, item)
}

// Excluding matches item unless the matched text is equal (case-insensitively) to one of words.
func Excluding(item *Rule, words ...string) *Rule {
	r := newRule(ExcludeRule, item)
	r.words = append([]string(nil), words...)
	return r
}

/*
Package tree defines the result tree built by parser for a successful parse.

Every match of a pivot rule becomes a node; matches of auxiliary rules are
not surfaced, their pivot descendants become children of the nearest pivot
ancestor.
*/
package tree

import (
	"github.com/ava12/httplint/citation"
)

// Node is a matched pivot rule.
type Node struct {
	// Name is the rule name.
	Name string

	// Cite is the rule citation.
	Cite citation.Citation

	// Start and End delimit the matched span.
	Start, End int

	// Value is the value produced by the rule.
	Value any

	parent   *Node
	children []*Node
}

// New creates a node. Parent links are not set until Link is called for the root.
func New(name string, cite citation.Citation, start, end int, value any, children []*Node) *Node {
	return &Node{Name: name, Cite: cite, Start: start, End: end, Value: value, children: children}
}

// Link sets parent links in the subtree and returns root.
func Link(root *Node) *Node {
	if root == nil {
		return nil
	}

	root.parent = nil
	var link func(n *Node)
	link = func(n *Node) {
		for _, c := range n.children {
			c.parent = n
			link(c)
		}
	}
	link(root)
	return root
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns child nodes. The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Text returns the matched span of content.
func (n *Node) Text(content []byte) string {
	if n.Start < 0 || n.End > len(content) || n.Start > n.End {
		return ""
	}
	return string(content[n.Start:n.End])
}

func Ancestor(n *Node, level int) *Node {
	for n != nil && level >= 0 {
		n = n.parent
		level--
	}
	return n
}

func NodeLevel(n *Node) (l int) {
	if n == nil {
		return
	}

	for p := n.parent; p != nil; p = p.parent {
		l++
	}
	return
}

func SiblingIndex(n *Node) int {
	if n == nil || n.parent == nil {
		return 0
	}

	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return 0
}

// NthChild returns i-th child, negative i counts from the last child (-1 is the last one).
func NthChild(n *Node, i int) *Node {
	if n == nil {
		return nil
	}

	if i < 0 {
		i += len(n.children)
	}
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

const AllLevels = -1

func NumOfChildren(parent *Node, levels int) int {
	if parent == nil {
		return 0
	}

	res := 0
	for _, c := range parent.children {
		res++
		if levels != 0 {
			res += NumOfChildren(c, levels-1)
		}
	}
	return res
}

type NodeVisitor func(n *Node) (walkChildren, walkSiblings bool)

type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

func Walk(n *Node, mode WalkMode, visitor NodeVisitor) {
	if n != nil {
		visitNode(n, visitor, (mode&WalkRtl) != 0)
	}
}

func visitNode(n *Node, v NodeVisitor, rtl bool) (visitSiblings bool) {
	vc, vs := v(n)
	if !vc {
		return vs
	}

	cnt := len(n.children)
	for i := 0; i < cnt && vc; i++ {
		c := n.children[i]
		if rtl {
			c = n.children[cnt-1-i]
		}
		vc = visitNode(c, v, rtl)
	}
	return vs
}

type NodeFilter func(n *Node) bool

// Search returns nodes of the subtree matching filter in depth-first order.
// Descendants of a matching node are searched only if deep is set.
func Search(n *Node, filter NodeFilter, deep bool) []*Node {
	var res []*Node
	Walk(n, WalkLtr, func(nn *Node) (bool, bool) {
		if filter(nn) {
			res = append(res, nn)
			return deep, true
		}
		return true, true
	})
	return res
}

func IsNot(f NodeFilter) NodeFilter {
	return func(n *Node) bool {
		return !f(n)
	}
}

func IsAny(fs ...NodeFilter) NodeFilter {
	return func(n *Node) bool {
		for _, f := range fs {
			if f(n) {
				return true
			}
		}
		return false
	}
}

func IsA(names ...string) NodeFilter {
	return func(n *Node) bool {
		for _, name := range names {
			if n.Name == name {
				return true
			}
		}
		return false
	}
}

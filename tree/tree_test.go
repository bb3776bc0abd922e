package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/httplint/citation"
)

func sampleTree() *Node {
	// request-line(method, request-target(origin-form(absolute-path)), HTTP-version)
	path := New("absolute-path", citation.RFC(7230), 4, 5, "/", nil)
	origin := New("origin-form", citation.RFC(7230), 4, 5, "/", []*Node{path})
	target := New("request-target", citation.RFC(7230), 4, 5, "/", []*Node{origin})
	method := New("method", citation.RFC(7230), 0, 3, "GET", nil)
	version := New("HTTP-version", citation.RFC(7230), 6, 14, "HTTP/1.1", nil)
	return Link(New("request-line", citation.RFC(7230), 0, 16, nil, []*Node{method, target, version}))
}

func names(ns []*Node) []string {
	res := make([]string, len(ns))
	for i, n := range ns {
		res[i] = n.Name
	}
	return res
}

func TestNavigation(t *testing.T) {
	root := sampleTree()
	path := Search(root, IsA("absolute-path"), false)
	require.Len(t, path, 1)

	assert.Equal(t, 3, NodeLevel(path[0]))
	assert.Equal(t, "origin-form", Ancestor(path[0], 0).Name)
	assert.Equal(t, root, Ancestor(path[0], 2))
	assert.Nil(t, Ancestor(path[0], 3))

	assert.Equal(t, "method", NthChild(root, 0).Name)
	assert.Equal(t, "HTTP-version", NthChild(root, -1).Name)
	assert.Nil(t, NthChild(root, 3))
	assert.Nil(t, NthChild(root, -4))
	assert.Equal(t, 2, SiblingIndex(NthChild(root, 2)))

	assert.Equal(t, 3, NumOfChildren(root, 0))
	assert.Equal(t, 5, NumOfChildren(root, AllLevels))
	assert.Equal(t, "GET", NthChild(root, 0).Text([]byte("GET / HTTP/1.1\r\n")))
}

func TestWalk(t *testing.T) {
	root := sampleTree()
	var visited []string
	Walk(root, WalkLtr, func(n *Node) (bool, bool) {
		visited = append(visited, n.Name)
		return n.Name != "request-target", true
	})
	assert.Equal(t, []string{"request-line", "method", "request-target", "HTTP-version"}, visited)

	visited = nil
	Walk(root, WalkRtl, func(n *Node) (bool, bool) {
		visited = append(visited, n.Name)
		return true, true
	})
	assert.Equal(t, []string{"request-line", "HTTP-version", "request-target", "origin-form", "absolute-path", "method"}, visited)
}

func TestSearch(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, []string{"request-target"}, names(Search(root, IsA("request-target", "origin-form"), false)))
	assert.Equal(t, []string{"request-target", "origin-form"}, names(Search(root, IsA("request-target", "origin-form"), true)))
	assert.Equal(t, []string{"method", "HTTP-version"},
		names(Search(NthChild(root, 0).Parent(), IsAny(IsA("method"), IsA("HTTP-version")), true)))
	assert.Len(t, Search(root, IsNot(IsA("x")), false), 1)
}

package ints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := NewSet(3, 70, 0)
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(70))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(-1))
	assert.False(t, s.Contains(1000))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{0, 3, 70}, s.ToSlice())

	c := s.Copy().Remove(3, 500)
	assert.Equal(t, []int{0, 70}, c.ToSlice())
	assert.Equal(t, []int{0, 3, 70}, s.ToSlice())

	assert.True(t, NewSet().IsEmpty())
	assert.True(t, NewSet(1).Remove(1).IsEmpty())
	var zero Set
	assert.True(t, zero.IsEmpty())
	assert.Empty(t, zero.ToSlice())
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 1, q.First())
	q.Append(3)
	assert.Equal(t, 2, q.First())
	assert.Equal(t, 3, q.First())
	assert.True(t, q.IsEmpty())
	assert.Equal(t, -1, q.First())
	q.Append(4)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 4, q.First())
}

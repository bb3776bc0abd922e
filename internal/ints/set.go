// Package ints contains integer containers used by grammar analysis.
package ints

import "math/bits"

const intSize = bits.UintSize

// Set is a set of non-negative integers stored as a bit map.
// The zero value is an empty set.
type Set struct {
	chunks []uint
}

func NewSet(items ...int) *Set {
	return (&Set{}).Add(items...)
}

func (s *Set) Add(items ...int) *Set {
	for _, item := range items {
		index := item / intSize
		for index >= len(s.chunks) {
			s.chunks = append(s.chunks, 0)
		}
		s.chunks[index] |= 1 << uint(item%intSize)
	}
	return s
}

func (s *Set) Remove(items ...int) *Set {
	for _, item := range items {
		index := item / intSize
		if index < len(s.chunks) {
			s.chunks[index] &^= 1 << uint(item%intSize)
		}
	}
	return s
}

func (s *Set) Contains(item int) bool {
	if item < 0 {
		return false
	}
	index := item / intSize
	return index < len(s.chunks) && s.chunks[index]&(1<<uint(item%intSize)) != 0
}

func (s *Set) Len() int {
	res := 0
	for _, chunk := range s.chunks {
		res += bits.OnesCount(chunk)
	}
	return res
}

func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}
	return true
}

func (s *Set) Copy() *Set {
	return &Set{append([]uint(nil), s.chunks...)}
}

// ToSlice returns set items in ascending order.
func (s *Set) ToSlice() []int {
	res := make([]int, 0, s.Len())
	for i, chunk := range s.chunks {
		for chunk != 0 {
			bit := bits.TrailingZeros(chunk)
			res = append(res, i*intSize+bit)
			chunk &= chunk - 1
		}
	}
	return res
}

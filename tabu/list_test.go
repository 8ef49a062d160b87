package tabu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kxtabu/tabu"
)

// TestList_FIFO checks admission, membership and eviction order.
func TestList_FIFO(t *testing.T) {
	l := tabu.NewList(2)
	assert.Equal(t, -1, l.Oldest())

	l.Admit("a", 0)
	l.Admit("b", 1)
	l.Admit("c", 2)
	assert.Equal(t, 3, l.Len(), "admission never evicts")
	assert.True(t, l.Contains("a"))

	assert.Equal(t, 1, l.EvictExcess())
	assert.False(t, l.Contains("a"))
	assert.True(t, l.Contains("b"))
	assert.Equal(t, 1, l.Oldest())
	assert.Zero(t, l.EvictExcess())
	assert.Equal(t, 2, l.Capacity())
}

// TestList_Duplicates keeps a signature tabu until its last copy leaves.
func TestList_Duplicates(t *testing.T) {
	l := tabu.NewList(1)
	l.Admit("x", 0)
	l.Admit("x", 1)
	l.Admit("y", 2)
	assert.Equal(t, 2, l.EvictExcess())
	assert.False(t, l.Contains("x"))
	assert.True(t, l.Contains("y"))

	assert.Panics(t, func() { tabu.NewList(0) })
}

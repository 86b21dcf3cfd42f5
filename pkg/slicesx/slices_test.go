package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAny(t *testing.T) {
	assert := assert.New(t)

	assert.True(ContainsAny([]string{"a", "b", "c"}, []string{"c"}))
	assert.True(ContainsAny([]string{"a", "b"}, []string{"x", "b"}))
	assert.False(ContainsAny([]string{"a", "b"}, []string{"x", "y"}))
	assert.False(ContainsAny([]string{"a"}, nil))
	assert.False(ContainsAny(nil, []string{"a"}))
}

func TestDistinct(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, Distinct([]string{"a", "b", "c"}))
	assert.Equal(1, Distinct([]string{"a", "a", "a"}))
	assert.Equal(0, Distinct([]string(nil)))
	assert.Equal(2, Distinct([]int{1, 2, 2, 1}))
}

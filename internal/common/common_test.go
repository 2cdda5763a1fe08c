package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]int(nil))
	assert.False(t, ok)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Empty(t, FirstNonEmpty("", ""))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "basic", PkgAlias("inspector-generator/examples/basic"))
	assert.Empty(t, PkgAlias(""))
}

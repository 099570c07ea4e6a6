package slug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "electronics", Make("Electronics"))
	assert.Equal(t, "gaming-laptops", Make("Gaming Laptops"))
	assert.Equal(t, "o-zbekiston-mahsulotlari", Make("O'zbekiston   Mahsulotlari"))
	assert.Equal(t, "cafe-creme", Make("Café Crème"))
	assert.Equal(t, "50-off", Make("  50% OFF!! "))
	assert.Equal(t, "", Make("!!!"))
}

func TestGenerateNoCollision(t *testing.T) {
	got, err := Generate("Electronics", func(string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, "electronics", got)
}

func TestGenerateIncrementsOnCollision(t *testing.T) {
	taken := map[string]bool{"electronics": true}
	exists := func(s string) (bool, error) { return taken[s], nil }

	got, err := Generate("Electronics", exists)
	require.NoError(t, err)
	assert.Equal(t, "electronics-1", got)

	taken[got] = true
	got, err = Generate("Electronics", exists)
	require.NoError(t, err)
	assert.Equal(t, "electronics-2", got)
}

func TestGenerateEmptyName(t *testing.T) {
	got, err := Generate("???", func(string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, "item", got)
}

func TestGeneratePropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Generate("Electronics", func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}

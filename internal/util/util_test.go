package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	a, b := NewULID(), NewULID()
	assert.True(t, IsULID(a))
	assert.True(t, IsULID(b))
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "ids sort by creation")
}

func TestIsULID(t *testing.T) {
	assert.True(t, IsULID("01HGZ8VNRYXS8QKNJV5GRWPWDQ"))
	assert.False(t, IsULID("01HGZ8VNRYXS8QKNJV5GRWPWD"))
	assert.False(t, IsULID("01HGZ8VNRYXS8QKNJV5GRWPWDU"), "U is not crockford base32")
	assert.False(t, IsULID(""))
}

func TestNullStrings(t *testing.T) {
	assert.False(t, StringToNullString("").Valid)
	ns := StringToNullString("x")
	assert.True(t, ns.Valid)
	assert.Equal(t, "x", NullStringToString(ns))
	assert.Equal(t, "", NullStringToString(StringToNullString("")))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% pure`, EscapeLike("100% pure"))
	assert.Equal(t, `snake\_case`, EscapeLike("snake_case"))
	assert.Equal(t, `back\\slash`, EscapeLike(`back\slash`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "déj", Truncate("déjà vu", 3))
}

package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

func TestIsString(t *testing.T) {
	assert.True(t, guard.IsString("hello"))
	assert.True(t, guard.IsString(""))
	assert.False(t, guard.IsString(42))
	assert.False(t, guard.IsString(nil))
	assert.False(t, guard.IsString([]byte("hello")))
}

func TestIsNumber(t *testing.T) {
	t.Run("integer kinds", func(t *testing.T) {
		assert.True(t, guard.IsNumber(42))
		assert.True(t, guard.IsNumber(int8(1)))
		assert.True(t, guard.IsNumber(int64(-9)))
		assert.True(t, guard.IsNumber(uint32(7)))
	})

	t.Run("float kinds", func(t *testing.T) {
		assert.True(t, guard.IsNumber(3.14))
		assert.True(t, guard.IsNumber(float32(0)))
	})

	t.Run("non-numbers", func(t *testing.T) {
		assert.False(t, guard.IsNumber("42"))
		assert.False(t, guard.IsNumber(true))
		assert.False(t, guard.IsNumber(nil))
	})
}

func TestIsIntAndIsFloat(t *testing.T) {
	assert.True(t, guard.IsInt(5))
	assert.False(t, guard.IsInt(5.0))
	assert.True(t, guard.IsFloat(5.0))
	assert.False(t, guard.IsFloat(5))
}

func TestIsBool(t *testing.T) {
	assert.True(t, guard.IsBool(true))
	assert.True(t, guard.IsBool(false))
	assert.False(t, guard.IsBool(1))
	assert.False(t, guard.IsBool("true"))
}

func TestIsNil(t *testing.T) {
	assert.True(t, guard.IsNil(nil))

	var p *int
	assert.True(t, guard.IsNil(p), "typed nil pointer")

	var m map[string]int
	assert.True(t, guard.IsNil(m), "nil map")

	var s []int
	assert.True(t, guard.IsNil(s), "nil slice")

	assert.False(t, guard.IsNil(0))
	assert.False(t, guard.IsNil(""))
	assert.False(t, guard.IsNil([]int{}))
}

func TestIsMapAndIsSlice(t *testing.T) {
	assert.True(t, guard.IsMap(map[string]any{}))
	assert.True(t, guard.IsMap(map[int]string{1: "a"}))
	assert.False(t, guard.IsMap([]any{}))
	assert.False(t, guard.IsMap(nil))

	assert.True(t, guard.IsSlice([]any{1, 2}))
	assert.True(t, guard.IsSlice([]string{}))
	assert.True(t, guard.IsSlice([3]int{1, 2, 3}))
	assert.False(t, guard.IsSlice(map[string]any{}))
	assert.False(t, guard.IsSlice(nil))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, guard.IsUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, guard.IsUUID("not-a-uuid"))
	assert.False(t, guard.IsUUID("123e4567e89b12d3a456426614174000"), "missing hyphens")
	assert.False(t, guard.IsUUID("123e4567-e89b-12d3-a456-42661417400"), "too short")
	assert.False(t, guard.IsUUID(42))
	assert.False(t, guard.IsUUID(nil))
}

func TestIsEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"user+tag@example.co",
	}
	for _, s := range valid {
		assert.True(t, guard.IsEmail(s), s)
	}

	invalid := []any{
		"not-an-email",
		"user@",
		"@example.com",
		"user@localhost",
		"user@.com",
		"",
		"   ",
		42,
		nil,
	}
	for _, v := range invalid {
		assert.False(t, guard.IsEmail(v), "%v", v)
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, guard.IsURL("https://example.com/path?q=1"))
	assert.True(t, guard.IsURL("http://localhost:8080"))
	assert.False(t, guard.IsURL("example.com"), "no scheme")
	assert.False(t, guard.IsURL("/relative/path"))
	assert.False(t, guard.IsURL(""))
	assert.False(t, guard.IsURL(123))
}

func TestIsISOTime(t *testing.T) {
	assert.True(t, guard.IsISOTime("2024-06-01T12:30:00Z"))
	assert.True(t, guard.IsISOTime("2024-06-01T12:30:00+02:00"))
	assert.False(t, guard.IsISOTime("2024-06-01"))
	assert.False(t, guard.IsISOTime("yesterday"))
	assert.False(t, guard.IsISOTime(1717243800))
}

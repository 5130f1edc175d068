package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername_Valid(t *testing.T) {
	v := &ValidationError{}
	validateUsername(v, "some.user+tag@here-1")
	assert.False(t, v.HasErrors())
}

func TestValidateUsername_UnicodeLetters(t *testing.T) {
	for _, username := range []string{"читатель", "lecteur_déçu", "读者2024"} {
		v := &ValidationError{}
		validateUsername(v, username)
		assert.False(t, v.HasErrors(), "username %q should be accepted", username)
	}
}

func TestValidateUsername_MeReserved(t *testing.T) {
	v := &ValidationError{}
	validateUsername(v, "me")
	assert.True(t, v.HasErrors())
	assert.Contains(t, v.Fields, "username")
}

func TestValidateUsername_BadCharacters(t *testing.T) {
	v := &ValidationError{}
	validateUsername(v, "has spaces")
	assert.True(t, v.HasErrors())
}

func TestValidateUsername_TooLong(t *testing.T) {
	v := &ValidationError{}
	validateUsername(v, strings.Repeat("a", 151))
	assert.True(t, v.HasErrors())
}

func TestValidateEmail(t *testing.T) {
	v := &ValidationError{}
	validateEmail(v, "reader@example.com")
	assert.False(t, v.HasErrors())

	v = &ValidationError{}
	validateEmail(v, "not-an-email")
	assert.True(t, v.HasErrors())

	v = &ValidationError{}
	validateEmail(v, "")
	assert.True(t, v.HasErrors())
}

func TestValidateSlug(t *testing.T) {
	v := &ValidationError{}
	validateSlug(v, "sci-fi_2")
	assert.False(t, v.HasErrors())

	v = &ValidationError{}
	validateSlug(v, "no spaces")
	assert.True(t, v.HasErrors())

	v = &ValidationError{}
	validateSlug(v, strings.Repeat("x", 51))
	assert.True(t, v.HasErrors())
}

func TestValidateYear(t *testing.T) {
	v := &ValidationError{}
	validateYear(v, time.Now().Year())
	assert.False(t, v.HasErrors())

	v = &ValidationError{}
	validateYear(v, time.Now().Year()+1)
	assert.True(t, v.HasErrors())
}

func TestValidateScore(t *testing.T) {
	for _, score := range []int{1, 5, 10} {
		v := &ValidationError{}
		validateScore(v, score)
		assert.False(t, v.HasErrors(), "score %d should be accepted", score)
	}
	for _, score := range []int{0, 11, -1} {
		v := &ValidationError{}
		validateScore(v, score)
		assert.True(t, v.HasErrors(), "score %d should be rejected", score)
	}
}

func TestValidationError_Accumulates(t *testing.T) {
	v := &ValidationError{}
	validateUsername(v, "has spaces")
	validateEmail(v, "not-an-email")

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Fields, 2)
}

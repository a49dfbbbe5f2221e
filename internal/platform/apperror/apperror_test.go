package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", errors.New("boom"), Internal},
		{"not found", NotFoundf("book %q", "x"), NotFound},
		{"wrapped already exists", fmt.Errorf("create: %w", AlreadyExistsf("dup")), AlreadyExists},
		{"wrap keeps kind", Wrap(errors.New("pg"), InvalidArgument, "bad insert"), InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_IsMatchesSentinel(t *testing.T) {
	sentinel := New(NotFound, "author not found")
	err := fmt.Errorf("delete author: %w", New(NotFound, "author not found"))

	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, New(NotFound, "book not found")))
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, Internal, "store unavailable")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "title is required", MessageOf(InvalidArgumentf("title is required"), "fallback"))
	assert.Equal(t, "fallback", MessageOf(errors.New("raw"), "fallback"))
}

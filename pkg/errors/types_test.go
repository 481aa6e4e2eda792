package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := New(KindNotFound, "Podcast id: 7 doesn't exist.")
		assert.Equal(t, "Podcast id: 7 doesn't exist.", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := Wrap(cause, KindStorage, "Fail to create podcast.")
		assert.Contains(t, err.Error(), "Fail to create podcast.")
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("record not found")
	err := Wrap(cause, KindStorage, "Fail to get podcasts.")
	assert.ErrorIs(t, err, cause)
}

func TestEnsure(t *testing.T) {
	t.Run("passes a structured error through verbatim", func(t *testing.T) {
		inner := New(KindNotFound, "Couldn't find episode.")
		got := Ensure(inner, "Fail to get episodes.")
		assert.Same(t, inner, got)
	})

	t.Run("passes a wrapped structured error through", func(t *testing.T) {
		inner := New(KindForbidden, "This podcast is not yours.")
		wrapped := fmt.Errorf("handler: %w", inner)
		got := Ensure(wrapped, "Fail to get podcasts.")
		assert.Same(t, inner, got)
	})

	t.Run("wraps an unknown error as a storage fault", func(t *testing.T) {
		cause := stderrors.New("constraint failed")
		got := Ensure(cause, "Fail to create podcast.")
		require.NotNil(t, got)
		assert.Equal(t, KindStorage, got.Kind)
		assert.Equal(t, "Fail to create podcast.", got.Message)
		assert.ErrorIs(t, got, cause)
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindOutOfRange, KindOf(New(KindOutOfRange, "Given page 9 is bigger than total pages.")))
	assert.Equal(t, KindStorage, KindOf(stderrors.New("something else")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "This review is not yours.", Message(New(KindForbidden, "This review is not yours.")))
	assert.Equal(t, "plain", Message(stderrors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindOutOfRange, http.StatusBadRequest},
		{KindValidation, http.StatusBadRequest},
		{KindForbidden, http.StatusForbidden},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindConflict, http.StatusConflict},
		{KindStorage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(New(tt.kind, "x")))
		})
	}

	t.Run("plain error maps to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("boom")))
	})
}

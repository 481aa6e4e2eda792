package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

func TestRequest_Offset(t *testing.T) {
	tests := []struct {
		name     string
		request  Request
		expected int
	}{
		{name: "first page skips nothing", request: Default(1), expected: 0},
		{name: "second page skips one window", request: Default(2), expected: 10},
		{name: "search pages use the wider window", request: Search(3), expected: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.request.Offset())
		})
	}
}

func TestRequest_TotalPages(t *testing.T) {
	tests := []struct {
		name     string
		request  Request
		total    int64
		expected int
	}{
		{name: "empty result has zero pages", request: Default(1), total: 0, expected: 0},
		{name: "exact multiple", request: Default(1), total: 20, expected: 2},
		{name: "partial last page rounds up", request: Default(1), total: 21, expected: 3},
		{name: "single row is one page", request: Default(1), total: 1, expected: 1},
		{name: "search window", request: Search(1), total: 21, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.request.TotalPages(tt.total))
		})
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Run("page within bounds", func(t *testing.T) {
		assert.NoError(t, Default(2).Validate(15))
	})

	t.Run("last page is valid", func(t *testing.T) {
		assert.NoError(t, Default(3).Validate(21))
	})

	t.Run("empty result accepts any page", func(t *testing.T) {
		assert.NoError(t, Default(1).Validate(0))
		assert.NoError(t, Default(99).Validate(0))
	})

	t.Run("page past the end is out of range", func(t *testing.T) {
		err := Default(4).Validate(21)
		require.Error(t, err)
		assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindOutOfRange))
		assert.Equal(t, "Given page 4 is bigger than total pages.", catalogerrors.Message(err))
	})
}

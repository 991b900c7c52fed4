package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimitOffset(t *testing.T) {
	cases := []struct {
		query         string
		limit, offset int
		paged         bool
	}{
		{"", 0, 0, false},
		{"?limit=10", 10, 0, true},
		{"?limit=10&offset=20", 10, 20, true},
		{"?limit=0", 0, 0, false},
		{"?limit=500", 0, 0, false},
		{"?limit=abc&offset=-1", 0, 0, false},
	}
	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			limit, offset, paged := parseLimitOffset(c)
			assert.Equal(t, tc.limit, limit, tc.query)
			assert.Equal(t, tc.offset, offset, tc.query)
			assert.Equal(t, tc.paged, paged, tc.query)
			return nil
		})
		_, err := app.Test(httptest.NewRequest("GET", "/"+tc.query, nil))
		require.NoError(t, err)
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, page(items, 2, 0))
	assert.Equal(t, []int{4, 5}, page(items, 10, 3))
	assert.Equal(t, []int{}, page(items, 2, 5))
}

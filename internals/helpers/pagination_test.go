package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOn(t *testing.T, target, defaultOrder string, opt PageOptions) PageParams {
	t.Helper()
	app := fiber.New()
	var got PageParams
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ParsePage(c, defaultOrder, opt)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePageDefaults(t *testing.T) {
	p := parseOn(t, "/x", "desc", PublicOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParsePageClampsPerPage(t *testing.T) {
	p := parseOn(t, "/x?per_page=9999", "asc", PublicOpts)
	assert.Equal(t, 100, p.PerPage)

	p = parseOn(t, "/x?per_page=-5", "asc", PublicOpts)
	assert.Equal(t, 25, p.PerPage)
}

func TestParsePageOrder(t *testing.T) {
	p := parseOn(t, "/x?order=ASC", "desc", AdminOpts)
	assert.Equal(t, "asc", p.SortOrder)

	p = parseOn(t, "/x?order=sideways", "asc", AdminOpts)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestPageParamsOffset(t *testing.T) {
	p := PageParams{Page: 3, PerPage: 20}
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())
}

func TestBuildPageMeta(t *testing.T) {
	meta := BuildPageMeta(101, PageParams{Page: 2, PerPage: 25})
	assert.Equal(t, int64(101), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	empty := BuildPageMeta(0, PageParams{Page: 1, PerPage: 25})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

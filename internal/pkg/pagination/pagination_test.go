package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryFrom(t *testing.T, rawQuery string) Query {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return FromContext(c)
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Query{Page: 1, Size: 10}, queryFrom(t, ""))
	assert.Equal(t, Query{Page: 3, Size: 25}, queryFrom(t, "page=3&size=25"))
	assert.Equal(t, Query{Page: 1, Size: 10}, queryFrom(t, "page=-2&size=0"))
	assert.Equal(t, Query{Page: 1, Size: 100}, queryFrom(t, "size=5000"))
	assert.Equal(t, Query{Page: 1, Size: 10}, queryFrom(t, "page=abc&size=xyz"))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, i)
	}

	page, meta := Paginate(items, Query{Page: 1, Size: 10})
	assert.Len(t, page, 10)
	assert.Equal(t, 0, page[0])
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPage)
	assert.True(t, meta.HasNextPage)

	page, meta = Paginate(items, Query{Page: 3, Size: 10})
	assert.Len(t, page, 5)
	assert.Equal(t, 20, page[0])
	assert.False(t, meta.HasNextPage)

	page, meta = Paginate(items, Query{Page: 9, Size: 10})
	assert.Empty(t, page)
	assert.Equal(t, int64(25), meta.Total)

	page, meta = Paginate([]int{}, Query{Page: 1, Size: 10})
	assert.Empty(t, page)
	assert.Equal(t, 0, meta.TotalPage)
	assert.False(t, meta.HasNextPage)
}

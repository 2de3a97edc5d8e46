package ginutil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestQueryInt(t *testing.T) {
	c := newContext("/?page=3&limit=abc")
	assert.Equal(t, 3, QueryInt(c, "page", 1))
	assert.Equal(t, 20, QueryInt(c, "limit", 20))
	assert.Equal(t, 7, QueryInt(c, "missing", 7))
}

func TestQueryStringPtr(t *testing.T) {
	c := newContext("/?title=Go&slug=")
	require.NotNil(t, QueryStringPtr(c, "title"))
	assert.Equal(t, "Go", *QueryStringPtr(c, "title"))
	assert.Nil(t, QueryStringPtr(c, "slug"))
	assert.Nil(t, QueryStringPtr(c, "missing"))
}

func TestQueryInt64Ptr(t *testing.T) {
	c := newContext("/?post_id=42&parent_id=x")

	v, err := QueryInt64Ptr(c, "post_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), *v)

	_, err = QueryInt64Ptr(c, "parent_id")
	assert.Error(t, err)

	v, err = QueryInt64Ptr(c, "missing")
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestQueryBoolPtr(t *testing.T) {
	c := newContext("/?private=true&asc=nope")

	v, err := QueryBoolPtr(c, "private")
	require.NoError(t, err)
	assert.True(t, *v)

	_, err = QueryBoolPtr(c, "asc")
	assert.Error(t, err)
}

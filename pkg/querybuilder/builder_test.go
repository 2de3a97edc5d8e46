package querybuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestBuild_NoFilters(t *testing.T) {
	b := New("posts", Sortable("title", "id"))

	count, list := b.Build(Params{Page: Page{Number: 1, Size: 10}})

	assert.Equal(t, "SELECT COUNT(*) FROM posts", count.SQL)
	assert.Empty(t, count.Args)
	assert.Equal(t, "SELECT * FROM posts LIMIT ? OFFSET ?", list.SQL)
	assert.Equal(t, []any{10, 0}, list.Args)
}

func TestBuild_AbsentFiltersAreOmitted(t *testing.T) {
	b := New("comments")

	count, list := b.Build(Params{
		Filters: []Filter{
			Int("post_id", nil),
			String("nickname", Contains, nil),
			Bool("approved", nil),
		},
	})

	assert.NotContains(t, count.SQL, "WHERE")
	assert.NotContains(t, list.SQL, "WHERE")
	assert.NotContains(t, list.SQL, "NULL")
}

func TestBuild_EqualAndContains(t *testing.T) {
	b := New("comments", Sortable("created_at"))

	count, list := b.Build(Params{
		Filters: []Filter{
			Int("post_id", int64Ptr(7)),
			Int("parent_id", nil),
			String("nickname", Contains, strPtr("ann")),
		},
		SortBy: "created_at",
		Asc:    boolPtr(false),
		Page:   Page{Number: 3, Size: 5},
	})

	assert.Equal(t, "SELECT COUNT(*) FROM comments WHERE post_id = ? AND nickname LIKE ?", count.SQL)
	assert.Equal(t, []any{int64(7), "%ann%"}, count.Args)
	assert.Equal(t,
		"SELECT * FROM comments WHERE post_id = ? AND nickname LIKE ? ORDER BY created_at DESC LIMIT ? OFFSET ?",
		list.SQL)
	assert.Equal(t, []any{int64(7), "%ann%", 5, 10}, list.Args)
}

func TestBuild_CountAndSelectSharePredicates(t *testing.T) {
	b := New("tags", Sortable("tag"))
	p := Params{
		Filters: []Filter{String("tag", Contains, strPtr("go")), String("slug", Contains, strPtr("g"))},
		SortBy:  "tag",
		Page:    Page{Number: 2, Size: 10},
	}

	count, list := b.Build(p)

	countWhere := count.SQL[strings.Index(count.SQL, " WHERE"):]
	assert.Contains(t, list.SQL, countWhere)
	assert.Equal(t, count.Args, list.Args[:len(count.Args)])
}

func TestBuild_SortAllowList(t *testing.T) {
	b := New("posts", Sortable("title", "id", "published_at", "created_at", "slug"))

	tests := []struct {
		name   string
		sortBy string
		asc    *bool
		want   string
	}{
		{"default ascending", "title", nil, " ORDER BY title ASC"},
		{"explicit ascending", "id", boolPtr(true), " ORDER BY id ASC"},
		{"descending", "created_at", boolPtr(false), " ORDER BY created_at DESC"},
		{"absent sort", "", nil, ""},
		{"unknown column", "content", nil, ""},
		{"injection attempt", "id; DROP TABLE posts", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, list := b.Build(Params{SortBy: tt.sortBy, Asc: tt.asc})
			if tt.want == "" {
				assert.NotContains(t, list.SQL, "ORDER BY")
				assert.NotContains(t, list.SQL, "DROP")
				return
			}
			assert.Contains(t, list.SQL, tt.want+" LIMIT")
		})
	}
}

func TestBuild_ValuesAreNeverInterpolated(t *testing.T) {
	b := New("posts")
	evil := "x' OR '1'='1"

	count, list := b.Build(Params{Filters: []Filter{String("title", Contains, &evil)}})

	assert.NotContains(t, count.SQL, evil)
	assert.NotContains(t, list.SQL, evil)
	assert.Equal(t, "%"+evil+"%", count.Args[0])
}

func TestBuild_DollarPlaceholders(t *testing.T) {
	b := New("values", WithPlaceholder(Dollar))

	count, list := b.Build(Params{
		Filters: []Filter{
			String("reference", Equal, strPtr("color")),
			String("name", Contains, strPtr("re")),
		},
		Page: Page{Number: 1, Size: 20},
	})

	assert.Equal(t, "SELECT COUNT(*) FROM values WHERE reference = $1 AND name LIKE $2", count.SQL)
	assert.Equal(t, "SELECT * FROM values WHERE reference = $1 AND name LIKE $2 LIMIT $3 OFFSET $4", list.SQL)
}

func TestBuild_LikeOperatorForMySQL(t *testing.T) {
	b := New("tags", ForDialect("mysql")...)

	count, _ := b.Build(Params{Filters: []Filter{String("tag", Contains, strPtr("Go"))}})

	assert.Equal(t, "SELECT COUNT(*) FROM `tags` WHERE `tag` LIKE BINARY ?", count.SQL)
}

func TestBuild_PageNormalization(t *testing.T) {
	b := New("posts")

	_, list := b.Build(Params{Page: Page{Number: -4, Size: 0}})

	assert.Equal(t, []any{DefaultLimit, 0}, list.Args)
}

func TestCount(t *testing.T) {
	b := New("topics")

	st := b.Count([]Filter{Bool("active", boolPtr(true))})

	assert.Equal(t, "SELECT COUNT(*) FROM topics WHERE active = ?", st.SQL)
	assert.Equal(t, []any{true}, st.Args)
}

func TestBuild_QuotedIdentifiers(t *testing.T) {
	b := New("settings", append(ForDialect("sqlite"), Sortable("key"))...)

	_, list := b.Build(Params{
		Filters: []Filter{String("key", Contains, strPtr("site"))},
		SortBy:  "key",
	})

	assert.Equal(t, `SELECT * FROM "settings" WHERE "key" LIKE ? ORDER BY "key" ASC LIMIT ? OFFSET ?`, list.SQL)
}

// Package querybuilder builds the COUNT and SELECT statements behind every
// paged list endpoint. Both statements are produced from the same predicate
// set so that total-pages arithmetic always agrees with the returned rows.
package querybuilder

import (
	"strconv"
	"strings"
)

// Placeholder bind variable style
type Placeholder int

const (
	// Question emits "?" (rebound by gorm for the active dialect)
	Question Placeholder = iota
	// Dollar emits parameter-indexed "$1", "$2", ...
	Dollar
)

// Statement SQL text plus its bound arguments
type Statement struct {
	SQL  string
	Args []any
}

// Params sparse filter set plus sort and page request for one list call
type Params struct {
	Filters []Filter
	SortBy  string
	// Asc nil means ascending
	Asc  *bool
	Page Page
}

// Builder per-resource statement builder. Immutable after New; safe for concurrent use.
type Builder struct {
	table       string
	sortable    map[string]struct{}
	placeholder Placeholder
	likeOp      string
	quote       string
}

// Option configures a Builder
type Option func(*Builder)

// Sortable sets the ORDER BY allow-list
func Sortable(columns ...string) Option {
	return func(b *Builder) {
		for _, col := range columns {
			b.sortable[col] = struct{}{}
		}
	}
}

// WithPlaceholder selects the bind variable style
func WithPlaceholder(p Placeholder) Option {
	return func(b *Builder) {
		b.placeholder = p
	}
}

// WithLikeOperator overrides the case-sensitive substring operator (e.g. "LIKE BINARY" on MySQL)
func WithLikeOperator(op string) Option {
	return func(b *Builder) {
		if op != "" {
			b.likeOp = op
		}
	}
}

// WithIdentifierQuote quotes the table and column names with q ("`" on MySQL, `"` elsewhere)
func WithIdentifierQuote(q string) Option {
	return func(b *Builder) {
		b.quote = q
	}
}

// New creates a Builder for table
func New(table string, opts ...Option) *Builder {
	b := &Builder{
		table:       table,
		sortable:    make(map[string]struct{}),
		placeholder: Question,
		likeOp:      "LIKE",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Table returns the table the builder selects from
func (b *Builder) Table() string {
	return b.table
}

// IsSortable reports whether column is in the allow-list
func (b *Builder) IsSortable(column string) bool {
	_, ok := b.sortable[column]
	return ok
}

// Build returns the COUNT statement and the paged SELECT statement for p.
func (b *Builder) Build(p Params) (count Statement, list Statement) {
	where, args := b.where(p.Filters)

	count = Statement{
		SQL:  "SELECT COUNT(*) FROM " + b.ident(b.table) + where,
		Args: args,
	}

	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(b.ident(b.table))
	sb.WriteString(where)
	sb.WriteString(b.orderBy(p.SortBy, p.Asc))

	page := NormalizePage(p.Page.Number, p.Page.Size)
	listArgs := make([]any, len(args), len(args)+2)
	copy(listArgs, args)
	sb.WriteString(" LIMIT ")
	sb.WriteString(b.bindVar(len(listArgs) + 1))
	listArgs = append(listArgs, page.Size)
	sb.WriteString(" OFFSET ")
	sb.WriteString(b.bindVar(len(listArgs) + 1))
	listArgs = append(listArgs, page.Offset())

	list = Statement{SQL: sb.String(), Args: listArgs}
	return count, list
}

// Count returns only the COUNT statement
func (b *Builder) Count(filters []Filter) Statement {
	count, _ := b.Build(Params{Filters: filters})
	return count
}

// where 활성 필터만 조건절로 변환
func (b *Builder) where(filters []Filter) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(filters))
	first := true
	for _, f := range filters {
		if !f.Present() {
			continue
		}
		if first {
			sb.WriteString(" WHERE ")
			first = false
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(b.ident(f.Column))
		switch f.Match {
		case Contains:
			sb.WriteString(" " + b.likeOp + " ")
			args = append(args, "%"+f.stringValue()+"%")
		default:
			sb.WriteString(" = ")
			args = append(args, f.Value)
		}
		sb.WriteString(b.bindVar(len(args)))
	}
	return sb.String(), args
}

func (b *Builder) orderBy(sortBy string, asc *bool) string {
	if sortBy == "" || !b.IsSortable(sortBy) {
		return ""
	}
	dir := "ASC"
	if asc != nil && !*asc {
		dir = "DESC"
	}
	return " ORDER BY " + b.ident(sortBy) + " " + dir
}

func (b *Builder) bindVar(n int) string {
	if b.placeholder == Dollar {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (b *Builder) ident(name string) string {
	if b.quote == "" {
		return name
	}
	return b.quote + name + b.quote
}

package querybuilder

import "math"

const (
	// DefaultPage first page
	DefaultPage = 1
	// DefaultLimit page size when none (or an invalid one) is requested
	DefaultLimit = 20
	// MaxLimit upper bound on page size
	MaxLimit = 100
	// MaxPage upper bound on page number; (MaxPage-1)*MaxLimit fits in 32-bit int
	MaxPage = math.MaxInt32 / MaxLimit
)

// Page 1-based page number and page size
type Page struct {
	Number int
	Size   int
}

// NormalizePage clamps page into [1, MaxPage], limit < 1 to DefaultLimit and limit > MaxLimit to MaxLimit
func NormalizePage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: page, Size: limit}
}

// Offset (page-1)*limit
func (p Page) Offset() int {
	n := NormalizePage(p.Number, p.Size)
	return (n.Number - 1) * n.Size
}

// TotalPages ceil(total/limit); 0 when there are no records
func TotalPages(total int64, limit int) int64 {
	if total <= 0 || limit < 1 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}
	return pages
}

// HasPrev previous-page link present iff page > 1
func HasPrev(page int) bool {
	return page > 1
}

// HasNext next-page link present iff page < total pages
func HasNext(page int, totalPages int64) bool {
	return int64(page) < totalPages
}

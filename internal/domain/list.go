package domain

// ListParams 공통 목록 파라미터 (정렬, 페이지)
type ListParams struct {
	SortBy string
	Asc    *bool
	Page   int
	Limit  int
}

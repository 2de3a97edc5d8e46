package repository

import (
	"context"
	"errors"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/querybuilder"
	"github.com/rotisserie/eris"
	"gorm.io/gorm"
)

// newBuilder 드라이버에 맞춘 목록 쿼리 빌더
func newBuilder(db *gorm.DB, table string, sortable ...string) *querybuilder.Builder {
	opts := querybuilder.ForDialect(db.Dialector.Name())
	opts = append(opts, querybuilder.Sortable(sortable...))
	return querybuilder.New(table, opts...)
}

func pagedParams(lp domain.ListParams, filters ...querybuilder.Filter) querybuilder.Params {
	return querybuilder.Params{
		Filters: filters,
		SortBy:  lp.SortBy,
		Asc:     lp.Asc,
		Page:    querybuilder.Page{Number: lp.Page, Size: lp.Limit},
	}
}

// listPaged COUNT 후 같은 조건으로 한 페이지 조회. 결과가 없으면 빈 슬라이스
func listPaged[T any](ctx context.Context, db *gorm.DB, b *querybuilder.Builder, p querybuilder.Params) ([]T, int64, error) {
	count, list := b.Build(p)

	var total int64
	if err := db.WithContext(ctx).Raw(count.SQL, count.Args...).Scan(&total).Error; err != nil {
		return nil, 0, eris.Wrapf(err, "counting %s", b.Table())
	}

	items := make([]T, 0)
	if err := db.WithContext(ctx).Raw(list.SQL, list.Args...).Scan(&items).Error; err != nil {
		return nil, 0, eris.Wrapf(err, "listing %s", b.Table())
	}

	return items, total, nil
}

// translate gorm 에러를 공통 에러로 변환
func translate(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return common.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return eris.Wrapf(common.ErrConflict, "%s: %v", action, err)
	default:
		return eris.Wrap(err, action)
	}
}

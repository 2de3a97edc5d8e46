package service

import (
	"context"
	"errors"
	"testing"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input   string
		tag     string
		slug    string
		wantErr bool
	}{
		{"#Golang", "Golang", "golang", false},
		{"  Rust Lang ", "Rust Lang", "rust-lang", false},
		{"##", "", "", true},
		{"   ", "", "", true},
		{"!!!", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, slug, err := normalizeTag(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, tt.slug, slug)
		})
	}
}

func TestCreateTag(t *testing.T) {
	tags := new(mockTagRepo)
	svc := NewTagService(tags, new(mockPostTagRepo))
	ctx := context.Background()

	tags.On("Create", ctx, &domain.Tag{Tag: "Go", Slug: "go"}).Return(nil)

	got, err := svc.CreateTag(ctx, &domain.TagRequest{Tag: "#Go"})

	require.NoError(t, err)
	assert.Equal(t, "go", got.Slug)
}

func TestCreateTag_Duplicate(t *testing.T) {
	tags := new(mockTagRepo)
	svc := NewTagService(tags, new(mockPostTagRepo))
	ctx := context.Background()

	tags.On("Create", ctx, mock.AnythingOfType("*domain.Tag")).Return(common.ErrConflict)

	_, err := svc.CreateTag(ctx, &domain.TagRequest{Tag: "go"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestDeleteTag_LinkCleanupFailure(t *testing.T) {
	tags, postTags := new(mockTagRepo), new(mockPostTagRepo)
	svc := NewTagService(tags, postTags)
	ctx := context.Background()

	tags.On("Delete", ctx, int64(2)).Return(&domain.Tag{ID: 2, Tag: "go", Slug: "go"}, nil)
	postTags.On("DeleteByTag", ctx, int64(2)).Return(int64(0), errors.New("timeout"))

	result, err := svc.DeleteTag(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, "go", result.Tag.Slug)
	assert.Error(t, result.CleanupErr)
}

func TestGetTag_NotFound(t *testing.T) {
	tags := new(mockTagRepo)
	svc := NewTagService(tags, new(mockPostTagRepo))
	ctx := context.Background()

	tags.On("FindByID", ctx, int64(4)).Return(nil, common.ErrNotFound)

	_, err := svc.GetTag(ctx, 4)
	assert.ErrorIs(t, err, common.ErrTagNotFound)
	assert.Equal(t, 404, common.StatusFor(err))
}

package service

import (
	"context"
	"io"
	"time"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/pkg/storage"
)

// UploadResult 업로드 응답
type UploadResult struct {
	FilePath    string `json:"file_path"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// UploadService 파일 업로드
type UploadService interface {
	Upload(ctx context.Context, body io.Reader, contentType string, size int64) (*UploadResult, error)
}

type uploadService struct {
	store   storage.Storage
	maxSize int64
	now     func() time.Time
}

// NewUploadService creates a new UploadService. maxSize <= 0 disables the limit.
func NewUploadService(store storage.Storage, maxSize int64) UploadService {
	return &uploadService{store: store, maxSize: maxSize, now: time.Now}
}

// Upload stores the file under YYYY/MM/DD/<uuid>.<ext>
func (s *uploadService) Upload(ctx context.Context, body io.Reader, contentType string, size int64) (*UploadResult, error) {
	if size <= 0 {
		return nil, common.ErrEmptyFile
	}
	if s.maxSize > 0 && size > s.maxSize {
		return nil, common.ErrFileTooLarge
	}

	key := storage.GenerateKey(s.now(), storage.ExtFromMIME(contentType))
	obj, err := s.store.Save(ctx, key, body, contentType, size)
	if err != nil {
		return nil, err
	}
	// 잘린 본문은 저장하지 않음
	if obj.Size != size {
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			secondaryFailed(StepUploadRollback, delErr, 0)
		}
		return nil, common.ErrIncompleteUpload
	}

	return &UploadResult{
		FilePath:    obj.URL,
		ContentType: contentType,
		Size:        obj.Size,
	}, nil
}

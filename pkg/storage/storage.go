// Package storage stores uploaded files under date-bucketed keys.
package storage

import (
	"context"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 백엔드 종류
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// FallbackExt MIME 타입으로 확장자를 알 수 없을 때
const FallbackExt = "dat"

// Storage 파일 저장소 인터페이스
type Storage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// Object 저장된 파일
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// GenerateKey YYYY/MM/DD/<uuid>.<ext> (UTC 날짜)
func GenerateKey(now time.Time, ext string) string {
	return now.UTC().Format("2006/01/02") + "/" + uuid.NewString() + "." + ext
}

var knownExt = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
	"image/avif":      "avif",
	"image/svg+xml":   "svg",
	"audio/mpeg":      "mp3",
	"audio/ogg":       "ogg",
	"audio/wav":       "wav",
	"video/mp4":       "mp4",
	"video/webm":      "webm",
	"application/pdf": "pdf",
	"text/plain":      "txt",
	"text/markdown":   "md",
}

// ExtFromMIME MIME 타입에서 확장자 결정. 모르면 "dat"
func ExtFromMIME(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FallbackExt
	}
	if ext, ok := knownExt[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return FallbackExt
	}
	return strings.TrimPrefix(exts[0], ".")
}

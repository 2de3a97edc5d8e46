package routes

import (
	"github.com/atareao/bloc/internal/handler"
	"github.com/atareao/bloc/internal/repository"
	"github.com/atareao/bloc/internal/service"
	"github.com/atareao/bloc/pkg/cache"
	"github.com/atareao/bloc/pkg/markdown"
	"github.com/atareao/bloc/pkg/storage"
	"gorm.io/gorm"
)

// Deps 핸들러 구성에 필요한 인프라
type Deps struct {
	DB             *gorm.DB
	Cache          cache.Service // nil 이면 캐시 없이 동작
	Storage        storage.Storage
	Renderer       *markdown.Renderer
	MaxUploadBytes int64
}

// NewHandlers repository → service → handler 조립
func NewHandlers(d Deps) Handlers {
	renderer := d.Renderer
	if renderer == nil {
		renderer = markdown.New()
	}

	postRepo := repository.NewPostRepository(d.DB)
	tagRepo := repository.NewTagRepository(d.DB)
	postTagRepo := repository.NewPostTagRepository(d.DB)
	topicRepo := repository.NewTopicRepository(d.DB)
	commentRepo := repository.NewCommentRepository(d.DB)
	valueRepo := repository.NewValueRepository(d.DB)
	settingRepo := repository.NewSettingRepository(d.DB)

	return Handlers{
		Post:    handler.NewPostHandler(service.NewPostService(postRepo, tagRepo, postTagRepo, commentRepo, renderer)),
		Tag:     handler.NewTagHandler(service.NewTagService(tagRepo, postTagRepo)),
		Topic:   handler.NewTopicHandler(service.NewTopicService(topicRepo)),
		Comment: handler.NewCommentHandler(service.NewCommentService(commentRepo, postRepo)),
		Value:   handler.NewValueHandler(service.NewValueService(valueRepo)),
		Setting: handler.NewSettingHandler(service.NewSettingService(settingRepo, d.Cache)),
		Upload:  handler.NewUploadHandler(service.NewUploadService(d.Storage, d.MaxUploadBytes)),
		Health:  handler.NewHealthHandler(d.DB, d.Cache),
	}
}

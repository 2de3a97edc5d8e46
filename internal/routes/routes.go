package routes

import (
	"github.com/atareao/bloc/internal/handler"
	"github.com/atareao/bloc/internal/middleware"
	"github.com/atareao/bloc/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/atareao/bloc/docs" // swagger 문서 등록
)

// Handlers 라우터에 연결할 핸들러 묶음
type Handlers struct {
	Post    *handler.PostHandler
	Tag     *handler.TagHandler
	Topic   *handler.TopicHandler
	Comment *handler.CommentHandler
	Value   *handler.ValueHandler
	Setting *handler.SettingHandler
	Upload  *handler.UploadHandler
	Health  *handler.HealthHandler
}

// Setup configures operational endpoints and the /api/v1 routes.
// Mutating routes go through JWTAuth, which passes everything when jwtManager is nil.
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager) {
	router.GET("/health", h.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	auth := middleware.JWTAuth(jwtManager)

	// Posts
	posts := api.Group("/posts")
	posts.GET("", h.Post.ListPosts)
	posts.GET("/:id", h.Post.GetPost)
	posts.GET("/:id/html", h.Post.GetHTMLPost)
	posts.GET("/:id/tags", h.Post.ListPostTags)
	posts.GET("/slug/:slug", h.Post.GetPostBySlug)
	posts.GET("/slug/:slug/html", h.Post.GetHTMLPostBySlug)
	posts.POST("", auth, h.Post.CreatePost)
	posts.PATCH("/:id", auth, h.Post.UpdatePost)
	posts.DELETE("/:id", auth, h.Post.DeletePost)

	// Tags
	tags := api.Group("/tags")
	tags.GET("", h.Tag.ListTags)
	tags.GET("/:id", h.Tag.GetTag)
	tags.POST("", auth, h.Tag.CreateTag)
	tags.PATCH("/:id", auth, h.Tag.UpdateTag)
	tags.DELETE("/:id", auth, h.Tag.DeleteTag)

	// Topics
	topics := api.Group("/topics")
	topics.GET("", h.Topic.ListTopics)
	topics.GET("/:id", h.Topic.GetTopic)
	topics.POST("", auth, h.Topic.CreateTopic)
	topics.PATCH("/:id", auth, h.Topic.UpdateTopic)
	topics.DELETE("/:id", auth, h.Topic.DeleteTopic)

	// Comments
	comments := api.Group("/comments")
	comments.GET("", h.Comment.ListComments)
	comments.GET("/:id", h.Comment.GetComment)
	comments.POST("", auth, h.Comment.CreateComment)
	comments.PATCH("/:id", auth, h.Comment.UpdateComment)
	comments.DELETE("/:id", auth, h.Comment.DeleteComment)

	// Values
	values := api.Group("/values")
	values.GET("", h.Value.ListValues)
	values.GET("/reference/:reference", h.Value.ListByReference)
	values.GET("/:id", h.Value.GetValue)
	values.POST("", auth, h.Value.CreateValue)
	values.PATCH("/:id", auth, h.Value.UpdateValue)
	values.DELETE("/:id", auth, h.Value.DeleteValue)

	// Settings (key 기반)
	settings := api.Group("/settings")
	settings.GET("", h.Setting.ListSettings)
	settings.GET("/:key", h.Setting.GetSetting)
	settings.POST("", auth, h.Setting.CreateSetting)
	settings.PATCH("/:key", auth, h.Setting.UpdateSetting)
	settings.DELETE("/:key", auth, h.Setting.DeleteSetting)

	// Uploads
	api.POST("/uploads", auth, h.Upload.Upload)
}

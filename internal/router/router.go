package router

import (
	"content_proxy_v1/internal/config"
	"content_proxy_v1/internal/controller"
	"content_proxy_v1/internal/middleware"
	"content_proxy_v1/pkg/logger"
	"content_proxy_v1/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "content_proxy_v1/docs"
)

// Controllers 路由用到的所有 Controller
type Controllers struct {
	YouTube   *controller.YouTubeController
	X         *controller.XController
	Instagram *controller.InstagramController
	Email     *controller.EmailController
	Health    *controller.HealthController
}

// SetupRouter 创建 gin 引擎并注册中间件和路由
func SetupRouter(cfg *config.Config, ctl *Controllers, log logger.Logger, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Instrument(m),
		// Recovery 放在日志和指标之后，panic 产生的 500 也能被记录
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS.AllowOrigins),
	)

	InitRoutes(r, ctl, cfg.Server.LegacyRoutes)

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}
	return r
}

// InitRoutes 注册所有业务路由
func InitRoutes(r *gin.Engine, ctl *Controllers, legacy bool) {
	// Swagger 文档路由
	// 访问 http://127.0.0.1:8000/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// GET /ping
	r.GET("/ping", ctl.Health.Ping)

	// YouTube 组
	youtube := r.Group("/youtube")
	{
		youtube.POST("/generate-script", ctl.YouTube.GenerateScript)
		youtube.POST("/suggest-channel-name", ctl.YouTube.SuggestChannelName)
		youtube.POST("/suggest-niche", ctl.YouTube.SuggestNiche)
		youtube.POST("/generate-video-ideas", ctl.YouTube.GenerateVideoIdeas)
		youtube.POST("/generate-post-content", ctl.YouTube.GeneratePostContent)
	}

	// X 组
	x := r.Group("/x")
	{
		x.POST("/generate-tweet", ctl.X.GenerateTweet)
	}

	// Instagram 组
	instagram := r.Group("/instagram")
	{
		instagram.POST("/generate-post", ctl.Instagram.GeneratePost)
		instagram.POST("/generate-story", ctl.Instagram.GenerateStory)
		instagram.POST("/suggest-channel-name", ctl.Instagram.SuggestChannelName)
		instagram.POST("/generate-video-ideas", ctl.Instagram.GenerateVideoIdeas)
		instagram.POST("/suggest-niche", ctl.Instagram.SuggestNiche)
		instagram.POST("/generate-reel-ideas", ctl.Instagram.GenerateReelIdeas)
		instagram.POST("/generate-video-script", ctl.Instagram.GenerateVideoScript)
	}

	// Email 组
	email := r.Group("/email")
	{
		email.POST("/generate-email", ctl.Email.GenerateEmail)
	}

	// 旧版前端使用的无前缀路由，默认关闭
	if legacy {
		r.POST("/generate-script", ctl.YouTube.GenerateScript)
		r.POST("/suggest-channel-name", ctl.YouTube.SuggestChannelName)
		r.POST("/suggest-niche", ctl.YouTube.SuggestNiche)
	}
}

package controller

import (
	"net/http"

	"content_proxy_v1/internal/api/dto"
	"content_proxy_v1/internal/service"

	"github.com/gin-gonic/gin"
)

// YouTubeController YouTube 内容生成
type YouTubeController struct {
	contentService service.ContentGenerator
}

func NewYouTubeController(contentService service.ContentGenerator) *YouTubeController {
	return &YouTubeController{contentService: contentService}
}

// ==================== Handler 实现 ====================

// GenerateScript 生成视频脚本
// @Summary 生成 YouTube 视频脚本
// @Tags YouTube
// @Accept json
// @Produce json
// @Param request body dto.ScriptReq true "主题与风格"
// @Success 200 {object} dto.ScriptResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /youtube/generate-script [post]
func (h *YouTubeController) GenerateScript(c *gin.Context) {
	var req dto.ScriptReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	script, err := h.contentService.GenerateScript(c.Request.Context(), req.Topic, req.Style)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ScriptResp{Script: script})
}

// SuggestChannelName 频道名建议
// @Summary 建议 YouTube 频道名
// @Tags YouTube
// @Accept json
// @Produce json
// @Param request body dto.ChannelNameReq true "主题与关键词"
// @Success 200 {object} dto.ChannelNameResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /youtube/suggest-channel-name [post]
func (h *YouTubeController) SuggestChannelName(c *gin.Context) {
	var req dto.ChannelNameReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	name, err := h.contentService.SuggestChannelName(c.Request.Context(), req.Topic, req.Keywords)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChannelNameResp{ChannelName: name})
}

// SuggestNiche 细分领域建议
// @Summary 根据兴趣建议 YouTube 细分领域
// @Tags YouTube
// @Accept json
// @Produce json
// @Param request body dto.NicheSuggestionReq true "兴趣"
// @Success 200 {object} dto.NicheSuggestionResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /youtube/suggest-niche [post]
func (h *YouTubeController) SuggestNiche(c *gin.Context) {
	var req dto.NicheSuggestionReq
	if !bindRequest(c, &req) || !requireField(c, req.Interests, msgInterestsRequired) {
		return
	}

	niches, err := h.contentService.SuggestNiche(c.Request.Context(), req.Interests)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NicheSuggestionResp{NicheSuggestions: niches})
}

// GenerateVideoIdeas 视频选题
// @Summary 生成 YouTube 视频选题
// @Tags YouTube
// @Accept json
// @Produce json
// @Param request body dto.VideoIdeaReq true "主题与关键词"
// @Success 200 {object} dto.VideoIdeaResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /youtube/generate-video-ideas [post]
func (h *YouTubeController) GenerateVideoIdeas(c *gin.Context) {
	var req dto.VideoIdeaReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	ideas, err := h.contentService.GenerateVideoIdeas(c.Request.Context(), req.Topic, req.Keywords)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.VideoIdeaResp{VideoIdeas: ideas})
}

// GeneratePostContent 社区文字帖
// @Summary 生成 YouTube 社区帖
// @Tags YouTube
// @Accept json
// @Produce json
// @Param request body dto.PostContentReq true "主题、关键词与风格"
// @Success 200 {object} dto.PostContentResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /youtube/generate-post-content [post]
func (h *YouTubeController) GeneratePostContent(c *gin.Context) {
	var req dto.PostContentReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	post, err := h.contentService.GeneratePostContent(c.Request.Context(), req.Topic, req.Keywords, req.Style)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PostContentResp{PostContent: post})
}

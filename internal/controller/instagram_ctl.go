package controller

import (
	"net/http"

	"content_proxy_v1/internal/api/dto"
	"content_proxy_v1/internal/service"

	"github.com/gin-gonic/gin"
)

// InstagramController Instagram 内容生成
type InstagramController struct {
	contentService service.ContentGenerator
}

func NewInstagramController(contentService service.ContentGenerator) *InstagramController {
	return &InstagramController{contentService: contentService}
}

// ==================== Handler 实现 ====================

// GeneratePost 帖子文案
// @Summary 生成 Instagram 帖子文案 (含 hashtag)
// @Tags Instagram
// @Accept json
// @Produce json
// @Param request body dto.InstagramPostReq true "主题、关键词与风格"
// @Success 200 {object} dto.PostContentResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /instagram/generate-post [post]
func (h *InstagramController) GeneratePost(c *gin.Context) {
	var req dto.InstagramPostReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	post, err := h.contentService.GenerateInstagramPost(c.Request.Context(), req.Topic, req.Keywords, req.Style)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PostContentResp{PostContent: post})
}

// GenerateStory 快拍文案
// @Summary 生成 Instagram Story 文案
// @Tags Instagram
// @Accept json
// @Produce json
// @Param request body dto.InstagramStoryReq true "主题、关键词与风格"
// @Success 200 {object} dto.StoryContentResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /instagram/generate-story [post]
func (h *InstagramController) GenerateStory(c *gin.Context) {
	var req dto.InstagramStoryReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	story, err := h.contentService.GenerateInstagramStory(c.Request.Context(), req.Topic, req.Keywords, req.Style)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StoryContentResp{StoryContent: story})
}

// SuggestChannelName
// @Summary 建议 Instagram 账号名
// @Tags Instagram
// @Accept json
// @Produce json
// @Param request body dto.InstagramChannelNameReq true "主题与关键词"
// @Success 200 {object} dto.ChannelNameResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /instagram/suggest-channel-name [post]
func (h *InstagramController) SuggestChannelName(c *gin.Context) {
	var req dto.InstagramChannelNameReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	name, err := h.contentService.SuggestInstagramChannelName(c.Request.Context(), req.Topic, req.Keywords)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChannelNameResp{ChannelName: name})
}

// GenerateVideoIdeas
// @Summary 生成 Instagram 视频选题
// @Tags Instagram
// @Accept json
// @Produce json
// @Param request body dto.InstagramVideoIdeaReq true "主题与关键词"
// @Success 200 {object} dto.VideoIdeaResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /instagram/generate-video-ideas [post]
func (h *InstagramController) GenerateVideoIdeas(c *gin.Context) {
	var req dto.InstagramVideoIdeaReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	ideas, err := h.contentService.GenerateInstagramVideoIdeas(c.Request.Context(), req.Topic, req.Keywords)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.VideoIdeaResp{VideoIdeas: ideas})
}

// SuggestNiche
// @Summary 根据兴趣建议 Instagram 细分领域
// @Tags Instagram
// @Accept json
// @Produce json
// @Param request body dto.InstagramNicheSuggestReq true "兴趣"
// @Success 200 {object} dto.NicheSuggestionResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /instagram/suggest-niche [post]
func (h *InstagramController) SuggestNiche(c *gin.Context) {
	var req dto.InstagramNicheSuggestReq
	if !bindRequest(c, &req) || !requireField(c, req.Interests, msgInterestsRequired) {
		return
	}

	niches, err := h.contentService.SuggestInstagramNiche(c.Request.Context(), req.Interests)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NicheSuggestionResp{NicheSuggestions: niches})
}

// GenerateReelIdeas Reels 选题
// @Summary 生成 Instagram Reels 选题
// @Tags Instagram
// @Accept json
// @Produce json
// @Param request body dto.InstagramReelIdeaReq true "主题与关键词"
// @Success 200 {object} dto.ReelIdeaResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /instagram/generate-reel-ideas [post]
func (h *InstagramController) GenerateReelIdeas(c *gin.Context) {
	var req dto.InstagramReelIdeaReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	ideas, err := h.contentService.GenerateInstagramReelIdeas(c.Request.Context(), req.Topic, req.Keywords)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReelIdeaResp{ReelIdeas: ideas})
}

// GenerateVideoScript 短视频脚本
// @Summary 生成 Instagram 短视频脚本
// @Tags Instagram
// @Accept json
// @Produce json
// @Param request body dto.InstagramVideoScriptReq true "主题与风格"
// @Success 200 {object} dto.ScriptResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /instagram/generate-video-script [post]
func (h *InstagramController) GenerateVideoScript(c *gin.Context) {
	var req dto.InstagramVideoScriptReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	script, err := h.contentService.GenerateInstagramVideoScript(c.Request.Context(), req.Topic, req.Style)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ScriptResp{Script: script})
}

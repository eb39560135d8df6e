package controller

import (
	"net/http"

	"content_proxy_v1/internal/api/dto"
	"content_proxy_v1/internal/service"

	"github.com/gin-gonic/gin"
)

// XController X (Twitter) 推文生成
type XController struct {
	contentService service.ContentGenerator
}

func NewXController(contentService service.ContentGenerator) *XController {
	return &XController{contentService: contentService}
}

// GenerateTweet 生成推文
// @Summary 生成推文 (280 字符以内)
// @Tags X
// @Accept json
// @Produce json
// @Param request body dto.TweetReq true "主题、关键词与风格"
// @Success 200 {object} dto.TweetResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /x/generate-tweet [post]
func (h *XController) GenerateTweet(c *gin.Context) {
	var req dto.TweetReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	tweet, err := h.contentService.GenerateTweet(c.Request.Context(), req.Topic, req.Keywords, req.Style)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TweetResp{Tweet: tweet})
}

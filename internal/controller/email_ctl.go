package controller

import (
	"net/http"

	"content_proxy_v1/internal/api/dto"
	"content_proxy_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type EmailController struct {
	contentService service.ContentGenerator
}

func NewEmailController(contentService service.ContentGenerator) *EmailController {
	return &EmailController{contentService: contentService}
}

// GenerateEmail 生成邮件正文
// @Summary 生成邮件正文
// @Tags Email
// @Accept json
// @Produce json
// @Param request body dto.EmailReq true "主题、关键词与风格"
// @Success 200 {object} dto.EmailResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /email/generate-email [post]
func (h *EmailController) GenerateEmail(c *gin.Context) {
	var req dto.EmailReq
	if !bindRequest(c, &req) || !requireField(c, req.Topic, msgTopicRequired) {
		return
	}

	email, err := h.contentService.GenerateEmail(c.Request.Context(), req.Topic, req.Keywords, req.Style)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EmailResp{EmailContent: email})
}

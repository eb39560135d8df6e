package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"content_proxy_v1/pkg/logger"
	"content_proxy_v1/pkg/metrics"
	"content_proxy_v1/pkg/utils"

	"github.com/go-resty/resty/v2"
)

// ==================== 配置 ====================

// GeminiConfig Gemini 调用配置
type GeminiConfig struct {
	ApiKey string
	Model  string
}

// ==================== 上游协议 ====================

// GeminiRequest generateContent 请求体
type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

// geminiResponse 只解析需要的字段；Text 用指针区分 "缺失" 与 "空串"
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ==================== 服务 ====================

// GeminiService 单次同步调用 Gemini，不重试
type GeminiService struct {
	Config  *GeminiConfig
	client  *resty.Client
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewGeminiService 创建 Gemini 服务
// client 需已设置 BaseURL (如 https://generativelanguage.googleapis.com/v1beta)
func NewGeminiService(cfg *GeminiConfig, client *resty.Client, log logger.Logger, m *metrics.Metrics) *GeminiService {
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if log == nil {
		log = logger.NewNoOp()
	}
	return &GeminiService{
		Config:  cfg,
		client:  client,
		logger:  log.With(map[string]interface{}{"component": "gemini"}),
		metrics: m,
	}
}

// Generate 发送 prompt，返回第一个候选的第一段文本
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	body := GeminiRequest{
		Contents: []GeminiContent{{Parts: []GeminiPart{{Text: prompt}}}},
	}

	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(utils.APIKeyHeader, s.Config.ApiKey).
		SetPathParam("model", s.Config.Model).
		SetBody(body).
		Post("/models/{model}:generateContent")
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.ObserveUpstream(0, elapsed)
		s.logger.Error("gemini request failed", map[string]interface{}{
			"model":   s.Config.Model,
			"latency": elapsed.String(),
			"error":   err,
		})
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	status := resp.StatusCode()
	s.metrics.ObserveUpstream(status, elapsed)
	s.logger.Debug("gemini response", map[string]interface{}{
		"model":   s.Config.Model,
		"status":  status,
		"latency": elapsed.String(),
	})

	if status != http.StatusOK {
		s.logger.Warn("gemini returned non-success status", map[string]interface{}{
			"model":  s.Config.Model,
			"status": status,
		})
		return "", &UpstreamError{StatusCode: status, Body: resp.String()}
	}

	return extractText(resp.Body())
}

// extractText 解析 candidates[0].content.parts[0].text
func extractText(raw []byte) (string, error) {
	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Candidates) == 0 {
		return "", ErrMalformedResponse
	}
	parts := parsed.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == nil {
		return "", ErrMalformedResponse
	}
	return *parts[0].Text, nil
}

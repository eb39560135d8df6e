package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// APIKeyHeader Gemini 鉴权头
const APIKeyHeader = "x-goog-api-key"

// ClientOptions 上游客户端参数
type ClientOptions struct {
	BaseURL string
	Timeout time.Duration // 0 表示不设置超时，依赖请求 ctx
	Debug   bool
}

// NewGeminiClient 创建访问 Gemini 的 Resty 客户端
// 全系统唯一的上游网络入口，可被多个 goroutine 并发复用
func NewGeminiClient(opts ClientOptions) *resty.Client {
	client := resty.New().
		SetDebug(opts.Debug).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "Content-Proxy-Go/1.0")

	// debug 日志里隐藏 API Key (RequestLog.Header 是副本，不影响实际请求)
	client.OnRequestLog(redactAPIKey)

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	// 不重试：一次请求只对应一次上游调用
	client.SetRetryCount(0)

	return client
}

func redactAPIKey(l *resty.RequestLog) error {
	if l.Header.Get(APIKeyHeader) != "" {
		l.Header.Set(APIKeyHeader, "***")
	}
	return nil
}

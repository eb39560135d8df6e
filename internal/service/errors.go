package service

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse 上游返回 2xx 但缺少 candidates[0].content.parts[0].text
var ErrMalformedResponse = errors.New("Error processing response from Gemini API")

// UpstreamError 上游返回非成功状态码
// StatusCode 与 Body 原样透传给调用方
type UpstreamError struct {
	StatusCode int
	Body       string
	Subject    string // 生成内容的类型描述，如 "script"、"Instagram reel ideas"
}

func (e *UpstreamError) Error() string {
	subject := e.Subject
	if subject == "" {
		subject = "content"
	}
	return fmt.Sprintf("Error generating %s with Gemini API: %s", subject, e.Body)
}

package service

import (
	"context"
	"errors"
)

// TextGenerator 上游文本生成能力 (GeminiService 实现，测试中可替换)
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ContentGenerator 各平台内容生成能力，Controller 只依赖此接口
type ContentGenerator interface {
	// YouTube
	GenerateScript(ctx context.Context, topic, style string) (string, error)
	SuggestChannelName(ctx context.Context, topic, keywords string) (string, error)
	SuggestNiche(ctx context.Context, interests string) (string, error)
	GenerateVideoIdeas(ctx context.Context, topic, keywords string) (string, error)
	GeneratePostContent(ctx context.Context, topic, keywords, style string) (string, error)
	// X
	GenerateTweet(ctx context.Context, topic, keywords, style string) (string, error)
	// Instagram
	GenerateInstagramPost(ctx context.Context, topic, keywords, style string) (string, error)
	GenerateInstagramStory(ctx context.Context, topic, keywords, style string) (string, error)
	SuggestInstagramChannelName(ctx context.Context, topic, keywords string) (string, error)
	GenerateInstagramVideoIdeas(ctx context.Context, topic, keywords string) (string, error)
	SuggestInstagramNiche(ctx context.Context, interests string) (string, error)
	GenerateInstagramReelIdeas(ctx context.Context, topic, keywords string) (string, error)
	GenerateInstagramVideoScript(ctx context.Context, topic, style string) (string, error)
	// Email
	GenerateEmail(ctx context.Context, topic, keywords, style string) (string, error)
}

// ContentService 模板渲染 + 单次上游调用
type ContentService struct {
	generator TextGenerator
}

var _ ContentGenerator = (*ContentService)(nil)

// NewContentService 创建内容服务
func NewContentService(generator TextGenerator) *ContentService {
	return &ContentService{generator: generator}
}

// ==================== YouTube ====================

func (s *ContentService) GenerateScript(ctx context.Context, topic, style string) (string, error) {
	return s.generate(ctx, "script", ScriptPrompt(topic, styleOrDefault(style, StyleInformative)))
}

func (s *ContentService) SuggestChannelName(ctx context.Context, topic, keywords string) (string, error) {
	return s.generate(ctx, "channel name", ChannelNamePrompt(topic, keywords))
}

func (s *ContentService) SuggestNiche(ctx context.Context, interests string) (string, error) {
	return s.generate(ctx, "niche suggestions", NichePrompt(interests))
}

func (s *ContentService) GenerateVideoIdeas(ctx context.Context, topic, keywords string) (string, error) {
	return s.generate(ctx, "video ideas", VideoIdeasPrompt(topic, keywords))
}

func (s *ContentService) GeneratePostContent(ctx context.Context, topic, keywords, style string) (string, error) {
	return s.generate(ctx, "post content", PostContentPrompt(topic, keywords, styleOrDefault(style, StyleEngaging)))
}

// ==================== X ====================

func (s *ContentService) GenerateTweet(ctx context.Context, topic, keywords, style string) (string, error) {
	return s.generate(ctx, "tweet", TweetPrompt(topic, keywords, styleOrDefault(style, StyleEngaging)))
}

// ==================== Instagram ====================

func (s *ContentService) GenerateInstagramPost(ctx context.Context, topic, keywords, style string) (string, error) {
	return s.generate(ctx, "Instagram post content",
		InstagramPostPrompt(topic, keywords, styleOrDefault(style, StyleEngaging)))
}

func (s *ContentService) GenerateInstagramStory(ctx context.Context, topic, keywords, style string) (string, error) {
	return s.generate(ctx, "Instagram story content",
		InstagramStoryPrompt(topic, keywords, styleOrDefault(style, StyleEngaging)))
}

func (s *ContentService) SuggestInstagramChannelName(ctx context.Context, topic, keywords string) (string, error) {
	return s.generate(ctx, "Instagram channel name", InstagramChannelNamePrompt(topic, keywords))
}

func (s *ContentService) GenerateInstagramVideoIdeas(ctx context.Context, topic, keywords string) (string, error) {
	return s.generate(ctx, "Instagram video ideas", InstagramVideoIdeasPrompt(topic, keywords))
}

func (s *ContentService) SuggestInstagramNiche(ctx context.Context, interests string) (string, error) {
	return s.generate(ctx, "Instagram niche suggestions", InstagramNichePrompt(interests))
}

func (s *ContentService) GenerateInstagramReelIdeas(ctx context.Context, topic, keywords string) (string, error) {
	return s.generate(ctx, "Instagram reel ideas", InstagramReelIdeasPrompt(topic, keywords))
}

func (s *ContentService) GenerateInstagramVideoScript(ctx context.Context, topic, style string) (string, error) {
	return s.generate(ctx, "Instagram video script",
		InstagramVideoScriptPrompt(topic, styleOrDefault(style, StyleInformative)))
}

// ==================== Email ====================

func (s *ContentService) GenerateEmail(ctx context.Context, topic, keywords, style string) (string, error) {
	return s.generate(ctx, "email content", EmailPrompt(topic, keywords, styleOrDefault(style, StyleProfessional)))
}

// ==================== 内部 ====================

// generate 调用上游，并在上游错误上标注内容类型
func (s *ContentService) generate(ctx context.Context, subject, prompt string) (string, error) {
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		var upErr *UpstreamError
		if errors.As(err, &upErr) {
			upErr.Subject = subject
		}
		return "", err
	}
	return text, nil
}

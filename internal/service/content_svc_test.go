package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator 记录 prompt 并返回预设结果
type fakeGenerator struct {
	prompts []string
	text    string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestContentService_PromptAndResult(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func(s *ContentService) (string, error)
		wantPrompt string
	}{
		{
			name:       "脚本默认风格",
			call:       func(s *ContentService) (string, error) { return s.GenerateScript(ctx, "cooking", "") },
			wantPrompt: ScriptPrompt("cooking", StyleInformative),
		},
		{
			name:       "频道名带关键词",
			call:       func(s *ContentService) (string, error) { return s.SuggestChannelName(ctx, "vegan cooking", "plant-based, easy") },
			wantPrompt: "Suggest a unique and catchy YouTube channel name about 'vegan cooking'. Include these keywords: plant-based, easy.",
		},
		{
			name:       "YouTube 细分领域",
			call:       func(s *ContentService) (string, error) { return s.SuggestNiche(ctx, "hiking, photography") },
			wantPrompt: NichePrompt("hiking, photography"),
		},
		{
			name:       "视频选题",
			call:       func(s *ContentService) (string, error) { return s.GenerateVideoIdeas(ctx, "travel", "") },
			wantPrompt: "Suggest several creative and engaging video ideas about 'travel'.",
		},
		{
			name:       "社区帖默认 engaging",
			call:       func(s *ContentService) (string, error) { return s.GeneratePostContent(ctx, "travel", "", "") },
			wantPrompt: PostContentPrompt("travel", "", StyleEngaging),
		},
		{
			name:       "推文指定风格",
			call:       func(s *ContentService) (string, error) { return s.GenerateTweet(ctx, "AI", "", "witty") },
			wantPrompt: "Generate a concise tweet about 'AI' in a 'witty' style. Keep it under 280 characters.",
		},
		{
			name:       "Instagram 帖子",
			call:       func(s *ContentService) (string, error) { return s.GenerateInstagramPost(ctx, "coffee", "latte", "") },
			wantPrompt: InstagramPostPrompt("coffee", "latte", StyleEngaging),
		},
		{
			name:       "Instagram Story",
			call:       func(s *ContentService) (string, error) { return s.GenerateInstagramStory(ctx, "coffee", "", "") },
			wantPrompt: InstagramStoryPrompt("coffee", "", StyleEngaging),
		},
		{
			name:       "Instagram 账号名",
			call:       func(s *ContentService) (string, error) { return s.SuggestInstagramChannelName(ctx, "coffee", "") },
			wantPrompt: InstagramChannelNamePrompt("coffee", ""),
		},
		{
			name:       "Instagram 视频选题",
			call:       func(s *ContentService) (string, error) { return s.GenerateInstagramVideoIdeas(ctx, "coffee", "") },
			wantPrompt: InstagramVideoIdeasPrompt("coffee", ""),
		},
		{
			name:       "Instagram 细分领域",
			call:       func(s *ContentService) (string, error) { return s.SuggestInstagramNiche(ctx, "yoga") },
			wantPrompt: InstagramNichePrompt("yoga"),
		},
		{
			name:       "Instagram Reels",
			call:       func(s *ContentService) (string, error) { return s.GenerateInstagramReelIdeas(ctx, "coffee", "") },
			wantPrompt: InstagramReelIdeasPrompt("coffee", ""),
		},
		{
			name:       "Instagram 短视频脚本默认 informative",
			call:       func(s *ContentService) (string, error) { return s.GenerateInstagramVideoScript(ctx, "coffee", " ") },
			wantPrompt: InstagramVideoScriptPrompt("coffee", StyleInformative),
		},
		{
			name:       "邮件默认 professional",
			call:       func(s *ContentService) (string, error) { return s.GenerateEmail(ctx, "launch", "", "") },
			wantPrompt: "Generate an email about 'launch' in a 'professional' style.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: "generated"}
			svc := NewContentService(gen)

			got, err := tt.call(svc)
			require.NoError(t, err)
			assert.Equal(t, "generated", got)
			require.Len(t, gen.prompts, 1, "每次请求只调用一次上游")
			assert.Equal(t, tt.wantPrompt, gen.prompts[0])
		})
	}
}

func TestContentService_UpstreamErrorSubject(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(s *ContentService) (string, error)
		subject string
	}{
		{"script", func(s *ContentService) (string, error) { return s.GenerateScript(ctx, "t", "") }, "script"},
		{"channel", func(s *ContentService) (string, error) { return s.SuggestChannelName(ctx, "t", "") }, "channel name"},
		{"niche", func(s *ContentService) (string, error) { return s.SuggestNiche(ctx, "i") }, "niche suggestions"},
		{"video ideas", func(s *ContentService) (string, error) { return s.GenerateVideoIdeas(ctx, "t", "") }, "video ideas"},
		{"post", func(s *ContentService) (string, error) { return s.GeneratePostContent(ctx, "t", "", "") }, "post content"},
		{"tweet", func(s *ContentService) (string, error) { return s.GenerateTweet(ctx, "t", "", "") }, "tweet"},
		{"ig post", func(s *ContentService) (string, error) { return s.GenerateInstagramPost(ctx, "t", "", "") }, "Instagram post content"},
		{"ig story", func(s *ContentService) (string, error) { return s.GenerateInstagramStory(ctx, "t", "", "") }, "Instagram story content"},
		{"ig channel", func(s *ContentService) (string, error) { return s.SuggestInstagramChannelName(ctx, "t", "") }, "Instagram channel name"},
		{"ig video ideas", func(s *ContentService) (string, error) { return s.GenerateInstagramVideoIdeas(ctx, "t", "") }, "Instagram video ideas"},
		{"ig niche", func(s *ContentService) (string, error) { return s.SuggestInstagramNiche(ctx, "i") }, "Instagram niche suggestions"},
		{"ig reels", func(s *ContentService) (string, error) { return s.GenerateInstagramReelIdeas(ctx, "t", "") }, "Instagram reel ideas"},
		{"ig script", func(s *ContentService) (string, error) { return s.GenerateInstagramVideoScript(ctx, "t", "") }, "Instagram video script"},
		{"email", func(s *ContentService) (string, error) { return s.GenerateEmail(ctx, "t", "", "") }, "email content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{err: &UpstreamError{StatusCode: 500, Body: "boom"}}
			svc := NewContentService(gen)

			_, err := tt.call(svc)
			var upErr *UpstreamError
			require.True(t, errors.As(err, &upErr))
			assert.Equal(t, tt.subject, upErr.Subject)
			assert.Equal(t, "Error generating "+tt.subject+" with Gemini API: boom", err.Error())
		})
	}
}

func TestContentService_PassesOtherErrors(t *testing.T) {
	gen := &fakeGenerator{err: ErrMalformedResponse}
	svc := NewContentService(gen)

	_, err := svc.GenerateTweet(context.Background(), "t", "", "")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

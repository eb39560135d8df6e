package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompts(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "脚本",
			got:  ScriptPrompt("vegan cooking", "informative"),
			want: "You are an expert script writer who creates high quality video scripts.\n\n" +
				"Generate a video script about 'vegan cooking' in a 'informative' style.",
		},
		{
			name: "频道名无关键词",
			got:  ChannelNamePrompt("vegan cooking", ""),
			want: "Suggest a unique and catchy YouTube channel name about 'vegan cooking'.",
		},
		{
			name: "频道名关键词两端空白被去掉",
			got:  ChannelNamePrompt("vegan cooking", "  plant-based  "),
			want: "Suggest a unique and catchy YouTube channel name about 'vegan cooking'. Include these keywords: plant-based.",
		},
		{
			name: "关键词只有空白视为未传",
			got:  VideoIdeasPrompt("travel", "   "),
			want: "Suggest several creative and engaging video ideas about 'travel'.",
		},
		{
			name: "YouTube 细分领域",
			got:  NichePrompt("hiking"),
			want: "You are an expert in identifying profitable and trending niches.\n\n" +
				"Based on the following interests: hiking, suggest several specific YouTube channel niches " +
				"that could be successful, along with reasons why.",
		},
		{
			name: "Instagram 细分领域",
			got:  InstagramNichePrompt("hiking"),
			want: "You are an expert in identifying profitable and trending niches.\n\n" +
				"Based on the following interests: hiking, suggest several specific Instagram channel niches " +
				"that could be successful, along with reasons why.",
		},
		{
			name: "社区帖",
			got:  PostContentPrompt("travel", "tips", "engaging"),
			want: "Generate a YouTube text post about 'travel' in a 'engaging' style. Include these keywords: tips.",
		},
		{
			name: "推文",
			got:  TweetPrompt("AI", "llm", "engaging"),
			want: "Generate a concise tweet about 'AI' in a 'engaging' style. Keep it under 280 characters. Include these keywords: llm.",
		},
		{
			name: "Instagram 帖子",
			got:  InstagramPostPrompt("coffee", "latte", "engaging"),
			want: "Generate engaging content for an Instagram post about 'coffee' in a 'engaging' style. " +
				"Include relevant hashtags. Consider these keywords: latte.",
		},
		{
			name: "Instagram Story",
			got:  InstagramStoryPrompt("coffee", "", "fun"),
			want: "Generate engaging content for an Instagram story about 'coffee' in a 'fun' style. " +
				"The content should be concise and attention-grabbing.",
		},
		{
			name: "Instagram 账号名",
			got:  InstagramChannelNamePrompt("coffee", "beans"),
			want: "Suggest a unique and catchy Instagram channel name about 'coffee'. Include these keywords: beans.",
		},
		{
			name: "Instagram 视频选题",
			got:  InstagramVideoIdeasPrompt("coffee", "beans"),
			want: "Suggest several creative and engaging video ideas for Instagram about 'coffee'. Consider these keywords: beans.",
		},
		{
			name: "Instagram Reels",
			got:  InstagramReelIdeasPrompt("coffee", ""),
			want: "Suggest several creative and engaging video reel ideas for Instagram about 'coffee'. " +
				"Focus on short, attention-grabbing concepts.",
		},
		{
			name: "Instagram 短视频脚本",
			got:  InstagramVideoScriptPrompt("coffee", "informative"),
			want: "You are an expert script writer who creates high quality video scripts for Instagram.\n\n" +
				"Generate a video script about 'coffee' in a 'informative' style.\n" +
				"Make it concise and suitable for a short video.",
		},
		{
			name: "邮件",
			got:  EmailPrompt("launch", "beta", "professional"),
			want: "Generate an email about 'launch' in a 'professional' style. Include these keywords: beta.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestStyleOrDefault(t *testing.T) {
	assert.Equal(t, StyleEngaging, styleOrDefault("", StyleEngaging))
	assert.Equal(t, StyleEngaging, styleOrDefault("  ", StyleEngaging))
	assert.Equal(t, "funny", styleOrDefault("funny", StyleEngaging))
}

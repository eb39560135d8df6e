package service

import (
	"fmt"
	"strings"
)

// ==================== 默认风格 ====================

const (
	StyleInformative  = "informative"
	StyleEngaging     = "engaging"
	StyleProfessional = "professional"
)

// ==================== 关键词子句 ====================

// keywordClause 关键词为空时返回空串
type keywordClause func(keywords string) string

func includeKeywords(keywords string) string {
	if keywords == "" {
		return ""
	}
	return fmt.Sprintf(" Include these keywords: %s.", keywords)
}

func considerKeywords(keywords string) string {
	if keywords == "" {
		return ""
	}
	return fmt.Sprintf(" Consider these keywords: %s.", keywords)
}

func withKeywords(base, keywords string, clause keywordClause) string {
	return base + clause(strings.TrimSpace(keywords))
}

// ==================== YouTube ====================

// ScriptPrompt 视频脚本
func ScriptPrompt(topic, style string) string {
	return fmt.Sprintf("You are an expert script writer who creates high quality video scripts.\n\n"+
		"Generate a video script about '%s' in a '%s' style.", topic, style)
}

// ChannelNamePrompt YouTube 频道名
func ChannelNamePrompt(topic, keywords string) string {
	return withKeywords(
		fmt.Sprintf("Suggest a unique and catchy YouTube channel name about '%s'.", topic),
		keywords, includeKeywords)
}

// NichePrompt YouTube 细分领域建议
func NichePrompt(interests string) string {
	return nichePrompt("YouTube", interests)
}

// VideoIdeasPrompt YouTube 视频选题
func VideoIdeasPrompt(topic, keywords string) string {
	return withKeywords(
		fmt.Sprintf("Suggest several creative and engaging video ideas about '%s'.", topic),
		keywords, considerKeywords)
}

// PostContentPrompt YouTube 社区文字帖
func PostContentPrompt(topic, keywords, style string) string {
	return withKeywords(
		fmt.Sprintf("Generate a YouTube text post about '%s' in a '%s' style.", topic, style),
		keywords, includeKeywords)
}

// ==================== X ====================

// TweetPrompt 推文，限制 280 字符
func TweetPrompt(topic, keywords, style string) string {
	return withKeywords(
		fmt.Sprintf("Generate a concise tweet about '%s' in a '%s' style. Keep it under 280 characters.", topic, style),
		keywords, includeKeywords)
}

// ==================== Instagram ====================

func InstagramPostPrompt(topic, keywords, style string) string {
	return withKeywords(
		fmt.Sprintf("Generate engaging content for an Instagram post about '%s' in a '%s' style. Include relevant hashtags.", topic, style),
		keywords, considerKeywords)
}

func InstagramStoryPrompt(topic, keywords, style string) string {
	return withKeywords(
		fmt.Sprintf("Generate engaging content for an Instagram story about '%s' in a '%s' style. "+
			"The content should be concise and attention-grabbing.", topic, style),
		keywords, considerKeywords)
}

func InstagramChannelNamePrompt(topic, keywords string) string {
	return withKeywords(
		fmt.Sprintf("Suggest a unique and catchy Instagram channel name about '%s'.", topic),
		keywords, includeKeywords)
}

func InstagramVideoIdeasPrompt(topic, keywords string) string {
	return withKeywords(
		fmt.Sprintf("Suggest several creative and engaging video ideas for Instagram about '%s'.", topic),
		keywords, considerKeywords)
}

func InstagramNichePrompt(interests string) string {
	return nichePrompt("Instagram", interests)
}

func InstagramReelIdeasPrompt(topic, keywords string) string {
	return withKeywords(
		fmt.Sprintf("Suggest several creative and engaging video reel ideas for Instagram about '%s'. "+
			"Focus on short, attention-grabbing concepts.", topic),
		keywords, considerKeywords)
}

func InstagramVideoScriptPrompt(topic, style string) string {
	return fmt.Sprintf("You are an expert script writer who creates high quality video scripts for Instagram.\n\n"+
		"Generate a video script about '%s' in a '%s' style.\n"+
		"Make it concise and suitable for a short video.", topic, style)
}

// ==================== Email ====================

// EmailPrompt 邮件正文
func EmailPrompt(topic, keywords, style string) string {
	return withKeywords(
		fmt.Sprintf("Generate an email about '%s' in a '%s' style.", topic, style),
		keywords, includeKeywords)
}

// ==================== 公共模板 ====================

func nichePrompt(platform, interests string) string {
	return fmt.Sprintf("You are an expert in identifying profitable and trending niches.\n\n"+
		"Based on the following interests: %s, suggest several specific %s channel niches "+
		"that could be successful, along with reasons why.", interests, platform)
}

// styleOrDefault 未传或为空时使用端点默认风格
func styleOrDefault(style, def string) string {
	if s := strings.TrimSpace(style); s != "" {
		return s
	}
	return def
}

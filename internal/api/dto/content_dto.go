package dto

// Request DTO (前端传进来的数据)
// 必填字段不使用 binding:"required"，由 Controller 统一返回固定提示语

// TopicStyleReq 只有主题和风格 (脚本类)
type TopicStyleReq struct {
	Topic string `json:"topic"`
	Style string `json:"style"` // 为空时使用端点默认值
}

// TopicKeywordsReq 主题 + 可选关键词 (频道名、选题类)
type TopicKeywordsReq struct {
	Topic    string `json:"topic"`
	Keywords string `json:"keywords"`
}

// TopicKeywordsStyleReq 主题 + 关键词 + 风格 (帖子、推文、邮件类)
type TopicKeywordsStyleReq struct {
	Topic    string `json:"topic"`
	Keywords string `json:"keywords"`
	Style    string `json:"style"`
}

// InterestsReq 兴趣 (细分领域建议)
type InterestsReq struct {
	Interests string `json:"interests"`
}

// 按端点命名的请求类型，方便 Swagger 注释和阅读
type (
	ScriptReq                = TopicStyleReq
	ChannelNameReq           = TopicKeywordsReq
	NicheSuggestionReq       = InterestsReq
	VideoIdeaReq             = TopicKeywordsReq
	PostContentReq           = TopicKeywordsStyleReq
	TweetReq                 = TopicKeywordsStyleReq
	InstagramPostReq         = TopicKeywordsStyleReq
	InstagramStoryReq        = TopicKeywordsStyleReq
	InstagramChannelNameReq  = TopicKeywordsReq
	InstagramVideoIdeaReq    = TopicKeywordsReq
	InstagramNicheSuggestReq = InterestsReq
	InstagramReelIdeaReq     = TopicKeywordsReq
	InstagramVideoScriptReq  = TopicStyleReq
	EmailReq                 = TopicKeywordsStyleReq
)

// Response DTO (返回给前端的数据)

type ScriptResp struct {
	Script string `json:"script"`
}

type ChannelNameResp struct {
	ChannelName string `json:"channel_name"`
}

type NicheSuggestionResp struct {
	NicheSuggestions string `json:"niche_suggestions"`
}

type VideoIdeaResp struct {
	VideoIdeas string `json:"video_ideas"`
}

type PostContentResp struct {
	PostContent string `json:"post_content"`
}

type TweetResp struct {
	Tweet string `json:"tweet"`
}

type StoryContentResp struct {
	StoryContent string `json:"story_content"`
}

type ReelIdeaResp struct {
	ReelIdeas string `json:"reel_ideas"`
}

type EmailResp struct {
	EmailContent string `json:"email_content"`
}

// ErrorResp 错误返回，与原前端约定的 {"detail": "..."} 保持一致
type ErrorResp struct {
	Detail string `json:"detail"`
}

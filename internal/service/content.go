package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// calendarContentTypes 内容日历按天轮换的类型序列
var calendarContentTypes = []string{"engagement", "informative", "promotional", "trending"}

// defaultCalendarTopics 未指定聚焦主题时的默认主题池
var defaultCalendarTopics = []string{"business", "technology", "lifestyle", "motivation", "tips", "trends", "success"}

// optimalCalendarTimes 各平台经验最佳发布时段，未知平台用正午兜底
var optimalCalendarTimes = map[string][]string{
	"instagram": {"9:00 AM", "2:00 PM", "5:00 PM"},
	"twitter":   {"8:00 AM", "12:00 PM", "3:00 PM", "7:00 PM"},
	"linkedin":  {"8:00 AM", "12:00 PM", "1:00 PM", "5:00 PM"},
	"facebook":  {"9:00 AM", "1:00 PM", "3:00 PM"},
}

const calendarMaxDays = 30

// contentTemplates 平台 × 类型的文案模板库，{topic} 为替换占位符
var contentTemplates = map[string]map[string][]string{
	"instagram": {
		"engagement": {
			"🔥 What's your favorite {topic} story? Drop it in the comments! 👇",
			"✨ {topic} fact: Did you know... Share if this blew your mind! 🤯",
			"💭 If you could experience one {topic} adventure, which would it be?",
			"🎨 Tag someone who loves {topic} as much as you do! 💫",
			"🌟 Double tap if {topic} fascinates you! What draws you to it?",
		},
		"informative": {
			"📚 {topic} Deep Dive: Let's explore the fascinating world of...",
			"🔍 Breaking down {topic}: Here's what you need to know...",
			"💡 {topic} Explained: Understanding the basics and beyond...",
			"📖 The Ultimate {topic} Guide: Everything you've ever wondered...",
			"🎓 {topic} 101: Your beginner's guide to understanding...",
		},
		"promotional": {
			"🚀 Ready to dive deeper into {topic}? Check out our latest...",
			"💯 Loving {topic}? You'll absolutely adore this...",
			"✨ For all {topic} enthusiasts, we've got something special...",
			"🔥 New {topic} content alert! Don't miss out on...",
			"🎯 {topic} lovers, this one's for you! Discover...",
		},
		"trending": {
			"🔥 Everyone's talking about {topic} right now! Here's why...",
			"📈 {topic} is trending and we're here for it! Let's discuss...",
			"💫 Joining the {topic} conversation with our take on...",
			"🌟 The {topic} trend explained: What it means and why it matters...",
			"⚡ Riding the {topic} wave! Here's our perspective on...",
		},
	},
	"twitter": {
		"engagement": {
			"Hot take on {topic}: [Your opinion here] What do you think? 🧵",
			"Quick {topic} poll: Which side are you on? Vote below! 👇",
			"Unpopular {topic} opinion: [Share your take] Change my mind 💭",
			"{topic} enthusiasts, assemble! What's your favorite aspect? 🔥",
			"Real talk about {topic}: [Your insight] Who agrees? 🙋",
		},
		"informative": {
			"🧵 {topic} thread: Everything you need to know (1/n)",
			"Breaking: New developments in {topic} that will change everything",
			"📊 {topic} by the numbers: Here are the facts that matter",
			"💡 {topic} tip of the day: [Share valuable insight]",
			"🔍 Deep dive into {topic}: The complete breakdown",
		},
		"promotional": {
			"🚀 Launching our new {topic} resource! Check it out: [link]",
			"📢 Attention {topic} fans! We've got something special for you",
			"💯 Our {topic} guide just dropped! Everything you need: [link]",
			"🎯 For {topic} lovers: Don't miss our latest update",
			"✨ New {topic} content is live! Dive in: [link]",
		},
		"trending": {
			"Why {topic} is trending and what it means for you 🧵",
			"Joining the {topic} conversation with our take 👇",
			"The {topic} trend explained in under 60 seconds ⏰",
			"Everyone's talking {topic} - here's our perspective 💭",
			"Breaking down the {topic} phenomenon 📈",
		},
	},
	"linkedin": {
		"engagement": {
			"What's your experience with {topic}? I'd love to hear your insights in the comments.",
			"Here's an interesting perspective on {topic}. What are your thoughts?",
			"I've been reflecting on {topic} lately. What challenges have you faced?",
			"Let's discuss {topic}: What trends are you seeing in your industry?",
			"Curious about your take on {topic}. How has it impacted your work?",
		},
		"informative": {
			"5 key insights about {topic} that every professional should know",
			"The future of {topic}: What to expect in the next 5 years",
			"How {topic} is transforming the way we work: A comprehensive analysis",
			"Understanding {topic}: A guide for business leaders",
			"The impact of {topic} on modern workplace dynamics",
		},
		"promotional": {
			"Excited to share our latest insights on {topic}. Check out our new resource:",
			"We've been working on something special for {topic} professionals:",
			"Proud to announce our new {topic} initiative. Learn more:",
			"For those interested in {topic}, we've created a comprehensive guide:",
			"Our team has been researching {topic}. Here's what we found:",
		},
		"trending": {
			"Why {topic} is dominating industry conversations right now",
			"The {topic} trend: What it means for business leaders",
			"Breaking down the {topic} phenomenon and its implications",
			"How the {topic} movement is reshaping our industry",
			"Understanding the {topic} trend: Opportunities and challenges",
		},
	},
}

// ContentSuggestion 单次文案建议结果
type ContentSuggestion struct {
	Suggestions []string
	Platform    string
	ContentType string
	Topic       string
	GeneratedBy string
}

// CalendarDay 内容日历单日条目
type CalendarDay struct {
	Day           int
	ContentType   string
	Topic         string
	SuggestedPost string
	BestTime      string
}

// ContentCalendar 内容日历结果
type ContentCalendar struct {
	Days        []CalendarDay
	Platform    string
	TotalDays   int
	GeneratedBy string
}

// ContentService 模板驱动的文案生成服务
// 平台与类型不做校验：未知平台回落 instagram 模板库，未知类型回落通用文案
type ContentService interface {
	// Suggest 生成至多 3 条随机抽样的文案建议
	Suggest(ctx context.Context, platform, contentType, topic string) (*ContentSuggestion, error)

	// Calendar 生成 1~30 天的发布日历，focusTopics 为空用默认主题池
	Calendar(ctx context.Context, platform string, days int, focusTopics []string) (*ContentCalendar, error)
}

type contentService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewContentService(seed int64) ContentService {
	return &contentService{rng: rand.New(rand.NewSource(seed))}
}

func (s *contentService) Suggest(ctx context.Context, platform, contentType, topic string) (*ContentSuggestion, error) {
	templates := templatesFor(platform, contentType)
	if len(templates) == 0 {
		templates = genericSuggestions(topic)
	}
	count := 3
	if len(templates) < count {
		count = len(templates)
	}

	s.mu.Lock()
	order := s.rng.Perm(len(templates))
	s.mu.Unlock()

	suggestions := make([]string, 0, count)
	for _, idx := range order[:count] {
		suggestions = append(suggestions, strings.ReplaceAll(templates[idx], "{topic}", topic))
	}
	return &ContentSuggestion{
		Suggestions: suggestions,
		Platform:    platform,
		ContentType: contentType,
		Topic:       topic,
		GeneratedBy: "template",
	}, nil
}

func (s *contentService) Calendar(ctx context.Context, platform string, days int, focusTopics []string) (*ContentCalendar, error) {
	if days < 1 || days > calendarMaxDays {
		return nil, &OutOfRangeError{Field: "days", Min: 1, Max: calendarMaxDays}
	}
	topics := focusTopics
	if len(topics) == 0 {
		topics = defaultCalendarTopics
	}
	times, ok := optimalCalendarTimes[platform]
	if !ok {
		times = []string{"12:00 PM"}
	}

	calendar := make([]CalendarDay, 0, days)
	for day := 1; day <= days; day++ {
		contentType := calendarContentTypes[(day-1)%len(calendarContentTypes)]

		s.mu.Lock()
		topic := topics[s.rng.Intn(len(topics))]
		bestTime := times[s.rng.Intn(len(times))]
		s.mu.Unlock()

		post := fmt.Sprintf("Create %s content about %s", contentType, topic)
		if suggestion, err := s.Suggest(ctx, platform, contentType, topic); err == nil && len(suggestion.Suggestions) > 0 {
			post = suggestion.Suggestions[0]
		}

		calendar = append(calendar, CalendarDay{
			Day:           day,
			ContentType:   contentType,
			Topic:         topic,
			SuggestedPost: post,
			BestTime:      bestTime,
		})
	}
	return &ContentCalendar{
		Days:        calendar,
		Platform:    platform,
		TotalDays:   days,
		GeneratedBy: "template",
	}, nil
}

// templatesFor 先查平台专属库，缺失时回落 instagram 同类型库
func templatesFor(platform, contentType string) []string {
	if byType, ok := contentTemplates[platform]; ok {
		if templates := byType[contentType]; len(templates) > 0 {
			return templates
		}
	}
	return contentTemplates["instagram"][contentType]
}

func genericSuggestions(topic string) []string {
	return []string{
		fmt.Sprintf("Exploring the fascinating world of %s! What's your take?", topic),
		fmt.Sprintf("Let's dive deep into %s - there's so much to discover!", topic),
		fmt.Sprintf("Sharing some insights about %s that might interest you!", topic),
	}
}

package service

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"sync"
)

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// 关键词提取的常见停用词；进阶引擎额外排除指代词
var (
	commonStopWords = []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
		"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
		"how", "its", "may", "new", "now", "old", "see", "two", "who", "boy",
		"did", "she", "use", "way", "will", "with",
	}
	extraStopWords = []string{"this", "that", "they"}

	basicStopWords    = wordSet(commonStopWords)
	advancedStopWords = wordSet(commonStopWords, extraStopWords)
)

// 基础生成的平台标签库（facebook 回落到 twitter 库）
var basicHashtagTables = map[string]map[string][]string{
	"twitter": {
		"business":   {"#business", "#entrepreneur", "#startup", "#success", "#marketing"},
		"technology": {"#tech", "#innovation", "#AI", "#digital", "#future"},
		"lifestyle":  {"#lifestyle", "#motivation", "#inspiration", "#wellness", "#mindset"},
		"social":     {"#socialmedia", "#content", "#engagement", "#community", "#brand"},
	},
	"instagram": {
		"business":   {"#businessowner", "#entrepreneurlife", "#hustle", "#businesstips", "#success"},
		"technology": {"#technology", "#innovation", "#techlife", "#digital", "#startup"},
		"lifestyle":  {"#lifestyleblogger", "#dailylife", "#inspiration", "#motivation", "#wellness"},
		"social":     {"#socialmediamarketing", "#contentcreator", "#influencer", "#brand", "#marketing"},
	},
	"linkedin": {
		"business":   {"#business", "#leadership", "#professional", "#career", "#networking"},
		"technology": {"#technology", "#innovation", "#digitaltransformation", "#AI", "#tech"},
		"lifestyle":  {"#worklifebalance", "#productivity", "#growth", "#development", "#success"},
		"social":     {"#socialmedia", "#marketing", "#branding", "#content", "#strategy"},
	},
}

// 基础生成的类目判定关键词，按判定优先级排列，默认 business
var (
	techKeywords      = []string{"tech", "digital", "software", "app", "code", "data", "ai", "machine", "learning"}
	lifestyleKeywords = []string{"life", "health", "fitness", "food", "travel", "style", "home"}
	socialKeywords    = []string{"social", "media", "content", "post", "share", "follow", "like"}
)

// 进阶引擎的平台热门标签库（未知平台回落到 instagram）
var trendingHashtagTable = map[string][]string{
	"instagram": {
		"#instagood", "#photooftheday", "#love", "#instadaily", "#picoftheday",
		"#instagram", "#followme", "#instamood", "#style", "#happy",
	},
	"twitter": {
		"#trending", "#news", "#today", "#breaking", "#viral",
		"#discussion", "#opinion", "#tech", "#business", "#life",
	},
	"linkedin": {
		"#leadership", "#innovation", "#business", "#career", "#professional",
		"#networking", "#growth", "#success", "#strategy", "#development",
	},
}

// 进阶引擎的垂类标签库 topic -> platform -> tags
var nicheHashtagTable = map[string]map[string][]string{
	"mythology": {
		"instagram": {"#mythology", "#ancientmyths", "#greekmythology", "#norsemythology", "#legends"},
		"twitter":   {"#mythology", "#myths", "#ancientstories", "#folklore", "#legends"},
		"linkedin":  {"#culturalheritage", "#storytelling", "#history", "#mythology", "#education"},
	},
	"technology": {
		"instagram": {"#tech", "#innovation", "#gadgets", "#AI", "#future"},
		"twitter":   {"#tech", "#innovation", "#AI", "#coding", "#startup"},
		"linkedin":  {"#technology", "#innovation", "#digitaltransformation", "#AI", "#tech"},
	},
	"business": {
		"instagram": {"#business", "#entrepreneur", "#startup", "#success", "#hustle"},
		"twitter":   {"#business", "#entrepreneur", "#startup", "#growth", "#strategy"},
		"linkedin":  {"#business", "#leadership", "#strategy", "#growth", "#innovation"},
	},
}

// 主题识别关键词，按优先级匹配（内容子串或关键词精确命中），无命中为 general
var topicKeywordTable = []struct {
	topic string
	words []string
}{
	{"mythology", []string{"myth", "god", "goddess", "legend", "ancient", "hero", "story", "folklore"}},
	{"technology", []string{"tech", "digital", "software", "app", "code", "data", "ai", "innovation"}},
	{"business", []string{"business", "entrepreneur", "startup", "success", "marketing", "growth"}},
	{"lifestyle", []string{"life", "health", "fitness", "food", "travel", "style", "home", "wellness"}},
	{"education", []string{"learn", "education", "study", "knowledge", "skill", "training", "course"}},
}

var (
	positiveWords = []string{"good", "great", "amazing", "awesome", "love", "best", "perfect", "excellent"}
	negativeWords = []string{"bad", "terrible", "hate", "worst", "awful", "horrible", "disappointing"}
)

// 进阶引擎的平台使用建议（未知平台回落到 instagram）
var hashtagRecommendationTable = map[string][]string{
	"instagram": {
		"Use 20-30 hashtags for maximum reach",
		"Mix popular and niche hashtags",
		"Place hashtags in comments to keep captions clean",
	},
	"twitter": {
		"Use 1-2 hashtags per tweet",
		"Focus on trending and relevant hashtags",
		"Keep hashtags short and memorable",
	},
	"linkedin": {
		"Use 3-5 professional hashtags",
		"Focus on industry-relevant tags",
		"Avoid overly casual hashtags",
	},
}

var hashtagPlatforms = []string{"twitter", "instagram", "linkedin", "facebook"}

var hashtagStrategies = []string{"trending", "niche", "mixed", "branded"}

// HashtagSuggestion 基础生成结果
type HashtagSuggestion struct {
	Platform string
	Tags     []string
	Keywords []string
}

// RatedHashtag 带竞争难度的标签
type RatedHashtag struct {
	Tag        string `json:"hashtag"`
	Difficulty string `json:"difficulty"`
}

// AdvancedHashtags 进阶引擎生成结果
type AdvancedHashtags struct {
	Platform        string
	Strategy        string
	Hashtags        []RatedHashtag
	Keywords        []string
	Topic           string
	Sentiment       string
	Recommendations []string
	Method          string
}

// HashtagService 标签生成服务
// Basic 为关键词+类目规则生成；Advanced 按策略组合热门/垂类/品牌标签并附加内容分析
type HashtagService interface {
	Basic(ctx context.Context, content, platform string, count int) (*HashtagSuggestion, error)
	Advanced(ctx context.Context, content, platform string, count int, strategy string) (*AdvancedHashtags, error)
}

type hashtagService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewHashtagService(seed int64) HashtagService {
	return &hashtagService{rng: rand.New(rand.NewSource(seed))}
}

func (s *hashtagService) Basic(ctx context.Context, content, platform string, count int) (*HashtagSuggestion, error) {
	if count < 1 || count > 20 {
		return nil, &OutOfRangeError{Field: "count", Min: 1, Max: 20}
	}
	p := strings.ToLower(platform)
	if !containsString(hashtagPlatforms, p) {
		return nil, &InvalidOptionError{Field: "platform", Value: platform, Valid: hashtagPlatforms}
	}

	keywords := extractKeywords(content, basicStopWords)
	category := inferCategory(keywords)

	table, ok := basicHashtagTables[p]
	if !ok {
		table = basicHashtagTables["twitter"]
	}

	tags := make([]string, 0, count+3)
	for i, kw := range keywords {
		if i >= 3 {
			break
		}
		tags = append(tags, "#"+kw)
	}
	tags = append(tags, table[category]...)
	tags = dedupStrings(tags)
	if len(tags) > count {
		tags = tags[:count]
	}

	return &HashtagSuggestion{Platform: p, Tags: tags, Keywords: keywords}, nil
}

func (s *hashtagService) Advanced(ctx context.Context, content, platform string, count int, strategy string) (*AdvancedHashtags, error) {
	if count < 1 || count > 30 {
		return nil, &OutOfRangeError{Field: "count", Min: 1, Max: 30}
	}
	p := strings.ToLower(platform)
	if !containsString(hashtagPlatforms, p) {
		return nil, &InvalidOptionError{Field: "platform", Value: platform, Valid: hashtagPlatforms}
	}
	strat := strings.ToLower(strategy)
	if !containsString(hashtagStrategies, strat) {
		return nil, &InvalidOptionError{Field: "strategy", Value: strategy, Valid: hashtagStrategies}
	}

	keywords := extractKeywords(content, advancedStopWords)
	topic := identifyTopic(content, keywords)

	var tags []string
	switch strat {
	case "trending":
		tags = s.sampleTrending(p, count)
	case "niche":
		tags = nicheHashtags(topic, p, count)
	case "branded":
		tags = brandedHashtags(keywords, count)
	default: // mixed
		tags = s.mixedHashtags(topic, p, keywords, count)
	}

	rated := make([]RatedHashtag, len(tags))
	for i, tag := range tags {
		rated[i] = RatedHashtag{Tag: tag, Difficulty: hashtagDifficulty(tag)}
	}

	return &AdvancedHashtags{
		Platform:        p,
		Strategy:        strat,
		Hashtags:        rated,
		Keywords:        keywords,
		Topic:           topic,
		Sentiment:       analyzeSentiment(content),
		Recommendations: recommendationsFor(p),
		Method:          "advanced_engine",
	}, nil
}

// sampleTrending 从平台热门库无放回抽样
func (s *hashtagService) sampleTrending(platform string, count int) []string {
	table, ok := trendingHashtagTable[platform]
	if !ok {
		table = trendingHashtagTable["instagram"]
	}
	if count > len(table) {
		count = len(table)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, count)
	for _, idx := range s.rng.Perm(len(table))[:count] {
		out = append(out, table[idx])
	}
	return out
}

func nicheHashtags(topic, platform string, count int) []string {
	tags := nicheHashtagTable[topic][platform]
	if len(tags) == 0 {
		tags = []string{"#" + topic, "#" + topic + "community", "#" + topic + "lovers", "#" + topic + "tips"}
	}
	if len(tags) > count {
		tags = tags[:count]
	}
	return tags
}

func brandedHashtags(keywords []string, count int) []string {
	out := make([]string, 0, count)
	for _, kw := range keywords {
		out = append(out, "#"+kw)
		if len(out) >= count {
			break
		}
	}
	return out
}

// mixedHashtags 40% 热门 + 40% 垂类 + 余量品牌词，整体去重后截断
func (s *hashtagService) mixedHashtags(topic, platform string, keywords []string, count int) []string {
	share := count * 40 / 100
	if share < 1 {
		share = 1
	}
	tags := s.sampleTrending(platform, share)
	tags = append(tags, nicheHashtags(topic, platform, share)...)
	if rest := count - len(tags); rest > 0 {
		tags = append(tags, brandedHashtags(keywords, rest)...)
	}
	tags = dedupStrings(tags)
	if len(tags) > count {
		tags = tags[:count]
	}
	return tags
}

// hashtagDifficulty 按长度估算竞争度：越长越冷门
func hashtagDifficulty(tag string) string {
	switch {
	case len(tag) > 20:
		return "low"
	case len(tag) > 15:
		return "medium"
	default:
		return "high"
	}
}

func analyzeSentiment(content string) string {
	lower := strings.ToLower(content)
	positive, negative := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}
	switch {
	case positive > negative:
		return "positive"
	case negative > positive:
		return "negative"
	default:
		return "neutral"
	}
}

func recommendationsFor(platform string) []string {
	recs, ok := hashtagRecommendationTable[platform]
	if !ok {
		recs = hashtagRecommendationTable["instagram"]
	}
	return recs
}

// extractKeywords 提取小写英文词：长度 >3、剔除停用词、去重保序、上限 10
func extractKeywords(content string, stop map[string]struct{}) []string {
	words := wordPattern.FindAllString(strings.ToLower(content), -1)
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, 10)
	for _, w := range words {
		if len(w) <= 3 {
			continue
		}
		if _, isStop := stop[w]; isStop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == 10 {
			break
		}
	}
	return out
}

func inferCategory(keywords []string) string {
	switch {
	case anyKeyword(keywords, techKeywords):
		return "technology"
	case anyKeyword(keywords, lifestyleKeywords):
		return "lifestyle"
	case anyKeyword(keywords, socialKeywords):
		return "social"
	}
	return "business"
}

func identifyTopic(content string, keywords []string) string {
	lower := strings.ToLower(content)
	for _, entry := range topicKeywordTable {
		for _, w := range entry.words {
			if strings.Contains(lower, w) || containsString(keywords, w) {
				return entry.topic
			}
		}
	}
	return "general"
}

func anyKeyword(keywords, candidates []string) bool {
	for _, c := range candidates {
		if containsString(keywords, c) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func dedupStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func wordSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, w := range list {
			set[w] = struct{}{}
		}
	}
	return set
}

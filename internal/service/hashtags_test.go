package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicHashtagsTechnologyCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Basic(ctx, "Our new AI software and data pipelines", "twitter", 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"software", "data", "pipelines"}, got.Keywords)
	assert.Equal(t, []string{"#software", "#data", "#pipelines", "#tech", "#innovation"}, got.Tags)
	assert.Equal(t, "twitter", got.Platform)
}

func TestBasicHashtagsDefaultBusinessCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Basic(ctx, "Quarterly revenue update", "twitter", 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"#quarterly", "#revenue", "#update", "#business", "#entrepreneur"}, got.Tags)
}

func TestBasicHashtagsDedupAgainstTable(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Basic(ctx, "Tech trends and digital tools", "twitter", 8)
	require.NoError(t, err)

	// 关键词 #tech、#digital 与类目库重合，整体去重
	assert.Equal(t, []string{"#tech", "#trends", "#digital", "#innovation", "#AI", "#future"}, got.Tags)
}

func TestBasicHashtagsFacebookFallsBackToTwitterTable(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Basic(ctx, "Quarterly revenue update", "facebook", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"#quarterly", "#revenue", "#update", "#business"}, got.Tags)
	assert.Equal(t, "facebook", got.Platform)
}

func TestBasicHashtagsValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	var rangeErr *OutOfRangeError
	_, err := svc.Basic(ctx, "post", "twitter", 0)
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 1, rangeErr.Min)
	assert.Equal(t, 20, rangeErr.Max)

	_, err = svc.Basic(ctx, "post", "twitter", 21)
	assert.ErrorAs(t, err, &rangeErr)

	var optErr *InvalidOptionError
	_, err = svc.Basic(ctx, "post", "myspace", 5)
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "platform", optErr.Field)
	assert.Equal(t, []string{"twitter", "instagram", "linkedin", "facebook"}, optErr.Valid)
}

func TestAdvancedHashtagsTrendingStrategy(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(42)

	got, err := svc.Advanced(ctx, "Launch announcement", "twitter", 5, "trending")
	require.NoError(t, err)

	require.Len(t, got.Hashtags, 5)
	for _, tag := range got.Hashtags {
		assert.Contains(t, trendingHashtagTable["twitter"], tag.Tag)
		assert.Contains(t, []string{"low", "medium", "high"}, tag.Difficulty)
	}
	assert.Equal(t, "advanced_engine", got.Method)

	// 相同种子生成相同序列
	again, err := NewHashtagService(42).Advanced(ctx, "Launch announcement", "twitter", 5, "trending")
	require.NoError(t, err)
	assert.Equal(t, got.Hashtags, again.Hashtags)
}

func TestAdvancedHashtagsNicheStrategy(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Advanced(ctx, "Greek mythology stories about ancient gods", "instagram", 3, "niche")
	require.NoError(t, err)

	assert.Equal(t, "mythology", got.Topic)
	assert.Equal(t, []string{"#mythology", "#ancientmyths", "#greekmythology"}, tagsOf(got.Hashtags))
}

func TestAdvancedHashtagsNicheFallback(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Advanced(ctx, "Learn new study skills", "instagram", 4, "niche")
	require.NoError(t, err)

	assert.Equal(t, "education", got.Topic)
	assert.Equal(t, []string{"#education", "#educationcommunity", "#educationlovers", "#educationtips"}, tagsOf(got.Hashtags))
}

func TestAdvancedHashtagsBrandedStrategy(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Advanced(ctx, "Fresh roasted coffee beans from Colombia", "instagram", 3, "branded")
	require.NoError(t, err)

	assert.Equal(t, []string{"#fresh", "#roasted", "#coffee"}, tagsOf(got.Hashtags))
}

func TestAdvancedHashtagsMixedStrategy(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(7)

	got, err := svc.Advanced(ctx, "Startup growth and marketing experiments", "twitter", 10, "mixed")
	require.NoError(t, err)

	assert.Equal(t, "business", got.Topic)
	assert.LessOrEqual(t, len(got.Hashtags), 10)
	assert.Equal(t, tagsOf(got.Hashtags), dedupStrings(tagsOf(got.Hashtags)))
}

func TestAdvancedHashtagsSentiment(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Advanced(ctx, "This launch is amazing, we love the results", "twitter", 5, "branded")
	require.NoError(t, err)
	assert.Equal(t, "positive", got.Sentiment)

	got, err = svc.Advanced(ctx, "Terrible rollout, awful downtime", "twitter", 5, "branded")
	require.NoError(t, err)
	assert.Equal(t, "negative", got.Sentiment)

	got, err = svc.Advanced(ctx, "Weekly roundup notes", "twitter", 5, "branded")
	require.NoError(t, err)
	assert.Equal(t, "neutral", got.Sentiment)
	assert.Equal(t, "general", got.Topic)
}

func TestAdvancedHashtagsRecommendationsFallback(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	got, err := svc.Advanced(ctx, "post", "facebook", 5, "trending")
	require.NoError(t, err)
	assert.Equal(t, hashtagRecommendationTable["instagram"], got.Recommendations)
}

func TestAdvancedHashtagsValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewHashtagService(1)

	var rangeErr *OutOfRangeError
	_, err := svc.Advanced(ctx, "post", "twitter", 31, "mixed")
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 30, rangeErr.Max)

	var optErr *InvalidOptionError
	_, err = svc.Advanced(ctx, "post", "twitter", 5, "viral")
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "strategy", optErr.Field)
}

func TestHashtagDifficultyByLength(t *testing.T) {
	assert.Equal(t, "low", hashtagDifficulty("#socialmediamarketing"))
	assert.Equal(t, "medium", hashtagDifficulty("#entrepreneurlife"))
	assert.Equal(t, "high", hashtagDifficulty("#tech"))
}

func TestExtractKeywordsFiltering(t *testing.T) {
	got := extractKeywords("The new day will bring data and the same data again", basicStopWords)
	// 停用词与短词剔除，重复词去重保序
	assert.Equal(t, []string{"bring", "data", "same", "again"}, got)
}

func tagsOf(rated []RatedHashtag) []string {
	out := make([]string, len(rated))
	for i, r := range rated {
		out[i] = r.Tag
	}
	return out
}

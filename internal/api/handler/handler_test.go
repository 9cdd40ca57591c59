package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-suite/internal/metrics"
	"github.com/d60-Lab/social-suite/internal/repository"
	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
	"github.com/d60-Lab/social-suite/internal/tools/social"
	"github.com/d60-Lab/social-suite/pkg/response"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestRouter(t *testing.T, reg *tools.Registry) *gin.Engine {
	t.Helper()
	h := NewHandler(reg)
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/api/v1/tools", h.ListTools)
	r.POST("/api/v1/tools/:name", h.ExecuteTool)
	return r
}

// newSocialRouter 装配全量工具集的路由，落盘到临时目录
func newSocialRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	provider := metrics.NewMockProvider(7)
	reg := tools.NewRegistry()
	social.RegisterAll(reg, social.Deps{
		Scheduler:   service.NewSchedulerService(repository.NewFilePostRepository(dir)),
		Hashtags:    service.NewHashtagService(7),
		Analytics:   service.NewAnalyticsService(provider),
		Trends:      service.NewTrendsService(),
		Audience:    service.NewAudienceService(provider),
		Competitors: service.NewCompetitorService(repository.NewFileCompetitorRepository(dir), provider),
		Content:     service.NewContentService(7),
	})
	return newTestRouter(t, reg)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func data(t *testing.T, env response.Response) map[string]any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	require.True(t, ok, "data is not an object: %T", env.Data)
	return m
}

func TestHealth(t *testing.T) {
	r := newSocialRouter(t)
	w, env := doRequest(t, r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)
	d := data(t, env)
	assert.Equal(t, "ok", d["status"])
	assert.Equal(t, float64(10), d["tools"])
}

func TestListTools(t *testing.T) {
	r := newSocialRouter(t)
	w, env := doRequest(t, r, http.MethodGet, "/api/v1/tools", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)

	d := data(t, env)
	assert.Equal(t, float64(10), d["total"])

	list, ok := d["tools"].([]any)
	require.True(t, ok)
	require.Len(t, list, 10)

	// List 按名称排序
	first, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "advanced_hashtags", first["name"])
	assert.Equal(t, "enhanced", first["category"])
	assert.NotEmpty(t, first["description"])
	assert.Contains(t, first, "schema")
}

func TestExecuteToolReport(t *testing.T) {
	r := newSocialRouter(t)
	w, env := doRequest(t, r, http.MethodPost, "/api/v1/tools/get_trending_topics",
		`{"arguments":{"platform":"twitter"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)

	d := data(t, env)
	assert.Equal(t, "get_trending_topics", d["tool"])
	assert.Contains(t, d, "duration_ms")
	report, ok := d["report"].(string)
	require.True(t, ok)
	assert.Contains(t, report, "TRENDING TOPICS")
}

// 空请求体等价于全部取默认参数
func TestExecuteToolEmptyBody(t *testing.T) {
	r := newSocialRouter(t)
	w, env := doRequest(t, r, http.MethodPost, "/api/v1/tools/get_trending_topics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)
}

func TestExecuteToolUnknown(t *testing.T) {
	r := newSocialRouter(t)
	w, env := doRequest(t, r, http.MethodPost, "/api/v1/tools/does_not_exist", "{}")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Code)
	assert.Contains(t, env.Message, "tool not found")
}

func TestExecuteToolMissingArg(t *testing.T) {
	r := newSocialRouter(t)
	w, env := doRequest(t, r, http.MethodPost, "/api/v1/tools/schedule_post", `{"arguments":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "missing required argument")
}

func TestExecuteToolMalformedJSON(t *testing.T) {
	r := newSocialRouter(t)
	w, _ := doRequest(t, r, http.MethodPost, "/api/v1/tools/get_trending_topics", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteToolDomainErrors(t *testing.T) {
	r := newSocialRouter(t)

	cases := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{
			name:   "past schedule time",
			path:   "/api/v1/tools/schedule_post",
			body:   `{"arguments":{"content":"hi","platforms":"twitter","schedule_time":"2001-01-01 00:00"}}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown platform",
			path:   "/api/v1/tools/schedule_post",
			body:   `{"arguments":{"content":"hi","platforms":"myspace","schedule_time":"2031-01-01 00:00"}}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "cancel unknown post",
			path:   "/api/v1/tools/manage_scheduled_posts",
			body:   `{"arguments":{"action":"cancel","post_id":"nope"}}`,
			status: http.StatusNotFound,
		},
		{
			name:   "analyze untracked competitor",
			path:   "/api/v1/tools/manage_competitors",
			body:   `{"arguments":{"action":"analyze","competitor_name":"Ghost Corp"}}`,
			status: http.StatusNotFound,
		},
		{
			name:   "invalid analytics platform",
			path:   "/api/v1/tools/get_analytics",
			body:   `{"arguments":{"platform":"myspace"}}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "hashtag count out of range",
			path:   "/api/v1/tools/generate_hashtags",
			body:   `{"arguments":{"content":"launch","platform":"twitter","count":50}}`,
			status: http.StatusBadRequest,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := doRequest(t, r, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.status, env.Code)
			assert.NotEmpty(t, env.Message)
		})
	}
}

// 存储层故障映射为 500，未分类错误兜底为 500
func TestExecuteToolInternalErrors(t *testing.T) {
	reg := tools.NewRegistry()
	reg.MustRegister(&tools.Tool{
		Name:        "flaky_store",
		Description: "always fails on persistence",
		Category:    tools.CategoryCore,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			return "", &service.PersistenceError{Op: "save post", Err: errors.New("disk full")}
		},
	})
	reg.MustRegister(&tools.Tool{
		Name:        "flaky_unknown",
		Description: "always fails with an unclassified error",
		Category:    tools.CategoryCore,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			return "", errors.New("wires crossed")
		},
	})
	r := newTestRouter(t, reg)

	w, env := doRequest(t, r, http.MethodPost, "/api/v1/tools/flaky_store", "{}")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, env.Message, "save post")

	w, env = doRequest(t, r, http.MethodPost, "/api/v1/tools/flaky_unknown", "{}")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, env.Message, "wires crossed")
}

// 调度后列表应能看到新帖子，走完整的 HTTP 往返
func TestScheduleThenListRoundTrip(t *testing.T) {
	r := newSocialRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/v1/tools/schedule_post",
		`{"arguments":{"content":"release day","platforms":"twitter,instagram","schedule_time":"2031-06-01 09:00"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	report := data(t, env)["report"].(string)
	assert.Contains(t, report, "Post scheduled successfully")

	w, env = doRequest(t, r, http.MethodPost, "/api/v1/tools/manage_scheduled_posts",
		`{"arguments":{"action":"list"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	report = data(t, env)["report"].(string)
	assert.Contains(t, report, "release day")
	assert.Contains(t, report, "twitter, instagram")
}

package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string, category Category) *Tool {
	return &Tool{
		Name:        name,
		Description: "echo for tests",
		Category:    category,
		Schema: Schema{
			Required:   []string{"message"},
			Properties: map[string]Property{"message": {Type: "string", Description: "text to echo"}},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			return "echo: " + StringArg(args, "message", ""), nil
		},
	}
}

func TestRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoTool("echo", CategoryCore)))

	got := reg.Get("echo")
	require.NotNil(t, got)
	assert.Equal(t, "echo", got.Name)
	assert.True(t, reg.Has("echo"))
	assert.False(t, reg.Has("missing"))
	assert.Equal(t, 1, reg.Count())
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoTool("echo", CategoryCore)))

	err := reg.Register(echoTool("echo", CategoryEnhanced))
	assert.ErrorIs(t, err, ErrToolAlreadyRegistered)
	assert.Equal(t, 1, reg.Count())
}

func TestRegisterValidatesDefinition(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(&Tool{Name: "", Execute: func(ctx context.Context, args map[string]any) (string, error) { return "", nil }})
	assert.ErrorIs(t, err, ErrToolNameEmpty)

	err = reg.Register(&Tool{Name: "broken"})
	assert.ErrorIs(t, err, ErrToolExecuteNil)
}

func TestListSortedByName(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(echoTool("zeta", CategoryEnhanced))
	reg.MustRegister(echoTool("alpha", CategoryCore))
	reg.MustRegister(echoTool("mid", CategoryCore))

	names := make([]string, 0, 3)
	for _, tool := range reg.List() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
}

func TestByCategoryKeepsRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(echoTool("second_core", CategoryCore))
	reg.MustRegister(echoTool("advanced", CategoryEnhanced))
	reg.MustRegister(echoTool("first_core", CategoryCore))

	core := reg.ByCategory(CategoryCore)
	require.Len(t, core, 2)
	assert.Equal(t, "second_core", core[0].Name)
	assert.Equal(t, "first_core", core[1].Name)

	assert.Len(t, reg.ByCategory(CategoryEnhanced), 1)
	assert.Empty(t, reg.ByCategory(Category("unknown")))
}

func TestExecuteUnknownTool(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Execute(context.Background(), "missing", map[string]any{})
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestExecuteMissingRequiredArg(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(echoTool("echo", CategoryCore))

	result, err := reg.Execute(context.Background(), "echo", map[string]any{})
	assert.ErrorIs(t, err, ErrMissingRequiredArg)
	require.NotNil(t, result)
	assert.False(t, result.IsSuccess())
}

func TestExecuteReportsOutputAndDuration(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(echoTool("echo", CategoryCore))

	result, err := reg.Execute(context.Background(), "echo", map[string]any{"message": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "echo", result.ToolName)
	assert.Equal(t, "echo: hello", result.Output)
	assert.True(t, result.IsSuccess())
	assert.GreaterOrEqual(t, result.Duration.Nanoseconds(), int64(0))
}

func TestExecutePropagatesToolError(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	reg.MustRegister(&Tool{
		Name:     "failing",
		Category: CategoryCore,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			return "", boom
		},
	})

	result, err := reg.Execute(context.Background(), "failing", map[string]any{})
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, result)
	assert.ErrorIs(t, result.Err, boom)
}

func TestArgHelpers(t *testing.T) {
	args := map[string]any{
		"name":    "twitter",
		"count":   float64(12),
		"days":    7,
		"invalid": []string{"x"},
	}

	assert.Equal(t, "twitter", StringArg(args, "name", "fallback"))
	assert.Equal(t, "fallback", StringArg(args, "missing", "fallback"))
	assert.Equal(t, "fallback", StringArg(args, "count", "fallback"))

	assert.Equal(t, 12, IntArg(args, "count", 0))
	assert.Equal(t, 7, IntArg(args, "days", 0))
	assert.Equal(t, 5, IntArg(args, "missing", 5))
	assert.Equal(t, 5, IntArg(args, "invalid", 5))
}

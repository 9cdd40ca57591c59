package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-suite/internal/model"
)

func competitorBackends(t *testing.T) map[string]CompetitorRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, InitSchema(db))
	return map[string]CompetitorRepository{
		"file": NewFileCompetitorRepository(t.TempDir()),
		"db":   NewDBCompetitorRepository(db),
	}
}

func sampleCompetitor(name string, hoursAgo int) model.Competitor {
	return model.Competitor{
		Name:      name,
		Platforms: map[string]string{"twitter": "@" + name, "instagram": "@" + name},
		AddedOn:   time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC).Add(-time.Duration(hoursAgo) * time.Hour),
		Metrics:   map[string]model.CompetitorMetrics{},
	}
}

func TestCompetitorRepositoryRoundTrip(t *testing.T) {
	for name, repo := range competitorBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := sampleCompetitor("Nike", 2)
			in.Metrics["twitter"] = model.CompetitorMetrics{
				Followers:      4200,
				EngagementRate: 3.4,
				PostsPerWeek:   7,
				AvgLikes:       120,
				AvgComments:    14,
			}
			require.NoError(t, repo.Save(ctx, []model.Competitor{in}))

			out, err := repo.Load(ctx)
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.Equal(t, "Nike", out[0].Name)
			assert.Equal(t, in.Platforms, out[0].Platforms)
			assert.Equal(t, in.Metrics, out[0].Metrics)
			assert.Nil(t, out[0].LastAnalyzed)
		})
	}
}

func TestCompetitorRepositoryFindByName(t *testing.T) {
	for name, repo := range competitorBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Save(ctx, []model.Competitor{
				sampleCompetitor("Nike", 3),
				sampleCompetitor("Adidas", 2),
			}))

			found, err := repo.FindByName(ctx, "nike")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "Nike", found.Name)

			missing, err := repo.FindByName(ctx, "puma")
			require.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}

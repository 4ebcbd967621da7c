package rpalert

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlertRepositoryImpl_MySQL MySQL 仓储集成测试
// 需要设置 DPALERT_TEST_MYSQL_DSN 指向可用的测试库，否则跳过
func TestAlertRepositoryImpl_MySQL(t *testing.T) {
	dsn := os.Getenv("DPALERT_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("DPALERT_TEST_MYSQL_DSN not set, skipping MySQL integration test")
	}

	db, err := OpenMySQL(dsn)
	require.NoError(t, err)

	repo := NewAlertRepository(db)
	defer repo.Close()

	ctx := context.Background()

	first := testAlert("it-cow-1", "Pneumonia")
	require.NoError(t, repo.Append(ctx, first))
	assert.Greater(t, first.ID, int64(0))
	assert.False(t, first.Timestamp.IsZero())

	second := testAlert("it-cow-1", "Mastitis")
	require.NoError(t, repo.Append(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	history, err := repo.ListByAnimal(ctx, "it-cow-1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(history), 2)

	last := history[len(history)-1]
	assert.Equal(t, "Mastitis", last.PredictedDisease)
	assert.Equal(t, []string{"fever", "cough"}, last.Symptoms)
}

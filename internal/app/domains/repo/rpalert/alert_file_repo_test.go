package rpalert

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lfp/dpalert/internal/app/domains/entity/etalert"
)

func newTestRepo(t *testing.T) (*FileAlertRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "symptom_alerts.jsonl")
	repo, err := NewFileAlertRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func testAlert(animalID, disease string) *etalert.Alert {
	return &etalert.Alert{
		AnimalID:         animalID,
		Symptoms:         []string{"fever", "cough"},
		PredictedDisease: disease,
		RiskLevel:        etalert.RiskHigh,
		Action:           "Isolate animal, call veterinarian, provide antibiotics",
	}
}

// TestFileAlertRepository_AppendAssignsIDs ID 从 1 开始严格递增，写入时盖时间戳
func TestFileAlertRepository_AppendAssignsIDs(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 5; i++ {
		alert := testAlert("cow-1", "Pneumonia")
		require.NoError(t, repo.Append(ctx, alert))

		assert.Greater(t, alert.ID, lastID)
		assert.False(t, alert.Timestamp.IsZero())
		lastID = alert.ID
	}
	assert.Equal(t, int64(5), lastID)
}

// TestFileAlertRepository_ListByAnimal 精确匹配过滤，保持追加顺序
func TestFileAlertRepository_ListByAnimal(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testAlert("cow-1", "Pneumonia")))
	require.NoError(t, repo.Append(ctx, testAlert("goat-2", "Bloat")))
	require.NoError(t, repo.Append(ctx, testAlert("cow-1", "Mastitis")))
	require.NoError(t, repo.Append(ctx, testAlert("cow-10", "Anemia")))

	history, err := repo.ListByAnimal(ctx, "cow-1")
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "Pneumonia", history[0].PredictedDisease)
	assert.Equal(t, "Mastitis", history[1].PredictedDisease)
	assert.Less(t, history[0].ID, history[1].ID)
	for _, rec := range history {
		assert.Equal(t, "cow-1", rec.AnimalID)
	}
}

// TestFileAlertRepository_ListUnknownAnimal 未知动物返回空列表而非错误
func TestFileAlertRepository_ListUnknownAnimal(t *testing.T) {
	repo, _ := newTestRepo(t)

	history, err := repo.ListByAnimal(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, history)
}

// TestFileAlertRepository_ReopenContinuesSequence 重启后历史保留，ID 续接
func TestFileAlertRepository_ReopenContinuesSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symptom_alerts.jsonl")
	ctx := context.Background()

	repo, err := NewFileAlertRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, testAlert("cow-1", "Pneumonia")))
	require.NoError(t, repo.Append(ctx, testAlert("cow-1", "Mastitis")))
	require.NoError(t, repo.Close())

	reopened, err := NewFileAlertRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	history, err := reopened.ListByAnimal(ctx, "cow-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, []string{"fever", "cough"}, history[0].Symptoms)

	alert := testAlert("cow-1", "Bloat")
	require.NoError(t, reopened.Append(ctx, alert))
	assert.Equal(t, int64(3), alert.ID)
}

// TestFileAlertRepository_SymptomsIsolated 写入后修改调用方切片不影响已存记录
func TestFileAlertRepository_SymptomsIsolated(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	symptoms := []string{"fever", "cough"}
	alert := &etalert.Alert{
		AnimalID:         "cow-1",
		Symptoms:         symptoms,
		PredictedDisease: "Pneumonia",
		RiskLevel:        etalert.RiskHigh,
		Action:           "Isolate",
	}
	require.NoError(t, repo.Append(ctx, alert))

	symptoms[0] = "mutated"

	history, err := repo.ListByAnimal(ctx, "cow-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, []string{"fever", "cough"}, history[0].Symptoms)
}

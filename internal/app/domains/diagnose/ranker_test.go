package diagnose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lfp/dpalert/internal/app/domains/entity/etalert"
)

// TestPredict_RankingOrder 结果按分值降序，全部正分结果都保留
func TestPredict_RankingOrder(t *testing.T) {
	predictions := Predict(DefaultCatalog(), []string{"Fever", " cough "})

	// fever/cough 命中 5 条规则：两条 2/3、一条 1/2、两条 1/3
	require.Len(t, predictions, 5)
	for i := 1; i < len(predictions); i++ {
		assert.GreaterOrEqual(t, predictions[i-1].Score, predictions[i].Score)
	}
	for _, p := range predictions {
		assert.Greater(t, p.Score, 0.0)
		assert.True(t, p.Scored)
	}
}

// TestPredict_TieKeepsCatalogOrder 平局按规则表顺序（稳定排序）
func TestPredict_TieKeepsCatalogOrder(t *testing.T) {
	predictions := Predict(DefaultCatalog(), []string{"fever", "cough"})

	// Pneumonia 与 Respiratory Infection 均为 2/3，Pneumonia 在表中靠前
	require.GreaterOrEqual(t, len(predictions), 2)
	assert.Equal(t, "Pneumonia", predictions[0].Disease)
	assert.Equal(t, "Respiratory Infection", predictions[1].Disease)
	assert.InDelta(t, predictions[0].Score, predictions[1].Score, 1e-9)
}

// TestPredict_EmptyInputFallback 空输入触发 Unknown 兜底
func TestPredict_EmptyInputFallback(t *testing.T) {
	predictions := Predict(DefaultCatalog(), []string{})

	require.Len(t, predictions, 1)
	assert.Equal(t, UnknownDisease, predictions[0].Disease)
	assert.Equal(t, etalert.RiskLow, predictions[0].Risk)
	assert.Equal(t, UnknownAction, predictions[0].Action)
	assert.False(t, predictions[0].Scored)
}

// TestPredict_DisjointInputFallback 无任何规则命中同样触发兜底
func TestPredict_DisjointInputFallback(t *testing.T) {
	predictions := Predict(DefaultCatalog(), []string{"glowing", "levitating"})

	require.Len(t, predictions, 1)
	assert.Equal(t, UnknownDisease, predictions[0].Disease)
	assert.False(t, predictions[0].Scored)
}

// TestPredict_Deterministic 相同输入产出相同有序结果
func TestPredict_Deterministic(t *testing.T) {
	symptoms := []string{"diarrhea", "weight loss", "cough"}

	first := Predict(DefaultCatalog(), symptoms)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Predict(DefaultCatalog(), symptoms))
	}
}

// TestRank_DoesNotMutateInput 排序在副本上进行
func TestRank_DoesNotMutateInput(t *testing.T) {
	scored := []Prediction{
		{Disease: "A", Score: 0.1, Scored: true},
		{Disease: "B", Score: 0.9, Scored: true},
	}

	Rank(scored)

	assert.Equal(t, "A", scored[0].Disease)
	assert.Equal(t, "B", scored[1].Disease)
}

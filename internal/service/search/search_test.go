package search

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoshowroom/backend/internal/models"
)

func TestDecodeHits_KeepsScoreOrder(t *testing.T) {
	body := `{"hits":{"total":{"value":3},"hits":[
		{"_id":"9","_source":{"id":9}},
		{"_id":"2","_source":{"id":2}},
		{"_id":"5","_source":{"id":5}}
	]}}`

	ids, err := decodeHits(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, []uint{9, 2, 5}, ids)
}

func TestDecodeHits_InvalidJSON(t *testing.T) {
	_, err := decodeHits(strings.NewReader("{"))
	require.Error(t, err)
}

func TestDocumentFrom(t *testing.T) {
	desc := "hybrid sedan"
	doc := DocumentFrom(models.Product{
		ID:          3,
		Name:        "Camry",
		Price:       decimal.RequireFromString("1105000000.50"),
		Description: &desc,
	})
	assert.Equal(t, uint(3), doc.ID)
	assert.Equal(t, "Camry", doc.Name)
	assert.Equal(t, "hybrid sedan", doc.Description)
	assert.InDelta(t, 1105000000.50, doc.Price, 0.001)

	noDesc := DocumentFrom(models.Product{ID: 4, Name: "Raize"})
	assert.Empty(t, noDesc.Description)
}

package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickmark-dev/tickmark/internal/model"
)

const sampleDoc = `{
  "companyName": "Example Berhad",
  "financialYearEnd": "31 December 2025",
  "currency": "RM",
  "statements": [
    {
      "type": "SOFP",
      "totalAssets": {"current": 1000, "prior": 950},
      "totalLiabilities": {"current": 600},
      "totalEquity": {"current": 400}
    }
  ],
  "castingRelationships": [
    {
      "section": "Current Assets",
      "totalLabel": "Total current assets",
      "totalAmount": 800.25,
      "componentLabels": ["Cash", "Receivables"],
      "componentAmounts": [500, 300.25]
    }
  ],
  "movements": [],
  "crossReferences": [
    {
      "noteRef": "7",
      "noteDescription": "Administrative expenses",
      "noteTotal": 880,
      "statementType": "SOCI",
      "statementLineItem": "Administrative expenses",
      "statementAmount": -880,
      "isExpenseOrDeduction": true
    }
  ],
  "warnings": ["Note 14 partially illegible"]
}`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestJSONFileProducer_Extract(t *testing.T) {
	path := writeSample(t, sampleDoc)
	result, err := (&JSONFileProducer{}).Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Example Berhad", result.CompanyName)
	require.Len(t, result.Statements, 1)
	st := result.Statements[0]
	assert.Equal(t, model.StatementSOFP, st.Type)
	require.NotNil(t, st.TotalAssets)
	assert.Equal(t, "1000", st.TotalAssets.Current.String())
	require.NotNil(t, st.TotalAssets.Prior)
	assert.Equal(t, "950", st.TotalAssets.Prior.String())

	require.Len(t, result.CastingRelationships, 1)
	assert.Equal(t, "800.25", result.CastingRelationships[0].TotalAmount.String())

	require.Len(t, result.CrossReferences, 1)
	assert.True(t, result.CrossReferences[0].IsExpenseOrDeduction)
	assert.Equal(t, []string{"Note 14 partially illegible"}, result.Warnings)
}

func TestJSONFileProducer_ToleratesMissingOptionals(t *testing.T) {
	path := writeSample(t, `{"companyName": "Bare Sdn Bhd", "currency": "RM"}`)
	result, err := (&JSONFileProducer{}).Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, result.Statements)
	assert.Empty(t, result.CastingRelationships)
	assert.Nil(t, result.SOFP())
}

func TestJSONFileProducer_BadJSON(t *testing.T) {
	path := writeSample(t, `{"companyName":`)
	_, err := (&JSONFileProducer{}).Extract(context.Background(), path)
	assert.Error(t, err)
}

func TestJSONFileProducer_MissingFile(t *testing.T) {
	_, err := (&JSONFileProducer{}).Extract(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRegistry_SelectsByName(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("jsonfile"))
	assert.NotNil(t, r.Get("JSONFile"), "lookup is case-insensitive")
	assert.Nil(t, r.Get("vision"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := DefaultRegistry()
	assert.Panics(t, func() { r.Register(&JSONFileProducer{}) })
}

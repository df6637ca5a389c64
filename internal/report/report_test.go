package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vypis-dev/vypis/internal/model"
)

func TestWriteUnmatched(t *testing.T) {
	rows := []model.UnmatchedRow{
		{
			Date:         time.Date(2023, 3, 16, 0, 0, 0, 0, time.UTC),
			Amount:       decimal.RequireFromString("-123.45"),
			Counterparty: "NEZNAMY OBCHOD",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteUnmatched(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, "2023-03-16")
	assert.Contains(t, out, "-123.45")
	assert.Contains(t, out, "NEZNAMY OBCHOD")
	assert.Contains(t, out, "COUNTERPARTY")
}

func TestWriteUnmatched_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUnmatched(&buf, nil))
	assert.Contains(t, buf.String(), "all rows matched")
}

func TestWriteSummary(t *testing.T) {
	summary := map[string]decimal.Decimal{
		"transport": decimal.RequireFromString("7.50"),
		"food":      decimal.RequireFromString("15"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, summary, "Kč"))

	out := buf.String()
	assert.Contains(t, out, "15.00 Kč")
	assert.Contains(t, out, "7.50 Kč")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "22.50 Kč")
	// Categories sorted alphabetically.
	assert.Less(t, strings.Index(out, "food"), strings.Index(out, "transport"))
}

func TestRenderExpensePie(t *testing.T) {
	summary := map[string]decimal.Decimal{
		"food":      decimal.RequireFromString("123.45"),
		"transport": decimal.RequireFromString("50"),
	}

	var buf bytes.Buffer
	require.NoError(t, RenderExpensePie(&buf, summary, "Kč"))

	// PNG signature.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderExpensePie_EmptySummary(t *testing.T) {
	var buf bytes.Buffer
	err := RenderExpensePie(&buf, nil, "Kč")
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

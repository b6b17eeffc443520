package market

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"virtual-energy-trader/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePnLCSV(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	orders := []model.Order{
		{ID: "order-1", Hour: 9, Side: model.SideBuy, Price: 1e6, Quantity: 2},
		{ID: "order-2", Hour: 18, Side: model.SideSell, Price: 0.01, Quantity: 1},
	}
	summary := gen.Settle(mustDate(t, "2024-06-15"), orders)

	path := filepath.Join(t.TempDir(), "pnl.csv")
	require.NoError(t, WritePnLCSV(path, summary))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3, "header plus one row per order")
	assert.True(t, strings.HasPrefix(lines[0], "order_id,date,hour,side"))
	assert.Contains(t, lines[1], "order-1")
	assert.Contains(t, lines[2], "order-2")
}

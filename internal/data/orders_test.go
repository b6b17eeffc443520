package data

import (
	"os"
	"path/filepath"
	"testing"

	"virtual-energy-trader/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *OrderStore {
	t.Helper()
	return NewOrderStore(filepath.Join(t.TempDir(), "orders.json"))
}

func testOrder(id string, hour int) model.Order {
	return model.Order{
		ID:        id,
		Date:      "2024-06-15",
		Hour:      hour,
		Side:      model.SideBuy,
		Price:     50,
		Quantity:  1,
		CreatedAt: "2024-06-10T09:00:00Z",
	}
}

func TestListMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)
	orders, err := store.ListByDate("2024-06-15")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestAppendAndListRoundTrip(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(testOrder("a", 9), 10))
	require.NoError(t, store.Append(testOrder("b", 18), 10))

	orders, err := store.ListByDate("2024-06-15")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "b", orders[1].ID)

	// Other dates are unaffected.
	other, err := store.ListByDate("2024-06-16")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	first := NewOrderStore(path)
	require.NoError(t, first.Append(testOrder("a", 9), 10))

	second := NewOrderStore(path)
	orders, err := second.ListByDate("2024-06-15")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "a", orders[0].ID)
}

func TestPerHourCap(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(testOrder(string(rune('a'+i)), 9), 3))
	}

	err := store.Append(testOrder("d", 9), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHourLimit)

	// A different hour on the same date is still open.
	assert.NoError(t, store.Append(testOrder("e", 10), 3))
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(testOrder("a", 9), 10))
	require.NoError(t, store.Append(testOrder("b", 9), 10))

	require.NoError(t, store.Delete("2024-06-15", "a"))
	orders, err := store.ListByDate("2024-06-15")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "b", orders[0].ID)
}

func TestDeleteUnknownOrder(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(testOrder("a", 9), 10))

	assert.ErrorIs(t, store.Delete("2024-06-15", "nope"), ErrOrderNotFound)
	assert.ErrorIs(t, store.Delete("2024-06-16", "a"), ErrOrderNotFound)
}

func TestCorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewOrderStore(path)
	orders, err := store.ListByDate("2024-06-15")
	require.NoError(t, err)
	assert.Empty(t, orders)

	// The store recovers: appends work and replace the corrupt file.
	require.NoError(t, store.Append(testOrder("a", 9), 10))
	orders, err = store.ListByDate("2024-06-15")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestWriteCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "orders.json")
	store := NewOrderStore(path)
	require.NoError(t, store.Append(testOrder("a", 9), 10))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

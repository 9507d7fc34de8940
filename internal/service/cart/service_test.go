package cart

import (
	"bytes"
	"context"
	"errors"
	"log"
	"math"
	"testing"

	"weardistrict/internal/domain"
	"weardistrict/internal/repository/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tee   = domain.Product{ID: 1, Name: "Classic White T-Shirt", Price: 2999, Category: "Tops", Sizes: []string{"S", "M"}}
	jeans = domain.Product{ID: 2, Name: "Denim Blue Jeans", Price: 5999, Category: "Bottoms", Sizes: []string{"30", "32"}}
)

// failingStore accepts reads of preset values and fails every write.
type failingStore struct {
	value  string
	ok     bool
	getErr error
	setErr error
	sets   int
}

func (f *failingStore) Get(_ context.Context, _ string) (string, bool, error) {
	return f.value, f.ok, f.getErr
}

func (f *failingStore) Set(_ context.Context, _, _ string) error {
	f.sets++
	return f.setErr
}

func (f *failingStore) Remove(_ context.Context, _ string) error {
	return f.setErr
}

func TestAdd_MergesSameProductAndSize(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)

	require.NoError(t, svc.Add(ctx, tee, "M", 2))
	require.NoError(t, svc.Add(ctx, tee, "M", 3))

	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAdd_DifferentSizeIsNewLine(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)

	require.NoError(t, svc.Add(ctx, tee, "M", 1))
	require.NoError(t, svc.Add(ctx, tee, "S", 1))
	require.NoError(t, svc.Add(ctx, jeans, "32", 1))

	lines := svc.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, domain.LineKey{ProductID: 1, Size: "S"}, lines[1].Key())
	assert.Equal(t, "Denim Blue Jeans", lines[2].Name)
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)

	err := svc.Add(ctx, tee, "M", 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidQuantity))
	assert.Empty(t, svc.Lines())
}

func TestAdd_SnapshotsProduct(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)

	p := tee
	require.NoError(t, svc.Add(ctx, p, "M", 1))
	p.Price = 1
	p.Name = "changed"

	line := svc.Lines()[0]
	assert.Equal(t, domain.Money(2999), line.Price)
	assert.Equal(t, "Classic White T-Shirt", line.Name)
}

func TestAdd_RejectsQuantityAboveLimit(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)

	assert.ErrorIs(t, svc.Add(ctx, tee, "M", math.MaxInt), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, svc.Add(ctx, tee, "M", domain.MaxQuantity+1), domain.ErrInvalidQuantity)
	assert.Empty(t, svc.Lines())
}

func TestAdd_MergeCannotExceedLimit(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	svc := New(ctx, store, nil, nil)

	require.NoError(t, svc.Add(ctx, tee, "M", domain.MaxQuantity))
	assert.ErrorIs(t, svc.Add(ctx, tee, "M", 1), domain.ErrInvalidQuantity)

	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, domain.MaxQuantity, lines[0].Quantity)
	assert.Equal(t, domain.MaxQuantity, svc.TotalItems())
	assert.Equal(t, tee.Price.Times(domain.MaxQuantity), svc.TotalPrice())
	assert.Len(t, New(ctx, store, nil, nil).Lines(), 1)
}

func TestSetQuantity_RejectsQuantityAboveLimit(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)
	require.NoError(t, svc.Add(ctx, tee, "M", 2))

	assert.ErrorIs(t, svc.SetQuantity(ctx, 1, "M", math.MaxInt), domain.ErrInvalidQuantity)
	assert.Equal(t, 2, svc.Lines()[0].Quantity)
}

func TestDrain(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	svc := New(ctx, store, nil, nil)
	assert.Empty(t, svc.Drain(ctx))

	require.NoError(t, svc.Add(ctx, tee, "M", 2))
	require.NoError(t, svc.Add(ctx, jeans, "30", 1))

	drained := svc.Drain(ctx)
	require.Len(t, drained, 2)
	assert.Equal(t, 2, drained[0].Quantity)
	assert.Empty(t, svc.Lines())

	raw, _, _ := store.Get(ctx, kv.KeyCart)
	assert.Equal(t, "[]", raw)

	require.NoError(t, svc.Add(ctx, tee, "S", 1))
	assert.Len(t, svc.Lines(), 1, "a line added after draining stays in the cart")
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)
	require.NoError(t, svc.Add(ctx, tee, "M", 2))
	require.NoError(t, svc.Add(ctx, jeans, "30", 1))

	require.NoError(t, svc.SetQuantity(ctx, 1, "M", 7))
	assert.Equal(t, 7, svc.Lines()[0].Quantity)

	assert.ErrorIs(t, svc.SetQuantity(ctx, 1, "XL", 3), domain.ErrNotFound)
	assert.ErrorIs(t, svc.SetQuantity(ctx, 1, "XL", 0), domain.ErrNotFound)

	for _, qty := range []int{0, -4} {
		require.NoError(t, svc.Add(ctx, tee, "S", 1))
		require.NoError(t, svc.SetQuantity(ctx, 1, "S", qty))
		for _, l := range svc.Lines() {
			assert.NotEqual(t, domain.LineKey{ProductID: 1, Size: "S"}, l.Key())
		}
	}
	assert.Len(t, svc.Lines(), 2)
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)
	require.NoError(t, svc.Add(ctx, tee, "M", 1))
	require.NoError(t, svc.Add(ctx, jeans, "30", 1))

	assert.True(t, svc.Remove(ctx, 1, "M"))
	assert.False(t, svc.Remove(ctx, 1, "M"))
	assert.Len(t, svc.Lines(), 1)

	svc.Clear(ctx)
	assert.Empty(t, svc.Lines())
	assert.Equal(t, 0, svc.TotalItems())
	assert.Equal(t, domain.Money(0), svc.TotalPrice())
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, kv.NewMemory(), nil, nil)
	require.NoError(t, svc.Add(ctx, tee, "M", 2))
	require.NoError(t, svc.Add(ctx, jeans, "32", 1))

	assert.Equal(t, domain.Money(2*2999+5999), svc.TotalPrice())
	assert.Equal(t, 3, svc.TotalItems())
}

func TestPersistsOnEveryMutationAndRehydrates(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	svc := New(ctx, store, nil, nil)
	require.NoError(t, svc.Add(ctx, tee, "M", 2))
	require.NoError(t, svc.Add(ctx, jeans, "32", 1))
	require.NoError(t, svc.SetQuantity(ctx, 2, "32", 4))

	raw, ok, err := store.Get(ctx, kv.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"size":"32"`)
	assert.Contains(t, raw, `"price":29.99`)

	reloaded := New(ctx, store, nil, nil)
	assert.Equal(t, svc.Lines(), reloaded.Lines())

	svc.Clear(ctx)
	raw, _, _ = store.Get(ctx, kv.KeyCart)
	assert.Equal(t, "[]", raw)
	assert.Empty(t, New(ctx, store, nil, nil).Lines())
}

func TestNew_ReadsStorefrontBlob(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	blob := `[{"id":3,"name":"Black Hoodie","price":49.99,"category":"Tops","image":"/images/hoodie.jpg","description":"Cozy","size":"L","quantity":2},
	          {"id":4,"name":"Striped Summer Dress","price":39.99,"category":"Dresses","size":"S","quantity":0},
	          {"id":5,"name":"Leather Jacket","price":120,"category":"Outerwear","size":"M","quantity":99999999}]`
	require.NoError(t, store.Set(ctx, kv.KeyCart, blob))

	svc := New(ctx, store, nil, nil)
	lines := svc.Lines()
	require.Len(t, lines, 1, "lines with out-of-range quantities are dropped")
	assert.Equal(t, domain.Money(4999), lines[0].Price)
	assert.Equal(t, domain.Money(9998), svc.TotalPrice())
}

func TestNew_MalformedBlobFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, kv.KeyCart, "{broken"))

	var buf bytes.Buffer
	svc := New(ctx, store, log.New(&buf, "", 0), nil)
	assert.Empty(t, svc.Lines())
	assert.Contains(t, buf.String(), "failed to decode stored cart")
}

func TestNew_StorageReadErrorFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, &failingStore{getErr: errors.New("disk gone")}, nil, nil)
	assert.Empty(t, svc.Lines())
}

func TestWriteFailureKeepsInMemoryCart(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{setErr: errors.New("read-only")}
	var buf bytes.Buffer
	svc := New(ctx, store, log.New(&buf, "", 0), nil)

	require.NoError(t, svc.Add(ctx, tee, "M", 1))
	assert.Len(t, svc.Lines(), 1)
	assert.Equal(t, 1, store.sets)
	assert.Contains(t, buf.String(), "persist op=add")
}

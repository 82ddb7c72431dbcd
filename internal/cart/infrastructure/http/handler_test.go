package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	cartapp "github.com/costeladotiti/cardapio/internal/cart/application"
	"github.com/costeladotiti/cardapio/internal/cart/infrastructure/memory"
	menuapp "github.com/costeladotiti/cardapio/internal/menu/application"
	menudomain "github.com/costeladotiti/cardapio/internal/menu/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *cartapp.Service) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := menuapp.NewService()
	cart := cartapp.NewService(log, memory.New(), "costela-titi-cart", catalog.Additionals())
	cart.Load(context.Background())
	return NewHandler(log, cart, catalog).Routes(), cart
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAddItemEndpoint(t *testing.T) {
	h, cart := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/items", addItemReq{
		ProductID:     "casa",
		AdditionalIDs: []string{"bacon", "banana"},
		Notes:         "sem cebola",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["item_id"])

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2500), items[0].UnitPriceCents)
	require.NotNil(t, items[0].Customization)
	assert.Equal(t, "sem cebola", items[0].Customization.Notes)
}

func TestAddItemUnknownProduct(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/items", addItemReq{ProductID: "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItemUnavailableProduct(t *testing.T) {
	h, _ := newTestHandler(t)

	// "premium" is seeded as unavailable.
	rec := doJSON(t, h, http.MethodPost, "/items", addItemReq{ProductID: "premium"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddItemInvalidBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCartView(t *testing.T) {
	h, cart := newTestHandler(t)
	ctx := context.Background()

	p, err := menuapp.NewService().ProductByID("titi")
	require.NoError(t, err)
	id := cart.AddItem(ctx, p, nil, "")
	cart.UpdateQuantity(ctx, id, 2)

	rec := doJSON(t, h, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, int64(5400), view.SubtotalCents)
	assert.Equal(t, 2, view.ItemsCount)
	assert.False(t, view.Loading)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Pão do Titi", view.Items[0].Name)
}

func TestUpdateQuantityToZeroRemoves(t *testing.T) {
	h, cart := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/items", addItemReq{ProductID: "casa"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = doJSON(t, h, http.MethodPatch, "/items/"+resp["item_id"], updateQuantityReq{Quantity: 0})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, cart.Items())
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	h, cart := newTestHandler(t)
	cart.AddItem(context.Background(), mustProduct(t, "casa"), nil, "")

	rec := doJSON(t, h, http.MethodDelete, "/items/ghost", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, cart.Items(), 1)
}

func TestClearCart(t *testing.T) {
	h, cart := newTestHandler(t)
	cart.AddItem(context.Background(), mustProduct(t, "casa"), nil, "")

	rec := doJSON(t, h, http.MethodDelete, "/", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, cart.Items())
}

func mustProduct(t *testing.T, id string) menudomain.Product {
	t.Helper()
	p, err := menuapp.NewService().ProductByID(id)
	require.NoError(t, err)
	return p
}

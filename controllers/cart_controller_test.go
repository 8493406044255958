package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/modelhomeart/mhabackend/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartRouter() (*gin.Engine, *CartController) {
	cc := NewCartController(cart.NewRegistry())
	r := gin.New()
	r.GET("/cart", cc.GetCart())
	r.POST("/cart/items", cc.AddItem())
	r.PATCH("/cart/items/:id", cc.UpdateQuantity())
	r.DELETE("/cart/items/:id", cc.RemoveItem())
	r.DELETE("/cart", cc.ClearCart())
	return r, cc
}

type cartResponse struct {
	Items []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	ItemCount int   `json:"itemCount"`
	Subtotal  int64 `json:"subtotal"`
	IsOpen    bool  `json:"isOpen"`
}

func doCart(t *testing.T, r *gin.Engine, method, path, token string, payload any) (cartResponse, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("X-Cart-Token", token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp cartResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return resp, rec
}

func TestCartAddMergesLines(t *testing.T) {
	r, _ := cartRouter()
	item := map[string]any{"productId": "oak", "name": "Oak Frame", "size": "16x20", "price": 12900, "quantity": 1}

	resp, rec := doCart(t, r, http.MethodPost, "/cart/items", "visitor-1", item)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.IsOpen, "adding opens the cart panel")

	resp, _ = doCart(t, r, http.MethodPost, "/cart/items", "visitor-1", item)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, int64(2*12900), resp.Subtotal)
}

func TestCartTokenIsolation(t *testing.T) {
	r, _ := cartRouter()
	item := map[string]any{"productId": "oak", "name": "Oak Frame", "size": "16x20", "price": 12900}

	_, rec := doCart(t, r, http.MethodPost, "/cart/items", "visitor-1", item)
	require.Equal(t, http.StatusOK, rec.Code)

	resp, _ := doCart(t, r, http.MethodGet, "/cart", "visitor-2", nil)
	assert.Empty(t, resp.Items)
}

func TestCartMintsTokenWhenMissing(t *testing.T) {
	r, _ := cartRouter()
	_, rec := doCart(t, r, http.MethodGet, "/cart", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Cart-Token"))
}

func TestCartQuantityUpdateAndRemoval(t *testing.T) {
	r, _ := cartRouter()
	item := map[string]any{"productId": "oak", "name": "Oak Frame", "size": "16x20", "price": 12900}

	resp, _ := doCart(t, r, http.MethodPost, "/cart/items", "visitor-1", item)
	require.Len(t, resp.Items, 1)
	id := resp.Items[0].ID

	resp, _ = doCart(t, r, http.MethodPatch, "/cart/items/"+id, "visitor-1", map[string]int{"quantity": 4})
	assert.Equal(t, 4, resp.ItemCount)

	resp, _ = doCart(t, r, http.MethodPatch, "/cart/items/"+id, "visitor-1", map[string]int{"quantity": 0})
	assert.Empty(t, resp.Items, "zero quantity removes the line")
}

func TestCartClear(t *testing.T) {
	r, _ := cartRouter()
	item := map[string]any{"productId": "oak", "name": "Oak Frame", "size": "16x20", "price": 12900}

	_, rec := doCart(t, r, http.MethodPost, "/cart/items", "visitor-1", item)
	require.Equal(t, http.StatusOK, rec.Code)

	resp, _ := doCart(t, r, http.MethodDelete, "/cart", "visitor-1", nil)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.Subtotal)
}

func TestCartAddRejectsMissingProduct(t *testing.T) {
	r, _ := cartRouter()
	_, rec := doCart(t, r, http.MethodPost, "/cart/items", "visitor-1", map[string]any{"size": "16x20"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

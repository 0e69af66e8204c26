package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_CrearYListar(t *testing.T) {
	app := defaultApp()
	status, raw := do(t, app, http.MethodPost, "/products", `{"name":"Widget","sku":"SKU-1"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":1,"name":"Widget","sku":"SKU-1"}`, string(raw))

	mustCreateProduct(t, app, "Gadget", "SKU-2")
	_, raw = do(t, app, http.MethodGet, "/products", "")
	products := decode[[]productBody](t, raw)
	require.Len(t, products, 2)
	assert.Equal(t, "SKU-1", products[0].SKU)
	assert.Equal(t, "SKU-2", products[1].SKU)
}

func TestProductHandler_SKUDuplicadoDevuelve409(t *testing.T) {
	app := defaultApp()
	mustCreateProduct(t, app, "Widget", "SKU-1")

	status, raw := do(t, app, http.MethodPost, "/products", `{"name":"Otro","sku":" SKU-1 "}`)
	assert.Equal(t, http.StatusConflict, status)
	body := decode[errorBody](t, raw)
	assert.Equal(t, "DUPLICATE", body.Code)
	assert.Equal(t, "Product with this SKU already exists", body.Detail)
}

func TestProductHandler_SKUDuplicadoPermitidoSinUnicidad(t *testing.T) {
	app := buildTestApp(appOptions{devReset: true, uniqueSKUs: false})
	mustCreateProduct(t, app, "Widget", "SKU-1")
	assert.Equal(t, int64(2), mustCreateProduct(t, app, "Widget 2", "SKU-1"))
}

func TestProductHandler_EliminarEnCascada(t *testing.T) {
	app := defaultApp()
	s1 := mustCreateStore(t, app, "A", "X")
	s2 := mustCreateStore(t, app, "B", "Y")
	p1 := mustCreateProduct(t, app, "Widget", "SKU-1")
	p2 := mustCreateProduct(t, app, "Gadget", "SKU-2")
	for _, pair := range [][2]int64{{s1, p1}, {s2, p1}, {s1, p2}} {
		status, _ := do(t, app, http.MethodPost, "/stock",
			fmt.Sprintf(`{"store_id":%d,"product_id":%d,"quantity":1}`, pair[0], pair[1]))
		require.Equal(t, http.StatusCreated, status)
	}

	status, _ := do(t, app, http.MethodDelete, fmt.Sprintf("/products/%d", p1), "")
	require.Equal(t, http.StatusNoContent, status)

	_, raw := do(t, app, http.MethodGet, "/stock", "")
	assert.JSONEq(t, fmt.Sprintf(`[{"store_id":%d,"product_id":%d,"quantity":1}]`, s1, p2), string(raw))

	status, raw = do(t, app, http.MethodDelete, fmt.Sprintf("/products/%d", p1), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product not found", decode[errorBody](t, raw).Detail)
}

package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockHandler_EscenarioCompleto(t *testing.T) {
	app := defaultApp()
	require.Equal(t, int64(1), mustCreateStore(t, app, "Store A", "X"))
	require.Equal(t, int64(1), mustCreateProduct(t, app, "Widget", "SKU-1"))

	status, raw := do(t, app, http.MethodPost, "/stock", `{"store_id":1,"product_id":1,"quantity":10}`)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"store_id":1,"product_id":1,"quantity":10}`, string(raw))

	status, raw = do(t, app, http.MethodPost, "/stock", `{"store_id":1,"product_id":1,"quantity":25}`)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"store_id":1,"product_id":1,"quantity":25}`, string(raw))

	_, raw = do(t, app, http.MethodGet, "/stock", "")
	g := goldie.New(t)
	g.Assert(t, "stock_tras_sobrescribir", raw)

	status, _ = do(t, app, http.MethodDelete, "/stores/1", "")
	require.Equal(t, http.StatusNoContent, status)

	_, raw = do(t, app, http.MethodGet, "/stock", "")
	assert.Equal(t, "[]", string(raw))
	_, raw = do(t, app, http.MethodGet, "/stock?store_id=1", "")
	assert.Equal(t, "[]", string(raw))
}

func TestStockHandler_TiendaInexistenteNoAlteraEstado(t *testing.T) {
	app := defaultApp()
	mustCreateProduct(t, app, "Widget", "SKU-1")

	status, raw := do(t, app, http.MethodPost, "/stock", `{"store_id":999,"product_id":1,"quantity":5}`)
	assert.Equal(t, http.StatusBadRequest, status)
	body := decode[errorBody](t, raw)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Store not found", body.Detail)

	_, raw = do(t, app, http.MethodGet, "/stock", "")
	assert.Equal(t, "[]", string(raw))
}

func TestStockHandler_TiendaSeValidaAntesQueProducto(t *testing.T) {
	app := defaultApp()
	status, raw := do(t, app, http.MethodPost, "/stock", `{"store_id":3,"product_id":4,"quantity":5}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Store not found", decode[errorBody](t, raw).Detail)

	mustCreateStore(t, app, "A", "X")
	status, raw = do(t, app, http.MethodPost, "/stock", `{"store_id":1,"product_id":4,"quantity":5}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Product not found", decode[errorBody](t, raw).Detail)
}

func TestStockHandler_CuerpoInvalidoDevuelve400(t *testing.T) {
	app := defaultApp()
	mustCreateStore(t, app, "A", "X")
	mustCreateProduct(t, app, "Widget", "SKU-1")

	cases := map[string]string{
		"falta quantity":     `{"store_id":1,"product_id":1}`,
		"quantity no entero": `{"store_id":1,"product_id":1,"quantity":"diez"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			status, raw := do(t, app, http.MethodPost, "/stock", body)
			assert.Equal(t, http.StatusBadRequest, status, string(raw))
		})
	}
}

func TestStockHandler_CantidadNegativaSeGuarda(t *testing.T) {
	app := defaultApp()
	mustCreateStore(t, app, "A", "X")
	mustCreateProduct(t, app, "Widget", "SKU-1")

	status, raw := do(t, app, http.MethodPost, "/stock", `{"store_id":1,"product_id":1,"quantity":-5}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	assert.JSONEq(t, `{"store_id":1,"product_id":1,"quantity":-5}`, string(raw))

	_, raw = do(t, app, http.MethodGet, "/stock", "")
	assert.JSONEq(t, `[{"store_id":1,"product_id":1,"quantity":-5}]`, string(raw))
}

func TestStockHandler_FiltrosCombinados(t *testing.T) {
	app := defaultApp()
	s1 := mustCreateStore(t, app, "A", "X")
	s2 := mustCreateStore(t, app, "B", "Y")
	p1 := mustCreateProduct(t, app, "Widget", "SKU-1")
	p2 := mustCreateProduct(t, app, "Gadget", "SKU-2")
	// cobertura parcial: falta (s2, p2)
	for _, rec := range [][3]int64{{s1, p1, 1}, {s1, p2, 2}, {s2, p1, 3}} {
		status, _ := do(t, app, http.MethodPost, "/stock",
			fmt.Sprintf(`{"store_id":%d,"product_id":%d,"quantity":%d}`, rec[0], rec[1], rec[2]))
		require.Equal(t, http.StatusCreated, status)
	}

	cases := []struct {
		query string
		want  []int64 // cantidades esperadas, en orden
	}{
		{"", []int64{1, 2, 3}},
		{fmt.Sprintf("?store_id=%d", s1), []int64{1, 2}},
		{fmt.Sprintf("?product_id=%d", p1), []int64{1, 3}},
		{fmt.Sprintf("?store_id=%d&product_id=%d", s2, p1), []int64{3}},
		{fmt.Sprintf("?store_id=%d&product_id=%d", s2, p2), []int64{}},
		{"?store_id=77", []int64{}},
	}
	for _, tc := range cases {
		t.Run("stock"+tc.query, func(t *testing.T) {
			status, raw := do(t, app, http.MethodGet, "/stock"+tc.query, "")
			require.Equal(t, http.StatusOK, status)
			got := []int64{}
			for _, r := range decode[[]stockBody](t, raw) {
				got = append(got, r.Quantity)
			}
			assert.Equal(t, tc.want, got)
		})
	}

	status, _ := do(t, app, http.MethodGet, "/stock?store_id=uno", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStockHandler_Eliminar(t *testing.T) {
	app := defaultApp()
	mustCreateStore(t, app, "A", "X")
	mustCreateProduct(t, app, "Widget", "SKU-1")
	status, _ := do(t, app, http.MethodPost, "/stock", `{"store_id":1,"product_id":1,"quantity":4}`)
	require.Equal(t, http.StatusCreated, status)

	status, _ = do(t, app, http.MethodDelete, "/stock?store_id=1", "")
	assert.Equal(t, http.StatusBadRequest, status, "ambos parámetros son requeridos")

	status, _ = do(t, app, http.MethodDelete, "/stock?store_id=1&product_id=1", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, raw := do(t, app, http.MethodDelete, "/stock?store_id=1&product_id=1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Stock item not found", decode[errorBody](t, raw).Detail)
}

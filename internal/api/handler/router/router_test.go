package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagMiddleware(tag string, calls *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*calls = append(*calls, tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestUse_AppliesMiddlewaresOnlyToGroup(t *testing.T) {
	var calls []string
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "handler")
		w.WriteHeader(http.StatusOK)
	})

	grouped := Use([]Route{
		{Path: "/v1/marketplaces", Method: http.MethodGet, Handler: ok, Middlewares: []Middleware{tagMiddleware("rota", &calls)}},
	}, tagMiddleware("grupo-1", &calls), nil, tagMiddleware("grupo-2", &calls))

	rt := New(
		WithRoutes(grouped...),
		WithRoutes(Route{Path: "/v1/calc/vat", Method: http.MethodPost, Handler: ok}),
	)

	tests := []struct {
		name     string
		method   string
		target   string
		expected []string
	}{
		{
			name:     "Rota do grupo",
			method:   http.MethodGet,
			target:   "/v1/marketplaces",
			expected: []string{"rota", "grupo-1", "grupo-2", "handler"},
		},
		{
			name:     "Rota fora do grupo",
			method:   http.MethodPost,
			target:   "/v1/calc/vat",
			expected: []string{"handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = nil
			recorder := httptest.NewRecorder()
			rt.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.expected, calls)
		})
	}
}

func TestUse_DoesNotShareBackingArray(t *testing.T) {
	base := make([]Middleware, 1, 4)
	base[0] = func(next http.Handler) http.Handler { return next }
	routes := []Route{{Path: "/a", Middlewares: base}, {Path: "/b", Middlewares: base}}

	grouped := Use(routes, func(next http.Handler) http.Handler { return next })

	require.Len(t, grouped, 2)
	assert.Len(t, grouped[0].Middlewares, 2)
	assert.Len(t, routes[0].Middlewares, 1)
	assert.Nil(t, base[:2][1])
}

func TestRouter_UnknownRoutes(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rt := New(WithRoutes(Route{Path: "/v1/calc/vat", Method: http.MethodPost, Handler: ok}))

	t.Run("Rota inexistente", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.True(t, strings.Contains(recorder.Body.String(), "RTE_001"))
	})

	t.Run("Método não permitido", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/calc/vat", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		assert.True(t, strings.Contains(recorder.Body.String(), "RTE_002"))
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commission-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/commission-engine/pkg/log"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "Origem liberada",
			allowed:        []string{"http://localhost:3000"},
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "Origem não liberada",
			allowed:        []string{"http://localhost:3000"},
			method:         http.MethodGet,
			origin:         "http://evil.test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Qualquer origem",
			allowed:        []string{"*"},
			method:         http.MethodGet,
			origin:         "http://outro.test",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://outro.test",
		},
		{
			name:           "Preflight",
			allowed:        []string{"http://localhost:3000"},
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, "/v1/marketplaces", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRefreshMiddleware(t *testing.T) {
	t.Run("Verifica as origens antes da requisição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		refresher := mocks.NewMockCommissionRepository(ctrl)
		refresher.EXPECT().Refresh(false).Return(true).Times(1)

		recorder := httptest.NewRecorder()
		RefreshMiddleware(refresher, true)(okHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Preflight não recarrega", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		refresher := mocks.NewMockCommissionRepository(ctrl)
		refresher.EXPECT().Refresh(gomock.Any()).Times(0)

		recorder := httptest.NewRecorder()
		RefreshMiddleware(refresher, true)(okHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Desabilitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		refresher := mocks.NewMockCommissionRepository(ctrl)
		refresher.EXPECT().Refresh(gomock.Any()).Times(0)

		recorder := httptest.NewRecorder()
		RefreshMiddleware(refresher, false)(okHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("Reaproveita o cabeçalho", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(log.CorrelationIDHeader, "abc-123")
		recorder := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusTeapot, recorder.Code)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", recorder.Header().Get(log.CorrelationIDHeader))
	})

	t.Run("Gera um novo ID", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		LoggingMiddleware()(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(log.CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRV_001")
}

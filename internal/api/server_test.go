package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orgdomain/internal/api"
	"orgdomain/internal/api/handler/v1handler"
	mockverification "orgdomain/internal/verification/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testOptions(t *testing.T) api.Options {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})),
		},
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"*"},
	}
}

func TestNewHandler_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mockverification.NewMockCommand(ctrl)

	h, err := api.NewHandler(api.Deps{Deps: v1handler.Deps{Verifier: cmd}}, testOptions(t))
	require.NoError(t, err)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/specs/v1.yaml", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/v1/docs/", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/debug/pprof/", wantStatus: http.StatusOK},
		{method: http.MethodPost, path: "/v1/domains/" + uuid.NewString() + "/verify", wantStatus: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.wantStatus, rec.Code)
			require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
			require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewServer_InvalidKey(t *testing.T) {
	opts := testOptions(t)
	opts.SecHandlerOptions.PublicKey = "garbage"

	_, err := api.NewServer(api.Deps{}, opts)
	require.Error(t, err)
}

func TestNewServer_Config(t *testing.T) {
	opts := testOptions(t)
	opts.ReadHeaderTimeout = 3 * time.Second

	srv, err := api.NewServer(api.Deps{}, opts)
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)
	require.Equal(t, 3*time.Second, srv.ReadHeaderTimeout)
	require.NotNil(t, srv.Handler)
}

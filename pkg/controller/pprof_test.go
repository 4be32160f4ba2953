package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orgdomain/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof/")

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/debug/pprof/", wantStatus: http.StatusOK},
		{path: "/debug/pprof/cmdline", wantStatus: http.StatusOK},
		{path: "/debug/pprof/goroutine?debug=1", wantStatus: http.StatusOK},
		{path: "/debug/pprof/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://pprof.local"+tt.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

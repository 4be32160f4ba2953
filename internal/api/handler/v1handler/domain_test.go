package v1handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orgdomain/internal/api/handler/v1handler"
	mockverification "orgdomain/internal/verification/mock"
	"orgdomain/pkg/domain"
	"orgdomain/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, cmd *mockverification.MockCommand) (*httptest.Server, func(sub string) string) {
	t.Helper()
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Verifier: cmd}).Register(mux, sh)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, func(sub string) string {
		now := time.Now()

		return signJWTRS256(t, priv, sub, now, now.Add(time.Hour))
	}
}

func doVerify(t *testing.T, srv *httptest.Server, id, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/domains/"+id+"/verify", nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func TestVerifyDomain_Verified(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mockverification.NewMockCommand(ctrl)
	srv, sign := newTestServer(t, cmd)

	userID := domain.UserID(uuid.New())
	verifiedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	d := &domain.OrganizationDomain{
		ID:              domain.OrganizationDomainID(uuid.New()),
		OrganizationID:  domain.OrganizationID(uuid.New()),
		DomainName:      "test.com",
		Txt:             "btw+12345",
		CreationDate:    verifiedAt.Add(-time.Hour),
		VerifiedDate:    &verifiedAt,
		LastCheckedDate: &verifiedAt,
		NextRunDate:     verifiedAt.Add(-time.Hour),
	}
	cmd.EXPECT().UserVerify(gomock.Any(), userID, d.ID).Return(d, nil)

	res := doVerify(t, srv, d.ID.String(), sign(userID.String()))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))

	body := readBody(t, res)
	require.JSONEq(t, `{
		"id": "`+d.ID.String()+`",
		"organizationId": "`+d.OrganizationID.String()+`",
		"domainName": "test.com",
		"txt": "btw+12345",
		"creationDate": "2025-03-01T09:00:00Z",
		"verifiedDate": "2025-03-01T10:00:00Z",
		"lastCheckedDate": "2025-03-01T10:00:00Z",
		"nextRunDate": "2025-03-01T09:00:00Z",
		"jobRunCount": 0,
		"verified": true
	}`, body)
}

func TestVerifyDomain_NotVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mockverification.NewMockCommand(ctrl)
	srv, sign := newTestServer(t, cmd)

	d := &domain.OrganizationDomain{
		ID:         domain.OrganizationDomainID(uuid.New()),
		DomainName: "test.com",
		Txt:        "btw+12345",
	}
	cmd.EXPECT().UserVerify(gomock.Any(), gomock.Any(), d.ID).Return(d, nil)

	res := doVerify(t, srv, d.ID.String(), sign(uuid.NewString()))
	require.Equal(t, http.StatusOK, res.StatusCode)
	body := readBody(t, res)
	require.Contains(t, body, `"verifiedDate":null`)
	require.Contains(t, body, `"verified":false`)
}

func TestVerifyDomain_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "already verified",
			err:        serrors.With(serrors.ErrConflict, domain.MsgDomainAlreadyVerified),
			wantStatus: http.StatusConflict,
			wantBody:   `{"code":"CONFLICT","message":"Domain has already been verified."}`,
		},
		{
			name:       "claimed elsewhere",
			err:        serrors.With(serrors.ErrConflict, domain.MsgDomainNotAvailable),
			wantStatus: http.StatusConflict,
			wantBody:   `{"code":"CONFLICT","message":"The domain is not available to be claimed."}`,
		},
		{
			name:       "not found",
			err:        serrors.KindOnly(serrors.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"NOT_FOUND","message":"resource not found"}`,
		},
		{
			name:       "dns unavailable",
			err:        serrors.With(serrors.ErrUnavailable, "dns lookup failed"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"code":"UNAVAILABLE","message":"dns lookup failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cmd := mockverification.NewMockCommand(ctrl)
			srv, sign := newTestServer(t, cmd)

			cmd.EXPECT().UserVerify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			res := doVerify(t, srv, uuid.NewString(), sign(uuid.NewString()))
			require.Equal(t, tt.wantStatus, res.StatusCode)
			require.JSONEq(t, tt.wantBody, readBody(t, res))
		})
	}
}

func TestVerifyDomain_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mockverification.NewMockCommand(ctrl)
	srv, sign := newTestServer(t, cmd)

	res := doVerify(t, srv, "not-a-uuid", sign(uuid.NewString()))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestVerifyDomain_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mockverification.NewMockCommand(ctrl)
	srv, _ := newTestServer(t, cmd)

	res := doVerify(t, srv, uuid.NewString(), "")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestVerifyDomain_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mockverification.NewMockCommand(ctrl)
	srv, _ := newTestServer(t, cmd)

	res, err := srv.Client().Get(srv.URL + "/v1/domains/" + uuid.NewString() + "/verify")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return string(b)
}

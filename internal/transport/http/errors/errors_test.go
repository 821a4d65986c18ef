package errors

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mawa444/conso-gab-sub005/internal/position"
	"github.com/Mawa444/conso-gab-sub005/internal/service"
	"github.com/Mawa444/conso-gab-sub005/internal/storage"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"no_position", service.ErrNoPosition, http.StatusPreconditionFailed, "no_position"},
		{"not_found", storage.ErrNotFound, http.StatusNotFound, "not_found"},
		{"perm_denied", position.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"unavailable", position.ErrUnavailable, http.StatusServiceUnavailable, "unavailable"},
		{"timeout", position.ErrTimeout, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"unimplemented", position.ErrNotSupported, http.StatusNotImplemented, "unimplemented"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Обёрнутые ошибки сервисного слоя ("service.search.Search: %w") должны
// маппиться так же, как и голые sentinel-ы.
func TestToHTTP_WrappedSentinel(t *testing.T) {
	gotStatus, resp := ToHTTP(fmt.Errorf("service.search.Search: %w", service.ErrNoPosition))
	require.Equal(t, http.StatusPreconditionFailed, gotStatus)
	require.Equal(t, "no_position", resp.Error.Code)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "rid-123")

	WriteError(rr, req, service.ErrInvalidArgument)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.Contains(t, rr.Body.String(), `"request_id":"rid-123"`)
}

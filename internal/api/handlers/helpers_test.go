package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/stretchr/testify/require"
)

const (
	testGuestID = "guest_6f1c2b7e-5d1a-4c8e-9b3f-0a2d4e6f8a10"
	testOrderID = "GRLYO-1717000000000-K3Z9QA"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return &resp
}

// requireErrorCode asserts an error envelope with the given code and returns its message.
func requireErrorCode(t *testing.T, rr *httptest.ResponseRecorder, code string) string {
	t.Helper()

	resp := decodeEnvelope(t, rr)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Equal(t, code, resp.Error.Code)

	return resp.Error.Message
}

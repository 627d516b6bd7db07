package services

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otpnet/otpnet/protocol"
	"github.com/otpnet/otpnet/testutil"
)

func setupHandler(t *testing.T, cfg protocol.Config) (*ProtocolHandler, chi.Router) {
	t.Helper()
	proto := testutil.NewTestProtocol(t, cfg)

	handler := NewProtocolHandler(proto, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return handler, r
}

func postJSON(t *testing.T, r chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, err := http.NewRequest("POST", path, bytes.NewReader(data))
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	return w
}

// TestHandlerGreenPath sends as Alice and receives the ciphertext back
// through the API.
func TestHandlerGreenPath(t *testing.T) {
	_, r := setupHandler(t, protocol.Config{PadCount: 10, PadBits: 8, MaxGap: 100})

	w := postJSON(t, r, "/api/send", &SendRequest{Sender: "alice", Message: "a7"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sendResp, err := protocol.DecodeMessage[SendResponse](w.Body)
	require.NoError(t, err)
	assert.Equal(t, 2, sendResp.PadIndex)

	w = postJSON(t, r, "/api/receive", &ReceiveRequest{
		Ciphertext: sendResp.Ciphertext,
		PadIndex:   sendResp.PadIndex,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	recvResp, err := protocol.DecodeMessage[ReceiveResponse](w.Body)
	require.NoError(t, err)
	assert.Equal(t, "a7", recvResp.Message)
}

func TestHandlerSendFailures(t *testing.T) {
	_, r := setupHandler(t, protocol.Config{PadCount: 10, PadBits: 8, MaxGap: 0})

	// Gap violation: pad burned, conflict status.
	w := postJSON(t, r, "/api/send", &SendRequest{Sender: "alice", Message: "01"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown party.
	w = postJSON(t, r, "/api/send", &SendRequest{Sender: "mallory", Message: "01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Message wider than the pad width.
	w = postJSON(t, r, "/api/send", &SendRequest{Sender: "charlie", Message: "1ff"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed hex.
	w = postJSON(t, r, "/api/send", &SendRequest{Sender: "charlie", Message: "zz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerExhaustion(t *testing.T) {
	_, r := setupHandler(t, protocol.Config{PadCount: 4, PadBits: 8, MaxGap: 1000})

	// Alice's queue for n=4 is just index 2.
	w := postJSON(t, r, "/api/send", &SendRequest{Sender: "alice", Message: "01"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = postJSON(t, r, "/api/send", &SendRequest{Sender: "alice", Message: "01"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no pads remaining")
}

func TestHandlerReceiveOutOfRange(t *testing.T) {
	_, r := setupHandler(t, protocol.Config{PadCount: 10, PadBits: 8, MaxGap: 100})

	w := postJSON(t, r, "/api/receive", &ReceiveRequest{Ciphertext: "01", PadIndex: 10})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerStatus(t *testing.T) {
	_, r := setupHandler(t, protocol.Config{PadCount: 10, PadBits: 8, MaxGap: 3})

	// One successful send so progress shows up.
	w := postJSON(t, r, "/api/send", &SendRequest{Sender: "alice", Message: "05"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/api/status", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	status, err := protocol.DecodeMessage[StatusResponse](w.Body)
	require.NoError(t, err)
	assert.Equal(t, 10, status.PadCount)
	assert.Equal(t, 8, status.PadBits)
	assert.Equal(t, 3, status.MaxGap)
	require.Len(t, status.Parties, 4)

	byName := map[string]PartyStatus{}
	for _, ps := range status.Parties {
		byName[ps.Party] = ps
	}
	assert.Equal(t, 2, byName["alice"].LastUsed)
	assert.Equal(t, 3, byName["alice"].Remaining)
	assert.Equal(t, -1, byName["bob"].LastUsed)
	assert.Equal(t, 5, byName["bob"].Remaining)
}

func TestDecodeValueRejectsGarbage(t *testing.T) {
	_, err := DecodeValue("not-hex")
	require.Error(t, err)
	_, err = DecodeValue("-ff")
	require.Error(t, err)

	v, err := DecodeValue("0")
	require.NoError(t, err)
	require.Zero(t, v.Sign())
}

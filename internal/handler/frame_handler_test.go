package handler_test

import (
	"net/http"
	"testing"

	"faucet/backend/internal/handler"

	"github.com/stretchr/testify/require"
)

func TestFrameHandler_Manifest(t *testing.T) {
	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/.well-known/farcaster.json", nil))

	require.NoError(t, handler.NewFrameHandler("https://faucet.example.com").Manifest(c))

	var resp map[string]any
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	miniapp, ok := resp["miniapp"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "vNext", miniapp["version"])
	require.Equal(t, "https://faucet.example.com/frame", miniapp["homeUrl"])
}

func TestFrameHandler_Manifest_DerivesBaseURL(t *testing.T) {
	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/.well-known/farcaster.json", nil))

	require.NoError(t, handler.NewFrameHandler("").Manifest(c))

	var resp map[string]any
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	miniapp := resp["miniapp"].(map[string]any)
	require.Equal(t, "http://example.com/frame", miniapp["homeUrl"])
}

func TestFrameHandler_Frame(t *testing.T) {
	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/frame", nil))

	require.NoError(t, handler.NewFrameHandler("https://faucet.example.com").Frame(c))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `fc:miniapp`)
	require.Contains(t, body, "https://faucet.example.com/frame")
}

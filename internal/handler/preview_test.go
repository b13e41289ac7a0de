package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HostMaster/notification-renderer/internal/dto"
	"github.com/HostMaster/notification-renderer/internal/model"
	"github.com/HostMaster/notification-renderer/internal/render"
	"github.com/HostMaster/notification-renderer/internal/service"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialPreview(t *testing.T, fake *fakeRender) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(newTestHandler(fake))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/render/preview"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestRenderPreviewDocumentFrame(t *testing.T) {
	fake := &fakeRender{doc: testDocument()}
	conn := dialPreview(t, fake)

	require.NoError(t, conn.WriteJSON(dto.PreviewRequest{
		Kind:   render.KindReservation,
		Notice: json.RawMessage(`{}`),
	}))

	var frame map[string]json.RawMessage
	require.NoError(t, conn.ReadJSON(&frame))
	require.Contains(t, frame, "document")

	var doc model.RenderedDocument
	require.NoError(t, json.Unmarshal(frame["document"], &doc))
	assert.Equal(t, fake.doc.ID, doc.ID)
	assert.Equal(t, "<p>HM482TR</p>", doc.Body)
}

func TestRenderPreviewErrorFrame(t *testing.T) {
	fake := &fakeRender{err: service.ErrUnknownKind}
	conn := dialPreview(t, fake)

	require.NoError(t, conn.WriteJSON(dto.PreviewRequest{
		Kind:   "postcard",
		Notice: json.RawMessage(`{}`),
	}))

	var frame map[string]string
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, service.ErrUnknownKind.Error(), frame["error"])

	// an error frame must not close the session
	require.NoError(t, conn.WriteJSON(dto.PreviewRequest{
		Kind:   "postcard",
		Notice: json.RawMessage(`{}`),
	}))
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, service.ErrUnknownKind.Error(), frame["error"])
}

package handler_test

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve mở app trên cổng ngẫu nhiên để client websocket kết nối thật
func (e *env) serve(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = e.app.Listener(ln) }()
	t.Cleanup(func() { _ = e.app.Shutdown() })
	return ln.Addr().String()
}

func (e *env) dial(t *testing.T, addr, path string, withToken bool) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	header := http.Header{}
	if withToken {
		header.Set("Authorization", "Bearer "+e.token)
	}
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, resp, err := dialer.Dial("ws://"+addr+path, header)
	if conn != nil {
		t.Cleanup(func() { _ = conn.Close() })
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	}
	return conn, resp, err
}

func TestSeatPlanSocket_RepliesPerMessage(t *testing.T) {
	e := newEnv(t)
	addr := e.serve(t)

	conn, _, err := e.dial(t, addr, "/api/v1/ws/seat-plan", true)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(fiber.Map{"rowCount": 6, "columnCount": 8, "autoVip": true}))
	var layout map[string]any
	require.NoError(t, conn.ReadJSON(&layout))
	assert.EqualValues(t, 6, layout["rowCount"])
	assert.EqualValues(t, 8, layout["columnCount"])
	assert.EqualValues(t, 48, layout["capacity"])
	assert.Len(t, layout["grid"], 6)

	require.NoError(t, conn.WriteJSON(fiber.Map{
		"rowCount":    6,
		"columnCount": 8,
		"vipZone":     fiber.Map{"rowStart": "B", "rowEnd": "G", "colStart": 2, "colEnd": 6},
	}))
	var zoneErr map[string]any
	require.NoError(t, conn.ReadJSON(&zoneErr))
	assert.Equal(t, "vipZone", zoneErr["keyError"])
	assert.NotEmpty(t, zoneErr["error"])

	require.NoError(t, conn.WriteJSON(fiber.Map{"rowCount": 40, "columnCount": 8}))
	var invalid map[string]any
	require.NoError(t, conn.ReadJSON(&invalid))
	assert.NotEmpty(t, invalid["error"])
	assert.Nil(t, invalid["keyError"])
}

func TestSeatPlanSocket_RequiresSession(t *testing.T) {
	e := newEnv(t)
	addr := e.serve(t)

	_, resp, err := e.dial(t, addr, "/api/v1/ws/seat-plan", false)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRoomLayoutSocket_SendsCurrentLayoutWithoutRedis(t *testing.T) {
	e := newEnv(t)
	e.fake.Rooms[5] = persistedRoom(5, 8, 10)
	addr := e.serve(t)

	conn, _, err := e.dial(t, addr, "/api/v1/ws/room/5", true)
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, conn.ReadJSON(&view))
	room := view["room"].(map[string]any)
	assert.EqualValues(t, 5, room["id"])
	layout := view["layout"].(map[string]any)
	assert.EqualValues(t, 80, layout["capacity"])

	// không có redis thì kết nối chỉ chờ client đóng
	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}

func TestRoomLayoutSocket_UnknownRoom(t *testing.T) {
	e := newEnv(t)
	addr := e.serve(t)

	conn, _, err := e.dial(t, addr, "/api/v1/ws/room/99", true)
	require.NoError(t, err)

	var reply map[string]any
	require.NoError(t, conn.ReadJSON(&reply))
	assert.NotEmpty(t, reply["error"])
}

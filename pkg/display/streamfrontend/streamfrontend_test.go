package streamfrontend

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/thornewood/gbcore/internal/gameboy"
	"github.com/thornewood/gbcore/internal/interrupts"
	"github.com/thornewood/gbcore/internal/joypad"
)

func blankROM() []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:0x143], "TESTROM")
	return rom
}

func dial(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()
	httpSrv := httptest.NewServer(http.HandlerFunc(srv.handleConn))
	t.Cleanup(httpSrv.Close)

	wsURL := "ws" + httpSrv.URL[len("http"):]
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	time.Sleep(20 * time.Millisecond) // let the server register the connection
	return conn
}

func TestBroadcastFrameSkipsIdenticalRepeat(t *testing.T) {
	gb, err := gameboy.New(blankROM(), "")
	require.NoError(t, err)

	srv := New("", nil)
	srv.gb = gb
	conn := dial(t, srv)

	frameA := []byte{1, 2, 3, 4}
	frameB := []byte{5, 6, 7, 8}

	srv.broadcastFrame(frameA)
	_, msg1, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, msgFrame, msg1[0])

	srv.broadcastFrame(frameA) // identical: must not produce a second message

	srv.broadcastFrame(frameB) // different: arrives next
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg2, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, msgFrame, msg2[0])
}

func TestReadPumpForwardsKeyEvents(t *testing.T) {
	gb, err := gameboy.New(blankROM(), "")
	require.NoError(t, err)

	srv := New("", nil)
	srv.gb = gb
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{msgKeyDown, joypad.A}))
	require.Eventually(t, func() bool {
		return gb.Interrupts.Flag&(1<<interrupts.JoypadBit) != 0
	}, time.Second, 5*time.Millisecond)
}

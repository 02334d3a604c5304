// Package streamfrontend is a networked presentation adapter: it
// broadcasts de-duplicated, brotli-compressed frames to a single
// connected websocket client and accepts key-down/key-up messages back.
// It is a trimmed, single-client descendant of the teacher's
// pkg/display/web hub/player/client trio — the per-pixel dirty-patch
// cache and multi-player handoff there are a bandwidth optimization, not
// a spec behavior, so they are dropped; what remains is still "a pixel
// sink and key-event source" per spec.md §6, just reached over a socket.
package streamfrontend

import (
	"net/http"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/thornewood/gbcore/internal/gameboy"
	"github.com/thornewood/gbcore/internal/joypad"
	"github.com/thornewood/gbcore/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// CompressionQuality is the brotli quality level used for frame encoding,
// matching the teacher's default (pkg/display/web/player.go's Sync path).
const CompressionQuality = 9

// Server is the websocket-backed display.Driver.
type Server struct {
	gb     *gameboy.GameBoy
	logger log.Logger
	addr   string

	mu       sync.Mutex
	conn     *websocket.Conn
	lastHash uint64
}

// New returns a Server that will listen on addr once Run is called.
func New(addr string, logger log.Logger) *Server {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Server{addr: addr, logger: logger}
}

// Run starts the HTTP/websocket listener and steps gb one frame at a
// time, broadcasting each completed frame to whatever client is
// currently connected, until the server's handler is closed by the
// process exiting. A new connection replaces any previous one.
func (s *Server) Run(gb *gameboy.GameBoy) error {
	s.gb = gb

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleConn)

	listenErr := make(chan error, 1)
	go func() { listenErr <- http.ListenAndServe(s.addr, mux) }()

	for {
		select {
		case err := <-listenErr:
			return errors.Wrap(err, "streamfrontend: listening")
		default:
		}

		frame := gb.RunFrame()
		s.broadcastFrame(frame)
	}
}

func (s *Server) handleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorf("streamfrontend: upgrade failed: %s", err)
		return
	}

	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.conn = conn
	s.lastHash = 0
	s.mu.Unlock()

	go s.readPump(conn)
}

func (s *Server) readPump(conn *websocket.Conn) {
	defer conn.Close()
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if len(message) != 2 {
			continue
		}
		key := joypad.Key(message[1])
		switch message[0] {
		case msgKeyDown:
			s.gb.Press(key)
		case msgKeyUp:
			s.gb.Release(key)
		}
	}
}

// broadcastFrame compresses frame and sends it to the connected client if
// its content hash differs from the last frame sent (§13's single-client,
// no-patch-cache simplification of the teacher's frame cache).
func (s *Server) broadcastFrame(frame []byte) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}

	hash := xxhash.Sum64(frame)
	if hash == s.lastHash {
		return
	}

	compressed, err := cbrotli.Encode(frame, cbrotli.WriterOptions{Quality: CompressionQuality})
	if err != nil {
		s.logger.Errorf("streamfrontend: compressing frame: %s", err)
		return
	}

	s.mu.Lock()
	s.lastHash = hash
	s.mu.Unlock()

	if err := conn.WriteMessage(websocket.BinaryMessage, append([]byte{msgFrame}, compressed...)); err != nil {
		s.logger.Errorf("streamfrontend: writing frame: %s", err)
	}
}

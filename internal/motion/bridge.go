package motion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const bridgeSourceID = "bridge"

// bridgeMessage is the wire format spoken by the companion page. Motion
// samples carry accelerationIncludingGravity; axes the device omits stay
// at their zero value.
type bridgeMessage struct {
	Type    string  `json:"type"` // "grant", "motion", "caps"
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Z       float64 `json:"z,omitempty"`
	Vibrate bool    `json:"vibrate,omitempty"`
}

// Bridge receives live device-motion samples from a phone over a WebSocket
// and exposes them as a Source. The phone page requests motion permission on
// a user gesture and sends a grant message once the platform allows it;
// until then the adapter stays in demo mode.
type Bridge struct {
	addr     string
	logger   *log.Logger
	upgrader websocket.Upgrader
	server   *http.Server

	cell    Cell
	granted atomic.Bool
	vibe    atomic.Bool // client advertised vibration support

	connMu sync.Mutex
	conn   *websocket.Conn
}

// NewBridge creates a bridge listening on addr. The logger may be nil.
func NewBridge(addr string, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bridge{
		addr:   addr,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The toy trusts its companion page; no origin policy.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ID implements Source.
func (b *Bridge) ID() string { return bridgeSourceID }

// Latest implements Source. Last value wins; intermediate samples between
// frames are dropped by design.
func (b *Bridge) Latest() Vector {
	return b.cell.Load()
}

// Granted implements Source. True once the phone reported a permission
// grant; denial is recoverable only by reconnecting, per platform policy.
func (b *Bridge) Granted() bool {
	return b.granted.Load()
}

// CanVibrate reports whether the connected client advertised haptics.
func (b *Bridge) CanVibrate() bool {
	return b.vibe.Load() && b.clientAttached()
}

// Start implements Source: it launches the HTTP listener and returns
// immediately. The listener shuts down when ctx is cancelled.
func (b *Bridge) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/motion", b.handleWS)

	b.server = &http.Server{
		Addr:              b.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		b.logger.Info("motion bridge listening", "addr", b.addr)
		if err := b.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			// Bind failures leave the toy in demo mode; never fatal.
			b.logger.Warn("motion bridge stopped", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		b.Close()
	}()

	return nil
}

// Close implements Source.
func (b *Bridge) Close() error {
	b.connMu.Lock()
	if b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
	b.connMu.Unlock()

	if b.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return b.server.Shutdown(shutdownCtx)
	}
	return nil
}

// handleWS upgrades a companion connection and consumes its sample stream.
// One client at a time; a new connection displaces the old one.
func (b *Bridge) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	b.connMu.Lock()
	if b.conn != nil {
		b.conn.Close()
	}
	b.conn = conn
	b.connMu.Unlock()

	b.logger.Info("companion connected", "remote", conn.RemoteAddr().String())
	b.readLoop(conn)
}

// readLoop consumes messages until the connection drops. Malformed messages
// are skipped; the loop never propagates errors into the simulation.
func (b *Bridge) readLoop(conn *websocket.Conn) {
	defer func() {
		b.connMu.Lock()
		if b.conn == conn {
			b.conn = nil
			// Losing the client loses live permission for the session.
			b.granted.Store(false)
			b.vibe.Store(false)
		}
		b.connMu.Unlock()
		conn.Close()
		b.logger.Info("companion disconnected")
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg bridgeMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "motion":
			b.cell.Store(Vector{X: msg.X, Y: msg.Y, Z: msg.Z})
		case "grant":
			b.granted.Store(true)
			b.logger.Info("motion permission granted")
		case "caps":
			b.vibe.Store(msg.Vibrate)
		}
	}
}

// Vibrate asks the connected client for a single medium impact pulse.
// The caller bounds the call with a context; the write itself is bounded
// by a deadline derived from it.
func (b *Bridge) Vibrate(ctx context.Context) error {
	b.connMu.Lock()
	defer b.connMu.Unlock()

	if b.conn == nil {
		return errors.New("motion: no companion connected")
	}

	deadline := time.Now().Add(time.Second)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := b.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return b.conn.WriteJSON(map[string]string{"type": "vibrate"})
}

func (b *Bridge) clientAttached() bool {
	b.connMu.Lock()
	defer b.connMu.Unlock()
	return b.conn != nil
}

func init() {
	Register(bridgeSourceID, "Live device motion from a phone over WebSocket", func(opts Options) (Source, error) {
		addr := opts.BridgeAddr
		if addr == "" {
			addr = ":8137"
		}
		return NewBridge(addr, opts.Logger), nil
	})
}

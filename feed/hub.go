// Package feed streams simulation snapshots to websocket clients
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/lanesim/engine"
	"github.com/lixenwraith/lanesim/parameter"
	"github.com/lixenwraith/lanesim/status"
)

var (
	ErrUnknownFormat = errors.New("unknown feed format")
	ErrHubClosed     = errors.New("feed hub closed")
)

// Hub fans snapshots out to connected clients
// Publish never blocks: a client whose queue is full loses the frame
type Hub struct {
	upgrader websocket.Upgrader
	registry *status.Registry
	logger   *log.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	last    *frame
	closed  bool

	connected *atomic.Int64
	dropped   atomic.Int64
}

type client struct {
	conn   *websocket.Conn
	format Format
	send   chan []byte
	done   chan struct{}
	once   sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.done) })
}

// NewHub creates a hub reading metrics from registry for /status
func NewHub(registry *status.Registry, logger *log.Logger) *Hub {
	if registry == nil {
		registry = status.NewRegistry()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			// Read-only stream, any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		registry:  registry,
		logger:    logger,
		clients:   make(map[*client]struct{}),
		connected: registry.Ints.Get(status.KeyClients),
	}
}

// Handler routes /ws and /status
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	mux.HandleFunc("/status", h.ServeStatus)
	return mux
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	return int(h.connected.Load())
}

// Dropped returns the number of frames discarded for slow clients
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// ServeStatus writes the metric registry as a JSON object
func (h *Hub) ServeStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.registry.Export()); err != nil {
		h.logger.Warn("status encode failed", "err", err)
	}
}

// ServeWS upgrades the request and registers a client
// The latest snapshot, if any, is queued immediately so late joiners see the current state
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	c := &client{
		conn:   conn,
		format: format,
		send:   make(chan []byte, parameter.FeedClientQueue),
		done:   make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.connected.Store(int64(len(h.clients)))
	if h.last != nil {
		if data, err := h.last.bytes(format); err == nil {
			c.send <- data
		}
	}
	h.mu.Unlock()

	h.logger.Info("feed client connected", "remote", r.RemoteAddr, "format", format)

	go h.readPump(c)
	go h.writePump(c)
}

// Publish queues snap for every client
func (h *Hub) Publish(snap engine.Snapshot) error {
	fr := &frame{snap: snap}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.last = fr

	for c := range h.clients {
		data, err := fr.bytes(c.format)
		if err != nil {
			return err
		}
		select {
		case c.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
	return nil
}

// Close disconnects every client; later Publish calls fail with ErrHubClosed
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		c.close()
	}
}

func (h *Hub) remove(c *client) {
	c.close()

	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		h.connected.Store(int64(len(h.clients)))
	}
	h.mu.Unlock()
}

// readPump discards client input and notices disconnects
func (h *Hub) readPump(c *client) {
	defer h.remove(c)

	c.conn.SetPongHandler(func(string) error { return nil })
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(parameter.FeedPingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		h.remove(c)
	}()

	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.FeedWriteTimeout))
			if err := c.conn.WriteMessage(c.format.messageType(), data); err != nil {
				h.logger.Debug("feed write failed", "err", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.FeedWriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Debug("feed ping failed", "err", err)
				return
			}
		case <-c.done:
			c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "simulation finished"),
				time.Now().Add(parameter.FeedWriteTimeout))
			return
		}
	}
}

// Serve listens on addr until ctx is cancelled, then closes the hub and shuts the server down
func (h *Hub) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return h.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener
func (h *Hub) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: parameter.FeedWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	h.logger.Info("feed listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		h.Close()
		return err
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.FeedShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

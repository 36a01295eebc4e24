// Package spectate serves a headless, autopiloted crossing run to web
// viewers. A Hub drives one Session and fans JSON snapshot frames out to
// every connected WebSocket client.
package spectate

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-crossing/internal/clock"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// Config holds the spectator hub settings.
type Config struct {
	// Addr is the host:port the HTTP server listens on (e.g., ":8090").
	Addr string

	// Variant is the registered game ID whose rules the run uses.
	Variant string

	// TickRate is the simulation rate in ticks per second.
	TickRate int

	// FrameRate is how often the autopilot decides and frames are sent.
	FrameRate int

	// RestartFrames is how many frames a finished run stays on screen
	// before the hub starts the next one.
	RestartFrames int

	// Seed seeds the first run; 0 uses the current time.
	Seed int64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8090",
		Variant:       crossing.VariantFull,
		TickRate:      60,
		FrameRate:     10,
		RestartFrames: 20,
	}
}

// Frame is one message sent to viewers.
type Frame struct {
	Type     string            `json:"type"`
	Run      int               `json:"run"`
	Snapshot crossing.Snapshot `json:"snapshot"`
}

const clientBuffer = 8

// client is one connected viewer. Only its writer goroutine touches conn
// for writes.
type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// Hub owns the spectated session and its viewers.
type Hub struct {
	cfg     Config
	logger  *log.Logger
	session *crossing.Session
	pilot   *crossing.Autopilot
	feed    clock.Scheduler

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	run     int
	idle    int
	ended   bool
	closed  bool
}

// NewHub builds a hub around a fresh world. sim drives the simulation
// ticks and feed drives the autopilot and broadcasts.
func NewHub(cfg Config, sim, feed clock.Scheduler, logger *log.Logger) (*Hub, error) {
	if cfg.Variant == "" {
		cfg.Variant = crossing.VariantFull
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 10
	}
	if cfg.RestartFrames < 0 {
		cfg.RestartFrames = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	world, err := crossing.NewWorld(crossing.LoadConfig(cfg.Variant), cfg.Seed, nil)
	if err != nil {
		return nil, fmt.Errorf("spectate: cannot create world: %w", err)
	}

	return &Hub{
		cfg:     cfg,
		logger:  logger,
		session: crossing.NewSession(world, sim, cfg.TickRate),
		pilot:   crossing.NewAutopilot(),
		feed:    feed,
		clients: make(map[*client]struct{}),
	}, nil
}

// Start begins the first run and the frame feed.
func (h *Hub) Start() {
	h.session.Reset()
	h.mu.Lock()
	h.run = 1
	h.mu.Unlock()

	h.feed.Start(time.Second/time.Duration(h.cfg.FrameRate), h.pump)
	h.logger.Info("spectator run started", "variant", h.cfg.Variant, "run", 1)
}

// Close stops the simulation and the feed and disconnects every viewer.
func (h *Hub) Close() {
	h.feed.Stop()
	h.session.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		c.close()
		delete(h.clients, c)
	}
}

// pump runs once per frame: restart a finished run after a pause, let the
// autopilot move otherwise, then broadcast the resulting state.
func (h *Hub) pump() {
	snap := h.session.Snapshot()

	if snap.Terminal {
		h.mu.Lock()
		first := !h.ended
		h.ended = true
		h.idle++
		restart := h.idle > h.cfg.RestartFrames
		h.mu.Unlock()

		if first {
			h.logger.Info("spectator run over", "score", snap.Score, "best", snap.Best, "ticks", snap.Tick)
		}
		if restart {
			h.session.Reset()
			h.mu.Lock()
			h.run++
			h.idle = 0
			h.ended = false
			run := h.run
			h.mu.Unlock()
			h.logger.Debug("spectator run started", "run", run)
			snap = h.session.Snapshot()
		}
	} else if dir, ok := h.pilot.Decide(snap); ok {
		h.session.Move(dir)
		snap = h.session.Snapshot()
	}

	h.broadcast(snap)
}

// frame encodes the snapshot for the current run.
func (h *Hub) frame(snap crossing.Snapshot) ([]byte, error) {
	h.mu.Lock()
	run := h.run
	h.mu.Unlock()

	data, err := json.Marshal(Frame{Type: "snapshot", Run: run, Snapshot: snap})
	if err != nil {
		return nil, fmt.Errorf("spectate: cannot encode frame: %w", err)
	}
	return data, nil
}

// broadcast queues a frame for every viewer. Viewers that fall a full
// buffer behind are dropped.
func (h *Hub) broadcast(snap crossing.Snapshot) {
	data, err := h.frame(snap)
	if err != nil {
		h.logger.Error("broadcast failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping slow viewer", "remote", c.conn.RemoteAddr().String())
			c.close()
			delete(h.clients, c)
		}
	}
}

// subscribe registers a viewer and primes it with the latest frame.
func (h *Hub) subscribe(conn *websocket.Conn) (*client, bool) {
	c := &client{conn: conn, send: make(chan []byte, clientBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	if h.last != nil {
		c.send <- h.last
	}
	h.clients[c] = struct{}{}
	return c, true
}

// unsubscribe removes a viewer. Safe to call twice.
func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Run returns the number of the current run, starting at 1.
func (h *Hub) Run() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.run
}

// Snapshot returns the current state of the spectated run.
func (h *Hub) Snapshot() crossing.Snapshot {
	return h.session.Snapshot()
}

package spectate

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-crossing/internal/clock"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

type testHub struct {
	*Hub
	sim  *clock.Manual
	feed *clock.Manual
}

func newTestHub(t *testing.T, cfg Config) testHub {
	t.Helper()
	sim, feed := clock.NewManual(), clock.NewManual()
	hub, err := NewHub(cfg, sim, feed, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewHub() failed: %v", err)
	}
	t.Cleanup(hub.Close)
	return testHub{Hub: hub, sim: sim, feed: feed}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.RestartFrames = 1
	return cfg
}

func decodeFrame(t *testing.T, data []byte) Frame {
	t.Helper()
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("invalid frame %q: %v", data, err)
	}
	return f
}

func TestHubStartSchedulesBoth(t *testing.T) {
	h := newTestHub(t, testConfig())
	h.Start()

	if !h.sim.Active() || !h.feed.Active() {
		t.Fatal("Start should schedule the simulation and the feed")
	}
	if got := h.feed.Interval(); got != 100*time.Millisecond {
		t.Errorf("feed interval = %v, expected 100ms", got)
	}
	if h.Run() != 1 {
		t.Errorf("run = %d, expected 1", h.Run())
	}

	h.Close()
	if h.sim.Active() || h.feed.Active() {
		t.Error("Close should stop both schedulers")
	}
}

func TestHubAutopilotAdvances(t *testing.T) {
	h := newTestHub(t, testConfig())
	h.Start()

	for range 200 {
		h.sim.Advance(6)
		h.feed.Advance(1)
	}

	snap := h.Snapshot()
	if snap.Tick == 0 {
		t.Error("simulation did not tick")
	}
	if snap.Score == 0 && snap.Best == 0 && h.Run() == 1 && snap.Player.Lane == 0 {
		t.Error("autopilot never moved")
	}
}

func TestHubRestartsFinishedRun(t *testing.T) {
	crossing.SetStrictLanes(true)
	t.Cleanup(func() { crossing.SetStrictLanes(false) })

	h := newTestHub(t, testConfig())
	h.Start()

	// Under the strict rule the first road lane entered is fatal.
	for i := 0; i < 100 && !h.session.Terminal(); i++ {
		if !h.session.Move(crossing.DirUp) {
			if !h.session.Move(crossing.DirLeft) {
				h.session.Move(crossing.DirRight)
			}
		}
	}
	if !h.session.Terminal() {
		t.Fatal("could not end the run")
	}

	h.feed.Advance(1)
	if h.Run() != 1 || !h.Snapshot().Terminal {
		t.Fatal("finished run should stay visible for RestartFrames frames")
	}

	h.feed.Advance(1)
	if h.Run() != 2 {
		t.Fatalf("run = %d after restart delay, expected 2", h.Run())
	}
	snap := h.Snapshot()
	if snap.Terminal || snap.Score != 0 || snap.Player.Lane != 0 {
		t.Errorf("restarted run not fresh: %+v", snap.Player)
	}
	if !h.sim.Active() {
		t.Error("restart should reschedule the simulation")
	}
}

func TestHealthz(t *testing.T) {
	h := newTestHub(t, testConfig())
	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	h := newTestHub(t, testConfig())
	h.Start()
	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatalf("GET /snapshot failed: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	f := decodeFrame(t, body)

	if f.Type != "snapshot" || f.Run != 1 {
		t.Errorf("frame header = %q run %d", f.Type, f.Run)
	}
	if f.Snapshot.Columns == 0 || len(f.Snapshot.Lanes) != f.Snapshot.Rows {
		t.Errorf("snapshot has %d lanes for %d rows", len(f.Snapshot.Lanes), f.Snapshot.Rows)
	}

	post, err := http.Post(srv.URL+"/snapshot", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /snapshot failed: %v", err)
	}
	post.Body.Close()
	if post.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, expected 405", post.StatusCode)
	}
}

func TestWebSocketStreamsFrames(t *testing.T) {
	h := newTestHub(t, testConfig())
	h.Start()
	h.feed.Advance(1) // Prime the latest frame.

	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read primed frame: %v", err)
	}
	first := decodeFrame(t, payload)
	if first.Run != 1 {
		t.Errorf("primed frame run = %d", first.Run)
	}

	deadline := time.Now().Add(5 * time.Second)
	for h.Viewers() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	h.sim.Advance(30)
	h.feed.Advance(1)

	_, payload, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read broadcast frame: %v", err)
	}
	next := decodeFrame(t, payload)
	if next.Snapshot.Tick <= first.Snapshot.Tick {
		t.Errorf("broadcast tick %d not after primed tick %d", next.Snapshot.Tick, first.Snapshot.Tick)
	}
}

func TestWebSocketClosedHub(t *testing.T) {
	h := newTestHub(t, testConfig())
	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)
	h.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("expected going-away close, got %v", err)
	}
	if h.Viewers() != 0 {
		t.Errorf("closed hub has %d viewers", h.Viewers())
	}
}

package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var lastScripted *scriptedGame

func init() {
	registry.Register("scripted", func() registry.Game {
		lastScripted = &scriptedGame{}
		return lastScripted
	})
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestMenuShowsBestAndBalance(t *testing.T) {
	store := openModelStore(t)
	store.SaveScore("scripted", 11)
	store.Credit("scripted", 11, "run")

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	if !strings.Contains(view, "Coins: 11") {
		t.Errorf("menu view missing balance:\n%s", view)
	}
	if !strings.Contains(view, "best 11") {
		t.Errorf("menu view missing best score:\n%s", view)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first item: %d", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(MenuModel)
	if !m.WantsScoreboard() || cmd == nil {
		t.Error("tab should request the scoreboard and exit the menu")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openModelStore(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	s := NewSessionModel(store, cfg, log.New(io.Discard))

	// Select the first (and only) registered game.
	s = sendSession(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("screen = %v after select, expected game", s.screen)
	}
	if !strings.Contains(s.View(), "scripted") {
		t.Error("game view not rendered")
	}

	game := lastScripted
	game.pending = []core.Event{
		{Kind: core.EventGameOver, Value: 5},
		{Kind: core.EventCurrencyAward, Value: 5},
	}
	s = sendSession(t, s, TickMsg{})

	s = sendSession(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("screen = %v after back, expected menu", s.screen)
	}
	if s.quitting {
		t.Fatal("back to menu must not end the session")
	}
	if !strings.Contains(s.View(), "Coins: 5") {
		t.Errorf("menu not refreshed after the run:\n%s", s.View())
	}

	// Stray ticks from the finished game are ignored by the menu.
	s = sendSession(t, s, TickMsg{})

	s = sendSession(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("screen = %v after tab, expected scores", s.screen)
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("scoreboard view not rendered")
	}

	s = sendSession(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.quitting {
		t.Fatalf("esc on scoreboard should return to menu (screen %v)", s.screen)
	}

	next, cmd := s.Update(keyRunes("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q on the menu should end the session")
	}
}

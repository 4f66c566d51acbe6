package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guacamole-runner/internal/storage"
)

func TestRunRows(t *testing.T) {
	now := time.Now().Unix()
	rows := RunRows([]storage.Run{
		{Points: 12345, Distance: 87, Created: now},
		{Points: 10, Distance: 1234, Created: now},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	want := [][3]string{{"#1", "12,345", "87"}, {"#2", "10", "1,234"}}
	for i, w := range want {
		for col := 0; col < 3; col++ {
			if rows[i][col] != w[col] {
				t.Errorf("rows[%d][%d] = %q, expected %q", i, col, rows[i][col], w[col])
			}
		}
		if rows[i][3] == "" {
			t.Errorf("rows[%d] has no time", i)
		}
	}
}

func TestStatsLine(t *testing.T) {
	tests := []struct {
		name string
		st   storage.Stats
		want string
	}{
		{"empty", storage.Stats{}, "No flights yet"},
		{
			"single",
			storage.Stats{Runs: 1, BestPoints: 1200, BestDistance: 30, TotalDistance: 30, AvgPoints: 1200},
			"1 flight · best 1,200 pts · furthest 30 · 30 tiles flown · avg 1200.0 pts",
		},
		{
			"many",
			storage.Stats{Runs: 3, BestPoints: 30, BestDistance: 12, TotalDistance: 20, AvgPoints: 20},
			"3 flights · best 30 pts · furthest 12 · 20 tiles flown · avg 20.0 pts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatsLine(tt.st); got != tt.want {
				t.Errorf("StatsLine() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"ab", 7, "  ab"},
		{"a·b", 7, "  a·b"},
		{"toolong", 4, "toolong"},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestScoreboardLoadsSelectedMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{GameID: fakeID, Points: 20, Distance: 2},
		{GameID: fakeID, Points: 50, Distance: 5},
		{GameID: "other", Points: 999},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.modes[m.mode].ID != fakeID {
		t.Fatalf("selected mode %q", m.modes[m.mode].ID)
	}
	if len(m.best) != 2 || m.best[0].Points != 50 {
		t.Errorf("best = %+v", m.best)
	}
	if len(m.recent) != 2 || m.recent[0].Points != 50 {
		t.Errorf("recent = %+v", m.recent)
	}
	if m.stats.Runs != 2 {
		t.Errorf("stats.Runs = %d, expected 2", m.stats.Runs)
	}

	view := m.View()
	for _, want := range []string{"BEST FLIGHTS", "Latest", "2 flights"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should close the board")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.showRecent() {
		t.Error("narrow board should hide the recent panel")
	}
	if !strings.Contains(m.View(), "No flights recorded yet.") {
		t.Error("empty board should say so")
	}
}

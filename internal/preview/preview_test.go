package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/bearstats/internal/record"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, size int) Model {
	t.Helper()
	m, err := New(record.New(17), size)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return pm, cmd
}

func TestNewNegativeSize(t *testing.T) {
	if _, err := New(record.New(1), -1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t, 3)

	if m.cursor != 0 {
		t.Fatal("cursor should start at 0")
	}

	m, _ = update(t, m, keyMsg('j'))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m, _ = update(t, m, keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	// clamp at 0
	m, _ = update(t, m, keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.cursor)
	}
}

func TestCursorClampMax(t *testing.T) {
	m := newTestModel(t, 3)
	for range 10 {
		m, _ = update(t, m, keyMsg('j'))
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}
}

func TestFirstLast(t *testing.T) {
	m := newTestModel(t, 5)

	m, _ = update(t, m, keyMsg('G'))
	if m.cursor != 4 {
		t.Errorf("cursor = %d, want 4", m.cursor)
	}

	m, _ = update(t, m, keyMsg('g'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestNewBatch(t *testing.T) {
	m := newTestModel(t, 4)
	first := m.records[0].Values()

	m, _ = update(t, m, keyMsg('j'))
	m, _ = update(t, m, keyMsg('n'))

	if m.batch != 2 {
		t.Errorf("batch = %d, want 2", m.batch)
	}
	if m.cursor != 0 {
		t.Errorf("cursor should reset, got %d", m.cursor)
	}
	if len(m.records) != 4 {
		t.Errorf("batch size = %d, want 4", len(m.records))
	}
	if strings.Join(m.records[0].Values(), "|") == strings.Join(first, "|") {
		t.Error("new batch should draw fresh records")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 2)
	_, cmd := update(t, m, keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce QuitMsg")
	}
}

func TestViewShowsRecord(t *testing.T) {
	m := newTestModel(t, 2)
	view := m.View()

	for _, h := range record.Header() {
		if !strings.Contains(view, h) {
			t.Errorf("view missing field %q", h)
		}
	}
	if !strings.Contains(view, m.records[0].Name) {
		t.Errorf("view should show name %q", m.records[0].Name)
	}
	if !strings.Contains(view, "record 1/2") {
		t.Error("view should show position")
	}
	if !strings.Contains(view, "eaten by bear") && !strings.Contains(view, "survived") {
		t.Error("view should show the label")
	}
}

func TestViewEmpty(t *testing.T) {
	m := newTestModel(t, 0)
	if !strings.Contains(m.View(), "no records") {
		t.Error("empty batch should say no records")
	}

	// navigation on an empty batch is a no-op
	m, _ = update(t, m, keyMsg('j'))
	m, _ = update(t, m, keyMsg('G'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestIgnoresNonKeyMessages(t *testing.T) {
	m := newTestModel(t, 2)
	next, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil {
		t.Error("window size should not produce a command")
	}
	if next.cursor != m.cursor {
		t.Error("window size should not move cursor")
	}
}

func TestNewBatchErrorShown(t *testing.T) {
	m := newTestModel(t, 2)
	before := m.records
	m.size = -1

	m, _ = update(t, m, keyMsg('n'))
	if m.err == nil {
		t.Fatal("failed batch should record the error")
	}
	if m.batch != 1 {
		t.Errorf("batch = %d, want 1", m.batch)
	}
	if len(m.records) != len(before) {
		t.Error("failed batch should keep the previous records")
	}
	if !strings.Contains(m.View(), "invalid argument") {
		t.Error("view should show the error")
	}
}

func TestVerdict(t *testing.T) {
	m := newTestModel(t, 1)
	if got := m.verdict(record.Record{EatenByBear: true}); !strings.Contains(got, "eaten by bear") {
		t.Errorf("verdict = %q", got)
	}
	if got := m.verdict(record.Record{}); !strings.Contains(got, "survived") {
		t.Errorf("verdict = %q", got)
	}
}

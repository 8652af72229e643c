// Package preview is an interactive terminal browser over a generated batch
// of records.
package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/bearstats/internal/record"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// Model shows one record of a batch at a time.
type Model struct {
	gen     *record.Generator
	size    int
	records []record.Record
	header  []string
	cursor  int
	batch   int
	err     error
}

// accent is the bearstats highlight colour, a bear-fur brown.
var accent = lipgloss.Color("#A0522D")

// New draws size records from gen and returns a model browsing them.
func New(gen *record.Generator, size int) (Model, error) {
	records, err := gen.Generate(size)
	if err != nil {
		return Model{}, fmt.Errorf("preview: %w", err)
	}
	return Model{
		gen:     gen,
		size:    size,
		records: records,
		header:  record.Header(),
		batch:   1,
	}, nil
}

// Run starts the interactive program and blocks until the user quits.
func Run(gen *record.Generator, size int) error {
	m, err := New(gen, size)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(k, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(k, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(k, zstyle.KeyDown) {
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil
	}

	switch k.String() {
	case "n":
		records, err := m.gen.Generate(m.size)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.records = records
		m.cursor = 0
		m.batch++
		m.err = nil
	case "g":
		m.cursor = 0
	case "G":
		if len(m.records) > 0 {
			m.cursor = len(m.records) - 1
		}
	}

	return m, nil
}

func (m Model) View() string {
	title := zstyle.Title.Render("bearstats preview")
	s := fmt.Sprintf("\n  %s\n\n", title)

	if m.err != nil {
		s += "  " + zstyle.StatusErr.Render(m.err.Error()) + "\n\n"
	}

	if len(m.records) == 0 {
		s += "  " + zstyle.MutedText.Render("no records") + "\n\n"
		s += "  " + zstyle.MutedText.Render("q quit") + "\n"
		return s
	}

	pos := fmt.Sprintf("record %d/%d  batch %d", m.cursor+1, len(m.records), m.batch)
	s += "  " + zstyle.MutedText.Render(pos) + "\n\n"

	r := m.records[m.cursor]
	for i, v := range r.Values() {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-22s", m.header[i]))
		s += fmt.Sprintf("    %s %s\n", label, v)
	}

	s += "\n  " + m.verdict(r) + "\n\n"

	help := "j/k previous/next  g/G first/last  n new batch  q quit"
	s += "  " + zstyle.MutedText.Render(help) + "\n"
	return s
}

func (m Model) verdict(r record.Record) string {
	if r.EatenByBear {
		return zstyle.StatusErr.Render("eaten by bear")
	}
	return lipgloss.NewStyle().Foreground(accent).Bold(true).Render("survived")
}

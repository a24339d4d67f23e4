package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/phoenix/internal/cli/formatter"
	"github.com/alexanderramin/phoenix/internal/store"
)

type decisionItem struct {
	dec store.StoredDecision
}

func (i decisionItem) Title() string { return i.dec.Month }
func (i decisionItem) Description() string {
	return fmt.Sprintf("archived %s · %s", i.dec.CreatedAt.Format("2006-01-02 15:04"), i.dec.ID)
}
func (i decisionItem) FilterValue() string { return i.dec.Month }

// reviewModel browses archived decision records: a list of archive
// entries, and a detail view showing the canonical JSON for the
// selected record.
type reviewModel struct {
	list   list.Model
	detail string
	width  int
	height int
}

func newReviewModel(decisions []store.StoredDecision) reviewModel {
	items := make([]list.Item, 0, len(decisions))
	for _, d := range decisions {
		items = append(items, decisionItem{dec: d})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Archived SGA decisions"
	l.SetShowStatusBar(false)

	return reviewModel{list: l}
}

func (m reviewModel) Init() tea.Cmd { return nil }

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.detail != "" {
				m.detail = ""
				return m, nil
			}
			return m, tea.Quit
		case "esc":
			if m.detail != "" {
				m.detail = ""
				return m, nil
			}
		case "enter":
			if m.detail == "" {
				if item, ok := m.list.SelectedItem().(decisionItem); ok {
					m.detail = renderStoredDecision(item.dec)
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m reviewModel) View() string {
	if m.detail != "" {
		return m.detail + formatter.StyleDim.Render("\n(esc to go back, q to quit)\n")
	}
	return m.list.View()
}

func renderStoredDecision(dec store.StoredDecision) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, dec.Record, "", "  "); err != nil {
		return string(dec.Record)
	}
	header := formatter.StyleHeader.Render(fmt.Sprintf("Decision %s — %s", dec.ID, dec.Month))
	return header + "\n\n" + pretty.String() + "\n"
}

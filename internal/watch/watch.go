package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saeidalz13/battlesquares/client"
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

const (
	glyphSelf  = "@"
	glyphEnemy = "E"
	glyphDead  = "x"
	glyphEmpty = "."
)

var (
	selfStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	enemyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

type GameInfoFetcher interface {
	GameInfo(ctx context.Context, gameId int) (client.GameInfo, error)
}

type infoMsg struct {
	info client.GameInfo
	err  error
}

type tickMsg struct{}

// Model polls one game and shows the grid together with the action
// the strategy would take for selfId right now.
type Model struct {
	fetcher  GameInfoFetcher
	gameId   int
	selfId   mb.ActorID
	interval time.Duration

	info      client.GameInfo
	hasInfo   bool
	polls     int
	action    mb.Action
	decideErr error
	fetchErr  error
}

func NewModel(fetcher GameInfoFetcher, gameId int, selfId mb.ActorID, interval time.Duration) Model {
	return Model{
		fetcher:  fetcher,
		gameId:   gameId,
		selfId:   selfId,
		interval: interval,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

func (m Model) fetch() tea.Cmd {
	fetcher, gameId, timeout := m.fetcher, m.gameId, m.interval
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout+time.Second*5)
		defer cancel()
		info, err := fetcher.GameInfo(ctx, gameId)
		return infoMsg{info: info, err: err}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m, m.fetch()

	case infoMsg:
		m.polls++
		m.fetchErr = msg.err
		if msg.err != nil {
			return m, m.tick()
		}

		m.info = msg.info
		m.hasInfo = true
		m.action, m.decideErr = mb.Decide(msg.info.Snapshot(), m.selfId)

		// nothing changes after the game ends
		if msg.info.State.IsTerminal() {
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(statusStyle.Render(fmt.Sprintf("game %d\tplayer %s\tpolls %d", m.gameId, m.selfId, m.polls)))
	sb.WriteString("\n")

	if !m.hasInfo {
		sb.WriteString("waiting for game info...\n")
	} else {
		snapshot := m.info.Snapshot()
		sb.WriteString(gridStyle.Render(RenderGrid(snapshot, m.selfId)))
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(fmt.Sprintf("state: %s", snapshot.State)))
		sb.WriteString("\n")

		if m.decideErr != nil {
			sb.WriteString(errStyle.Render("decision: " + m.decideErr.Error()))
		} else {
			sb.WriteString(statusStyle.Render(fmt.Sprintf("decision: %s %s", m.action, m.action.Code())))
		}
		sb.WriteString("\n")
	}

	if m.fetchErr != nil {
		sb.WriteString(errStyle.Render("fetch: " + m.fetchErr.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(statusStyle.Render("q to quit"))
	return sb.String()
}

// RenderGrid draws one glyph per cell, row by row. Actors outside
// the grid are not drawn and self is drawn over anything sharing
// its cell.
func RenderGrid(snapshot mb.GameSnapshot, selfId mb.ActorID) string {
	size := snapshot.GridSize
	if size < 1 || size > mb.MaxGridSize {
		return ""
	}

	cells := make([][]string, size)
	for x := range cells {
		cells[x] = make([]string, size)
		for y := range cells[x] {
			cells[x][y] = emptyStyle.Render(glyphEmpty)
		}
	}

	for _, actor := range snapshot.Opponents(selfId) {
		if !actor.Position.InBounds(size) {
			continue
		}
		if actor.Alive {
			cells[actor.Position.X][actor.Position.Y] = enemyStyle.Render(glyphEnemy)
		} else {
			cells[actor.Position.X][actor.Position.Y] = deadStyle.Render(glyphDead)
		}
	}

	if self, err := snapshot.FindActor(selfId); err == nil && self.Position.InBounds(size) {
		cells[self.Position.X][self.Position.Y] = selfStyle.Render(glyphSelf)
	}

	rows := make([]string, size)
	for x := range cells {
		rows[x] = strings.Join(cells[x], " ")
	}
	return strings.Join(rows, "\n")
}

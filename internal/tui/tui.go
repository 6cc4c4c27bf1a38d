package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/config"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/engine"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/logger"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

type sessionState int

const (
	stateNameInput sessionState = iota
	stateJockeySelect
	statePrep
	stateRacing
	stateResults
	stateSeasonOver
	stateError
)

const raceDelay = 1200 * time.Millisecond

type model struct {
	state     sessionState
	ctrl      *engine.Controller
	log       *zap.Logger
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int

	playerName   string
	confirmNoBet bool
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAF5F")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(ctrl *engine.Controller, log *zap.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "What's your name?"
	ti.Focus()
	ti.CharLimit = 60
	ti.Width = 40

	return model{
		state:     stateNameInput,
		ctrl:      ctrl,
		log:       log,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type raceFinishedMsg struct {
	report *engine.RaceReport
	err    error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.72)
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.gameLog)

	case raceFinishedMsg:
		if msg.err != nil {
			// The controller holds the race while a horse is picked but no
			// bet is down. Back to prep so the player can bet or confirm.
			if errors.Is(msg.err, engine.ErrBetNotPlaced) {
				m.confirmNoBet = true
				m.state = statePrep
				m.appendLog(warnStyle.Render("You picked a horse but placed no bet. Bet now, or type 'race' again to start anyway."))
				return m, nil
			}
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.appendLog(m.renderReport(msg.report))
		if m.ctrl.Phase() == engine.PhaseSeasonOver {
			m.state = stateSeasonOver
			m.appendLog(m.renderSummary())
			return m, nil
		}
		m.state = stateResults
		return m, nil
	}

	if m.state != stateRacing {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()

	switch m.state {
	case stateNameInput:
		if input == "" {
			input = "Player"
		}
		m.playerName = input
		m.state = stateJockeySelect
		m.textInput.Placeholder = "Jockey number, or 'none'"
		return m, nil

	case stateJockeySelect:
		jockeyID := ""
		if input != "" && input != "none" {
			if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(engine.Jockeys) {
				jockeyID = engine.Jockeys[n-1].ID
			} else {
				m.appendLog(warnStyle.Render("Pick a jockey number from the list, or 'none'."))
				return m, nil
			}
		}
		if err := m.ctrl.Start(m.playerName, jockeyID); err != nil {
			m.err = err
			m.state = stateError
			return m, nil
		}
		m.log.Info("season started",
			zap.String("player", m.playerName),
			zap.String("jockey", jockeyID))
		m.state = statePrep
		m.textInput.Placeholder = "train / scout / bet / loan / race ..."
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(int(float64(m.width)*0.72), m.height-6)
		}
		m.appendLog(gameStyle.Bold(true).Render("The season begins.") + "\n" + m.describeEvent())
		return m, nil

	case statePrep:
		return m.handleCommand(input)

	case stateResults:
		if err := m.ctrl.ContinueSeason(); err != nil {
			m.err = err
			m.state = stateError
			return m, nil
		}
		m.state = statePrep
		m.confirmNoBet = false
		m.appendLog(m.describeEvent())
		return m, nil

	case stateSeasonOver:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleCommand(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}
	if input == "/quit" {
		return m, tea.Quit
	}
	m.appendLog(userStyle.Render("> " + input))

	fields := strings.Fields(input)
	switch fields[0] {
	case "train":
		if len(fields) < 2 {
			m.appendLog(warnStyle.Render("Usage: train general|speed|rest|sync"))
			return m, nil
		}
		msg, err := m.ctrl.SelectTraining(models.TrainingType(fields[1]))
		m.appendAction(msg, err)

	case "scout":
		if len(fields) < 2 {
			m.appendLog(warnStyle.Render("Usage: scout <horse#> [deep]"))
			return m, nil
		}
		if fields[1] == "self" {
			msg, err := m.ctrl.ScoutOwn()
			m.appendAction(msg, err)
			return m, nil
		}
		id, ok := m.competitorID(fields[1])
		if !ok {
			m.appendLog(warnStyle.Render("No such horse."))
			return m, nil
		}
		depth := models.ScoutBasic
		if len(fields) > 2 && fields[2] == "deep" {
			depth = models.ScoutDeep
		}
		msg, err := m.ctrl.Scout(id, depth)
		m.appendAction(msg, err)

	case "pick":
		if len(fields) < 2 {
			m.appendLog(warnStyle.Render("Usage: pick <horse#>"))
			return m, nil
		}
		id, ok := m.competitorID(fields[1])
		if !ok {
			m.appendLog(warnStyle.Render("No such horse."))
			return m, nil
		}
		m.appendAction("Horse selected for betting.", m.ctrl.SelectHorse(id))

	case "bet":
		if len(fields) < 3 {
			m.appendLog(warnStyle.Render("Usage: bet <horse#> <amount>"))
			return m, nil
		}
		id, ok := m.competitorID(fields[1])
		if !ok {
			m.appendLog(warnStyle.Render("No such horse."))
			return m, nil
		}
		amount, err := strconv.Atoi(fields[2])
		if err != nil || amount <= 0 {
			m.appendLog(warnStyle.Render("Bet amount must be a positive number."))
			return m, nil
		}
		m.appendAction(fmt.Sprintf("Bet placed: %d at odds %.2f.", amount, m.ctrl.Odds(id)),
			m.ctrl.PlaceBet(id, amount))

	case "loan":
		msg, err := m.ctrl.TakeLoan()
		m.appendAction(msg, err)

	case "accept":
		msg, err := m.ctrl.AcceptEvent()
		m.appendAction(msg, err)

	case "decline":
		m.appendAction("You pass on the offer.", m.ctrl.DismissEvent())

	case "race":
		m.state = stateRacing
		confirm := m.confirmNoBet
		return m, tea.Tick(raceDelay, func(time.Time) tea.Msg {
			report, err := m.ctrl.StartRace(confirm)
			return raceFinishedMsg{report: report, err: err}
		})

	default:
		m.appendLog(helpStyle.Render("Commands: train, scout, pick, bet, loan, accept, decline, race, /quit"))
	}
	return m, nil
}

// competitorID maps a 1-based roster number (0 = player horse) to an id.
func (m *model) competitorID(arg string) (string, bool) {
	s := m.ctrl.Snapshot()
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", false
	}
	if n == 0 {
		return s.PlayerHorse.ID, true
	}
	if n < 1 || n > len(s.Competitors) {
		return "", false
	}
	return s.Competitors[n-1].ID, true
}

func (m *model) appendAction(msg string, err error) {
	if err != nil {
		m.appendLog(warnStyle.Render(err.Error()))
		return
	}
	m.appendLog(gameStyle.Render(msg))
}

func (m *model) appendLog(line string) {
	m.gameLog += line + "\n\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) describeEvent() string {
	ev, pendingPassive, awaitingChoice := m.ctrl.PendingEvent()
	switch {
	case pendingPassive:
		return helpStyle.Render(fmt.Sprintf("News: %s — %s (settles after the race)", ev.Title, ev.Description))
	case awaitingChoice:
		return warnStyle.Render(fmt.Sprintf("Offer: %s — %s (cost %d). Type 'accept' or 'decline'.",
			ev.Title, ev.Description, ev.Cost))
	default:
		return ""
	}
}

func (m model) renderReport(report *engine.RaceReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("RACE RESULTS") + "\n")
	for _, res := range report.Results {
		line := fmt.Sprintf("%2d. %-28s %6.1f", res.Position, res.HorseName, res.FinalSpeed)
		if len(res.RaceEvents) > 0 {
			line += "  (" + strings.Join(res.RaceEvents, "; ") + ")"
		}
		b.WriteString(line + "\n")
	}
	for _, msg := range report.Messages {
		b.WriteString(gameStyle.Render(msg) + "\n")
	}
	b.WriteString(helpStyle.Render("Press enter to continue."))
	return b.String()
}

func (m model) renderSummary() string {
	sum := m.ctrl.Summary()
	var b strings.Builder
	b.WriteString(titleStyle.Render("SEASON OVER") + "\n")
	if sum.Bankrupt {
		b.WriteString(warnStyle.Render("The stable is bankrupt.") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Loan repaid with interest: %d (rate %.2f)\n", sum.LoanRepaid, sum.InterestRate))
		b.WriteString(fmt.Sprintf("Final net worth: %d (goal %d)\n", sum.NetWorth, sum.Goal))
		if sum.Won {
			b.WriteString(gameStyle.Bold(true).Render("You made it. The season is yours.") + "\n")
		} else {
			b.WriteString(gameStyle.Render("Short of the goal. There is always next season.") + "\n")
		}
	}
	b.WriteString(helpStyle.Render("Press enter to quit."))
	return b.String()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateNameInput:
		s = fmt.Sprintf(
			"Welcome to the stable.\n\n%s\n\n%s",
			"Every season starts with a name on the registration form:",
			m.textInput.View(),
		)

	case stateJockeySelect:
		var b strings.Builder
		b.WriteString(titleStyle.Render("PICK A JOCKEY") + "\n\n")
		for i, j := range engine.Jockeys {
			b.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, j.Name, j.Description))
		}
		b.WriteString("\n" + m.textInput.View())
		s = b.String()

	case stateRacing:
		s = "\n  They're off...\n"

	case statePrep, stateResults, stateSeasonOver:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderSidebar(),
		)
		help := helpStyle.Render("Commands: train, scout <n> [deep], scout self, pick <n>, bet <n> <amt>, loan, accept, decline, race")
		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderSidebar() string {
	s := m.ctrl.Snapshot()
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SEASON") + "\n")
	b.WriteString(fmt.Sprintf("Race %d of %d\n", min(s.CurrentRace, s.TotalRaces), s.TotalRaces))
	b.WriteString(fmt.Sprintf("Money: %d\nGoal: %d\n", s.PlayerMoney, s.SeasonGoal))
	if s.LoanAmount > 0 {
		b.WriteString(fmt.Sprintf("Debt: %d\n", s.LoanAmount))
	}
	b.WriteString("\n" + titleStyle.Render("YOUR HORSE") + "\n")
	h := s.PlayerHorse
	b.WriteString(h.Name + "\n")
	b.WriteString(fmt.Sprintf("Speed %d  Control %d\nRecovery %d  Endurance %d\n",
		h.DisplayedSpeed, h.Control, h.Recovery, h.Endurance))
	if h.HasInjury {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Injured (%s)", h.InjuryType)) + "\n")
	}
	for _, t := range h.RevealedAttributes {
		b.WriteString("* " + t.Name + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("FIELD") + "\n")
	for i, c := range s.Competitors {
		line := fmt.Sprintf("%d. %s", i+1, c.Name)
		if c.ScoutedStats != nil {
			line += fmt.Sprintf(" (spd %d, r%d)", c.ScoutedStats.DisplayedSpeed, c.LastUpdated)
		}
		if c.MissNextRace {
			line += " [out]"
		}
		b.WriteString(line + "\n")
	}

	stateWidth := int(float64(m.width) * 0.26)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(b.String())
}

// Run starts the TUI over an already-wired controller.
func Run(ctrl *engine.Controller, log *zap.Logger) error {
	p := tea.NewProgram(NewModel(ctrl, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start wires the default configuration and runs the game.
func Start() error {
	cfg := config.Load()
	log, err := logger.New(cfg.Debug, "game.log")
	if err != nil {
		return err
	}
	defer log.Sync()

	bal, err := config.LoadBalance(cfg.BalanceFile)
	if err != nil {
		return err
	}
	ctrl := engine.NewController(engine.New(cfg.Seed, bal))
	m := NewModel(ctrl, log)
	if cfg.PlayerName != "" {
		m.textInput.SetValue(cfg.PlayerName)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

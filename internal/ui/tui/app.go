package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/advent/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenResult
)

type action int

const (
	actionSolveDay action = iota
	actionSolveAll
	actionInit
	actionQuit
)

type menuItem struct {
	title  string
	desc   string
	action action
	day    int
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr        screen
	menu       list.Model
	activeName string

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	running bool
	run     domain.RunResult
	err     error
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	var items []list.Item
	if deps.Catalog != nil {
		for _, day := range deps.Catalog.Days() {
			s, err := deps.Catalog.Solver(day)
			if err != nil {
				continue
			}
			info := s.Info()
			items = append(items, menuItem{
				title:  fmt.Sprintf("Day %d: %s", info.Day, info.Title),
				desc:   info.URL,
				action: actionSolveDay,
				day:    info.Day,
			})
		}
	}
	items = append(items,
		menuItem{title: "Solve all", desc: "Solve every day with an input", action: actionSolveAll},
		menuItem{title: "Init workspace", desc: "Create advent.yaml, answers.yaml and day folders here", action: actionInit},
		menuItem{title: "Quit", desc: "Exit Advent", action: actionQuit},
	)

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Advent of Code"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}

	wd, err := os.Getwd()
	if err == nil {
		m.cwd = wd
		if deps.WorkspaceLocator != nil {
			if root, findErr := deps.WorkspaceLocator.FindRoot(wd); findErr == nil {
				m.workspaceFound = true
				m.workspaceRoot = root
			}
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

// solveRoot falls back to the working directory when no advent.yaml was found.
func (m model) solveRoot() string {
	if m.workspaceFound {
		return m.workspaceRoot
	}
	return m.cwd
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		if msg.cwd != "" {
			m.cwd = msg.cwd
		}
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = "Init failed: " + userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case solveDoneMsg:
		m.running = false
		m.run = msg.run
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering && msg.String() != "ctrl+c" {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if m.scr == screenHome {
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				return m.activate(it)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				m.activeName = ""
				return m, nil
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) activate(it menuItem) (tea.Model, tea.Cmd) {
	m.toast = ""

	switch it.action {
	case actionQuit:
		return m, tea.Quit

	case actionInit:
		root := m.cwd
		if m.workspaceFound {
			root = m.workspaceRoot
		}
		return m, cmdInitWorkspaceHere(m.deps, root)

	case actionSolveDay, actionSolveAll:
		if m.running {
			m.toast = "A solve is already running"
			return m, nil
		}
		var days []int
		if it.action == actionSolveDay {
			days = []int{it.day}
		}

		m.scr = screenResult
		m.activeName = it.title
		m.running = true
		m.run = domain.RunResult{}
		m.err = nil

		_, cmd := startSolveAsync(m.solveRoot(), m.deps.Catalog, days, m.deps.Logger, m.deps.Debug)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Advent") + "\n" +
		m.theme.Subtitle.Render("Advent of Code 2022, solved in Go") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("No advent.yaml found, using %s", m.cwd))
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Subtitle.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter solve • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + toast)

	case screenResult:
		var body string
		switch {
		case m.running:
			body = "Solving…"
		case m.err != nil:
			body = m.theme.Error.Render(userMessage(m.err))
		default:
			body = renderRun(m.theme, m.run)
		}
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.activeName),
				body,
				m.theme.Help.Render("esc/b back • q quit"),
			),
		)
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

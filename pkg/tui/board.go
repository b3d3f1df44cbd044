// Package tui renders the interactive weekly planner board.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/timeutil"
	"focilab.dev/focilab/pkg/todo"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionMove
)

// day bucket item for left list
type dayItem struct {
	name  string
	count int
}

func (d dayItem) Title() string {
	if d.count == 0 {
		return d.name
	}
	return fmt.Sprintf("%s (%d)", d.name, d.count)
}
func (d dayItem) Description() string { return "" }
func (d dayItem) FilterValue() string { return d.name }

// todo item for right list
type todoItem struct{ t *todo.Todo }

func (it todoItem) Title() string {
	s := it.t.String()
	if it.t.Selected {
		s = "* " + s
	}
	return s
}
func (it todoItem) Description() string { return "" }
func (it todoItem) FilterValue() string { return it.t.Title }

// Model contains board state
type Model struct {
	pl     *planner.Planner
	events <-chan store.Event

	mode   mode
	action action

	focus int // 0: days, 1: todos

	dayList  list.Model
	todoList list.Model

	input textinput.Model

	status string

	termWidth  int
	termHeight int

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

// New creates a board model backed by the planner. The events channel may be
// nil; when set, store change notifications trigger a reload.
func New(pl *planner.Planner, events <-chan store.Event) Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused list should not visually highlight the selected item
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l1 := list.New([]list.Item{}, dBlur, 24, 20)
	l1.Title = "Days"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)

	l2 := list.New([]list.Item{}, dFocus, 80, 20)
	l2.Title = "Todos"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Focus()
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		pl:       pl,
		events:   events,
		mode:     modeNormal,
		action:   actionNone,
		focus:    1,
		dayList:  l1,
		todoList: l2,
		input:    ti,
		status:   "NORMAL: h/l move panes, j/k move, o add, x complete, s start, space select, > move, d delete, ? help, q quit",
		focusDel: dFocus,
		blurDel:  dBlur,
	}
	m.setDayItems()
	m.selectToday()
	m.updateFocusHeaders()
	return m
}

// Init loads initial data
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTodos(), m.waitForChange())
}

func (m *Model) setDayItems() {
	items := make([]list.Item, 0, 7)
	for _, d := range timeutil.DayBuckets() {
		items = append(items, dayItem{name: d, count: len(m.pl.TodosByDay(d))})
	}
	idx := m.dayList.Index()
	m.dayList.SetItems(items)
	if idx >= 0 && idx < len(items) {
		m.dayList.Select(idx)
	}
}

func (m *Model) selectToday() {
	today := m.pl.Now().Weekday().String()
	for i, d := range timeutil.DayBuckets() {
		if d == today {
			m.dayList.Select(i)
			return
		}
	}
}

func (m *Model) selectedDay() string {
	sel := m.dayList.SelectedItem()
	if sel == nil {
		return ""
	}
	return sel.(dayItem).name
}

func (m *Model) currentTodo() *todo.Todo {
	sel := m.todoList.SelectedItem()
	if sel == nil {
		return nil
	}
	return sel.(todoItem).t
}

func (m *Model) loadTodos() tea.Cmd {
	day := m.selectedDay()
	return func() tea.Msg {
		if day == "" {
			return todosLoadedMsg{nil}
		}
		todos := m.pl.TodosByDay(day)
		items := make([]list.Item, 0, len(todos))
		for _, t := range todos {
			items = append(items, todoItem{t: t})
		}
		return todosLoadedMsg{items}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeChangedMsg{ev}
	}
}

// messages
type errMsg struct{ err error }
type todosLoadedMsg struct{ items []list.Item }
type storeChangedMsg struct{ ev store.Event }

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case todosLoadedMsg:
		m.todoList.SetItems(msg.items)
		m.setDayItems()
	case storeChangedMsg:
		if err := m.pl.Reload(); err != nil {
			m.status = "ERR: " + err.Error()
		}
		cmds = append(cmds, m.loadTodos(), m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
				skipListRouting = true
			}
		case modeInsert:
			switch msg.String() {
			case "enter":
				input := strings.TrimSpace(m.input.Value())
				switch m.action {
				case actionAdd:
					day := m.selectedDay()
					if day != "" && input != "" {
						if _, err := m.pl.AddTodo(input, day); err != nil {
							cmds = append(cmds, func() tea.Msg { return errMsg{err} })
						} else {
							m.status = "Added"
						}
					}
				case actionMove:
					if t := m.currentTodo(); t != nil && input != "" {
						if _, err := m.pl.MoveTodo(t.ID, input); err != nil {
							cmds = append(cmds, func() tea.Msg { return errMsg{err} })
						} else {
							m.status = "Moved"
						}
					}
				}
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				cmds = append(cmds, m.loadTodos())
				skipListRouting = true
			case "esc":
				prevAction := m.action
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				switch prevAction {
				case actionAdd:
					m.status = "Add cancelled"
				case actionMove:
					m.status = "Move cancelled"
				default:
					m.status = "Cancelled"
				}
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
				skipListRouting = true
			case "?":
				m.mode = modeHelp
				skipListRouting = true
			case "h", "left":
				m.focus = 0
				m.updateFocusHeaders()
				skipListRouting = true
			case "l", "right":
				m.focus = 1
				m.updateFocusHeaders()
				skipListRouting = true
			case "o":
				m.mode = modeInsert
				m.action = actionAdd
				m.input.Reset()
				m.input.Placeholder = "New todo"
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
				skipListRouting = true
			case ">":
				if t := m.currentTodo(); t != nil {
					m.mode = modeInsert
					m.action = actionMove
					m.input.Reset()
					m.input.Placeholder = "Day (Mon..Sun)"
					if cmd := m.input.Focus(); cmd != nil {
						cmds = append(cmds, cmd)
					}
					cmds = append(cmds, textinput.Blink)
				}
				skipListRouting = true
			case "x":
				if t := m.currentTodo(); t != nil {
					if _, err := m.pl.CompleteTodo(t.ID); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = "Completed"
						cmds = append(cmds, m.loadTodos())
					}
				}
				skipListRouting = true
			case "s":
				if t := m.currentTodo(); t != nil {
					if _, err := m.pl.StartTodo(t.ID); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = "Started"
						cmds = append(cmds, m.loadTodos())
					}
				}
				skipListRouting = true
			case " ":
				if t := m.currentTodo(); t != nil {
					if _, err := m.pl.ToggleSelected(t.ID); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						cmds = append(cmds, m.loadTodos())
					}
				}
				skipListRouting = true
			case "d":
				if t := m.currentTodo(); t != nil {
					if err := m.pl.DeleteTodo(t.ID); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = "Deleted"
						cmds = append(cmds, m.loadTodos())
					}
				}
				skipListRouting = true
			}
		}
	}

	if !skipListRouting {
		var cmd tea.Cmd
		if m.focus == 0 {
			before := m.dayList.Index()
			m.dayList, cmd = m.dayList.Update(msg)
			cmds = append(cmds, cmd)
			if m.dayList.Index() != before {
				cmds = append(cmds, m.loadTodos())
			}
		} else {
			m.todoList, cmd = m.todoList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the two panes plus the input or help overlay.
func (m Model) View() string {
	left := m.dayList.View()
	right := m.todoList.View()
	gap := lipgloss.NewStyle().Padding(0, 1).Render
	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeHelp: "HELP"}[m.mode]
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right)

	if m.mode == modeInsert {
		prompt := ""
		switch m.action {
		case actionAdd:
			prompt = "Add: "
		case actionMove:
			prompt = "Move to: "
		}
		body += "\n\n" + prompt + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: h/l switch panes, j/k move, o add a todo to the focused day, x complete, s mark in progress, space toggle today's selection, > move to another day, d delete, ? close help, q quit"
		if m.termWidth > 0 {
			help = wordwrap.String(help, m.termWidth-2)
		}
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	return body + "\n\n" + status
}

// Run starts the board program and blocks until it exits.
func Run(ctx context.Context, pl *planner.Planner, p store.Persistence) error {
	var events <-chan store.Event
	if p != nil {
		ch, err := p.Watch(ctx)
		if err != nil {
			return err
		}
		events = ch
	}
	prog := tea.NewProgram(New(pl, events), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// applySizes recalculates list sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	// The day pane only ever holds seven fixed-width names.
	left := m.termWidth / 4
	if left < 18 {
		left = 18
	}
	if left > 28 {
		left = 28
	}
	right := m.termWidth - left - 4
	if right < 20 {
		right = 20
	}
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.dayList.SetSize(left, height)
	m.todoList.SetSize(right, height)
}

// updateFocusHeaders updates pane titles to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	// Fixed-width 2-char prefix avoids layout shift when focus changes.
	const on = "» "
	const off = "  "
	if m.focus == 0 {
		m.dayList.Title = on + "Days"
		m.todoList.Title = off + "Todos"
		m.dayList.SetDelegate(m.focusDel)
		m.todoList.SetDelegate(m.blurDel)
	} else {
		m.dayList.Title = off + "Days"
		m.todoList.Title = on + "Todos"
		m.dayList.SetDelegate(m.blurDel)
		m.todoList.SetDelegate(m.focusDel)
	}
}

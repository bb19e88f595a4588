package ui

import (
	"fmt"
	"strings"
	"time"

	"taskcal/internal/board"
	"taskcal/internal/config"
	dom "taskcal/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle  = lipgloss.NewStyle().Width(cellWidth).Faint(true)
	cellStyle    = lipgloss.NewStyle().Width(cellWidth).Height(2)
	todayStyle   = cellStyle.Foreground(lipgloss.Color("212")).Bold(true)
	focusStyle   = cellStyle.Reverse(true)
	draggedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	var b strings.Builder

	page := m.board.Calendar(m.board.View())
	b.WriteString(titleStyle.Render(page.Title))
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid(page))
	b.WriteString("\n\n")
	b.WriteString(m.renderDay())

	if g, ok := m.board.Drag().Active(); ok {
		if t, found := m.board.Store().Todo(g.TodoID); found {
			b.WriteString("\n")
			b.WriteString(draggedStyle.Render(fmt.Sprintf("%s %q", g.State, t.Title)))
		}
	}
	if snap := m.board.Store().Snapshot(); snap.Err != "" {
		b.WriteString("\n")
		b.WriteString("error: " + snap.Err)
	}

	b.WriteString("\n")
	if m.mode == modeAdd {
		b.WriteString("Add Todo: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.keys)))

	return b.String()
}

func (m Model) renderFilters() string {
	sel := m.board.Selection()
	return fmt.Sprintf("category: %s · time: %s · status: %s",
		categoryLabel(sel.Category), orAll(string(sel.TimeFrame)), orAll(string(sel.Status)))
}

func (m Model) renderGrid(page board.Page) string {
	head := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		head = append(head, headerStyle.Render(d.String()[:3]))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, head...)}

	dragged := ""
	if g, ok := m.board.Drag().Active(); ok {
		dragged = g.TodoID
	}
	focus := page.Grid.CellOf(m.focus)
	for _, week := range page.Grid.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, renderCell(page.Days[c.Index], c.Index == focus, dragged))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(d board.Day, focused bool, dragged string) string {
	if d.Empty() {
		return cellStyle.Render("")
	}
	marks := ""
	if n := len(d.Todos); n > 0 {
		marks = fmt.Sprintf("•%d", n)
	}
	for _, t := range d.Todos {
		if t.ID == dragged {
			marks += " *"
			break
		}
	}
	body := fmt.Sprintf("%2d\n%s", d.Day, marks)
	switch {
	case focused:
		return focusStyle.Render(body)
	case d.IsToday:
		return todayStyle.Render(body)
	}
	return cellStyle.Render(body)
}

func (m Model) renderDay() string {
	v := m.board.View()
	date := time.Date(v.Year, v.Month, m.focus, 0, 0, 0, 0, m.board.Location())

	var b strings.Builder
	b.WriteString(date.Format("Monday, January 2"))
	b.WriteString("\n")
	list := m.dayTodos()
	if len(list) == 0 {
		b.WriteString("  nothing due")
		return b.String()
	}
	for i, t := range list {
		cursor := " "
		if i == m.item {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, m.renderTodo(t)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTodo(t dom.Todo) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	line := fmt.Sprintf("%s %s  %s · %s · %s", checkbox, t.Title,
		t.DueDate.In(m.board.Location()).Format("15:04"), t.Category, t.Priority)
	if t.Recurring != nil {
		line += " · " + string(t.Recurring.Frequency)
	}
	if t.Completed {
		return doneStyle.Render(line)
	}
	return line
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s/%s/%s move • %s next item • %s/%s/%s month • %s grab • %s drop • %s cancel • %s add • %s toggle • %s delete • %s/%s/%s filters • %s quit",
		firstKey(k.Left), firstKey(k.Down), firstKey(k.Up), firstKey(k.Right), k.NextItem,
		k.PrevMonth, k.NextMonth, k.Today, k.Grab, k.Drop, k.Cancel, k.Add, k.Toggle, k.Delete,
		k.CycleCategory, k.CycleTimeFrame, k.CycleStatus, firstKey(k.Quit))
}

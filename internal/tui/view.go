package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fmizzell/todo"
)

type palette struct {
	fg, muted, accent, done, border lipgloss.Color
}

var (
	darkPalette = palette{
		fg:     lipgloss.Color("#F9FAFB"),
		muted:  lipgloss.Color("#9CA3AF"),
		accent: lipgloss.Color("#FACC15"),
		done:   lipgloss.Color("#4ADE80"),
		border: lipgloss.Color("#4B5563"),
	}
	lightPalette = palette{
		fg:     lipgloss.Color("#111827"),
		muted:  lipgloss.Color("#6B7280"),
		accent: lipgloss.Color("#DB2777"),
		done:   lipgloss.Color("#15803D"),
		border: lipgloss.Color("#111827"),
	}
)

var priorityBadge = map[todo.Priority]string{
	todo.PriorityLow:    "low",
	todo.PriorityMedium: "med",
	todo.PriorityHigh:   "HIGH",
}

func (m *Model) View() string {
	state := m.store.State()
	p := lightPalette
	if state.DarkMode {
		p = darkPalette
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	muted := lipgloss.NewStyle().Foreground(p.muted)
	text := lipgloss.NewStyle().Foreground(p.fg)
	done := lipgloss.NewStyle().Foreground(p.done).Strikethrough(true)
	box := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(title.Render("TODO"))
	if state.IsAnimating {
		b.WriteString(muted.Render("  adding..."))
	}
	b.WriteString("\n")
	b.WriteString(renderFilters(state.Filter, title, muted))
	b.WriteString("\n\n")

	tasks := todo.FilterTasks(state.Tasks, state.Filter)
	var list strings.Builder
	if len(tasks) == 0 {
		list.WriteString(muted.Render(todo.EmptyMessage(state.Filter)))
	}
	for i, task := range tasks {
		cursor := "  "
		if i == m.cursor && m.mode == modeNormal {
			cursor = title.Render("> ")
		}
		check, style := "[ ]", text
		if task.Completed {
			check, style = "[x]", done
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, check, style.Render(task.Title), muted.Render(priorityBadge[task.Priority]))
		if i > 0 {
			list.WriteString("\n")
		}
		list.WriteString(line)
	}
	b.WriteString(box.Render(list.String()))
	b.WriteString("\n")

	b.WriteString(muted.Render(fmt.Sprintf("%d active · %d completed", todo.CountActive(state.Tasks), todo.CountCompleted(state.Tasks))))
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("\nNew task: " + m.input.View() + "\n")
	case modeEdit:
		b.WriteString("\nEdit task: " + m.input.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + text.Render(m.status) + "\n")
	}

	sound := "off"
	if state.SoundEnabled {
		sound = "on"
	}
	help := fmt.Sprintf("a add · x toggle · e edit · d delete · c clear · 1/2/3 filter · m theme · s sound (%s) · q quit", sound)
	b.WriteString("\n" + muted.Render(help))

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func renderFilters(current todo.Filter, active, inactive lipgloss.Style) string {
	parts := make([]string, len(todo.Filters))
	for i, f := range todo.Filters {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(string(f)))
		if f == current {
			parts[i] = active.Render("[" + label + "]")
		} else {
			parts[i] = inactive.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

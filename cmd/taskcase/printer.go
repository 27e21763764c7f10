package main

import (
	"fmt"
	"io"
	"time"

	"github.com/drujensen/taskcase/internal/domain/entities"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	idStyle   = lipgloss.NewStyle().Bold(true).Width(6)
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dueStyle  = lipgloss.NewStyle().Faint(true)
)

// printTasks writes one line per task, with postponeable due dates relative to now.
func printTasks(w io.Writer, tasks []entities.Task, now time.Time) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks.")
		return err
	}

	for _, t := range tasks {
		line := idStyle.Render("#"+t.ID().String()) + " " + nameStyle.Render(t.Name().String())
		if p, ok := t.(entities.Postponable); ok {
			due := p.DueDate()
			line += " " + dueStyle.Render(fmt.Sprintf("due %s (%s)", due.Format("2006-01-02"), humanize.RelTime(due, now, "ago", "from now")))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

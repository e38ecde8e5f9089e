package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/dashboard"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	areaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

var reportOwner string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print activity counts per area and status",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		var owner *uuid.UUID
		if reportOwner != "" {
			u, err := e.c.Users.GetByEmail(cmd.Context(), reportOwner)
			if err != nil {
				return fmt.Errorf("look up %s: %w", reportOwner, err)
			}
			owner = &u.ID
		}

		list, err := e.c.Activities.List(cmd.Context(), domain.ActivityFilter{OwnerID: owner})
		if err != nil {
			return err
		}
		renderReport(cmd.OutOrStdout(), summarizeAreas(list))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOwner, "owner", "", "only count activities of this email (default: everyone)")
}

type areaRow struct {
	Area       string
	Pending    int
	InProgress int
	Completed  int
}

func (r areaRow) Total() int { return r.Pending + r.InProgress + r.Completed }

// summarizeAreas counts active activities per area, sorted by area name.
func summarizeAreas(list []domain.Activity) []areaRow {
	byArea := make(map[string]*areaRow)
	for _, a := range list {
		if a.IsDeleted() {
			continue
		}
		row, ok := byArea[a.Area]
		if !ok {
			row = &areaRow{Area: a.Area}
			byArea[a.Area] = row
		}
		switch a.Status {
		case domain.ActivityStatusPending:
			row.Pending++
		case domain.ActivityStatusInProgress:
			row.InProgress++
		case domain.ActivityStatusCompleted:
			row.Completed++
		}
	}

	rows := make([]areaRow, 0, len(byArea))
	for _, r := range byArea {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Area < rows[j].Area })
	return rows
}

func renderReport(w io.Writer, rows []areaRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no activities"))
		return
	}

	areaWidth := len("Área")
	for _, r := range rows {
		areaWidth = max(areaWidth, lipgloss.Width(r.Area))
	}
	area := lipgloss.NewStyle().Width(areaWidth + 2)
	num := lipgloss.NewStyle().Width(14).Align(lipgloss.Right)

	line := func(style lipgloss.Style, cells ...string) string {
		var b strings.Builder
		b.WriteString(area.Inherit(style).Render(cells[0]))
		for _, c := range cells[1:] {
			b.WriteString(num.Inherit(style).Render(c))
		}
		return b.String()
	}

	fmt.Fprintln(w, line(headerStyle,
		"Área",
		domain.ActivityStatusPending.Label(),
		domain.ActivityStatusInProgress.Label(),
		domain.ActivityStatusCompleted.Label(),
		"Total", "%"))

	var total areaRow
	for _, r := range rows {
		total.Pending += r.Pending
		total.InProgress += r.InProgress
		total.Completed += r.Completed

		style := areaStyle
		if r.Completed == r.Total() {
			style = doneStyle
		}
		fmt.Fprintln(w, line(style, r.Area,
			strconv.Itoa(r.Pending), strconv.Itoa(r.InProgress), strconv.Itoa(r.Completed),
			strconv.Itoa(r.Total()), rate(r)))
	}

	fmt.Fprintln(w, line(totalStyle, "Total",
		strconv.Itoa(total.Pending), strconv.Itoa(total.InProgress), strconv.Itoa(total.Completed),
		strconv.Itoa(total.Total()), rate(total)))
}

func rate(r areaRow) string {
	return strconv.FormatFloat(dashboard.CompletionRate(r.Completed, r.Total()), 'f', 1, 64)
}

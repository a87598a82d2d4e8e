// Package report renders a finished Schedule for people: a text Gantt timeline and a
// per-process table with averages. It only reads Schedule and Metrics.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
)

const (
	minCellWidth = 8
	idleLabel    = "-"
)

// Write renders the title, Gantt timeline and schedule table of one run.
func Write(w io.Writer, title string, s *sim.Schedule, m *sim.Metrics) {
	Title(w, title)
	Gantt(w, s)
	Table(w, s, m)
}

// Title prints a banner around title.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

type cell struct {
	label      string
	start, end int64
}

// timeline turns segments into chart cells, inserting idle cells for CPU gaps.
func timeline(s *sim.Schedule) []cell {
	cells := make([]cell, 0, len(s.Segments))
	var clock int64
	for _, seg := range s.Segments {
		if seg.Start > clock {
			cells = append(cells, cell{label: idleLabel, start: clock, end: seg.Start})
		}
		cells = append(cells, cell{label: seg.ProcessID, start: seg.Start, end: seg.End})
		clock = seg.End
	}
	return cells
}

func cellWidth(cells []cell) int {
	width := minCellWidth
	for _, c := range cells {
		width = max(width, len(c.label)+2, len(fmt.Sprint(c.start))+1)
	}
	return width
}

func center(label string, width int) string {
	left := (width - len(label)) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-len(label)-left)
}

// Gantt prints one bar per execution segment with the boundary times underneath.
// Idle stretches are drawn as "-" cells.
func Gantt(w io.Writer, s *sim.Schedule) {
	cells := timeline(s)
	width := cellWidth(cells)

	var bars, ticks strings.Builder
	bars.WriteString("|")
	for _, c := range cells {
		bars.WriteString(center(c.label, width))
		bars.WriteString("|")
		ticks.WriteString(fmt.Sprintf("%-*d", width+1, c.start))
	}
	if len(cells) > 0 {
		ticks.WriteString(fmt.Sprint(cells[len(cells)-1].end))
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

// Table prints one row per process, in input order, with averages in the footer.
func Table(w io.Writer, s *sim.Schedule, m *sim.Metrics) {
	rows := make([][]string, len(s.Processes))
	for i, p := range s.Processes {
		rows[i] = []string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.EndTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Exit", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	if m != nil {
		table.SetFooter([]string{"", "", "", "", "",
			fmt.Sprintf("Throughput\n%.2f/t", m.Throughput),
			fmt.Sprintf("Average\n%.2f", m.AvgWaitingTime),
			fmt.Sprintf("Average\n%.2f", m.AvgTurnaroundTime)})
	}
	table.Render()
}

// Comparison prints one row of metrics per algorithm.
func Comparison(w io.Writer, metrics []*sim.Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "P95 Wait", "Avg Turnaround", "Avg Response", "Makespan", "Utilization", "Switches"})
	for _, m := range metrics {
		table.Append([]string{
			m.Algorithm,
			fmt.Sprintf("%.2f", m.AvgWaitingTime),
			fmt.Sprintf("%.2f", m.P95WaitingTime),
			fmt.Sprintf("%.2f", m.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", m.AvgResponseTime),
			fmt.Sprint(m.Makespan),
			fmt.Sprintf("%.1f%%", m.CPUUtilization*100),
			fmt.Sprint(m.ContextSwitches),
		})
	}
	table.Render()
}

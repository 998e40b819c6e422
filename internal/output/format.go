// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todoq/internal/i18n"
	"todoq/internal/task"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [x] {TITLE}\n" with "[ ]" for open tasks.
func FormatTask(w io.Writer, num int, t task.Task, tr *i18n.Translator) {
	marker := "[ ]"
	if t.Completed {
		marker = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, marker, normalizeTitle(t.Title, tr))
}

// FormatCounts formats the counts footer line.
func FormatCounts(w io.Writer, tr *i18n.Translator, completed, pending int) {
	fmt.Fprintln(w, tr.T("list.counts", completed, pending))
}

// FormatDetail formats the multi-line view of a single task: title,
// status and localized timestamps.
func FormatDetail(w io.Writer, t task.Task, tr *i18n.Translator) {
	fmt.Fprintln(w, normalizeTitle(t.Title, tr))
	status := tr.T("task.open")
	if t.Completed {
		status = tr.T("task.done")
	}
	fmt.Fprintln(w, status)
	fmt.Fprintln(w, tr.T("show.created", tr.FormatDate(t.CreatedAt)))
	fmt.Fprintln(w, tr.T("show.updated", tr.FormatDate(t.UpdatedAt)))
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become the localized placeholder
// - Newlines are replaced with spaces
func normalizeTitle(title string, tr *i18n.Translator) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return tr.T("untitled")
	}
	return title
}

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todoq/internal/task"
)

// ErrTaskNumRequired is returned when no task number argument is given.
var ErrTaskNumRequired = errors.New("task number required")

// parseTaskNum parses the 1-based task number argument.
func parseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	return n, nil
}

// taskByNumber resolves a 1-based number against the loaded order.
func taskByNumber(items []task.Task, n int) (task.Task, error) {
	if n < 1 || n > len(items) {
		return task.Task{}, fmt.Errorf("task number out of range: %d", n)
	}
	return items[n-1], nil
}

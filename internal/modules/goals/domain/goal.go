package domain

import (
	"math"
	"time"
)

const SchemaVersion = 1

type Goal struct {
	ID        string
	Text      string
	Done      bool
	CreatedAt time.Time
}

// Completed lists the done flags in list order.
func Completed(goals []Goal) []bool {
	flags := make([]bool, len(goals))
	for i, g := range goals {
		flags[i] = g.Done
	}
	return flags
}

func DoneCount(goals []Goal) int {
	n := 0
	for _, g := range goals {
		if g.Done {
			n++
		}
	}
	return n
}

// Progress is the rounded done percentage; an empty list is 0%.
func Progress(goals []Goal) int {
	total := len(goals)
	if total == 0 {
		total = 1
	}
	return int(math.Round(float64(DoneCount(goals)) / float64(total) * 100))
}

// AllDone holds for a non-empty list with every goal done.
func AllDone(goals []Goal) bool {
	return len(goals) > 0 && DoneCount(goals) == len(goals)
}

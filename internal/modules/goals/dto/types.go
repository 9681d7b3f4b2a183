package dto

import "time"

type AddInput struct {
	Text string
}

type ExportInput struct {
	Title string
}

type GoalOutput struct {
	ID        string
	Text      string
	Done      bool
	CreatedAt time.Time
}

type ListOutput struct {
	Goals    []GoalOutput
	Total    int
	Done     int
	Progress int
	AllDone  bool
	// Completed holds one done flag per goal, in list order.
	Completed []bool
}

type MutationOutput struct {
	Goal GoalOutput
	List ListOutput
}

type ExportOutput struct {
	Path     string
	Total    int
	Done     int
	Progress int
}

package domain

import "time"

type TaskAssignment struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	PersonID  int64     `json:"personID"`
	Task      TaskKind  `json:"task"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

type GuardAssignment struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Guard     GuardKind `json:"guard"`
	PersonID  int64     `json:"personID"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// ScheduleRange is inclusive on both ends.
type ScheduleRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ScheduleSummary struct {
	AssignmentCount int `json:"assignmentCount"`
	GuardCount      int `json:"guardCount"`
}

// GeneratedSchedule is the output of one generation pass. It carries plain
// tuples only; persisting them is a separate, explicit step.
type GeneratedSchedule struct {
	Tasks   []TaskAssignment  `json:"tasks"`
	Guards  []GuardAssignment `json:"guards"`
	Summary ScheduleSummary   `json:"summary"`
}

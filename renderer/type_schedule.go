package renderer

import "github.com/etnz/compound"

// Schedule is the data of the schedule template.
type Schedule struct {
	// Input is the request the schedule was computed for.
	Input compound.Input `json:"input"`
	// Rows holds one projection per year.
	Rows []ScheduleRow `json:"rows"`
}

// ScheduleRow is the state at the end of a year.
type ScheduleRow struct {
	Year       compound.Years `json:"year"`
	Periods    uint64         `json:"periods"`
	Multiplier uint64         `json:"multiplier"`
	Amount     compound.Cents `json:"amount"`
}

// NewSchedule builds the template data from the projections returned by compound.Schedule.
func NewSchedule(in compound.Input, rows []compound.Projection) *Schedule {
	s := &Schedule{Input: in, Rows: make([]ScheduleRow, 0, len(rows))}
	for _, p := range rows {
		s.Rows = append(s.Rows, ScheduleRow{
			Year:       p.Years,
			Periods:    p.Periods,
			Multiplier: p.Multiplier,
			Amount:     p.Final,
		})
	}
	return s
}

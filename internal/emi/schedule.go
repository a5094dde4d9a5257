// Package emi generates equated monthly installment schedules for
// EMI-settled invoices.
package emi

import (
	"math"
	"time"
)

// Installment is one generated installment before persistence.
type Installment struct {
	Sequence int       `json:"sequence"`
	Amount   float64   `json:"amount"`
	DueDate  time.Time `json:"due_date"`
}

// GenerateDueDates returns one due date per month starting one month after
// start. Month stepping uses the calendar (AddDate), so a Jan 31 start
// yields the dates Go normalizes to (Mar 2/3 for February).
func GenerateDueDates(start time.Time, months int) []time.Time {
	if months <= 0 {
		return nil
	}
	dates := make([]time.Time, 0, months)
	for i := 1; i <= months; i++ {
		dates = append(dates, start.AddDate(0, i, 0))
	}
	return dates
}

// BuildSchedule splits principal into months equal installments due monthly
// after start. Every installment is a 2-decimal amount; the rounding
// remainder is folded into the last installment so the schedule sums to the
// principal exactly. Non-positive, NaN, or infinite principal yields an
// empty schedule.
func BuildSchedule(principal float64, months int, start time.Time) []Installment {
	if months <= 0 || math.IsNaN(principal) || math.IsInf(principal, 0) || principal <= 0 {
		return nil
	}

	total := math.Round(principal*100) / 100
	per := math.Floor(total/float64(months)*100) / 100
	dates := GenerateDueDates(start, months)

	schedule := make([]Installment, 0, months)
	for i := 0; i < months; i++ {
		amount := per
		if i == months-1 {
			amount = math.Round((total-per*float64(months-1))*100) / 100
		}
		schedule = append(schedule, Installment{
			Sequence: i + 1,
			Amount:   amount,
			DueDate:  dates[i],
		})
	}
	return schedule
}

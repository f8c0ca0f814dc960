package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedDate error = errors.New("malformed date")

// warnDaysBefore is the fixed size of the warning window before a deadline.
const warnDaysBefore = 2

type DeadlineStatus int

const (
	StatusOK DeadlineStatus = iota
	StatusDueSoon
	StatusDueToday
	StatusOverdue
)

func (s DeadlineStatus) String() string {
	switch s {
	case StatusDueSoon:
		return "due soon"
	case StatusDueToday:
		return "due today"
	case StatusOverdue:
		return "overdue"
	}
	return "ok"
}

// EvaluateDeadline classifies an end date of the form dd.mm.yyyy against now.
// The warning window only looks back within the deadline's own month: an end
// date early in a month is never flagged as due soon from the tail of the
// previous month, it falls through to the earlier-month branch instead.
func EvaluateDeadline(endDate string, now time.Time) (DeadlineStatus, error) {
	parts := strings.Split(endDate, ".")
	if len(parts) < 3 {
		return StatusOK, ErrMalformedDate
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return StatusOK, ErrMalformedDate
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return StatusOK, ErrMalformedDate
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return StatusOK, ErrMalformedDate
	}

	switch {
	case now.Year() > year || (now.Year() == year && int(now.Month()) > month):
		return StatusOverdue, nil
	case now.Year() == year && int(now.Month()) == month:
		switch {
		case now.Day() > day:
			return StatusOverdue, nil
		case now.Day() == day:
			return StatusDueToday, nil
		case now.Day() >= day-warnDaysBefore:
			return StatusDueSoon, nil
		}
		return StatusOK, nil
	}

	return StatusOK, nil
}

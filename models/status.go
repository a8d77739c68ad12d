package models

import (
	"strconv"
	"strings"
)

// ComplaintStatus is the complaint lifecycle status. Ordinal values are
// stable and stored as-is; do not reorder.
type ComplaintStatus int

const (
	StatusNew        ComplaintStatus = 0
	StatusInProgress ComplaintStatus = 1
	StatusResolved   ComplaintStatus = 2
	StatusClosed     ComplaintStatus = 3
	StatusReopened   ComplaintStatus = 4
)

var statusNames = [...]string{
	StatusNew:        "New",
	StatusInProgress: "InProgress",
	StatusResolved:   "Resolved",
	StatusClosed:     "Closed",
	StatusReopened:   "Reopened",
}

func (s ComplaintStatus) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Unknown"
}

// Valid reports whether s is one of the defined statuses.
func (s ComplaintStatus) Valid() bool {
	return s >= StatusNew && s <= StatusReopened
}

// AllStatuses returns the statuses in ordinal order, for filter options.
func AllStatuses() []ComplaintStatus {
	return []ComplaintStatus{StatusNew, StatusInProgress, StatusResolved, StatusClosed, StatusReopened}
}

// ParseStatus parses a status token by name (case-insensitive) or ordinal.
// Unrecognized tokens report ok=false; list filters ignore them, mutations
// reject them.
func ParseStatus(s string) (ComplaintStatus, bool) {
	for i, name := range statusNames {
		if strings.EqualFold(name, s) {
			return ComplaintStatus(i), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		st := ComplaintStatus(n)
		if st.Valid() {
			return st, true
		}
	}
	return StatusNew, false
}

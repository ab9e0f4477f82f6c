package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFilter = errors.New("invalid filter")

type Todo struct {
	ID        uint64 `json:"id"`
	Completed bool   `json:"completed"`
	Text      string `json:"text"`
}

// Filter selects which todos are listed. It is global to the process.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

var filterNames = [...]string{
	FilterAll:       "All",
	FilterActive:    "Active",
	FilterCompleted: "Completed",
}

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

func (f Filter) String() string {
	if f < FilterAll || f > FilterCompleted {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// ParseFilter accepts the filter name in any letter case.
func ParseFilter(s string) (Filter, error) {
	for _, f := range Filters() {
		if strings.EqualFold(s, filterNames[f]) {
			return f, nil
		}
	}
	return FilterAll, ErrInvalidFilter
}

func (f Filter) Matches(t Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Snapshot is a consistent read of the todo store taken under a single read lock.
// Items are already in display order (newest first) and restricted to Filter.
type Snapshot struct {
	Items   []Todo
	Filter  Filter
	Active  int
	AllDone bool
}

package timeseries

/*
A desktop time-series chart viewer.
Copyright (C) 2024 Haris Khan

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"errors"
	"fmt"
	"time"
)

const (
	minYear = 1900
	maxYear = 9999
)

var ErrInvalidMonth = errors.New("invalid month")

// Month is a calendar month. Periods are anchored in UTC so that chart
// positions do not depend on the local time zone.
type Month struct {
	Month time.Month
	Year  int
}

// NewMonth validates the month index (1-12) and year.
func NewMonth(month, year int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("%w: month index %d", ErrInvalidMonth, month)
	}
	if year < minYear || year > maxYear {
		return Month{}, fmt.Errorf("%w: year %d", ErrInvalidMonth, year)
	}
	return Month{Month: time.Month(month), Year: year}, nil
}

// MustMonth is NewMonth for literals known to be valid.
func MustMonth(month, year int) Month {
	m, err := NewMonth(month, year)
	if err != nil {
		panic(err)
	}
	return m
}

// MonthOf returns the month containing t (in UTC).
func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{Month: t.Month(), Year: t.Year()}
}

// Start is the first instant of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last nanosecond of the month.
func (m Month) End() time.Time {
	return m.Next().Start().Add(-time.Nanosecond)
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Month: time.January, Year: m.Year + 1}
	}
	return Month{Month: m.Month + 1, Year: m.Year}
}

func (m Month) Previous() Month {
	if m.Month == time.January {
		return Month{Month: time.December, Year: m.Year - 1}
	}
	return Month{Month: m.Month - 1, Year: m.Year}
}

// Compare returns -1, 0 or 1.
func (m Month) Compare(o Month) int {
	a, b := m.serial(), o.serial()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (m Month) Before(o Month) bool {
	return m.Compare(o) < 0
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

func (m Month) serial() int {
	return m.Year*12 + int(m.Month) - 1
}

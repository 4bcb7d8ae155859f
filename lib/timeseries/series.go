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
	"sort"
)

var ErrDuplicatePeriod = errors.New("duplicate period")

// DataPoint is a single observation.
type DataPoint struct {
	Period Month
	Value  float64
}

// Series is a named sequence of data points kept in ascending period
// order, one value per period.
type Series struct {
	name   string
	points []DataPoint
}

func NewSeries(name string) *Series {
	return &Series{name: name}
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) Len() int {
	return len(s.points)
}

// Add inserts a value for period. Periods may arrive in any order; a
// period that already has a value is rejected.
func (s *Series) Add(period Month, value float64) error {
	i := s.search(period)
	if i < len(s.points) && s.points[i].Period == period {
		return fmt.Errorf("series %q: %w: %s", s.name, ErrDuplicatePeriod, period)
	}
	if i == len(s.points) {
		s.points = append(s.points, DataPoint{Period: period, Value: value})
		return nil
	}
	s.points = append(s.points, DataPoint{})
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = DataPoint{Period: period, Value: value}
	return nil
}

// At returns the i-th point in period order.
func (s *Series) At(i int) DataPoint {
	return s.points[i]
}

// Points returns a copy of the points.
func (s *Series) Points() []DataPoint {
	out := make([]DataPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Index returns the position of period, or -1.
func (s *Series) Index(period Month) int {
	i := s.search(period)
	if i < len(s.points) && s.points[i].Period == period {
		return i
	}
	return -1
}

func (s *Series) Value(period Month) (float64, bool) {
	i := s.Index(period)
	if i < 0 {
		return 0, false
	}
	return s.points[i].Value, true
}

// Bounds returns the first and last period. ok is false for an empty series.
func (s *Series) Bounds() (first, last Month, ok bool) {
	if len(s.points) == 0 {
		return Month{}, Month{}, false
	}
	return s.points[0].Period, s.points[len(s.points)-1].Period, true
}

func (s *Series) MinValue() (float64, bool) {
	if len(s.points) == 0 {
		return 0, false
	}
	min := s.points[0].Value
	for _, p := range s.points[1:] {
		if p.Value < min {
			min = p.Value
		}
	}
	return min, true
}

func (s *Series) MaxValue() (float64, bool) {
	if len(s.points) == 0 {
		return 0, false
	}
	max := s.points[0].Value
	for _, p := range s.points[1:] {
		if p.Value > max {
			max = p.Value
		}
	}
	return max, true
}

func (s *Series) Clone() *Series {
	return &Series{name: s.name, points: s.Points()}
}

func (s *Series) Equal(o *Series) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.name != o.name || len(s.points) != len(o.points) {
		return false
	}
	for i := range s.points {
		if s.points[i] != o.points[i] {
			return false
		}
	}
	return true
}

func (s *Series) search(period Month) int {
	return sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Period.Compare(period) >= 0
	})
}

package timeseries

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDuplicateSeries = errors.New("duplicate series name")
	ErrEmptyDataset    = errors.New("dataset has no data points")
)

// Dataset is an ordered collection of series presented together.
type Dataset struct {
	series []*Series
}

// NewDataset collects series in the given order.
func NewDataset(series ...*Series) (*Dataset, error) {
	d := &Dataset{}
	for _, s := range series {
		if err := d.AddSeries(s); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dataset) AddSeries(s *Series) error {
	if d.SeriesByName(s.Name()) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateSeries, s.Name())
	}
	d.series = append(d.series, s)
	return nil
}

func (d *Dataset) SeriesCount() int {
	return len(d.series)
}

// Series returns the series slice. The slice is a copy; the series are shared.
func (d *Dataset) Series() []*Series {
	out := make([]*Series, len(d.series))
	copy(out, d.series)
	return out
}

func (d *Dataset) SeriesAt(i int) *Series {
	return d.series[i]
}

func (d *Dataset) SeriesByName(name string) *Series {
	for _, s := range d.series {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Periods returns the sorted union of all periods in the dataset.
func (d *Dataset) Periods() []Month {
	seen := make(map[Month]struct{})
	var out []Month
	for _, s := range d.series {
		for _, p := range s.points {
			if _, ok := seen[p.Period]; ok {
				continue
			}
			seen[p.Period] = struct{}{}
			out = append(out, p.Period)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// DomainRange returns the first and last period across all series.
func (d *Dataset) DomainRange() (first, last Month, err error) {
	found := false
	for _, s := range d.series {
		f, l, ok := s.Bounds()
		if !ok {
			continue
		}
		if !found || f.Before(first) {
			first = f
		}
		if !found || last.Before(l) {
			last = l
		}
		found = true
	}
	if !found {
		return Month{}, Month{}, ErrEmptyDataset
	}
	return first, last, nil
}

// ValueRange returns the smallest and largest value across all series.
func (d *Dataset) ValueRange() (min, max float64, err error) {
	found := false
	for _, s := range d.series {
		lo, ok := s.MinValue()
		if !ok {
			continue
		}
		hi, _ := s.MaxValue()
		if !found || lo < min {
			min = lo
		}
		if !found || hi > max {
			max = hi
		}
		found = true
	}
	if !found {
		return 0, 0, ErrEmptyDataset
	}
	return min, max, nil
}

// Clone returns a dataset that shares no state with d.
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{series: make([]*Series, len(d.series))}
	for i, s := range d.series {
		c.series[i] = s.Clone()
	}
	return c
}

func (d *Dataset) Equal(o *Dataset) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.series) != len(o.series) {
		return false
	}
	for i := range d.series {
		if !d.series[i].Equal(o.series[i]) {
			return false
		}
	}
	return true
}

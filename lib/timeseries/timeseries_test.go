package timeseries

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonth(t *testing.T) {
	m, err := NewMonth(11, 2004)
	require.NoError(t, err)
	assert.Equal(t, time.November, m.Month)
	assert.Equal(t, 2004, m.Year)
	assert.Equal(t, "November 2004", m.String())

	_, err = NewMonth(13, 2004)
	assert.True(t, errors.Is(err, ErrInvalidMonth), "month 13 should be rejected")
	_, err = NewMonth(0, 2004)
	assert.True(t, errors.Is(err, ErrInvalidMonth), "month 0 should be rejected")
	_, err = NewMonth(1, 1800)
	assert.True(t, errors.Is(err, ErrInvalidMonth), "year 1800 should be rejected")
}

func TestMonthNavigation(t *testing.T) {
	dec := MustMonth(12, 2006)
	assert.Equal(t, MustMonth(1, 2007), dec.Next())
	assert.Equal(t, MustMonth(11, 2006), dec.Previous())
	assert.Equal(t, MustMonth(12, 2005), MustMonth(1, 2006).Previous())

	assert.Equal(t, time.Date(2006, time.December, 1, 0, 0, 0, 0, time.UTC), dec.Start())
	assert.Equal(t, time.Date(2006, time.December, 31, 23, 59, 59, 999999999, time.UTC), dec.End())
	assert.Equal(t, dec, MonthOf(dec.End()))

	assert.True(t, MustMonth(8, 2007).Before(MustMonth(4, 2008)))
	assert.Equal(t, 0, dec.Compare(MustMonth(12, 2006)))
	assert.Equal(t, 1, dec.Compare(MustMonth(1, 2006)))
}

func TestSeriesAddKeepsOrder(t *testing.T) {
	s := NewSeries("test")
	require.NoError(t, s.Add(MustMonth(3, 2005), 2))
	require.NoError(t, s.Add(MustMonth(11, 2004), 1))
	require.NoError(t, s.Add(MustMonth(8, 2005), 3))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, MustMonth(11, 2004), s.At(0).Period)
	assert.Equal(t, MustMonth(3, 2005), s.At(1).Period)
	assert.Equal(t, MustMonth(8, 2005), s.At(2).Period)

	first, last, ok := s.Bounds()
	assert.True(t, ok)
	assert.Equal(t, MustMonth(11, 2004), first)
	assert.Equal(t, MustMonth(8, 2005), last)
}

func TestSeriesRejectsDuplicatePeriod(t *testing.T) {
	s := NewSeries("test")
	require.NoError(t, s.Add(MustMonth(6, 2015), 689))
	err := s.Add(MustMonth(6, 2015), 1)
	assert.True(t, errors.Is(err, ErrDuplicatePeriod))

	v, ok := s.Value(MustMonth(6, 2015))
	assert.True(t, ok)
	assert.Equal(t, 689.0, v, "rejected insert must not overwrite the stored value")
}

func TestSeriesLookupAndRange(t *testing.T) {
	s := NewSeries("test")
	for i, v := range []float64{5, -2, 9} {
		require.NoError(t, s.Add(MustMonth(i+1, 2020), v))
	}
	assert.Equal(t, 1, s.Index(MustMonth(2, 2020)))
	assert.Equal(t, -1, s.Index(MustMonth(4, 2020)))

	_, ok := s.Value(MustMonth(4, 2020))
	assert.False(t, ok)

	min, _ := s.MinValue()
	max, _ := s.MaxValue()
	assert.Equal(t, -2.0, min)
	assert.Equal(t, 9.0, max)

	empty := NewSeries("empty")
	_, ok = empty.MinValue()
	assert.False(t, ok)
	_, _, ok = empty.Bounds()
	assert.False(t, ok)
}

func TestSeriesPointsIsCopy(t *testing.T) {
	s := NewSeries("test")
	require.NoError(t, s.Add(MustMonth(1, 2010), 780))
	pts := s.Points()
	pts[0].Value = 0
	assert.Equal(t, 780.0, s.At(0).Value)
}

func TestDatasetRejectsDuplicateSeries(t *testing.T) {
	_, err := NewDataset(NewSeries("a"), NewSeries("a"))
	assert.True(t, errors.Is(err, ErrDuplicateSeries))
}

func TestDatasetRanges(t *testing.T) {
	a := NewSeries("a")
	require.NoError(t, a.Add(MustMonth(3, 2005), 10))
	require.NoError(t, a.Add(MustMonth(5, 2005), 30))
	b := NewSeries("b")
	require.NoError(t, b.Add(MustMonth(1, 2005), 20))
	require.NoError(t, b.Add(MustMonth(5, 2005), -5))

	d, err := NewDataset(a, b)
	require.NoError(t, err)

	first, last, err := d.DomainRange()
	require.NoError(t, err)
	assert.Equal(t, MustMonth(1, 2005), first)
	assert.Equal(t, MustMonth(5, 2005), last)

	min, max, err := d.ValueRange()
	require.NoError(t, err)
	assert.Equal(t, -5.0, min)
	assert.Equal(t, 30.0, max)

	assert.Equal(t, []Month{MustMonth(1, 2005), MustMonth(3, 2005), MustMonth(5, 2005)}, d.Periods())
	assert.Same(t, b, d.SeriesByName("b"))
	assert.Nil(t, d.SeriesByName("c"))
}

func TestEmptyDataset(t *testing.T) {
	d, err := NewDataset(NewSeries("a"))
	require.NoError(t, err)
	_, _, err = d.DomainRange()
	assert.True(t, errors.Is(err, ErrEmptyDataset))
	_, _, err = d.ValueRange()
	assert.True(t, errors.Is(err, ErrEmptyDataset))
}

func TestDatasetClone(t *testing.T) {
	a := NewSeries("a")
	require.NoError(t, a.Add(MustMonth(3, 2005), 10))
	d, err := NewDataset(a)
	require.NoError(t, err)

	c := d.Clone()
	assert.True(t, d.Equal(c))

	require.NoError(t, c.SeriesAt(0).Add(MustMonth(4, 2005), 11))
	assert.False(t, d.Equal(c))
	assert.Equal(t, 1, d.SeriesAt(0).Len())
}

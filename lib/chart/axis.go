package chart

import (
	"strings"
	"time"
)

// DefaultAxisMargin is the fraction of the data range added on each side
// of an auto-ranged axis.
const DefaultAxisMargin = 0.05

// DateAxis is the domain axis of a time series chart. DateFormat is a Go
// time layout; an empty format lets the axis pick one from the tick unit.
type DateAxis struct {
	Label      string
	DateFormat string
	Margin     float64
}

// SetDateFormatOverride replaces the tick label format.
func (a *DateAxis) SetDateFormatOverride(layout string) {
	a.DateFormat = layout
}

// Format renders t with the override format, or as "Jan 2006".
func (a *DateAxis) Format(t time.Time) string {
	if a.DateFormat != "" {
		return t.UTC().Format(a.DateFormat)
	}
	return t.UTC().Format("Jan 2006")
}

type NumberAxis struct {
	Label                 string
	AutoRangeIncludesZero bool
	Margin                float64
}

// javaLayoutTokens maps date pattern letters to Go layout elements,
// longest token first.
var javaLayoutTokens = []struct{ java, layout string }{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"a", "PM"},
}

// JavaDateLayout converts a SimpleDateFormat style pattern such as
// "MMM-yyyy" into the equivalent Go layout ("Jan-2006"). Text in single
// quotes is copied literally.
func JavaDateLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				break
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}
		matched := false
		for _, tok := range javaLayoutTokens {
			if strings.HasPrefix(pattern[i:], tok.java) {
				b.WriteString(tok.layout)
				i += len(tok.java)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// tickStepsMonths are the candidate spacings for date ticks.
var tickStepsMonths = []int{1, 2, 3, 6, 12, 24, 60, 120}

// DateTick is a labelled position on the date axis, x in Unix nanoseconds.
type DateTick struct {
	X     float64
	Label string
}

// DateTicks places at most maxTicks ticks on month boundaries between
// xmin and xmax, using the smallest step from tickStepsMonths that fits.
func DateTicks(axis *DateAxis, xmin, xmax float64, maxTicks int) []DateTick {
	if maxTicks < 2 {
		maxTicks = 2
	}
	start := time.Unix(0, int64(xmin)).UTC()
	end := time.Unix(0, int64(xmax)).UTC()
	if !start.Before(end) {
		return nil
	}
	spanMonths := (end.Year()-start.Year())*12 + int(end.Month()-start.Month()) + 1

	step := tickStepsMonths[len(tickStepsMonths)-1]
	for _, s := range tickStepsMonths {
		if spanMonths/s+1 <= maxTicks {
			step = s
			break
		}
	}

	// first boundary on or after start that is a multiple of step (counted from January of year 0)
	m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	if m.Before(start) {
		m = m.AddDate(0, 1, 0)
	}
	for (m.Year()*12+int(m.Month())-1)%step != 0 {
		m = m.AddDate(0, 1, 0)
	}

	var ticks []DateTick
	for !m.After(end) {
		ticks = append(ticks, DateTick{X: float64(m.UnixNano()), Label: axis.Format(m)})
		m = m.AddDate(0, step, 0)
	}
	return ticks
}

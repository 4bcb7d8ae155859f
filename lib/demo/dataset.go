package demo

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
	"coolchart/lib/timeseries"
)

const (
	UlySeries  = "uly"
	ElseSeries = "else"
)

type entry struct {
	month, year int
	value       float64
}

var ulyData = []entry{
	{11, 2004, 630.56},
	{3, 2005, 546},
	{8, 2005, 600.5},
	{6, 2006, 590.2},
	{12, 2006, 740},
	{8, 2007, 356},
	{4, 2008, 560},
	{8, 2008, 575},
	{6, 2009, 677},
	{1, 2010, 780},
	{12, 2010, 745},
	{5, 2011, 777},
	{1, 2012, 800},
	{11, 2012, 2000},
	{6, 2013, 788},
	{1, 2014, 1000},
	{6, 2015, 689},
	{7, 2016, 891},
	{8, 2016, 901},
	{9, 2017, 945},
	{10, 2018, 955},
	{11, 2018, 1000},
	{6, 2019, 789},
	{3, 2020, 234},
	{4, 2021, 967},
	{11, 2021, 2000},
	{5, 2022, 1100},
}

var elseData = []entry{
	{11, 2004, 64},
	{3, 2005, 234},
	{8, 2005, 243},
	{6, 2006, 212},
	{12, 2006, 213},
	{8, 2007, 154},
	{4, 2008, 190},
	{8, 2008, 179},
	{6, 2009, 344},
	{1, 2010, 234},
	{12, 2010, 212},
	{5, 2011, 322},
	{1, 2012, 232},
	{11, 2012, 123},
	{6, 2013, 344},
	{1, 2014, 332},
	{6, 2015, 123},
	{7, 2016, 1200},
	{8, 2016, 790},
	{9, 2017, 343},
	{10, 2018, 243},
	{11, 2018, 318},
	{6, 2019, 123},
	{3, 2020, 334},
	{4, 2021, 234},
	{11, 2021, 345},
	{5, 2022, 123},
}

// BuildDataset returns a new dataset holding two series of monthly data.
// Each call returns an independent instance.
func BuildDataset() *timeseries.Dataset {
	d, err := timeseries.NewDataset(
		buildSeries(UlySeries, ulyData),
		buildSeries(ElseSeries, elseData),
	)
	if err != nil {
		panic(err)
	}
	return d
}

func buildSeries(name string, data []entry) *timeseries.Series {
	s := timeseries.NewSeries(name)
	for _, e := range data {
		if err := s.Add(timeseries.MustMonth(e.month, e.year), e.value); err != nil {
			panic(err)
		}
	}
	return s
}

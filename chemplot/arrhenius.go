/*
 * arrhenius.go, part of gokin.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package chemplot draws rate coefficients with gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/gokin/rxn"
)

//Points is the number of temperatures sampled for each curve.
const Points = 100

//ArrheniusData samples kin at n temperatures evenly spaced between tmin and tmax, both in K.
//Each point is (1000/T, log10 k).
func ArrheniusData(kin rxn.Kinetics, tmin, tmax float64, n int) (plotter.XYs, error) {
	if tmin <= 0 || tmax <= tmin {
		return nil, fmt.Errorf("Invalid temperature range %g-%g K", tmin, tmax)
	}
	if n < 2 {
		return nil, fmt.Errorf("At least 2 points are needed, got %d", n)
	}
	temps := floats.Span(make([]float64, n), tmin, tmax)
	pts := make(plotter.XYs, n)
	for i, T := range temps {
		k, err := kin.RateCoefficient(T)
		if err != nil {
			return nil, err
		}
		if k <= 0 {
			return nil, fmt.Errorf("Non-positive rate coefficient %g at %g K", k, T)
		}
		pts[i].X = 1000 / T
		pts[i].Y = math.Log10(k)
	}
	return pts, nil
}

//ArrheniusPlot draws log10 k against 1000/T for each reaction, between tmin and tmax, and saves
//the plot to filename. The format is taken from the extension of filename.
func ArrheniusPlot(reactions []*rxn.Reaction, tmin, tmax float64, title, filename string) error {
	if len(reactions) == 0 {
		return fmt.Errorf("No reactions to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "1000/T (1/K)"
	p.Y.Label.Text = "log10 k"
	p.Add(plotter.NewGrid())
	for key, r := range reactions {
		pts, err := ArrheniusData(r.Kinetics, tmin, tmax, Points)
		if err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		red, g, b := colors(key, len(reactions))
		l.LineStyle.Color = color.RGBA{R: red, G: g, B: b, A: 255}
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(r.String(), l)
	}
	p.Legend.Top = true
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

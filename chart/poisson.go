// minipdf - a minimal single-page PDF assembler
// Copyright (C) 2026  The minipdf authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package chart renders a Poisson probability mass function as a bar chart.
//
// Everything in this package is a deterministic function of its inputs:
// there is no randomness and no I/O.
package chart

import "math"

// Poisson describes the number of rare events in a series of independent
// trials, where each trial has probability 1/Odds of producing an event.
type Poisson struct {
	Spins     int     // number of trials
	Odds      float64 // an event has a 1-in-Odds chance per trial
	Highlight int     // the value of k to highlight, e.g. an observed count

	// Lambda is the expected number of events, Spins/Odds.
	Lambda float64

	// Probs[k] is P(X=k), for k = 0, ..., max(6, Highlight+3)-1.
	Probs []float64
}

// NewPoisson computes the distribution for the given number of spins and
// odds denominator.  If odds is not positive, the rate is taken to be zero.
func NewPoisson(spins int, odds float64, highlightK int) *Poisson {
	lambda := 0.0
	if odds > 0 {
		lambda = float64(spins) / odds
	}
	p := &Poisson{
		Spins:     spins,
		Odds:      odds,
		Highlight: highlightK,
		Lambda:    lambda,
	}

	n := max(6, highlightK+3)
	p.Probs = make([]float64, n)
	term := math.Exp(-lambda)
	for k := range n {
		if k > 0 {
			term *= lambda / float64(k)
		}
		p.Probs[k] = term
	}
	return p
}

// PMF returns P(X=k) = exp(-λ) λ^k / k!.
func (p *Poisson) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k < len(p.Probs) {
		return p.Probs[k]
	}
	term := math.Exp(-p.Lambda)
	for i := 1; i <= k; i++ {
		term *= p.Lambda / float64(i)
	}
	return term
}

// Tail returns P(X >= k), the probability of observing k or more events.
func (p *Poisson) Tail(k int) float64 {
	if k <= 0 {
		return 1
	}

	if float64(k) <= p.Lambda {
		cdf := 0.0
		for i := range k {
			cdf += p.PMF(i)
		}
		return max(1-cdf, 0)
	}

	// Sum the upper tail directly, to avoid cancellation when the result
	// is small.  The terms decrease monotonically for i > λ.
	term := p.PMF(k)
	sum := 0.0
	for i := k; term > 0; i++ {
		sum += term
		if term < sum*1e-17 {
			break
		}
		term *= p.Lambda / float64(i+1)
	}
	return sum
}

// Max returns the largest probability in Probs.
func (p *Poisson) Max() float64 {
	m := 0.0
	for _, x := range p.Probs {
		m = max(m, x)
	}
	return m
}

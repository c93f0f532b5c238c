// Package series provides the ordered, null-aware numeric series that
// statement rows, derived metrics and macro indicators are built on.
//
// A Series is ordered latest -> older. Missing observations are math.NaN();
// every operation in this package treats NaN as "no data" rather than as an
// error, mirroring how financial data vendors report sparse histories.
package series

import (
	"math"
	"time"
)

// Key identifies one observation: either a full report date or a plain year
// (macro indicators are keyed by year only).
type Key struct {
	date     time.Time
	yearOnly bool
}

// DateKey builds a Key from a calendar date. Time-of-day and location are
// discarded so keys constructed from different sources compare equal.
func DateKey(t time.Time) Key {
	y, m, d := t.UTC().Date()
	return Key{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// YearKey builds a year-level Key, anchored to Dec-31 so date arithmetic
// (e.g. CAGR spans) still works.
func YearKey(year int) Key {
	return Key{date: time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), yearOnly: true}
}

func (k Key) Date() time.Time { return k.date }
func (k Key) Year() int       { return k.date.Year() }
func (k Key) IsZero() bool    { return k.date.IsZero() }

func (k Key) String() string {
	if k.IsZero() {
		return ""
	}
	if k.yearOnly {
		return k.date.Format("2006")
	}
	return k.date.Format("2006-01-02")
}

// Series is an immutable named sequence of (Key, value) observations,
// ordered latest -> older. The zero value is an empty, unnamed series.
type Series struct {
	name string
	keys []Key
	vals []float64
}

// New builds a series from parallel key/value slices. The slices are copied;
// if their lengths differ the extra tail of the longer one is ignored.
func New(name string, keys []Key, vals []float64) Series {
	n := len(keys)
	if len(vals) < n {
		n = len(vals)
	}
	s := Series{name: name, keys: make([]Key, n), vals: make([]float64, n)}
	copy(s.keys, keys)
	copy(s.vals, vals)
	return s
}

// Empty returns a zero-length series carrying only a name.
func Empty(name string) Series {
	return Series{name: name}
}

func (s Series) Name() string { return s.name }

// Rename returns the same observations under a new name.
func (s Series) Rename(name string) Series {
	s.name = name
	return s
}

func (s Series) Len() int      { return len(s.vals) }
func (s Series) IsEmpty() bool { return len(s.vals) == 0 }

// Key returns the i-th key (0 = latest).
func (s Series) Key(i int) Key { return s.keys[i] }

// Value returns the i-th value (0 = latest); NaN marks a missing observation.
func (s Series) Value(i int) float64 { return s.vals[i] }

// Keys returns a copy of the key slice.
func (s Series) Keys() []Key {
	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Values returns a copy of the value slice.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.vals))
	copy(out, s.vals)
	return out
}

// Latest returns the first (most recent) value, NaN included.
// Empty series yield NaN.
func (s Series) Latest() float64 {
	if len(s.vals) == 0 {
		return math.NaN()
	}
	return s.vals[0]
}

// LatestValid returns the most recent non-missing value, or NaN when the
// series holds no valid observation at all.
func (s Series) LatestValid() float64 {
	for _, v := range s.vals {
		if !math.IsNaN(v) {
			return v
		}
	}
	return math.NaN()
}

// Head returns the n most recent observations (the whole series if n exceeds
// its length).
func (s Series) Head(n int) Series {
	if n < 0 {
		n = 0
	}
	if n > len(s.vals) {
		n = len(s.vals)
	}
	return New(s.name, s.keys[:n], s.vals[:n])
}

// DropNull returns the series without its missing observations, order kept.
func (s Series) DropNull() Series {
	keys := make([]Key, 0, len(s.keys))
	vals := make([]float64, 0, len(s.vals))
	for i, v := range s.vals {
		if !math.IsNaN(v) {
			keys = append(keys, s.keys[i])
			vals = append(vals, v)
		}
	}
	return Series{name: s.name, keys: keys, vals: vals}
}

// valueAt returns the value stored under key k, or NaN when absent.
// First occurrence wins when keys repeat.
func (s Series) valueAt(k Key) float64 {
	for i, sk := range s.keys {
		if sk.date.Equal(k.date) {
			return s.vals[i]
		}
	}
	return math.NaN()
}

// alignTo reindexes s onto the given key order, filling gaps with NaN.
func (s Series) alignTo(keys []Key) []float64 {
	out := make([]float64, len(keys))
	// Map lookup is worth it only for longer series; statement histories are
	// short, so a direct scan keeps Key free of comparability constraints.
	for i, k := range keys {
		out[i] = s.valueAt(k)
	}
	return out
}

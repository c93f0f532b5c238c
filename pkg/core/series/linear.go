package series

import "math"

// Scale multiplies every value by a constant; missing values stay missing.
func Scale(name string, s Series, factor float64) Series {
	out := make([]float64, len(s.vals))
	for i, v := range s.vals {
		out[i] = v * factor
	}
	return New(name, s.keys, out)
}

// Term is one coefficient*series component of a Linear combination.
type Term struct {
	Coef float64
	S    Series
}

// Linear evaluates bias + sum(coef_i * series_i) on the first term's key
// order. Unlike Add, a missing component makes the whole position missing:
// composite scores are meaningless with partial inputs.
func Linear(name string, bias float64, terms ...Term) Series {
	if len(terms) == 0 {
		return Empty(name)
	}
	keys := terms[0].S.keys
	out := make([]float64, len(keys))
	for i := range out {
		acc := bias
		for _, t := range terms {
			var v float64
			if t.S.sharesKeys(terms[0].S) {
				v = t.S.vals[i]
			} else {
				v = t.S.valueAt(keys[i])
			}
			if math.IsNaN(v) {
				acc = math.NaN()
				break
			}
			acc += t.Coef * v
		}
		out[i] = acc
	}
	return New(name, keys, out)
}

func (s Series) sharesKeys(o Series) bool {
	if len(s.keys) != len(o.keys) {
		return false
	}
	for i := range s.keys {
		if s.keys[i] != o.keys[i] {
			return false
		}
	}
	return true
}

package trend

import (
	"math"
	"testing"

	"equity_insight/pkg/core/series"
)

func latestFirst(vals ...float64) series.Series {
	keys := make([]series.Key, len(vals))
	for i := range vals {
		keys[i] = series.YearKey(2023 - i)
	}
	return series.New("s", keys, vals)
}

func TestMannKendallMonotone(t *testing.T) {
	// Chronological 1..5 (input latest-first). No ties:
	// S = 10, Var(S) = 5*4*15/18 = 16.667, Z = 9/4.082 = 2.205.
	up := latestFirst(5, 4, 3, 2, 1)
	tau, p := MannKendall(up)
	if tau != 1 {
		t.Errorf("increasing series: expected tau 1, got %v", tau)
	}
	if p >= 0.05 {
		t.Errorf("increasing series: expected p < 0.05, got %v", p)
	}

	down := latestFirst(1, 2, 3, 4, 5)
	tau, p = MannKendall(down)
	if tau != -1 {
		t.Errorf("decreasing series: expected tau -1, got %v", tau)
	}
	if p >= 0.05 {
		t.Errorf("decreasing series: expected p < 0.05, got %v", p)
	}
}

func TestMannKendallTieCorrection(t *testing.T) {
	// Chronological 1,2,2,3: S = 5, tie group of two 2s so
	// Var(S) = (4*3*13 - 2*1*9)/18 = 138/18 = 7.667,
	// Z = 4/2.769 = 1.445, p = 2*(1 - Phi(1.445)) ~ 0.1486, tau = 5/6.
	tau, p := MannKendall(latestFirst(3, 2, 2, 1))
	if math.Abs(tau-5.0/6.0) > 1e-9 {
		t.Errorf("expected tau 5/6, got %v", tau)
	}
	if math.Abs(p-0.1486) > 0.002 {
		t.Errorf("expected p ~0.1486, got %v", p)
	}
}

func TestMannKendallShortSeries(t *testing.T) {
	cases := []series.Series{
		latestFirst(),
		latestFirst(1),
		latestFirst(2, 1),
		latestFirst(2, math.NaN(), 1), // only two valid points
	}
	for i, s := range cases {
		tau, p := MannKendall(s)
		if tau != 0.0 || p != 1.0 {
			t.Errorf("case %d: expected (0, 1), got (%v, %v)", i, tau, p)
		}
	}
}

func TestMannKendallIgnoresMissing(t *testing.T) {
	withGaps := latestFirst(5, math.NaN(), 3, 2, 1)
	clean := latestFirst(5, 3, 2, 1)
	tau1, p1 := MannKendall(withGaps)
	tau2, p2 := MannKendall(clean)
	if tau1 != tau2 || p1 != p2 {
		t.Errorf("gap handling mismatch: (%v,%v) vs (%v,%v)", tau1, p1, tau2, p2)
	}
}

func TestMannKendallDeterministic(t *testing.T) {
	s := latestFirst(3.1, 2.9, 3.0, 2.5, 2.7, 2.2)
	tau1, p1 := MannKendall(s)
	tau2, p2 := MannKendall(s)
	if tau1 != tau2 || p1 != p2 {
		t.Errorf("same input must give identical output: (%v,%v) vs (%v,%v)", tau1, p1, tau2, p2)
	}
}

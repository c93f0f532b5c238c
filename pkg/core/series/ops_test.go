package series

import (
	"math"
	"testing"
	"time"
)

var nan = math.NaN()

func yearly(name string, startYear int, vals ...float64) Series {
	keys := make([]Key, len(vals))
	for i := range vals {
		keys[i] = YearKey(startYear - i)
	}
	return New(name, keys, vals)
}

func almostEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) < 1e-9
}

func checkValues(t *testing.T, got Series, want []float64) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), got.Len())
	}
	for i, w := range want {
		if !almostEqual(got.Value(i), w) {
			t.Errorf("position %d: expected %v, got %v", i, w, got.Value(i))
		}
	}
}

func TestAddFillsMissingToZero(t *testing.T) {
	x := yearly("x", 2023, 10, nan, 30)
	y := yearly("y", 2023, 1, 2, nan)

	z := Add("z", x, y)
	// 10+1=11, 0+2=2, 30+0=30
	checkValues(t, z, []float64{11, 2, 30})
}

func TestSubAlignsOnLeftKeys(t *testing.T) {
	x := yearly("x", 2023, 10, 20)
	// y covers 2022 and 2021 only; 2023 fills to zero, 2021 is ignored.
	y := yearly("y", 2022, 5, 7)

	z := Sub("z", x, y)
	checkValues(t, z, []float64{10, 15})
}

func TestMulPropagatesMissing(t *testing.T) {
	x := yearly("x", 2023, 2, nan, 4)
	y := yearly("y", 2023, 3, 5, nan)

	z := Mul("z", x, y)
	checkValues(t, z, []float64{6, nan, nan})
}

func TestDivMasksZeroAndMissingDivisors(t *testing.T) {
	x := yearly("x", 2023, 10, 20, 30, nan)
	y := yearly("y", 2023, 2, 0, nan, 5)

	z := Div("z", x, y)
	// 10/2=5; /0 masked; /NaN masked; NaN/5=NaN
	checkValues(t, z, []float64{5, nan, nan, nan})
}

func TestShift(t *testing.T) {
	s := yearly("s", 2023, 1, 2, 3)

	// n=-1 pulls the prior-period value into each slot.
	checkValues(t, Shift(s, -1), []float64{2, 3, nan})
	checkValues(t, Shift(s, 1), []float64{nan, 1, 2})
	checkValues(t, Shift(s, 0), []float64{1, 2, 3})
	checkValues(t, Shift(s, -3), []float64{nan, nan, nan})
	checkValues(t, Shift(s, 5), []float64{nan, nan, nan})
}

func TestYoYGrowth(t *testing.T) {
	s := yearly("s", 2023, 120, 100, 0, 50)

	g := YoYGrowth("g", s)
	// 120/100-1=0.20; 100/0 masked; 0/50-1=-1; oldest always missing
	checkValues(t, g, []float64{0.20, nan, -1, nan})
}

func TestYoYGrowthOldestAlwaysMissing(t *testing.T) {
	s := yearly("s", 2023, 5)
	g := YoYGrowth("g", s)
	checkValues(t, g, []float64{nan})
}

func TestSignAdjustModes(t *testing.T) {
	s := yearly("s", 2023, -3, 4, nan)

	checkValues(t, SignAdjust(s, NegToPos), []float64{3, 4, nan})
	checkValues(t, SignAdjust(s, PosToNeg), []float64{-3, -4, nan})
	checkValues(t, SignAdjust(s, FlipAll), []float64{3, -4, nan})
	checkValues(t, SignAdjust(s, AbsAll), []float64{3, 4, nan})
}

func TestWindowReductions(t *testing.T) {
	s := yearly("s", 2023, 4, nan, 2, 100)

	// First 3 values, NaN skipped: mean(4,2)=3, median(4,2)=3.
	if got := MeanN(s, 3); !almostEqual(got, 3) {
		t.Errorf("MeanN: expected 3, got %v", got)
	}
	if got := MedianN(s, 3); !almostEqual(got, 3) {
		t.Errorf("MedianN: expected 3, got %v", got)
	}
	// Whole series: mean(4,2,100)=35.333..., median=4.
	if got := Median(s); !almostEqual(got, 4) {
		t.Errorf("Median: expected 4, got %v", got)
	}
	if got := MeanN(s, 0); !math.IsNaN(got) {
		t.Errorf("MeanN over empty window: expected NaN, got %v", got)
	}
	if got := MeanN(Empty("e"), 3); !math.IsNaN(got) {
		t.Errorf("MeanN over empty series: expected NaN, got %v", got)
	}
}

func TestStdN(t *testing.T) {
	s := yearly("s", 2023, 2, 4, 4, 4, 5, 5, 7, 9)

	// Sample std of all 8 values: mean=5, sum sq dev=32, 32/7, sqrt≈2.13809.
	if got := StdN(s, 8); !almostEqual(got, math.Sqrt(32.0/7.0)) {
		t.Errorf("StdN: expected %v, got %v", math.Sqrt(32.0/7.0), got)
	}
	if got := StdN(s, 1); !math.IsNaN(got) {
		t.Errorf("StdN with one value: expected NaN, got %v", got)
	}
}

func TestCAGRDateAware(t *testing.T) {
	// 2023 vs 2020 endpoints, exact 3-year span on Dec-31 keys:
	// (1331/1000)^(1/3)-1 = 0.10.
	s := yearly("s", 2023, 1331, 1210, 1100, 1000)
	got := CAGR(s, 3)
	if math.Abs(got-0.10) > 1e-3 {
		t.Errorf("expected ~0.10, got %v", got)
	}
}

func TestCAGRSkipsMissingEndpoints(t *testing.T) {
	// Latest valid is 2022; start scan lands on 2019 (3 years back), which is
	// missing, so the next older valid value (2018) anchors the start.
	s := yearly("s", 2023, nan, 1200, 1100, 1050, nan, 800)
	got := CAGR(s, 3)
	// Span 2022-12-31 .. 2018-12-31 = 1461 days = 4.0 years.
	want := math.Pow(1200.0/800.0, 1/4.0) - 1
	if !almostEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCAGRNonPositiveEndpoints(t *testing.T) {
	s := yearly("s", 2023, -5, 10, 10, 10)
	if got := CAGR(s, 3); !math.IsNaN(got) {
		t.Errorf("negative endpoint: expected NaN, got %v", got)
	}
	if got := CAGR(yearly("s", 2023, 10), 3); !math.IsNaN(got) {
		t.Errorf("too-short series: expected NaN, got %v", got)
	}
	if got := CAGR(yearly("s", 2023, 10, 20), 0); !math.IsNaN(got) {
		t.Errorf("zero horizon: expected NaN, got %v", got)
	}
}

func TestLatestAndLatestValid(t *testing.T) {
	s := yearly("s", 2023, nan, 7, 9)
	if got := s.Latest(); !math.IsNaN(got) {
		t.Errorf("Latest: expected NaN, got %v", got)
	}
	if got := s.LatestValid(); got != 7 {
		t.Errorf("LatestValid: expected 7, got %v", got)
	}
}

func TestDateKeyNormalizes(t *testing.T) {
	loc := time.FixedZone("X", 5*3600)
	a := DateKey(time.Date(2023, 6, 15, 23, 30, 0, 0, loc))
	b := DateKey(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC))
	if !a.Date().Equal(b.Date()) {
		t.Errorf("expected %v and %v to normalize equal", a, b)
	}
	if a.String() != "2023-06-15" {
		t.Errorf("unexpected key string %q", a.String())
	}
	if YearKey(2023).String() != "2023" {
		t.Errorf("unexpected year key string %q", YearKey(2023).String())
	}
}

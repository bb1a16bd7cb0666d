package series

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDefaultYearsGaps(t *testing.T) {
	got := DefaultYears.Gaps()
	want := [4]int{5, 5, 10, 10}
	if got != want {
		t.Errorf("Gaps() = %v, want %v", got, want)
	}
}

func TestYearsFrom(t *testing.T) {
	tests := []struct {
		name    string
		list    []int
		want    Years
		wantErr bool
	}{
		{name: "empty uses default", list: nil, want: DefaultYears},
		{name: "custom axis", list: []int{2019, 2024, 2030, 2035, 2045}, want: Years{2019, 2024, 2030, 2035, 2045}},
		{name: "too short", list: []int{2020, 2025}, wantErr: true},
		{name: "not increasing", list: []int{2020, 2025, 2025, 2040, 2050}, wantErr: true},
		{name: "decreasing", list: []int{2050, 2040, 2030, 2025, 2020}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YearsFrom(tt.list)
			if (err != nil) != tt.wantErr {
				t.Fatalf("YearsFrom(%v) error = %v, wantErr %v", tt.list, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("YearsFrom(%v) = %v, want %v", tt.list, got, tt.want)
			}
		})
	}
}

func TestGrowRateBefore(t *testing.T) {
	got := Grow(100, []float64{10, 10, 10, 10}, RateBefore, DefaultYears)
	want := Series{100, 161.051, 259.37424601, 672.74999493, 1744.94022689}
	for i := range want {
		if !approxEqual(got[i], want[i], 1e-6) {
			t.Errorf("Grow()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGrowBaseUnchanged(t *testing.T) {
	got := Grow(42.5, []float64{3, -2, 0, 7}, RateBefore, DefaultYears)
	if got[0] != 42.5 {
		t.Errorf("Grow()[0] = %v, want 42.5", got[0])
	}
}

func TestGrowMissingRatesAreZero(t *testing.T) {
	got := Grow(80, nil, RateBefore, DefaultYears)
	for i, v := range got {
		if v != 80 {
			t.Errorf("Grow()[%d] = %v, want 80", i, v)
		}
	}
}

func TestGrowRateAt(t *testing.T) {
	// [base, r1..r4]: the base value occupies rates[0], so growth into year i
	// reads rates[i].
	input := []float64{8, 0, 10, 0, 0}
	got := Grow(input[0], input, RateAt, DefaultYears)
	if got[1] != 8 {
		t.Errorf("Grow()[1] = %v, want 8", got[1])
	}
	want := 8 * math.Pow(1.1, 5)
	if !approxEqual(got[2], want, 1e-9) {
		t.Errorf("Grow()[2] = %v, want %v", got[2], want)
	}
	if !approxEqual(got[4], want, 1e-9) {
		t.Errorf("Grow()[4] = %v, want %v", got[4], want)
	}
}

func TestGrowNonUniformGaps(t *testing.T) {
	years := Years{2020, 2021, 2023, 2026, 2030}
	got := Grow(1, []float64{100, 100, 100, 100}, RateBefore, years)
	want := Series{1, 2, 8, 64, 1024}
	if got != want {
		t.Errorf("Grow() = %v, want %v", got, want)
	}
}

func TestRatioZeroWhole(t *testing.T) {
	got := Ratio(Series{1, 2, 3, 4, 5}, Series{2, 0, 6, 0, 10})
	want := Series{0.5, 0, 0.5, 0, 0.5}
	if got != want {
		t.Errorf("Ratio() = %v, want %v", got, want)
	}
}

func TestSumAndScale(t *testing.T) {
	a := Series{1, 2, 3, 4, 5}
	b := Series{10, 20, 30, 40, 50}
	if got := Sum(a, b); got != (Series{11, 22, 33, 44, 55}) {
		t.Errorf("Sum() = %v", got)
	}
	if got := a.Scale(2); got != (Series{2, 4, 6, 8, 10}) {
		t.Errorf("Scale() = %v", got)
	}
	if a != (Series{1, 2, 3, 4, 5}) {
		t.Error("Scale must not modify the receiver")
	}
	if got := a.Total(); got != 15 {
		t.Errorf("Total() = %v, want 15", got)
	}
}

func TestFromSlicePadsWithZero(t *testing.T) {
	got := FromSlice([]float64{1, 2})
	if got != (Series{1, 2, 0, 0, 0}) {
		t.Errorf("FromSlice() = %v", got)
	}
}

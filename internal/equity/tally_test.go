package equity

import (
	"math"
	"testing"
)

func TestTallyRates(t *testing.T) {
	result := Tally{Wins: 300, Losses: 650, Ties: 50}

	t.Run("WinRate", func(t *testing.T) {
		expected := 0.3
		actual := result.WinRate()
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("WinRate() = %v, want %v", actual, expected)
		}
	})

	t.Run("TieRate", func(t *testing.T) {
		expected := 0.05
		actual := result.TieRate()
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("TieRate() = %v, want %v", actual, expected)
		}
	})

	t.Run("LossRate", func(t *testing.T) {
		expected := 0.65
		actual := result.LossRate()
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("LossRate() = %v, want %v", actual, expected)
		}
	})

	t.Run("Equity", func(t *testing.T) {
		expected := 0.325 // (300 + 50*0.5) / 1000
		actual := result.Equity()
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("Equity() = %v, want %v", actual, expected)
		}
	})
}

func TestTallyEmpty(t *testing.T) {
	var empty Tally
	if empty.WinRate() != 0 || empty.Equity() != 0 {
		t.Errorf("empty tally should report zero rates")
	}
	lower, upper := empty.ConfidenceInterval()
	if lower != 0 || upper != 0 {
		t.Errorf("ConfidenceInterval() = (%v, %v), want (0, 0)", lower, upper)
	}
}

func TestTallyConfidenceInterval(t *testing.T) {
	result := Tally{Wins: 500, Losses: 9500}

	lower, upper := result.ConfidenceInterval()

	equity := result.Equity()
	if math.Abs(equity-0.05) > 0.001 {
		t.Errorf("Equity = %v, expected 0.05", equity)
	}
	if lower < 0.04 || lower > 0.05 {
		t.Errorf("Lower CI = %v, expected around 0.04-0.05", lower)
	}
	if upper < 0.05 || upper > 0.06 {
		t.Errorf("Upper CI = %v, expected around 0.05-0.06", upper)
	}
	if lower >= upper {
		t.Errorf("Lower CI (%v) should be less than upper CI (%v)", lower, upper)
	}
}

func TestTallyRecordAndAdd(t *testing.T) {
	var a Tally
	a.Record(Win)
	a.Record(Win)
	a.Record(Loss)
	a.Record(Tie)

	b := Tally{Wins: 1, Losses: 2, Ties: 3}
	a.Add(b)

	if a != (Tally{Wins: 3, Losses: 3, Ties: 4}) {
		t.Errorf("unexpected tally %+v", a)
	}
	if a.Total() != 10 {
		t.Errorf("Total() = %d, want 10", a.Total())
	}
	if Win.String() != "win" || Loss.String() != "loss" || Tie.String() != "tie" {
		t.Errorf("unexpected outcome names")
	}
}

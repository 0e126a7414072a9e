package quote

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
)

func TestResolveKnownIdentifier(t *testing.T) {
	svc := NewService(NoNoise)

	got := svc.Resolve("9432", decimal.NewFromInt(155), domain.KindDomesticStock)
	want := decimal.NewFromInt(155)
	if !got.Equal(want) {
		t.Errorf("Resolve(9432) = %s, want %s", got, want)
	}
}

func TestResolveFallbackGeneric(t *testing.T) {
	svc := NewService(NoNoise)

	got := svc.Resolve("0000", decimal.NewFromInt(1000), domain.KindDomesticStock)
	want := decimal.NewFromInt(1050)
	if !got.Equal(want) {
		t.Errorf("Resolve(unknown stock) = %s, want %s", got, want)
	}
}

func TestResolveFallbackTrust(t *testing.T) {
	svc := NewService(NoNoise)

	got := svc.Resolve("unknown fund", decimal.NewFromInt(10000), domain.KindInvestmentTrust)
	want := decimal.NewFromInt(12500)
	if !got.Equal(want) {
		t.Errorf("Resolve(unknown trust) = %s, want %s", got, want)
	}
}

func TestResolveNeverFails(t *testing.T) {
	svc := NewService(NoNoise)

	// Zero avg cost on an unknown identifier still yields a number.
	got := svc.Resolve("XYZ", decimal.Zero, domain.KindCrypto)
	if !got.IsZero() {
		t.Errorf("Resolve(unknown, avgCost=0) = %s, want 0", got)
	}
}

func TestResolveCachedWithinPass(t *testing.T) {
	svc := NewService(SeededNoise(42))

	first := svc.Resolve("AAPL", decimal.NewFromInt(180), domain.KindForeignStock)
	second := svc.Resolve("AAPL", decimal.NewFromInt(180), domain.KindForeignStock)
	if !first.Equal(second) {
		t.Errorf("cached Resolve differs: %s vs %s", first, second)
	}
}

func TestSeededNoiseBounds(t *testing.T) {
	noise := SeededNoise(7)
	lo := decimal.NewFromFloat(0.99)
	hi := decimal.NewFromFloat(1.01)
	for range 100 {
		f := noise()
		if f.LessThan(lo) || f.GreaterThan(hi) {
			t.Fatalf("noise factor %s outside [0.99, 1.01]", f)
		}
	}
}

func TestSeededNoiseDeterministic(t *testing.T) {
	a := SeededNoise(99)
	b := SeededNoise(99)
	for range 10 {
		if x, y := a(), b(); !x.Equal(y) {
			t.Fatalf("same seed produced different factors: %s vs %s", x, y)
		}
	}
}

package holdings

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
)

func TestLoadEmbeddedSample(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 9 {
		t.Fatalf("len(holdings) = %d, want 9", len(got))
	}

	kinds := make(map[domain.AssetKind]int)
	for _, h := range got {
		kinds[h.Kind()]++
	}
	want := map[domain.AssetKind]int{
		domain.KindDomesticStock:   2,
		domain.KindForeignStock:    2,
		domain.KindInvestmentTrust: 2,
		domain.KindCrypto:          2,
		domain.KindBond:            1,
	}
	for k, n := range want {
		if kinds[k] != n {
			t.Errorf("kind %s count = %d, want %d", k, kinds[k], n)
		}
	}
}

func TestParseDomesticStock(t *testing.T) {
	data := []byte(`[{"kind":"domestic_stock","broker":"sbi","account":"specific","code":"7203","name":"トヨタ自動車","quantity":"100","avgPrice":"2500"}]`)

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stock, ok := got[0].(domain.StoredDomesticStock)
	if !ok {
		t.Fatalf("holding type = %T, want StoredDomesticStock", got[0])
	}
	if stock.Code != "7203" {
		t.Errorf("Code = %s, want 7203", stock.Code)
	}
	if !stock.Quantity.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Quantity = %s, want 100", stock.Quantity)
	}
}

func TestParseForeignStockHistoricalRate(t *testing.T) {
	data := []byte(`[{"kind":"foreign_stock","broker":"sbi","ticker":"AAPL","name":"アップル","quantity":"5","avgPriceUsd":"180","historicalRate":"145"}]`)

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stock := got[0].(domain.StoredForeignStock)
	if !stock.HistoricalRate.Equal(decimal.NewFromInt(145)) {
		t.Errorf("HistoricalRate = %s, want 145", stock.HistoricalRate)
	}
}

func TestParseUnknownKind(t *testing.T) {
	data := []byte(`[{"kind":"commodity","name":"金"}]`)

	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/holdings.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

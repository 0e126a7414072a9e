package quote

import "github.com/shopspring/decimal"

// referenceTable maps known identifiers to their reference market price.
// Domestic stocks and trusts quote in JPY, foreign stocks in USD, crypto in
// JPY. Identifiers absent from the table are priced by the fallback formula.
var referenceTable = map[string]decimal.Decimal{
	// Domestic stocks (JPY per share)
	"3769": decimal.NewFromInt(8936),
	"2730": decimal.NewFromInt(2117),
	"4661": decimal.NewFromInt(2709),
	"4755": decimal.NewFromInt(925),
	"9432": decimal.NewFromInt(155),

	// Foreign stocks (USD per share)
	"AAPL":  decimal.NewFromInt(260),
	"ASML":  decimal.NewFromInt(1420),
	"GOOGL": decimal.NewFromInt(338),
	"MSFT":  decimal.NewFromInt(430),
	"NVDA":  decimal.NewFromInt(191),
	"TSLA":  decimal.NewFromInt(430),
	"EDV":   decimal.NewFromInt(65),
	"EC":    decimal.NewFromFloat(12.5),

	// Crypto (JPY per coin)
	"BTC": decimal.NewFromInt(15000000),

	// Investment trusts (JPY per 10,000 units)
	"eMAXIS Slim 全世界株式（オール・カントリー）":            decimal.NewFromInt(33700),
	"楽天・プラス・オールカントリー株式インデックス・ファンド": decimal.NewFromInt(17400),
}

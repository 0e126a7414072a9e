package domain

import "github.com/shopspring/decimal"

// AssetKind classifies portfolio holdings. The set is closed: valuation
// dispatches exhaustively over these five kinds.
type AssetKind string

const (
	KindDomesticStock   AssetKind = "domestic_stock"
	KindForeignStock    AssetKind = "foreign_stock"
	KindInvestmentTrust AssetKind = "investment_trust"
	KindCrypto          AssetKind = "crypto"
	KindBond            AssetKind = "bond"
)

// Valid reports whether k is one of the five known kinds.
func (k AssetKind) Valid() bool {
	switch k {
	case KindDomesticStock, KindForeignStock, KindInvestmentTrust, KindCrypto, KindBond:
		return true
	}
	return false
}

// AccountType is the tax wrapper a holding sits in.
type AccountType string

const (
	AccountSpecific      AccountType = "specific"
	AccountGeneral       AccountType = "general"
	AccountNisaGrowth    AccountType = "nisa_growth"
	AccountNisaTsumitate AccountType = "nisa_tsumitate"
)

// Broker identifies the brokerage holding the position.
type Broker string

const (
	BrokerSBI      Broker = "sbi"
	BrokerRakuten  Broker = "rakuten"
	BrokerBitpoint Broker = "bitpoint"
	BrokerKabucom  Broker = "au_kabucom"
	BrokerOther    Broker = "other"
)

// StoredHolding is the persisted minimal record of a position: identity plus
// cost. Each asset kind has its own concrete stored type; valuation converts
// a StoredHolding into an EnrichedHolding.
type StoredHolding interface {
	// Kind returns the asset kind tag.
	Kind() AssetKind
	// Identifier returns the key used for price and dividend lookups
	// (code, ticker, symbol, or fund name).
	Identifier() string
	// DisplayName returns the human-readable holding name.
	DisplayName() string
}

// StoredDomesticStock is a JPY-denominated exchange-listed stock position.
type StoredDomesticStock struct {
	Broker   Broker          `json:"broker"`
	Account  AccountType     `json:"account"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	AvgPrice decimal.Decimal `json:"avgPrice"`
}

func (s StoredDomesticStock) Kind() AssetKind     { return KindDomesticStock }
func (s StoredDomesticStock) Identifier() string  { return s.Code }
func (s StoredDomesticStock) DisplayName() string { return s.Name }

// StoredForeignStock is a USD-denominated stock position. HistoricalRate is
// the USD/JPY rate recorded at acquisition time; it never changes and is
// deliberately distinct from the live rate used for current valuation.
type StoredForeignStock struct {
	Broker         Broker          `json:"broker"`
	Account        AccountType     `json:"account"`
	Ticker         string          `json:"ticker"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	AvgPriceUSD    decimal.Decimal `json:"avgPriceUsd"`
	HistoricalRate decimal.Decimal `json:"historicalRate"`
}

func (s StoredForeignStock) Kind() AssetKind     { return KindForeignStock }
func (s StoredForeignStock) Identifier() string  { return s.Ticker }
func (s StoredForeignStock) DisplayName() string { return s.Name }

// DividendMethod is how an investment trust handles distributions.
type DividendMethod string

const (
	DividendReinvest DividendMethod = "reinvest"
	DividendReceive  DividendMethod = "receive"
)

// StoredInvestmentTrust is a mutual fund position. Units and NAV share the
// per-10,000-unit quote convention used on Japanese brokerage statements:
// Units counts 10,000-unit blocks and AvgNAVPrice is JPY per block.
type StoredInvestmentTrust struct {
	Broker         Broker          `json:"broker"`
	Account        AccountType     `json:"account"`
	Name           string          `json:"name"`
	Units          decimal.Decimal `json:"units"`
	AvgNAVPrice    decimal.Decimal `json:"avgNavPrice"`
	DividendMethod DividendMethod  `json:"dividendMethod"`
}

func (s StoredInvestmentTrust) Kind() AssetKind     { return KindInvestmentTrust }
func (s StoredInvestmentTrust) Identifier() string  { return s.Name }
func (s StoredInvestmentTrust) DisplayName() string { return s.Name }

// StoredCrypto is a cryptocurrency position. Quantity may be fractional.
// Crypto positions have no tax-wrapper account.
type StoredCrypto struct {
	Broker   Broker          `json:"broker"`
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	AvgPrice decimal.Decimal `json:"avgPrice"`
}

func (s StoredCrypto) Kind() AssetKind     { return KindCrypto }
func (s StoredCrypto) Identifier() string  { return s.Symbol }
func (s StoredCrypto) DisplayName() string { return s.Name }

// StoredBond is a bond position. Bonds carry a total acquisition cost rather
// than a per-unit price, so valuation never decomposes them into
// price times quantity.
type StoredBond struct {
	Broker          Broker          `json:"broker"`
	Account         AccountType     `json:"account"`
	Name            string          `json:"name"`
	FaceValue       decimal.Decimal `json:"faceValue"`
	MaturityDate    string          `json:"maturityDate"`
	AcquisitionCost decimal.Decimal `json:"acquisitionCost"`
}

func (s StoredBond) Kind() AssetKind     { return KindBond }
func (s StoredBond) Identifier() string  { return s.Name }
func (s StoredBond) DisplayName() string { return s.Name }

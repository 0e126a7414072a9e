// Package holdings loads the stored-holdings configuration. Holdings are
// immutable reference data: the operator edits the file out-of-band, the
// service only reads it.
package holdings

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hisakawa/shisan/internal/domain"
)

//go:embed sample_holdings.json
var sampleHoldings []byte

// Load reads stored holdings from a JSON file. An empty path loads the
// embedded sample portfolio.
func Load(path string) ([]domain.StoredHolding, error) {
	data := sampleHoldings
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading holdings file: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes a JSON array of stored holdings. Each element is a tagged
// union discriminated by its "kind" field; an unknown kind is a
// configuration error and fails the whole load.
func Parse(data []byte) ([]domain.StoredHolding, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing holdings: %w", err)
	}

	holdings := make([]domain.StoredHolding, 0, len(raw))
	for i, entry := range raw {
		h, err := decodeHolding(entry)
		if err != nil {
			return nil, fmt.Errorf("holding %d: %w", i, err)
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

func decodeHolding(data json.RawMessage) (domain.StoredHolding, error) {
	var tag struct {
		Kind domain.AssetKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("reading kind tag: %w", err)
	}

	switch tag.Kind {
	case domain.KindDomesticStock:
		var h domain.StoredDomesticStock
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, fmt.Errorf("decoding domestic stock: %w", err)
		}
		return h, nil
	case domain.KindForeignStock:
		var h domain.StoredForeignStock
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, fmt.Errorf("decoding foreign stock: %w", err)
		}
		return h, nil
	case domain.KindInvestmentTrust:
		var h domain.StoredInvestmentTrust
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, fmt.Errorf("decoding investment trust: %w", err)
		}
		return h, nil
	case domain.KindCrypto:
		var h domain.StoredCrypto
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, fmt.Errorf("decoding crypto: %w", err)
		}
		return h, nil
	case domain.KindBond:
		var h domain.StoredBond
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, fmt.Errorf("decoding bond: %w", err)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unknown asset kind %q", tag.Kind)
	}
}

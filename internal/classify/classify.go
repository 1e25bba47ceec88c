// Package classify decides whether a free-text query names a cryptocurrency
// or an equity ticker.
package classify

import "strings"

// AssetKind is the asset class a query resolves to.
type AssetKind int

const (
	Stock AssetKind = iota
	Crypto
)

func (k AssetKind) String() string {
	if k == Crypto {
		return "crypto"
	}
	return "stock"
}

// MarshalText lets JSON carry the kind by name.
func (k AssetKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// keywords is matched by substring, not by whole word. "canada" therefore
// classifies as crypto through "ada", and "solar" through "sol".
var keywords = []string{
	"bitcoin", "ethereum", "btc", "eth", "dogecoin", "doge",
	"cardano", "ada", "ripple", "xrp", "solana", "sol",
	"polkadot", "dot", "litecoin", "ltc", "chainlink", "link",
}

// aliases maps short tickers to CoinGecko coin ids.
var aliases = map[string]string{
	"btc":  "bitcoin",
	"eth":  "ethereum",
	"doge": "dogecoin",
	"ada":  "cardano",
	"xrp":  "ripple",
	"sol":  "solana",
	"dot":  "polkadot",
	"ltc":  "litecoin",
	"link": "chainlink",
}

// Classify returns Crypto when the normalised query contains any crypto
// keyword, Stock otherwise.
func Classify(query string) AssetKind {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return Crypto
		}
	}
	return Stock
}

// NormalizeCryptoID maps an alias to its canonical coin id. Unknown input is
// returned unchanged and assumed to already be canonical.
func NormalizeCryptoID(query string) string {
	if id, ok := aliases[query]; ok {
		return id
	}
	return query
}

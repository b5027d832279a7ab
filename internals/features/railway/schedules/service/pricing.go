package service

import (
	"log"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// ParseClassPricing builds the class-name -> price mapping from the two
// parallel form arrays. Malformed entries are skipped, never fatal:
// blank names, blank prices, unparsable or negative prices drop the pair
// and processing continues. Last write wins on duplicate names. An empty
// mapping is valid (a schedule with no declared class pricing).
func ParseClassPricing(names, prices []string) map[string]float64 {
	n := len(names)
	if len(prices) < n {
		n = len(prices)
	}

	out := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		name := strings.TrimSpace(names[i])
		priceStr := strings.TrimSpace(prices[i])
		if name == "" || priceStr == "" {
			log.Printf("[WARN] pricing entry %d skipped: blank name or price", i)
			continue
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			log.Printf("[WARN] pricing entry %d (%s) skipped: %v", i, name, err)
			continue
		}
		if price < 0 {
			log.Printf("[WARN] pricing entry %d (%s) skipped: negative price", i, name)
			continue
		}
		out[name] = price
	}
	return out
}

// PricingToJSONMap converts the parsed mapping into the jsonb column
// representation.
func PricingToJSONMap(pricing map[string]float64) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for name, price := range pricing {
		out[name] = price
	}
	return out
}

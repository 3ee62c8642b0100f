package extractor

import (
	"fmt"
	"regexp"
)

// PresencePattern identifies which presence rule located the stock number
type PresencePattern int

const (
	PatternNone PresencePattern = iota
	// PatternStockLabel is "Stock", optional '#', ':' or spaces, the stock number, then a non-word char
	PatternStockLabel
	// PatternBare is the stock number anywhere. It also matches inside longer
	// unrelated tokens ("TC12345" for "TC1234").
	PatternBare
	// PatternHash is '#' immediately followed by the stock number
	PatternHash
)

func (p PresencePattern) String() string {
	switch p {
	case PatternStockLabel:
		return "stock_label"
	case PatternBare:
		return "bare"
	case PatternHash:
		return "hash"
	default:
		return "none"
	}
}

// FindStock reports the first presence pattern, in order, that matches stock in text.
// The stock number is matched literally and case-insensitively.
func FindStock(text, stock string) (PresencePattern, error) {
	quoted := regexp.QuoteMeta(stock)

	candidates := []struct {
		pattern PresencePattern
		expr    string
	}{
		{PatternStockLabel, `(?i)Stock[\s#:]*` + quoted + `\W`},
		{PatternBare, `(?i)` + quoted},
		{PatternHash, `(?i)#` + quoted},
	}

	for _, c := range candidates {
		re, err := regexp.Compile(c.expr)
		if err != nil {
			return PatternNone, fmt.Errorf("compile %s presence pattern: %w", c.pattern, err)
		}
		if re.MatchString(text) {
			return c.pattern, nil
		}
	}

	return PatternNone, nil
}

package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// priceFloor drops incidental dollar amounts (fees, accessories) from the price pass
const priceFloor = 5000

var (
	// Regex patterns for field extraction
	yearRegex = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	vinRegex  = regexp.MustCompile(`\b[A-HJ-NPR-Z0-9]{17}\b`)

	mileageRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)\s*(?:miles?|mi\.?)`),
		regexp.MustCompile(`(?i)mileage[:\s]*(\d{1,3}(?:,\d{3})*)`),
	}

	exteriorColorRegex = regexp.MustCompile(`(?i)(?:exterior|ext\.?|outside)\s*(?:color)?[:\s]*([a-zA-Z\s]+)`)
	interiorColorRegex = regexp.MustCompile(`(?i)(?:interior|int\.?|inside)\s*(?:color)?[:\s]*([a-zA-Z\s]+)`)
)

// pricePattern pairs a price regex with how many of its matches are considered
type pricePattern struct {
	re    *regexp.Regexp
	limit int
}

var pricePatterns = []pricePattern{
	{re: regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*)`), limit: -1},
	{re: regexp.MustCompile(`(?i)price[:\s]*\$?(\d{1,3}(?:,\d{3})*)`), limit: 1},
}

// ExtractYear returns the last 19xx/20xx token in text
func ExtractYear(text string) (int, bool) {
	matches := yearRegex.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(matches[len(matches)-1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// ExtractModel returns the first known model, in list order, that appears as a whole word
func ExtractModel(text string) (string, bool) {
	for _, p := range modelPatterns {
		if p.re.MatchString(text) {
			return p.name, true
		}
	}
	return "", false
}

// ExtractVIN returns the first 17-character token from the VIN alphabet
func ExtractVIN(text string) (string, bool) {
	vin := vinRegex.FindString(text)
	return vin, vin != ""
}

// ExtractMileage returns the odometer reading next to a "miles" unit or a "mileage" label
func ExtractMileage(text string) (int, bool) {
	for _, re := range mileageRegexes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, ok := parseGroupedInt(m[1])
		if !ok {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// ExtractPrice returns the largest dollar amount above the price floor.
// The labeled "price:" pattern is only consulted when the dollar pass yields
// no qualifying amount.
func ExtractPrice(text string) (int, bool) {
	for _, p := range pricePatterns {
		best := 0
		for _, m := range p.re.FindAllStringSubmatch(text, p.limit) {
			n, ok := parseGroupedInt(m[1])
			if !ok || n <= priceFloor {
				continue
			}
			if n > best {
				best = n
			}
		}
		if best > 0 {
			return best, true
		}
	}
	return 0, false
}

// ExtractExteriorColor returns the text after an exterior/ext./outside label
func ExtractExteriorColor(text string) (string, bool) {
	return extractColor(exteriorColorRegex, text)
}

// ExtractInteriorColor returns the text after an interior/int./inside label
func ExtractInteriorColor(text string) (string, bool) {
	return extractColor(interiorColorRegex, text)
}

func extractColor(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	color := strings.TrimSpace(m[1])
	if i := strings.IndexAny(color, ",\n\r"); i >= 0 {
		color = color[:i]
	}
	color = strings.TrimSpace(color)

	return color, color != ""
}

// parseGroupedInt parses "45,231" as 45231
func parseGroupedInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Package extractors contains the pure field derivations used to build
// canonical catalog records. Every extractor is total: empty or unparseable
// input yields a sentinel (or empty string), never an error.
package extractors

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

const (
	// SentinelNull marks a field whose source had no qualifying data
	SentinelNull = "NULL"
	// SentinelNA marks a field that is not applicable for the record
	SentinelNA = "N/A"
)

var numericRun = regexp.MustCompile(`\d+\.?\d*`)

// ShortCodes keeps the 3-4 character alphanumeric entries of a comma-delimited
// code list, rejoined with commas. Returns SentinelNull when the input is
// empty or nothing qualifies.
func ShortCodes(codes string) string {
	return filterCodes(codes, func(entry string) bool {
		n := utf8.RuneCountInString(entry)
		return (n == 3 || n == 4) && isAlphanumeric(entry)
	})
}

// LongCodes keeps the entries longer than 4 characters of a comma-delimited
// code list, rejoined with commas. Returns SentinelNull when the input is
// empty or nothing qualifies.
func LongCodes(codes string) string {
	return filterCodes(codes, func(entry string) bool {
		return utf8.RuneCountInString(entry) > 4
	})
}

func filterCodes(codes string, keep func(string) bool) string {
	if strings.TrimSpace(codes) == "" {
		return SentinelNull
	}

	var kept []string
	for _, entry := range strings.Split(codes, ",") {
		entry = strings.TrimSpace(entry)
		if keep(entry) {
			kept = append(kept, entry)
		}
	}

	if len(kept) == 0 {
		return SentinelNull
	}
	return strings.Join(kept, ",")
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// FormatPrice renders a raw price as a dollar value with exactly two decimal
// places. A leading dollar sign and surrounding whitespace are tolerated.
// Empty or unparseable input yields "$0.00".
func FormatPrice(price string) string {
	clean := strings.TrimSpace(strings.ReplaceAll(price, "$", ""))
	if clean == "" {
		return "$0.00"
	}

	value, err := decimal.NewFromString(clean)
	if err != nil {
		return "$0.00"
	}

	return "$" + value.StringFixed(2)
}

// NumericWithUnit finds the first numeric run (integer part, optional decimal
// point, optional fraction) in the value and appends the unit suffix.
// Returns SentinelNA when the value is empty or contains no numeral.
func NumericWithUnit(value, unit string) string {
	if strings.TrimSpace(value) == "" {
		return SentinelNA
	}

	match := numericRun.FindString(value)
	if match == "" {
		return SentinelNA
	}
	return match + unit
}

// CombineColumns reads the named columns from the record in order, trims each
// value, and joins the non-empty results with commas. Returns the empty
// string (not a sentinel) when no column yields a value.
func CombineColumns(record models.RawRecord, columns []string) string {
	var values []string
	for _, col := range columns {
		if v := record.GetTrimmed(col); v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, ",")
}

// uomAbbreviations maps full unit-of-measure words to their output
// abbreviations; anything else passes through trimmed as-is.
var uomAbbreviations = map[string]string{
	"milligrams": "mg",
	"grams":      "g",
}

// FormatSize composes the output Size from a raw amount and unit of measure.
// A unit with no amount is not a valid size and yields the empty string. The
// amount is reformatted to drop insignificant trailing zeros when it parses
// as a number, and falls back to the trimmed raw text when it does not.
func FormatSize(amount, uom string) string {
	amount = strings.TrimSpace(amount)
	uom = strings.TrimSpace(uom)

	if amount == "" && uom != "" {
		return ""
	}

	if amount != "" {
		if f, err := strconv.ParseFloat(amount, 64); err == nil {
			amount = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}

	if abbr, ok := uomAbbreviations[strings.ToLower(uom)]; ok {
		uom = abbr
	}

	return strings.TrimSpace(amount + " " + uom)
}

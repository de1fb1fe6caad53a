// Package validation decides, per source row, whether a record is admissible
// and why not. Checks run in a fixed order and the first failure wins; a
// failing row is excluded from output, never a batch error.
package validation

import (
	"fmt"
	"strings"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

// validClassifications is the fixed set of admissible classification values,
// compared after trimming and case-folding.
var validClassifications = map[string]bool{
	"sativa": true,
	"indica": true,
	"hybrid": true,
	"s/i":    true,
	"i/s":    true,
	"cbd":    true,
}

// potencyRequiredCategories are the categories for which both THC and CBD
// amounts must be present.
var potencyRequiredCategories = map[string]bool{
	"Edibles":   true,
	"Topicals":  true,
	"Tinctures": true,
}

// Admission carries the values the validator resolved while admitting a row,
// so the transformer does not re-derive them.
type Admission struct {
	// Name is the resolved display name (Menu Title preferred over Name).
	Name string
	// Classification is the trimmed original-case classification text, empty
	// when the source was empty or the literal "none".
	Classification string
	// Category is the trimmed category (source Product Type column).
	Category string
	// UnitsInPackage is the trimmed Doses value, defaulted to "1" when empty.
	UnitsInPackage string
	// RawPrice is the trimmed price, defaulted to "0.01" when empty. It is
	// not yet dollar-formatted.
	RawPrice string
}

// Failure describes an inadmissible row: the reason enum plus a rendered
// human-readable message.
type Failure struct {
	Reason  models.RejectReason
	Message string
	// Name is the best-effort display name for the rejection log.
	Name string
}

// Validator applies the admission rules to normalized records.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate runs the admission checks against a normalized record. Exactly one
// of the returns is non-nil.
func (v *Validator) Validate(record models.RawRecord) (*Admission, *Failure) {
	name := record.GetTrimmed(models.ColMenuTitle)
	if name == "" {
		name = record.GetTrimmed(models.ColName)
	}
	if name == "" {
		return nil, &Failure{
			Reason:  models.RejectReasonEmptyName,
			Message: "Empty Name",
			Name:    "N/A",
		}
	}

	lowerName := strings.ToLower(name)
	if strings.HasPrefix(lowerName, "http://") || strings.HasPrefix(lowerName, "https://") || strings.HasPrefix(lowerName, "www.") {
		return nil, &Failure{
			Reason:  models.RejectReasonNameIsURL,
			Message: fmt.Sprintf("Name is a URL: '%s'", name),
			Name:    name,
		}
	}

	if strings.Contains(lowerName, "promo") || strings.Contains(lowerName, "bogo") || strings.Contains(name, "$") {
		return nil, &Failure{
			Reason:  models.RejectReasonPromotionalName,
			Message: fmt.Sprintf("Promotional name: '%s'", name),
			Name:    name,
		}
	}

	rawClassification := record.GetTrimmed(models.ColClassification)
	classification := strings.ToLower(rawClassification)
	if classification == "none" {
		classification = ""
		rawClassification = ""
	}
	if classification != "" && !validClassifications[classification] {
		return nil, &Failure{
			Reason:  models.RejectReasonInvalidClassification,
			Message: fmt.Sprintf("Invalid Classification: '%s' (must be: sativa, indica, hybrid, s/i, i/s, or cbd)", record.GetTrimmed(models.ColClassification)),
			Name:    name,
		}
	}

	category := record.GetTrimmed(models.ColProductType)
	if category == "" {
		return nil, &Failure{
			Reason:  models.RejectReasonEmptyCategory,
			Message: "Empty Category",
			Name:    name,
		}
	}

	units := record.GetTrimmed(models.ColDoses)
	if units == "" {
		units = "1"
	}

	price := record.GetTrimmed(models.ColPriceTier)
	if price == "" {
		price = "0.01"
	}

	if potencyRequiredCategories[category] {
		thc := record.GetTrimmed(models.ColTotalMgTHC)
		cbd := record.GetTrimmed(models.ColTotalMgCBD)
		if thc == "" || cbd == "" {
			return nil, &Failure{
				Reason:  models.RejectReasonMissingPotency,
				Message: fmt.Sprintf("Missing THC/CBD for %s", category),
				Name:    name,
			}
		}
	}

	return &Admission{
		Name:           name,
		Classification: rawClassification,
		Category:       category,
		UnitsInPackage: units,
		RawPrice:       price,
	}, nil
}

// Package transform builds canonical output records from admitted rows.
package transform

import (
	"github.com/stellyes/catalog-csv-filtering/pkg/extractors"
	"github.com/stellyes/catalog-csv-filtering/pkg/models"
	"github.com/stellyes/catalog-csv-filtering/pkg/validation"
)

// Transformer maps an admitted normalized record onto the fixed 30-field
// output schema. It has no failure path: it is only invoked for rows the
// validator admitted, and every output field is always populated.
type Transformer struct{}

// New creates a Transformer.
func New() *Transformer {
	return &Transformer{}
}

// Transform builds the canonical record for an admitted row. Static renames
// and constants come straight from the source mapping; derived fields go
// through the extractors.
func (t *Transformer) Transform(record models.RawRecord, admission *validation.Admission) *models.CanonicalRecord {
	flavors := record.GetTrimmed(models.ColFlavors)
	if flavors == "" {
		flavors = "None"
	}

	barcodes := record.Get(models.ColBarcodes)

	return &models.CanonicalRecord{
		ExternalID:         record.GetTrimmed(models.ColProductID),
		Name:               admission.Name,
		ProductType:        record.Get(models.ColSubtype),
		Category:           admission.Category,
		Subcategory:        "None",
		Brand:              record.Get(models.ColBrand),
		Strain:             "Undefined",
		StrainPrevalence:   admission.Classification,
		QualityLine:        "Bronze",
		ProductDescription: record.Get(models.ColDescription),
		Instructions:       "None",
		Flavors:            flavors,
		Scents:             extractors.SentinelNA,
		Tags:               extractors.CombineColumns(record, models.TagColumns),
		Images:             extractors.CombineColumns(record, models.ImageColumns),
		FormerName:         extractors.SentinelNA,
		VariantName:        extractors.SentinelNA,
		Size:               extractors.FormatSize(record.Get(models.ColAmount), record.Get(models.ColUoM)),
		UnitsInPackage:     admission.UnitsInPackage,
		Price:              extractors.FormatPrice(admission.RawPrice),
		MedicalPrice:       extractors.SentinelNA,
		SKU:                extractors.ShortCodes(barcodes),
		THCPerUnit:         record.Get(models.ColTotalMgTHC),
		CBDPerUnit:         record.Get(models.ColTotalMgCBD),
		InfusedContent:     extractors.SentinelNA,
		StrengthLevel:      extractors.NumericWithUnit(record.Get(models.ColMgPerDose), "mg"),
		SaleType:           "Medical and Recreational",
		Barcode:            extractors.LongCodes(barcodes),
		ECommerceEnabled:   "True",
		SellByWeight:       "False",
	}
}

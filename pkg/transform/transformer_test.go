package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
	"github.com/stellyes/catalog-csv-filtering/pkg/validation"
)

func TestTransform(t *testing.T) {
	record := models.RawRecord{
		models.ColProductID:    " p-100 ",
		models.ColSubtype:      "Cartridge",
		models.ColBrand:        "Acme Farms",
		models.ColDescription:  "A very mellow cart.",
		models.ColFlavors:      "Berry",
		models.ColAmount:       "5.0",
		models.ColUoM:          "MILLIGRAMS",
		models.ColBarcodes:     "ABC, 850126007127, DE12",
		models.ColTotalMgTHC:   "100",
		models.ColTotalMgCBD:   "2",
		models.ColMgPerDose:    "10mg per piece",
		"Attributes - General": "Vegan",
		"Attributes - Effects": "Relaxing",
		"Image1":               "https://cdn.example.com/1.png",
		"Image3":               "https://cdn.example.com/3.png",
	}
	admission := &validation.Admission{
		Name:           "Blue Dream Cart",
		Classification: "Hybrid",
		Category:       "Vapes",
		UnitsInPackage: "1",
		RawPrice:       "34.999",
	}

	got := New().Transform(record, admission)
	require.NotNil(t, got)

	assert.Equal(t, "p-100", got.ExternalID)
	assert.Equal(t, "Blue Dream Cart", got.Name)
	assert.Equal(t, "Cartridge", got.ProductType)
	assert.Equal(t, "Vapes", got.Category)
	assert.Equal(t, "Acme Farms", got.Brand)
	assert.Equal(t, "Hybrid", got.StrainPrevalence)
	assert.Equal(t, "A very mellow cart.", got.ProductDescription)
	assert.Equal(t, "Berry", got.Flavors)
	assert.Equal(t, "Vegan,Relaxing", got.Tags)
	assert.Equal(t, "https://cdn.example.com/1.png,https://cdn.example.com/3.png", got.Images)
	assert.Equal(t, "5 mg", got.Size)
	assert.Equal(t, "1", got.UnitsInPackage)
	assert.Equal(t, "$35.00", got.Price)
	assert.Equal(t, "ABC,DE12", got.SKU)
	assert.Equal(t, "850126007127", got.Barcode)
	assert.Equal(t, "100", got.THCPerUnit)
	assert.Equal(t, "2", got.CBDPerUnit)
	assert.Equal(t, "10mg", got.StrengthLevel)
}

func TestTransformConstants(t *testing.T) {
	got := New().Transform(models.RawRecord{}, &validation.Admission{Name: "X", Category: "Flower"})

	assert.Equal(t, "None", got.Subcategory)
	assert.Equal(t, "Undefined", got.Strain)
	assert.Equal(t, "Bronze", got.QualityLine)
	assert.Equal(t, "None", got.Instructions)
	assert.Equal(t, "N/A", got.Scents)
	assert.Equal(t, "N/A", got.FormerName)
	assert.Equal(t, "N/A", got.VariantName)
	assert.Equal(t, "N/A", got.MedicalPrice)
	assert.Equal(t, "N/A", got.InfusedContent)
	assert.Equal(t, "Medical and Recreational", got.SaleType)
	assert.Equal(t, "True", got.ECommerceEnabled)
	assert.Equal(t, "False", got.SellByWeight)
}

func TestTransformEmptySources(t *testing.T) {
	got := New().Transform(models.RawRecord{}, &validation.Admission{
		Name:           "Bare Item",
		Category:       "Flower",
		UnitsInPackage: "1",
		RawPrice:       "0.01",
	})

	assert.Equal(t, "", got.ExternalID)
	assert.Equal(t, "None", got.Flavors)
	assert.Equal(t, "", got.Tags)
	assert.Equal(t, "", got.Images)
	assert.Equal(t, "", got.Size)
	assert.Equal(t, "$0.01", got.Price)
	assert.Equal(t, "NULL", got.SKU)
	assert.Equal(t, "NULL", got.Barcode)
	assert.Equal(t, "N/A", got.StrengthLevel)
}

func TestTransformValues(t *testing.T) {
	got := New().Transform(models.RawRecord{}, &validation.Admission{Name: "X", Category: "Flower"})

	values := got.Values()
	require.Len(t, values, len(models.OutputColumns))
	assert.Equal(t, "X", values[1])
}

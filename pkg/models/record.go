package models

import "strings"

// Source column names expected (not strictly required) in the export header.
// Missing columns read as empty values, never as errors.
const (
	ColProductID      = "Product ID"
	ColMenuTitle      = "Menu Title"
	ColName           = "Name"
	ColSubtype        = "Subtype"
	ColProductType    = "Product Type"
	ColBrand          = "Brand"
	ColClassification = "Classification"
	ColDescription    = "Description"
	ColFlavors        = "Flavors"
	ColAmount         = "Amount"
	ColUoM            = "UoM"
	ColDoses          = "Doses"
	ColPriceTier      = "Price/Tier"
	ColBarcodes       = "Product Barcodes"
	ColTotalMgTHC     = "Total Mg THC"
	ColTotalMgCBD     = "Total Mg CBD"
	ColMgPerDose      = "Mg Per Dose"
)

// TagColumns are combined, in order, into the output Tags field.
var TagColumns = []string{
	"Attributes - General",
	"Attributes - Effects",
	"Attributes - Ingredients",
	"Attributes - Internal Tags",
}

// ImageColumns are combined, in order, into the output Images field.
var ImageColumns = []string{
	"Image1", "Image2", "Image3", "Image4",
	"Image5", "Image6", "Image7", "Image8",
}

// RawRecord is one source row keyed by (normalized) column name.
// It is read-only once built; absent columns read as empty strings.
type RawRecord map[string]string

// Get returns the raw value for a column, or "" when the column is absent.
func (r RawRecord) Get(name string) string {
	return r[name]
}

// GetTrimmed returns the value for a column with surrounding whitespace removed.
func (r RawRecord) GetTrimmed(name string) string {
	return strings.TrimSpace(r[name])
}

// OutputColumns is the fixed 30-column output schema, in wire order.
var OutputColumns = []string{
	"External ID", "Name", "Product Type", "Category", "Subcategory",
	"Brand", "Strain", "Strain Prevalence", "Quality Line", "Product Description",
	"Instructions", "Attributes - Flavors", "Scents", "Tags", "Images",
	"Former Name", "Variant Name", "Size", "Units in Package", "Price",
	"Medical Price", "SKU", "THC / Unit", "CBD / Unit", "Infused Content",
	"Strength Level", "Sale Type", "Barcode", "E-Commerce Enabled", "Sell By Weight",
}

// CanonicalRecord is the fixed-schema output representation of one product.
// Every field is always populated, possibly with a sentinel value ("N/A",
// "None", "NULL") or an empty string; fields are never absent. Records are
// never partially mutated after construction; the dedup engine replaces a
// record wholesale when a later occurrence supersedes it.
type CanonicalRecord struct {
	ExternalID         string `json:"external_id"`
	Name               string `json:"name"`
	ProductType        string `json:"product_type"`
	Category           string `json:"category"`
	Subcategory        string `json:"subcategory"`
	Brand              string `json:"brand"`
	Strain             string `json:"strain"`
	StrainPrevalence   string `json:"strain_prevalence"`
	QualityLine        string `json:"quality_line"`
	ProductDescription string `json:"product_description"`
	Instructions       string `json:"instructions"`
	Flavors            string `json:"attributes_flavors"`
	Scents             string `json:"scents"`
	Tags               string `json:"tags"`
	Images             string `json:"images"`
	FormerName         string `json:"former_name"`
	VariantName        string `json:"variant_name"`
	Size               string `json:"size"`
	UnitsInPackage     string `json:"units_in_package"`
	Price              string `json:"price"`
	MedicalPrice       string `json:"medical_price"`
	SKU                string `json:"sku"`
	THCPerUnit         string `json:"thc_per_unit"`
	CBDPerUnit         string `json:"cbd_per_unit"`
	InfusedContent     string `json:"infused_content"`
	StrengthLevel      string `json:"strength_level"`
	SaleType           string `json:"sale_type"`
	Barcode            string `json:"barcode"`
	ECommerceEnabled   string `json:"ecommerce_enabled"`
	SellByWeight       string `json:"sell_by_weight"`
}

// Values returns the record's field values in OutputColumns order.
func (r *CanonicalRecord) Values() []string {
	return []string{
		r.ExternalID, r.Name, r.ProductType, r.Category, r.Subcategory,
		r.Brand, r.Strain, r.StrainPrevalence, r.QualityLine, r.ProductDescription,
		r.Instructions, r.Flavors, r.Scents, r.Tags, r.Images,
		r.FormerName, r.VariantName, r.Size, r.UnitsInPackage, r.Price,
		r.MedicalPrice, r.SKU, r.THCPerUnit, r.CBDPerUnit, r.InfusedContent,
		r.StrengthLevel, r.SaleType, r.Barcode, r.ECommerceEnabled, r.SellByWeight,
	}
}

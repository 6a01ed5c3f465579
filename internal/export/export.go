// Package export writes a batch of generated listings to a spreadsheet for
// review before publication.
package export

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"vintedgen/internal"
	"vintedgen/internal/listing"
	"vintedgen/internal/pricing"
)

// Row is one exported listing with its source label (usually the input file
// name) and optional price recommendation.
type Row struct {
	Source  string
	Listing *listing.Listing
	Price   *pricing.Recommendation
}

// WriteXLSX writes one row per listing. Explicit-null fields render as empty
// cells, never as a literal placeholder.
func WriteXLSX(rows []Row, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"source", "sku", "sku_status", "title",
		"type", "brand", "model",
		"size_fr", "size_us", "length", "fit", "rise_type",
		"cotton_pct", "elastane_pct",
		"gender", "color",
		"price", "price_rationale",
		"description",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		fields := row.Listing.Fields()
		set(1, row.Source)
		set(2, derefString(fields.SKU))
		set(3, derefSKUStatus(fields.SKUStatus))
		set(4, row.Listing.Title())
		set(5, derefString(fields.Type))
		set(6, derefString(fields.Brand))
		set(7, derefString(fields.Model))
		set(8, derefString(fields.SizeFR))
		set(9, derefString(fields.SizeUS))
		set(10, derefString(fields.Length))
		set(11, derefString(fields.Fit))
		set(12, derefRise(fields.RiseType))
		set(13, derefFloat(fields.CottonPct))
		set(14, derefFloat(fields.ElastanePct))
		set(15, derefString(fields.Gender))
		set(16, derefString(fields.Color))
		if row.Price != nil {
			set(17, row.Price.Price)
			set(18, row.Price.Rationale)
		}
		set(19, row.Listing.Description())
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefSKUStatus(v *internal.SKUStatus) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func derefRise(v *internal.RiseType) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

package extract

import (
	"context"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/xmlscan/internal/logger"
	"github.com/dbsmedya/xmlscan/internal/types"
	"github.com/dbsmedya/xmlscan/internal/xmltree"
)

// ProductReport is the result of a product scan.
type ProductReport struct {
	// Files maps each successfully processed filename to its records, in
	// document order. Files are kept in scan order.
	Files *orderedmap.OrderedMap[string, []types.Record]
	// Skipped lists the files that contributed nothing, in scan order.
	Skipped []*FileError
}

// ProductExtractor collects <product> and <promotion> records from a directory.
type ProductExtractor struct {
	dir string
	ext string
	log *logger.Logger
}

// NewProductExtractor creates an extractor for the files in dir ending in ext.
func NewProductExtractor(dir, ext string, log *logger.Logger) *ProductExtractor {
	return &ProductExtractor{
		dir: dir,
		ext: ext,
		log: log.WithComponent("products"),
	}
}

// Extract scans the directory and returns the records found per file.
func (e *ProductExtractor) Extract(ctx context.Context) (*ProductReport, error) {
	outcomes, err := scanDir(ctx, e.dir, e.ext, e.log, func(_ string, root *xmltree.Element) ([]types.Record, error) {
		return ExtractRecords(root)
	})
	if err != nil {
		return nil, err
	}

	report := &ProductReport{
		Files: orderedmap.NewOrderedMap[string, []types.Record](),
	}
	for _, o := range outcomes {
		if o.Skipped() {
			report.Skipped = append(report.Skipped, o.Err)
			continue
		}
		report.Files.Set(o.Filename, o.Value)
	}

	e.log.Infow("Product extraction complete",
		"files", report.Files.Len(),
		"skipped", len(report.Skipped),
	)
	return report, nil
}

// ExtractRecords walks the document and returns a record for every <product>
// and <promotion> element, wherever it appears. Nested matches are each
// emitted. A matched element missing any expected child fails the whole
// document with a *MissingFieldError.
func ExtractRecords(root *xmltree.Element) ([]types.Record, error) {
	records := []types.Record{}
	var walkErr error

	root.Walk(func(el *xmltree.Element) bool {
		var (
			rec types.Record
			err error
		)
		switch el.Name() {
		case string(types.KindProduct):
			rec, err = productRecord(el)
		case string(types.KindPromotion):
			rec, err = promotionRecord(el)
		default:
			return true
		}
		if err != nil {
			walkErr = err
			return false
		}
		records = append(records, rec)
		return true
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return records, nil
}

func productRecord(el *xmltree.Element) (types.Record, error) {
	v, err := childTexts(el, types.ProductFields)
	if err != nil {
		return nil, err
	}
	return types.ProductRecord{Name: v[0], Description: v[1], Price: v[2]}, nil
}

func promotionRecord(el *xmltree.Element) (types.Record, error) {
	v, err := childTexts(el, types.PromotionFields)
	if err != nil {
		return nil, err
	}
	return types.PromotionRecord{PromotionName: v[0], StartDate: v[1], EndDate: v[2]}, nil
}

// childTexts returns the text of the first direct child for each tag.
func childTexts(el *xmltree.Element, tags []string) ([]string, error) {
	values := make([]string, len(tags))
	for i, tag := range tags {
		child := el.Find(tag)
		if child == nil {
			return nil, &MissingFieldError{Element: el.Name(), Field: tag, Line: el.Line}
		}
		values[i] = child.Text
	}
	return values, nil
}

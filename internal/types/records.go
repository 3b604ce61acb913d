// Package types contains shared types used across multiple packages to avoid import cycles.
package types

// RecordKind identifies which element a record was extracted from.
type RecordKind string

const (
	KindProduct   RecordKind = "product"
	KindPromotion RecordKind = "promotion"
)

// Field is one named value of a record, in the order it is printed.
type Field struct {
	Name  string
	Value string
}

// Record is a flat row extracted from a <product> or <promotion> element.
// Values are the raw element text; nothing is parsed or validated.
type Record interface {
	Kind() RecordKind
	Fields() []Field
}

// ProductRecord is extracted from a <product> element.
type ProductRecord struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price" yaml:"price"`
}

func (ProductRecord) Kind() RecordKind { return KindProduct }

func (p ProductRecord) Fields() []Field {
	return []Field{
		{Name: "name", Value: p.Name},
		{Name: "description", Value: p.Description},
		{Name: "price", Value: p.Price},
	}
}

// PromotionRecord is extracted from a <promotion> element.
type PromotionRecord struct {
	PromotionName string `json:"promotion_name" yaml:"promotion_name"`
	StartDate     string `json:"start_date" yaml:"start_date"`
	EndDate       string `json:"end_date" yaml:"end_date"`
}

func (PromotionRecord) Kind() RecordKind { return KindPromotion }

func (p PromotionRecord) Fields() []Field {
	return []Field{
		{Name: "promotion_name", Value: p.PromotionName},
		{Name: "start_date", Value: p.StartDate},
		{Name: "end_date", Value: p.EndDate},
	}
}

// ProductFields lists the child elements read from a <product>.
var ProductFields = []string{"name", "description", "price"}

// PromotionFields lists the child elements read from a <promotion>.
var PromotionFields = []string{"promotion_name", "start_date", "end_date"}

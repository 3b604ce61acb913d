package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductRecordFields(t *testing.T) {
	rec := ProductRecord{Name: "Widget", Description: "A widget", Price: "9.99"}

	assert.Equal(t, KindProduct, rec.Kind())
	assert.Equal(t, []Field{
		{Name: "name", Value: "Widget"},
		{Name: "description", Value: "A widget"},
		{Name: "price", Value: "9.99"},
	}, rec.Fields())
}

func TestPromotionRecordFields(t *testing.T) {
	rec := PromotionRecord{PromotionName: "Sale", StartDate: "2024-01-01", EndDate: "2024-01-31"}

	assert.Equal(t, KindPromotion, rec.Kind())
	assert.Equal(t, []Field{
		{Name: "promotion_name", Value: "Sale"},
		{Name: "start_date", Value: "2024-01-01"},
		{Name: "end_date", Value: "2024-01-31"},
	}, rec.Fields())
}

func TestFieldListsMatchRecords(t *testing.T) {
	var names []string
	for _, f := range (ProductRecord{}).Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, ProductFields, names)

	names = nil
	for _, f := range (PromotionRecord{}).Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, PromotionFields, names)
}

func TestProcedureSet(t *testing.T) {
	s := NewProcedureSet("GetUser", "GetUser", "Helper")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("GetUser"))
	assert.False(t, s.Contains("getuser"))
	assert.Equal(t, []string{"GetUser", "Helper"}, s.Sorted())
}

func TestProcedureSetMerge(t *testing.T) {
	all := NewProcedureSet()
	all.Merge(NewProcedureSet("GetUser", "A"))
	all.Merge(NewProcedureSet("GetUser", "B"))

	assert.Equal(t, []string{"A", "B", "GetUser"}, all.Sorted())
}

func TestEmptyProcedureSetSorted(t *testing.T) {
	assert.Equal(t, []string{}, NewProcedureSet().Sorted())
}

package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/dbsmedya/xmlscan/internal/extract"
	"github.com/dbsmedya/xmlscan/internal/types"
)

func (r *Renderer) productText(rep *extract.ProductReport) error {
	fmt.Fprintln(r.w, r.paint(color.Cyan, "Extracted Information:"))
	for el := rep.Files.Front(); el != nil; el = el.Next() {
		fmt.Fprintf(r.w, "%s: %s\n", r.paint(color.Green, el.Key), formatRecords(el.Value))
	}
	r.skippedText(rep.Skipped)
	return nil
}

func (r *Renderer) procedureText(rep *extract.ProcedureReport) error {
	fmt.Fprintln(r.w, r.paint(color.Cyan, "All SQL/Stored Procedure References:"))
	fmt.Fprintln(r.w, formatSet(rep.All))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.paint(color.Cyan, "SQL by File:"))
	for el := rep.Files.Front(); el != nil; el = el.Next() {
		fmt.Fprintf(r.w, "%s: %s\n", r.paint(color.Green, el.Key), formatSet(el.Value))
	}
	r.skippedText(rep.Skipped)
	return nil
}

func (r *Renderer) skippedText(skipped []*extract.FileError) {
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.paint(color.Yellow, fmt.Sprintf("Skipped %d file(s):", len(skipped))))
	for _, s := range skipped {
		fmt.Fprintf(r.w, "  %s [%s] %s\n", r.paint(color.Red, s.Filename), s.Kind, skipDetail(s))
	}
}

func skipDetail(s *extract.FileError) string {
	if s.Line > 0 {
		return fmt.Sprintf("line %d: %s", s.Line, s.Detail)
	}
	return s.Detail
}

// formatRecords renders records as [{name: "Widget", price: "9.99"}, ...].
func formatRecords(records []types.Record) string {
	parts := make([]string, 0, len(records))
	for _, rec := range records {
		fields := rec.Fields()
		kv := make([]string, 0, len(fields))
		for _, f := range fields {
			kv = append(kv, f.Name+": "+strconv.Quote(f.Value))
		}
		parts = append(parts, "{"+strings.Join(kv, ", ")+"}")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatSet renders a set as {A, B} in sorted order.
func formatSet(s types.ProcedureSet) string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}

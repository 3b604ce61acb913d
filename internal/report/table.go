package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/dbsmedya/xmlscan/internal/extract"
)

func (r *Renderer) productTable(rep *extract.ProductReport) error {
	table := r.newTable([]string{"File", "Type", "Name", "Description / Start", "Price / End"})

	for el := rep.Files.Front(); el != nil; el = el.Next() {
		for _, rec := range el.Value {
			row := []string{el.Key, string(rec.Kind())}
			for _, f := range rec.Fields() {
				row = append(row, f.Value)
			}
			table.Append(r.fitRow(row))
		}
	}
	table.Render()

	return r.skippedTable(rep.Skipped)
}

func (r *Renderer) procedureTable(rep *extract.ProcedureReport) error {
	// Invert the per-file sets so each procedure lists where it is used.
	usedIn := map[string][]string{}
	for el := rep.Files.Front(); el != nil; el = el.Next() {
		for name := range el.Value {
			usedIn[name] = append(usedIn[name], el.Key)
		}
	}

	table := r.newTable([]string{"Procedure", "Files", "Referenced In"})
	for _, name := range rep.All.Sorted() {
		files := usedIn[name]
		sort.Strings(files)
		table.Append(r.fitRow([]string{name, strconv.Itoa(len(files)), strings.Join(files, ", ")}))
	}
	table.Render()

	return r.skippedTable(rep.Skipped)
}

func (r *Renderer) skippedTable(skipped []*extract.FileError) error {
	if len(skipped) == 0 {
		return nil
	}

	if _, err := r.w.Write([]byte("\n" + r.paint(color.Yellow, "Skipped files:") + "\n")); err != nil {
		return err
	}
	table := r.newTable([]string{"File", "Kind", "Line", "Detail"})
	for _, s := range skipped {
		line := ""
		if s.Line > 0 {
			line = strconv.Itoa(s.Line)
		}
		table.Append(r.fitRow([]string{s.Filename, string(s.Kind), line, s.Detail}))
	}
	table.Render()
	return nil
}

func (r *Renderer) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// fitRow truncates cells wider than the configured terminal width.
func (r *Renderer) fitRow(row []string) []string {
	if r.maxCellWidth <= 0 {
		return row
	}
	out := make([]string, len(row))
	for i, cell := range row {
		cell = strings.ReplaceAll(cell, "\n", " ")
		out[i] = runewidth.Truncate(cell, r.maxCellWidth, "…")
	}
	return out
}

// Package report renders extraction results for the console.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gookit/color"
	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/xmlscan/internal/config"
	"github.com/dbsmedya/xmlscan/internal/extract"
	"github.com/dbsmedya/xmlscan/internal/types"
)

// Renderer writes reports in the configured output format.
type Renderer struct {
	w            io.Writer
	format       string
	color        bool
	maxCellWidth int
}

// New creates a Renderer writing to w.
func New(w io.Writer, cfg *config.OutputConfig) *Renderer {
	format := cfg.Format
	if format == "" {
		format = "text"
	}
	return &Renderer{
		w:            w,
		format:       format,
		color:        cfg.Color,
		maxCellWidth: cfg.MaxCellWidth,
	}
}

// Products renders a product extraction report.
func (r *Renderer) Products(rep *extract.ProductReport) error {
	switch r.format {
	case "json":
		return r.encodeJSON(productDocument(rep))
	case "yaml":
		return r.encodeYAML(productDocument(rep))
	case "table":
		return r.productTable(rep)
	case "text":
		return r.productText(rep)
	default:
		return fmt.Errorf("unsupported output format %q", r.format)
	}
}

// Procedures renders a stored procedure report.
func (r *Renderer) Procedures(rep *extract.ProcedureReport) error {
	switch r.format {
	case "json":
		return r.encodeJSON(procedureDocument(rep))
	case "yaml":
		return r.encodeYAML(procedureDocument(rep))
	case "table":
		return r.procedureTable(rep)
	case "text":
		return r.procedureText(rep)
	default:
		return fmt.Errorf("unsupported output format %q", r.format)
	}
}

// Machine-readable document shapes shared by json and yaml.

type productDoc struct {
	Files   []productFile `json:"files" yaml:"files"`
	Skipped []skippedFile `json:"skipped" yaml:"skipped"`
}

type productFile struct {
	File    string              `json:"file" yaml:"file"`
	Records []map[string]string `json:"records" yaml:"records"`
}

type procedureDoc struct {
	Procedures []string        `json:"procedures" yaml:"procedures"`
	Files      []procedureFile `json:"files" yaml:"files"`
	Skipped    []skippedFile   `json:"skipped" yaml:"skipped"`
}

type procedureFile struct {
	File       string   `json:"file" yaml:"file"`
	Procedures []string `json:"procedures" yaml:"procedures"`
}

type skippedFile struct {
	File   string `json:"file" yaml:"file"`
	Kind   string `json:"kind" yaml:"kind"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Detail string `json:"detail" yaml:"detail"`
}

func productDocument(rep *extract.ProductReport) productDoc {
	doc := productDoc{
		Files:   []productFile{},
		Skipped: skippedDocument(rep.Skipped),
	}
	for el := rep.Files.Front(); el != nil; el = el.Next() {
		pf := productFile{File: el.Key, Records: []map[string]string{}}
		for _, rec := range el.Value {
			pf.Records = append(pf.Records, recordMap(rec))
		}
		doc.Files = append(doc.Files, pf)
	}
	return doc
}

func procedureDocument(rep *extract.ProcedureReport) procedureDoc {
	doc := procedureDoc{
		Procedures: rep.All.Sorted(),
		Files:      []procedureFile{},
		Skipped:    skippedDocument(rep.Skipped),
	}
	for el := rep.Files.Front(); el != nil; el = el.Next() {
		doc.Files = append(doc.Files, procedureFile{File: el.Key, Procedures: el.Value.Sorted()})
	}
	return doc
}

func skippedDocument(skipped []*extract.FileError) []skippedFile {
	out := make([]skippedFile, 0, len(skipped))
	for _, s := range skipped {
		out = append(out, skippedFile{
			File:   s.Filename,
			Kind:   string(s.Kind),
			Line:   s.Line,
			Detail: s.Detail,
		})
	}
	return out
}

// recordMap flattens a record, tagging it with its kind under "type".
func recordMap(rec types.Record) map[string]string {
	m := map[string]string{"type": string(rec.Kind())}
	for _, f := range rec.Fields() {
		m[f.Name] = f.Value
	}
	return m
}

func (r *Renderer) encodeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) encodeYAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// paint applies c when color output is enabled.
func (r *Renderer) paint(c color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

package extract

import (
	"context"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/xmlscan/internal/logger"
	"github.com/dbsmedya/xmlscan/internal/sqlutil"
	"github.com/dbsmedya/xmlscan/internal/types"
	"github.com/dbsmedya/xmlscan/internal/xmltree"
)

// debugTextLimit bounds how much element text is echoed in debug logs.
const debugTextLimit = 100

// ProcedureReport is the result of a stored procedure scan.
type ProcedureReport struct {
	// All is the union of every file's references.
	All types.ProcedureSet
	// Files maps each successfully parsed filename to the references found in
	// it. Files without references map to an empty set.
	Files *orderedmap.OrderedMap[string, types.ProcedureSet]
	// Skipped lists the files that could not be processed, in scan order.
	Skipped []*FileError
}

// ProcedureFinder collects stored procedure references from element text.
type ProcedureFinder struct {
	dir string
	ext string
	log *logger.Logger
}

// NewProcedureFinder creates a finder for the files in dir ending in ext.
func NewProcedureFinder(dir, ext string, log *logger.Logger) *ProcedureFinder {
	return &ProcedureFinder{
		dir: dir,
		ext: ext,
		log: log.WithComponent("procedures"),
	}
}

// Find scans the directory and returns per-file and global reference sets.
func (f *ProcedureFinder) Find(ctx context.Context) (*ProcedureReport, error) {
	f.log.Debugw("Matching procedure references", "pattern", sqlutil.ProcedurePattern())

	outcomes, err := scanDir(ctx, f.dir, f.ext, f.log, func(name string, root *xmltree.Element) (types.ProcedureSet, error) {
		return findReferences(root, f.log.WithFile(name)), nil
	})
	if err != nil {
		return nil, err
	}

	report := &ProcedureReport{
		All:   types.NewProcedureSet(),
		Files: orderedmap.NewOrderedMap[string, types.ProcedureSet](),
	}
	for _, o := range outcomes {
		if o.Skipped() {
			report.Skipped = append(report.Skipped, o.Err)
			continue
		}
		report.Files.Set(o.Filename, o.Value)
		report.All.Merge(o.Value)
	}

	f.log.Infow("Procedure scan complete",
		"files", report.Files.Len(),
		"procedures", report.All.Len(),
		"skipped", len(report.Skipped),
	)
	return report, nil
}

// FindReferences returns the stored procedure names referenced in the direct
// text of any element of the document.
func FindReferences(root *xmltree.Element) types.ProcedureSet {
	return findReferences(root, logger.NewNop())
}

func findReferences(root *xmltree.Element, log *logger.Logger) types.ProcedureSet {
	found := types.NewProcedureSet()

	root.Walk(func(el *xmltree.Element) bool {
		if el.Text == "" {
			return true
		}

		log.Debugw("Checking text", "element", el.Name(), "text", truncate(el.Text, debugTextLimit))

		names := sqlutil.FindProcedureReferences(el.Text)
		if len(names) > 0 {
			log.Debugw("Found procedures", "element", el.Name(), "procedures", names)
		}
		for _, n := range names {
			found.Add(n)
		}
		return true
	})

	return found
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

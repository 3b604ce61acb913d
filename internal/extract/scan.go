// Package extract scans a directory of XML files and pulls product and
// promotion records or stored procedure references out of them.
//
// Files are processed one at a time in directory order. A file that cannot
// be read, parsed or fully extracted is skipped and reported; it never
// aborts the rest of the scan.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dbsmedya/xmlscan/internal/logger"
	"github.com/dbsmedya/xmlscan/internal/xmltree"
)

// DefaultExtension is the filename suffix scanned when none is configured.
const DefaultExtension = ".xml"

// Outcome is the per-file result of a scan: either a value or the reason the
// file was skipped.
type Outcome[T any] struct {
	Filename string
	Value    T
	Err      *FileError
}

// Skipped reports whether the file produced no value.
func (o Outcome[T]) Skipped() bool {
	return o.Err != nil
}

// ListFiles returns the names of the top-level entries of dir whose name ends
// with ext. The comparison is case-sensitive and subdirectories are not
// descended into. Names come back in the order os.ReadDir yields them.
func ListFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ext) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// scanDir parses every matching file in dir and applies fn to its root
// element. Failures are isolated per file. Only a listing failure or ctx
// cancellation returns an error.
func scanDir[T any](ctx context.Context, dir, ext string, log *logger.Logger, fn func(name string, root *xmltree.Element) (T, error)) ([]Outcome[T], error) {
	if ext == "" {
		ext = DefaultExtension
	}

	names, err := ListFiles(dir, ext)
	if err != nil {
		return nil, err
	}

	log.Infow("Scanning directory", "dir", dir, "extension", ext, "files", len(names))

	outcomes := make([]Outcome[T], 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan cancelled: %w", err)
		}

		path := filepath.Join(dir, name)
		fileLog := log.WithFile(path)

		value, err := processFile(path, name, fn)
		if err != nil {
			fe := classify(name, path, err)
			if fe.Kind == KindParse {
				fileLog.Warnw("Error parsing file", "line", fe.Line, "error", fe.Detail)
			} else {
				fileLog.Warnw("Unexpected error processing file", "kind", fe.Kind, "error", fe.Detail)
			}
			outcomes = append(outcomes, Outcome[T]{Filename: name, Err: fe})
			continue
		}

		fileLog.Debug("File processed")
		outcomes = append(outcomes, Outcome[T]{Filename: name, Value: value})
	}

	return outcomes, nil
}

func processFile[T any](path, name string, fn func(string, *xmltree.Element) (T, error)) (T, error) {
	var zero T

	root, err := xmltree.ParseFile(path)
	if err != nil {
		return zero, err
	}

	return fn(name, root)
}

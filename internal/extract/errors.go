package extract

import (
	"errors"
	"fmt"

	"github.com/dbsmedya/xmlscan/internal/xmltree"
)

// ErrorKind classifies why a file was skipped.
type ErrorKind string

const (
	// KindParse means the file is not well-formed XML.
	KindParse ErrorKind = "parse"
	// KindMissingField means a <product> or <promotion> lacks a required child.
	KindMissingField ErrorKind = "missing_field"
	// KindRead covers I/O and character set failures.
	KindRead ErrorKind = "read"
)

// FileError records a file that was skipped and why.
type FileError struct {
	Filename string    // entry name within the scanned directory
	Path     string    // full path
	Kind     ErrorKind // parse, missing_field, read
	Line     int       // 0 if unknown
	Detail   string
	Err      error
}

func (e *FileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.Path, e.Line, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Detail)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a matched element has no child with the
// expected tag. No partial record is produced.
type MissingFieldError struct {
	Element string // product or promotion
	Field   string
	Line    int // line of the parent element
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("<%s> on line %d has no <%s> element", e.Element, e.Line, e.Field)
}

// classify wraps err as a FileError for the named file.
func classify(filename, path string, err error) *FileError {
	fe := &FileError{
		Filename: filename,
		Path:     path,
		Kind:     KindRead,
		Detail:   err.Error(),
		Err:      err,
	}

	if se, ok := xmltree.AsSyntaxError(err); ok {
		fe.Kind = KindParse
		fe.Line = se.Line
		fe.Detail = se.Msg
		return fe
	}

	var mf *MissingFieldError
	if errors.As(err, &mf) {
		fe.Kind = KindMissingField
		fe.Line = mf.Line
	}
	return fe
}

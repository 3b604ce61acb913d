// Package xmltree builds a small in-memory element tree from an XML document.
//
// The tree keeps only what the extractors read: element names, the text that
// directly follows each opening tag, and child order. Comments, processing
// instructions and text after a child's end tag are dropped. General entities
// declared in an internal DOCTYPE subset are expanded.
package xmltree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Element is a single node in the tree.
type Element struct {
	Space    string // resolved namespace URI, empty when unqualified
	Local    string
	Text     string // character data before the first child element
	Children []*Element
	Line     int

	ns []string // namespace URIs declared on this element
}

// Name returns the element tag, in {uri}local form when namespaced.
func (e *Element) Name() string {
	if e.Space == "" {
		return e.Local
	}
	return "{" + e.Space + "}" + e.Local
}

// Find returns the first direct child whose Name equals tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Name() == tag {
			return c
		}
	}
	return nil
}

// Walk visits e and all its descendants in document order (depth-first,
// pre-order). Returning false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// SyntaxError reports malformed XML with the line it was detected on.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("XML syntax error on line %d: %s", e.Line, e.Msg)
	}
	return "XML syntax error: " + e.Msg
}

// AsSyntaxError returns the SyntaxError in err's chain, if there is one.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// newDecoder returns a strict decoder for r. A leading byte order mark
// decides the encoding and overrides any encoding in the XML declaration;
// without one the declaration is honoured through x/net/html/charset.
func newDecoder(r io.Reader) *xml.Decoder {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(utf8BOM))

	if bytes.HasPrefix(head, utf8BOM) || bytes.HasPrefix(head, utf16LEBOM) || bytes.HasPrefix(head, utf16BEBOM) {
		dec := xml.NewDecoder(transform.NewReader(br, unicode.BOMOverride(transform.Nop)))
		dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) {
			return in, nil
		}
		return dec
	}

	dec := xml.NewDecoder(br)
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

// Parse reads a complete XML document from r and returns its root element.
// Exactly one root element is required.
func Parse(r io.Reader) (*Element, error) {
	dec := newDecoder(r)

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapDecodeError(err, dec)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			if root != nil && len(stack) == 0 {
				return nil, &SyntaxError{Line: line, Msg: "junk after document element"}
			}

			el := &Element{
				Space: t.Name.Space,
				Local: t.Name.Local,
				Line:  line,
				ns:    declaredNamespaces(t.Attr),
			}
			stack = append(stack, el)
			if msg := checkNames(t, stack); msg != "" {
				return nil, &SyntaxError{Line: line, Msg: msg}
			}

			if root == nil {
				root = el
			} else {
				parent := stack[len(stack)-2]
				parent.Children = append(parent.Children, el)
			}

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.Directive:
			if root == nil {
				declareEntities(dec, t)
			}

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(bytes.TrimPrefix(t, utf8BOM))) > 0 {
					line, _ := dec.InputPos()
					return nil, &SyntaxError{Line: line, Msg: "text outside document element"}
				}
				continue
			}
			cur := stack[len(stack)-1]
			if len(cur.Children) == 0 {
				cur.Text += string(t)
			}
		}
	}

	if len(stack) > 0 {
		line, _ := dec.InputPos()
		return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("element <%s> not closed", stack[len(stack)-1].Local)}
	}
	if root == nil {
		return nil, &SyntaxError{Msg: "no element found"}
	}

	return root, nil
}

func declaredNamespaces(attrs []xml.Attr) []string {
	var uris []string
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			uris = append(uris, a.Value)
		}
	}
	return uris
}

// checkNames rejects duplicate attributes and prefixes with no namespace
// declaration in scope. stack ends with the element being checked.
// encoding/xml leaves an unbound prefix in Name.Space untranslated, so any
// Space that is not a URI declared on the stack came from one.
func checkNames(t xml.StartElement, stack []*Element) string {
	bound := func(space string) bool {
		if space == "" || space == xmlNamespace {
			return true
		}
		for _, el := range stack {
			for _, uri := range el.ns {
				if uri == space {
					return true
				}
			}
		}
		return false
	}

	if !bound(t.Name.Space) {
		return "unbound prefix"
	}

	seen := make(map[xml.Name]struct{}, len(t.Attr))
	for _, a := range t.Attr {
		if _, dup := seen[a.Name]; dup {
			return "duplicate attribute"
		}
		seen[a.Name] = struct{}{}

		if a.Name.Space != "xmlns" && !bound(a.Name.Space) {
			return "unbound prefix"
		}
	}
	return ""
}

// entityDecl matches internal general entities: <!ENTITY name "value">.
// Parameter and external entities are not matched.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"'>]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// declareEntities registers the internal subset's general entities with dec.
// Replacement text is used literally; markup inside it is not parsed.
func declareEntities(dec *xml.Decoder, d xml.Directive) {
	if !bytes.HasPrefix(d, []byte("DOCTYPE")) {
		return
	}
	for _, m := range entityDecl.FindAllSubmatch(d, -1) {
		if dec.Entity == nil {
			dec.Entity = make(map[string]string)
		}
		name := string(m[1])
		if _, ok := dec.Entity[name]; ok {
			continue // first declaration wins
		}
		if m[2] != nil {
			dec.Entity[name] = string(m[2])
		} else {
			dec.Entity[name] = string(m[3])
		}
	}
}

// wrapDecodeError converts encoding/xml errors to SyntaxError so callers can
// tell malformed documents apart from I/O and charset failures.
func wrapDecodeError(err error, dec *xml.Decoder) error {
	var xe *xml.SyntaxError
	if errors.As(err, &xe) {
		return &SyntaxError{Line: xe.Line, Msg: xe.Msg}
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		line, _ := dec.InputPos()
		return &SyntaxError{Line: line, Msg: "unexpected EOF"}
	}
	return err
}

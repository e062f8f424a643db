// Package fragment builds HTML fragments as typed values.
//
// Lesson handlers describe their output as a Node tree instead of
// string-formatted HTML. One serializer turns the tree into a
// templ.Component with a fixed attribute order and escaped text, so
// rendering is deterministic (identical tree, byte-identical output) and
// the stable data-testid convention lives in a single place.
package fragment

import (
	"context"
	"html"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one additional HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is a buildable HTML element.
//
// Serialized attribute order is fixed: id, data-testid, class, extra attrs
// sorted by name, hx-swap-oob last. Text renders before Children. Text and
// attribute values are HTML-escaped; state-derived strings never reach the
// client raw.
type Node struct {
	Tag      string // defaults to "div"
	ID       string
	TestID   string
	Class    string
	Text     string
	Attrs    []Attr
	Children []Node
	// SwapOOB marks the node as an out-of-band fragment targeted at a
	// different DOM location than the primary response target.
	SwapOOB bool
}

func (n Node) tag() string {
	if strings.TrimSpace(n.Tag) == "" {
		return "div"
	}
	return n.Tag
}

func writeAttr(w io.Writer, name, value string) error {
	_, err := io.WriteString(w, " "+name+`="`+html.EscapeString(value)+`"`)
	return err
}

func (n Node) write(w io.Writer) error {
	tag := n.tag()
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if n.ID != "" {
		if err := writeAttr(w, "id", n.ID); err != nil {
			return err
		}
	}
	if n.TestID != "" {
		if err := writeAttr(w, "data-testid", n.TestID); err != nil {
			return err
		}
	}
	if n.Class != "" {
		if err := writeAttr(w, "class", n.Class); err != nil {
			return err
		}
	}
	extra := make([]Attr, len(n.Attrs))
	copy(extra, n.Attrs)
	sort.Slice(extra, func(i, j int) bool { return extra[i].Name < extra[j].Name })
	for _, attr := range extra {
		if err := writeAttr(w, attr.Name, attr.Value); err != nil {
			return err
		}
	}
	if n.SwapOOB {
		if err := writeAttr(w, "hx-swap-oob", "true"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if n.Text != "" {
		if _, err := io.WriteString(w, html.EscapeString(n.Text)); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := child.write(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// Component returns the node as a renderable templ component.
func (n Node) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.write(w)
	})
}

// Group concatenates nodes into one component, for responses that carry a
// primary fragment plus out-of-band fragments.
func Group(nodes ...Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for _, node := range nodes {
			if err := node.write(w); err != nil {
				return err
			}
		}
		return nil
	})
}

// String renders the node to HTML, for tests and fixed fixtures.
func (n Node) String() string {
	var b strings.Builder
	_ = n.write(&b)
	return b.String()
}

// Write renders component to w with the given status and an HTML content
// type. Rendering happens into a buffer first so a render failure cannot
// leave a half-written body.
func Write(w http.ResponseWriter, status int, component templ.Component) error {
	var body strings.Builder
	if component != nil {
		if err := component.Render(context.Background(), &body); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, body.String())
	return err
}

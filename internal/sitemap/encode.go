package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/romangod6/sitemap-gen/internal/models"
)

// Encode writes the XML declaration followed by the tree rooted at root,
// indented by two spaces. Elements without children are self-closing.
func Encode(w io.Writer, root Node) error {
	p := &printer{w: w}
	p.write(xml.Header)
	p.node(root, 0)
	return p.err
}

// printer stops writing after the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) escape(s string) {
	if p.err != nil {
		return
	}
	p.err = xml.EscapeText(p.w, []byte(s))
}

func (p *printer) node(n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case Text:
		p.write(indent)
		p.escape(n.Value)
		p.write("\n")
	case *Element:
		p.write(indent + "<" + n.Name)
		for _, a := range n.Attrs {
			p.write(" " + a.Name + `="`)
			p.escape(a.Value)
			p.write(`"`)
		}

		if len(n.Children) == 0 {
			p.write("/>\n")
			return
		}
		if text, ok := n.Children[0].(Text); ok && len(n.Children) == 1 {
			p.write(">")
			p.escape(text.Value)
			p.write("</" + n.Name + ">\n")
			return
		}

		p.write(">\n")
		for _, child := range n.Children {
			p.node(child, depth+1)
		}
		p.write(indent + "</" + n.Name + ">\n")
	}
}

// WriteFile renders root and writes it to path, replacing any existing file.
func WriteFile(path string, root Node) error {
	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}
	return nil
}

// Parse decodes a sitemap document.
func Parse(r io.Reader) (*models.Sitemap, error) {
	var sm models.Sitemap
	if err := xml.NewDecoder(r).Decode(&sm); err != nil {
		return nil, fmt.Errorf("failed to parse sitemap: %w", err)
	}
	return &sm, nil
}

// ParseFile decodes the sitemap stored at path.
func ParseFile(path string) (*models.Sitemap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

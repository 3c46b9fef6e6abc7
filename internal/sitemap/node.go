package sitemap

// Node is either an *Element or a Text.
type Node interface {
	node()
}

// Attr is a single attribute. Attributes are kept in insertion order.
type Attr struct {
	Name  string
	Value string
}

// Element is a named XML element. Name may carry a namespace prefix
// ("xhtml:link") which is written verbatim.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// Text is character data inside an element.
type Text struct {
	Value string
}

func (*Element) node() {}
func (Text) node()     {}

// NewElement creates an element with the given attributes.
func NewElement(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// TextElement creates <name>value</name>.
func TextElement(name, value string) *Element {
	return &Element{Name: name, Children: []Node{Text{Value: value}}}
}

// Append adds children in order.
func (e *Element) Append(children ...Node) {
	e.Children = append(e.Children, children...)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

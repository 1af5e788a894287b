package parallax

import "math"

// Page is an in-memory document: a scrollable window over a set of boxes laid
// out in document space. It implements ScrollWindow, and its boxes implement
// Element, so hosts without a browser (games, tests, headless runs) can drive
// the engines.
type Page struct {
	scrollY       float64
	width, height float64
	boxes         []*Box
	root          *Box
}

// NewPage creates an empty page with the given inner size.
func NewPage(width, height float64) *Page {
	p := &Page{width: width, height: height}
	p.root = &Box{Name: "html", page: p, attached: true, styles: map[string]string{}}
	return p
}

// Root returns the document element.
func (p *Page) Root() *Box {
	return p.root
}

// ScrollY implements Window.
func (p *Page) ScrollY() float64 {
	return p.scrollY
}

// SetScrollY implements ScrollWindow. The offset is clamped to the
// scrollable range.
func (p *Page) SetScrollY(y float64) {
	p.scrollY = math.Max(0, math.Min(y, p.MaxScroll()))
}

// ScrollBy scrolls by dy, clamped like SetScrollY.
func (p *Page) ScrollBy(dy float64) {
	p.SetScrollY(p.scrollY + dy)
}

// InnerSize implements Window.
func (p *Page) InnerSize() (width, height float64) {
	return p.width, p.height
}

// Resize changes the inner size and re-clamps the scroll offset.
func (p *Page) Resize(width, height float64) {
	p.width, p.height = width, height
	p.SetScrollY(p.scrollY)
}

// ContentHeight returns the bottom edge of the lowest attached box.
func (p *Page) ContentHeight() float64 {
	var h float64
	for _, b := range p.boxes {
		if b.attached && b.Layout.Bottom > h {
			h = b.Layout.Bottom
		}
	}
	return h
}

// MaxScroll returns the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	return math.Max(0, p.ContentHeight()-p.height)
}

// NewBox appends an attached box with the given document-space layout.
func (p *Page) NewBox(name string, x, y, width, height float64) *Box {
	b := &Box{
		Name:     name,
		Layout:   NewRect(x, y, width, height),
		page:     p,
		attached: true,
		styles:   map[string]string{},
	}
	p.boxes = append(p.boxes, b)
	return b
}

// Boxes returns the page's boxes. The returned slice MUST NOT be mutated.
func (p *Page) Boxes() []*Box {
	return p.boxes
}

// Box finds a box by name.
func (p *Page) Box(name string) (*Box, bool) {
	for _, b := range p.boxes {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// Elements returns the boxes as Elements, for AddAll.
func (p *Page) Elements() []Element {
	els := make([]Element, len(p.boxes))
	for i, b := range p.boxes {
		els[i] = b
	}
	return els
}

// Box is a rectangle on a Page.
type Box struct {
	Name string
	// Layout is the document-space position before transforms.
	Layout Rect

	page     *Page
	attached bool
	styles   map[string]string
	classes  []string
	reads    int
}

// BoundingClientRect implements Element: the layout rectangle, moved by the
// box's translation and into viewport space. Detached boxes report a zero
// rectangle.
func (b *Box) BoundingClientRect() Rect {
	b.reads++
	if !b.attached {
		return Rect{}
	}
	t := ParseTranslate(b.styles[styleTransform])
	return b.Layout.Translate(t.X, t.Y-b.page.scrollY)
}

// Style implements Element.
func (b *Box) Style(property string) string {
	return b.styles[property]
}

// SetStyle implements Element.
func (b *Box) SetStyle(property, value string) {
	b.styles[property] = value
}

// RemoveStyle implements Element.
func (b *Box) RemoveStyle(property string) {
	delete(b.styles, property)
}

// AddClass implements Element.
func (b *Box) AddClass(name string) {
	if !b.HasClass(name) {
		b.classes = append(b.classes, name)
	}
}

// RemoveClass implements Element.
func (b *Box) RemoveClass(name string) {
	for i, c := range b.classes {
		if c == name {
			b.classes = append(b.classes[:i], b.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the class is set.
func (b *Box) HasClass(name string) bool {
	for _, c := range b.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the box's classes.
func (b *Box) Classes() []string {
	return append([]string(nil), b.classes...)
}

// Translation returns the translation currently set by the transform style.
func (b *Box) Translation() Vec2 {
	return ParseTranslate(b.styles[styleTransform])
}

// Detach removes the box from the document. It keeps its styles and classes.
func (b *Box) Detach() {
	b.attached = false
}

// Attach puts a detached box back.
func (b *Box) Attach() {
	b.attached = true
}

// Attached reports whether the box is in the document.
func (b *Box) Attached() bool {
	return b.attached
}

// Reads returns how many times the box's geometry was read.
func (b *Box) Reads() int {
	return b.reads
}

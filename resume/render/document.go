package render

// BlockKind identifies the role of a block in the rendered document tree.
type BlockKind int

const (
	// KindName is the resume owner's name heading.
	KindName BlockKind = iota
	// KindContact is the single contact line under the name.
	KindContact
	// KindSectionHeading starts a section.
	KindSectionHeading
	// KindParagraph is a run of body text.
	KindParagraph
	// KindEntryHeader is the title line of a work/project/education entry.
	KindEntryHeader
	// KindList is a bullet list.
	KindList
)

// Block is one node of the rendered layout. Text carries the primary text,
// Meta the right-aligned complement (dates, tech stack), Items the bullets.
type Block struct {
	Kind  BlockKind
	Text  string
	Meta  string
	Items []string
}

// Document is the layout produced by a Renderer: a flat ordered block list.
type Document struct {
	Template string
	Blocks   []Block
}

func (d *Document) add(b Block) {
	d.Blocks = append(d.Blocks, b)
}

func (d *Document) name(text string) {
	d.add(Block{Kind: KindName, Text: text})
}

func (d *Document) contact(text string) {
	if text == "" {
		return
	}
	d.add(Block{Kind: KindContact, Text: text})
}

func (d *Document) heading(text string) {
	d.add(Block{Kind: KindSectionHeading, Text: text})
}

func (d *Document) paragraph(text string) {
	if text == "" {
		return
	}
	d.add(Block{Kind: KindParagraph, Text: text})
}

func (d *Document) entry(text, meta string) {
	d.add(Block{Kind: KindEntryHeader, Text: text, Meta: meta})
}

func (d *Document) list(items []string) {
	if len(items) == 0 {
		return
	}
	d.add(Block{Kind: KindList, Items: items})
}

// SectionHeadings returns every section heading in document order.
func (d *Document) SectionHeadings() []string {
	var out []string
	for _, b := range d.Blocks {
		if b.Kind == KindSectionHeading {
			out = append(out, b.Text)
		}
	}
	return out
}

// PlainText flattens every text-bearing block, one line per block or bullet.
func (d *Document) PlainText() []string {
	var out []string
	for _, b := range d.Blocks {
		if b.Text != "" {
			out = append(out, b.Text)
		}
		if b.Meta != "" {
			out = append(out, b.Meta)
		}
		out = append(out, b.Items...)
	}
	return out
}

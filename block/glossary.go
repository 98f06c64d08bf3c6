package block

import "sort"

// KindGlossary is the kind tag of GlossaryBlock
const KindGlossary = "glossary"

var glossarySchema = NewPayloadSchema(objectSchema([]string{"terms"}, map[string]any{
	"title": stringProp(),
	"terms": arrayOf(objectSchema([]string{"term", "definition"}, map[string]any{
		"term":       stringProp(),
		"definition": stringProp(),
	})),
}))

// GlossaryTerm is one entry of a glossary
type GlossaryTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// GlossaryFields are the inputs of NewGlossaryBlock
type GlossaryFields struct {
	Title string
	Terms []GlossaryTerm
}

// GlossaryBlock holds a list of terms and their definitions
type GlossaryBlock struct {
	*Base
}

// GlossaryDescriptor registers GlossaryBlock
var GlossaryDescriptor = NewDescriptor(KindGlossary, glossarySchema, decodeGlossary)

// NewGlossaryBlock creates a glossary block
func NewGlossaryBlock(f GlossaryFields, opts ...Option) (*GlossaryBlock, error) {
	terms := make([]any, len(f.Terms))
	for i, t := range f.Terms {
		terms[i] = map[string]any{"term": t.Term, "definition": t.Definition}
	}
	payload := map[string]any{"terms": terms}
	putOptional(payload, "title", f.Title)

	base, err := New(KindGlossary, payload, opts...)
	if err != nil {
		return nil, err
	}
	if err := glossarySchema.Validate(KindGlossary, base.payload); err != nil {
		return nil, err
	}
	return &GlossaryBlock{Base: base}, nil
}

func decodeGlossary(rec Record) (*GlossaryBlock, error) {
	base, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &GlossaryBlock{Base: base}, nil
}

// Title returns the glossary heading
func (b *GlossaryBlock) Title() string { return stringField(b.payload, "title", "") }

// Terms returns the entries in their stored order
func (b *GlossaryBlock) Terms() []GlossaryTerm {
	items := objectSliceField(b.payload, "terms")
	out := make([]GlossaryTerm, 0, len(items))
	for _, item := range items {
		out = append(out, GlossaryTerm{
			Term:       stringField(item, "term", ""),
			Definition: stringField(item, "definition", ""),
		})
	}
	return out
}

// Term looks up the definition of term. The first matching entry wins.
func (b *GlossaryBlock) Term(term string) (string, bool) {
	for _, t := range b.Terms() {
		if t.Term == term {
			return t.Definition, true
		}
	}
	return "", false
}

// TermNames returns the distinct term names, sorted
func (b *GlossaryBlock) TermNames() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, t := range b.Terms() {
		if !seen[t.Term] {
			seen[t.Term] = true
			names = append(names, t.Term)
		}
	}
	sort.Strings(names)
	return names
}

// UpdateMeta returns a copy of the block carrying meta
func (b *GlossaryBlock) UpdateMeta(meta Meta) *GlossaryBlock {
	return &GlossaryBlock{Base: b.withMeta(meta)}
}

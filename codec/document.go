package codec

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/blocklist"
)

// blockDocument builds the wire document of b. Identifiers and timestamps keep their
// native types; plain stringifies them for formats without text marshalers.
func blockDocument(b block.Block) map[string]any {
	meta := b.Meta()
	return map[string]any{
		"id":   b.ID(),
		"kind": b.Kind(),
		"meta": map[string]any{
			"created_at":  meta.CreatedAt(),
			"updated_at":  meta.UpdatedAt(),
			"is_favorite": meta.IsFavorite(),
			"tags":        meta.Tags(),
			"extra":       meta.Extra(),
		},
		"payload": b.Payload(),
	}
}

func listDocument(blocks []block.Block) map[string]any {
	docs := make([]any, len(blocks))
	for i, b := range blocks {
		docs[i] = blockDocument(b)
	}
	return map[string]any{"blocks": docs}
}

// plain returns v with every uuid.UUID and time.Time replaced by its string form
func plain(v any) any {
	switch val := v.(type) {
	case uuid.UUID:
		return val.String()
	case time.Time:
		return val.UTC().Format(block.TimeLayout)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plain(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out
	}
	return v
}

func (c *Codec) blockFromDocument(doc any, format Format) (block.Block, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, NewInvalidDocumentError(format, fmt.Sprintf("block must be an object, got %s", describe(doc)))
	}

	rec, err := recordFromDocument(m, format)
	if err != nil {
		return nil, err
	}
	b, err := c.reg.Build(rec)
	if err != nil {
		return nil, NewDecodeError(format, err)
	}
	return b, nil
}

func (c *Codec) listFromDocument(doc any, format Format) (*blocklist.List, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, NewInvalidDocumentError(format, fmt.Sprintf("block list must be an object, got %s", describe(doc)))
	}
	raw, ok := m["blocks"]
	if !ok {
		return nil, NewInvalidDocumentError(format, "block list has no 'blocks' field")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, NewInvalidDocumentError(format, fmt.Sprintf("'blocks' must be an array, got %s", describe(raw)))
	}

	blocks := make([]block.Block, 0, len(items))
	for i, item := range items {
		b, err := c.blockFromDocument(item, format)
		if err != nil {
			if se, ok := err.(*SerializationError); ok {
				se.Message = fmt.Sprintf("blocks[%d]: %s", i, se.Message)
			}
			return nil, err
		}
		blocks = append(blocks, b)
	}

	l, err := blocklist.New(blocks...)
	if err != nil {
		return nil, NewDecodeError(format, err)
	}
	return l, nil
}

func recordFromDocument(m map[string]any, format Format) (block.Record, error) {
	rawKind, ok := m["kind"]
	if !ok {
		return block.Record{}, NewInvalidDocumentError(format, "block has no 'kind' field")
	}
	kind, ok := rawKind.(string)
	if !ok {
		return block.Record{}, NewInvalidDocumentError(format, fmt.Sprintf("'kind' must be a string, got %s", describe(rawKind)))
	}

	rec := block.Record{Kind: kind}

	// A present id must parse; only an absent key yields a generated one
	if rawID, ok := m["id"]; ok {
		id, ok := rawID.(string)
		if !ok {
			return block.Record{}, NewDecodeError(format, block.NewInvalidIDError(fmt.Sprint(rawID), errors.New("expected a string")))
		}
		if id == "" {
			return block.Record{}, NewDecodeError(format, block.NewInvalidIDError(id, errors.New("empty identifier")))
		}
		rec.ID = id
	}

	if rawMeta, ok := m["meta"]; ok && rawMeta != nil {
		meta, err := metaFromDocument(rawMeta)
		if err != nil {
			return block.Record{}, NewDecodeError(format, err)
		}
		rec.Meta = &meta
	}

	if rawPayload, ok := m["payload"]; ok && rawPayload != nil {
		payload, ok := rawPayload.(map[string]any)
		if !ok {
			return block.Record{}, NewInvalidDocumentError(format, fmt.Sprintf("'payload' must be an object, got %s", describe(rawPayload)))
		}
		rec.Payload = payload
	}
	return rec, nil
}

func metaFromDocument(raw any) (block.Meta, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return block.Meta{}, block.NewInvalidMetaError("", raw, "meta must be an object")
	}

	var fields block.MetaFields
	var err error
	if fields.CreatedAt, err = timeField(m, "created_at"); err != nil {
		return block.Meta{}, err
	}
	if fields.UpdatedAt, err = timeField(m, "updated_at"); err != nil {
		return block.Meta{}, err
	}

	if v, ok := m["is_favorite"]; ok && v != nil {
		fav, ok := v.(bool)
		if !ok {
			return block.Meta{}, block.NewInvalidMetaError("is_favorite", v, "expected a boolean")
		}
		fields.IsFavorite = fav
	}

	if v, ok := m["tags"]; ok && v != nil {
		items, ok := v.([]any)
		if !ok {
			return block.Meta{}, block.NewInvalidMetaError("tags", v, "expected a list of strings")
		}
		fields.Tags = make([]string, 0, len(items))
		for _, item := range items {
			tag, ok := item.(string)
			if !ok {
				return block.Meta{}, block.NewInvalidMetaError("tags", v, "expected a list of strings")
			}
			fields.Tags = append(fields.Tags, tag)
		}
	}

	if v, ok := m["extra"]; ok && v != nil {
		extra, ok := v.(map[string]any)
		if !ok {
			return block.Meta{}, block.NewInvalidMetaError("extra", v, "expected an object")
		}
		fields.Extra = extra
	}

	return block.NewMeta(fields)
}

// Accepted timestamp layouts, tried in order. Layouts without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func timeField(m map[string]any, key string) (time.Time, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return time.Time{}, nil
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, block.NewInvalidMetaError(key, v, "expected an ISO-8601 timestamp")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, block.NewInvalidMetaError(key, v, "expected an ISO-8601 timestamp")
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

package block

import (
	"reflect"
	"slices"
	"time"
)

// MetaFields is the mutable input used to build a Meta
type MetaFields struct {
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsFavorite bool
	Tags       []string
	Extra      map[string]any
}

// Meta carries the bookkeeping shared by every block kind.
// A Meta is immutable: every derivation method returns a new value.
type Meta struct {
	createdAt  time.Time
	updatedAt  time.Time
	isFavorite bool
	tags       []string
	extra      map[string]any
}

// NewMeta validates f and builds a Meta.
// A zero CreatedAt defaults to now, a zero UpdatedAt defaults to CreatedAt.
func NewMeta(f MetaFields) (Meta, error) {
	extra, err := normalizeMap("extra", f.Extra)
	if err != nil {
		return Meta{}, err
	}

	created := f.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	updated := f.UpdatedAt
	if updated.IsZero() {
		updated = created
	}

	tags := make([]string, len(f.Tags))
	copy(tags, f.Tags)

	return Meta{
		createdAt:  canonicalTime(created),
		updatedAt:  canonicalTime(updated),
		isFavorite: f.IsFavorite,
		tags:       tags,
		extra:      extra,
	}, nil
}

// DefaultMeta returns a Meta stamped with the current time and no tags or extras
func DefaultMeta() Meta {
	now := canonicalTime(time.Now())
	return Meta{
		createdAt: now,
		updatedAt: now,
		tags:      []string{},
		extra:     map[string]any{},
	}
}

// canonicalTime drops the monotonic reading and location so equal instants compare equal
func canonicalTime(t time.Time) time.Time {
	return t.UTC().Round(0)
}

// CreatedAt returns the creation timestamp
func (m Meta) CreatedAt() time.Time { return m.createdAt }

// UpdatedAt returns the last update timestamp
func (m Meta) UpdatedAt() time.Time { return m.updatedAt }

// IsFavorite reports whether the block is marked as a favorite
func (m Meta) IsFavorite() bool { return m.isFavorite }

// Tags returns a copy of the tags in insertion order
func (m Meta) Tags() []string {
	out := make([]string, len(m.tags))
	copy(out, m.tags)
	return out
}

// Extra returns a deep copy of the free-form attributes
func (m Meta) Extra() map[string]any {
	return copyMap(m.extra)
}

// ExtraValue returns a single extra attribute
func (m Meta) ExtraValue(key string) (any, bool) {
	v, ok := m.extra[key]
	return copyValue(v), ok
}

// Fields returns a copy of the meta as mutable input for NewMeta
func (m Meta) Fields() MetaFields {
	return MetaFields{
		CreatedAt:  m.createdAt,
		UpdatedAt:  m.updatedAt,
		IsFavorite: m.isFavorite,
		Tags:       m.Tags(),
		Extra:      m.Extra(),
	}
}

// Equal reports whether both metas carry the same values
func (m Meta) Equal(other Meta) bool {
	if !m.createdAt.Equal(other.createdAt) || !m.updatedAt.Equal(other.updatedAt) {
		return false
	}
	if m.isFavorite != other.isFavorite {
		return false
	}
	if len(m.tags) != len(other.tags) || (len(m.tags) > 0 && !slices.Equal(m.tags, other.tags)) {
		return false
	}
	if len(m.extra) == 0 && len(other.extra) == 0 {
		return true
	}
	return reflect.DeepEqual(m.extra, other.extra)
}

func (m Meta) clone() Meta {
	return Meta{
		createdAt:  m.createdAt,
		updatedAt:  m.updatedAt,
		isFavorite: m.isFavorite,
		tags:       m.Tags(),
		extra:      m.Extra(),
	}
}

// stamped returns a copy with the NewMeta timestamp defaults applied, so a zero Meta
// never reaches a block
func (m Meta) stamped() Meta {
	out := m.clone()
	if out.createdAt.IsZero() {
		out.createdAt = canonicalTime(time.Now())
	}
	if out.updatedAt.IsZero() {
		out.updatedAt = out.createdAt
	}
	return out
}

// WithFavorite returns a copy with the favorite flag set to fav
func (m Meta) WithFavorite(fav bool) Meta {
	out := m.clone()
	out.isFavorite = fav
	return out
}

// ToggleFavorite returns a copy with the favorite flag flipped
func (m Meta) ToggleFavorite() Meta {
	return m.WithFavorite(!m.isFavorite)
}

// WithTags returns a copy whose tags are replaced by tags
func (m Meta) WithTags(tags ...string) Meta {
	out := m.clone()
	out.tags = make([]string, len(tags))
	copy(out.tags, tags)
	return out
}

// AddTag returns a copy with tag appended. Duplicates are kept.
func (m Meta) AddTag(tag string) Meta {
	out := m.clone()
	out.tags = append(out.tags, tag)
	return out
}

// RemoveTag returns a copy without any occurrence of tag
func (m Meta) RemoveTag(tag string) Meta {
	out := m.clone()
	kept := out.tags[:0]
	for _, t := range out.tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	out.tags = kept
	return out
}

// WithExtra returns a copy with extra[key] set to value
func (m Meta) WithExtra(key string, value any) (Meta, error) {
	nv, err := normalize(joinPath("extra", key), value)
	if err != nil {
		return Meta{}, err
	}
	out := m.clone()
	out.extra[key] = nv
	return out, nil
}

// WithoutExtra returns a copy with extra[key] removed
func (m Meta) WithoutExtra(key string) Meta {
	out := m.clone()
	delete(out.extra, key)
	return out
}

// Touch returns a copy whose update timestamp is t
func (m Meta) Touch(t time.Time) Meta {
	out := m.clone()
	out.updatedAt = canonicalTime(t)
	return out
}

package block

// Typed readers over a canonical payload map. Missing or mistyped fields read as the
// supplied default.

func stringField(p map[string]any, key, def string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return def
}

func intField(p map[string]any, key string) int64 {
	switch v := p[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func boolField(p map[string]any, key string, def bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return def
}

func stringSliceField(p map[string]any, key string) []string {
	items, ok := p[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func objectSliceField(p map[string]any, key string) []map[string]any {
	items, ok := p[key].([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// putOptional adds key to p only when value is non-zero
func putOptional[T comparable](p map[string]any, key string, value T) {
	var zero T
	if value != zero {
		p[key] = value
	}
}

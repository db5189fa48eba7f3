package scrape

// Accessors over the decoded payload. The blob is treated as an opaque
// array-of-unknown at the boundary; everything is converted field by field
// through these helpers so a type surprise in one position degrades to a
// skipped value instead of a panic.

func at(v any, idx int) any {
	list, ok := v.([]any)
	if !ok || idx < 0 || idx >= len(list) {
		return nil
	}
	return list[idx]
}

func dig(v any, path ...int) any {
	for _, idx := range path {
		v = at(v, idx)
		if v == nil {
			return nil
		}
	}
	return v
}

func asList(v any) ([]any, bool) {
	list, ok := v.([]any)
	return list, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asNumber(v any) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

func asInt(v any) (int, bool) {
	n, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(n), true
}

package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// CoalescePtr returns the first non-nil pointer's value, or fallback.
func CoalescePtr[T any](fallback T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Int64Or returns *p, or fallback when p is nil.
func Int64Or(p *int64, fallback int64) int64 {
	if p == nil {
		return fallback
	}
	return *p
}

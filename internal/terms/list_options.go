package terms

// ListOptions narrows and pages term listings. The zero value lists every
// live term in insertion order.
type ListOptions struct {
	// Limit bounds the number of returned rows; zero means no limit.
	Limit int
	// Offset skips rows before collecting results.
	Offset int
	// Statuses restricts results to the supplied moderation states.
	Statuses []Status
	// IncludeDeleted also returns soft-deleted terms.
	IncludeDeleted bool
}

func (o ListOptions) statusStrings() []string {
	if len(o.Statuses) == 0 {
		return nil
	}
	out := make([]string, 0, len(o.Statuses))
	for _, status := range o.Statuses {
		out = append(out, status.String())
	}
	return out
}

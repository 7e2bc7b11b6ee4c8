package models

// BatchItem is the outcome of creating one line of a bulk capture.
type BatchItem struct {
	// Index is the position of the line among the non-empty lines submitted.
	Index   int
	Text    string
	Capture *Capture
	Err     error
}

// BatchOutcome summarises a bulk submission.
type BatchOutcome string

const (
	BatchAllSucceeded BatchOutcome = "all succeeded"
	BatchAllFailed    BatchOutcome = "all failed"
	BatchPartial      BatchOutcome = "partially succeeded"
)

// BatchResult holds one item per submitted line, in submission order.
type BatchResult struct {
	Items []BatchItem
}

func (r BatchResult) Succeeded() []BatchItem {
	var out []BatchItem
	for _, it := range r.Items {
		if it.Err == nil {
			out = append(out, it)
		}
	}
	return out
}

func (r BatchResult) Failed() []BatchItem {
	var out []BatchItem
	for _, it := range r.Items {
		if it.Err != nil {
			out = append(out, it)
		}
	}
	return out
}

// Outcome reports whether every line, no line, or only some lines were created.
// An empty result counts as all succeeded.
func (r BatchResult) Outcome() BatchOutcome {
	failed := len(r.Failed())
	switch {
	case failed == 0:
		return BatchAllSucceeded
	case failed == len(r.Items):
		return BatchAllFailed
	default:
		return BatchPartial
	}
}

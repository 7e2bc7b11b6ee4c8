package logging

import "strings"

const redacted = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"token":         {},
	"authorization": {},
	"password":      {},
}

// redact returns args with the values of sensitive keys replaced. The input
// slice is not modified.
func redact(args []any) []any {
	var out []any
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		if _, hit := sensitiveKeys[strings.ToLower(key)]; !hit {
			continue
		}
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i+1] = redacted
	}
	if out == nil {
		return args
	}
	return out
}

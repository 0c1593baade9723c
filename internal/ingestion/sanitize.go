package ingestion

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	scriptProtocolRe = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe   = regexp.MustCompile(`(?i)on\w+=`)
	unsafeFileCharRe = regexp.MustCompile(`[^A-Za-z0-9._\- ]`)
)

// SanitizeString strips markup-significant characters and script vectors
// from free-text input before it enters form state.
func SanitizeString(input string) string {
	out := strings.NewReplacer("<", "", ">", "").Replace(input)
	out = scriptProtocolRe.ReplaceAllString(out, "")
	out = eventHandlerRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// SanitizeFileName reduces a client-supplied filename to a safe base name:
// no path components, no control or shell-significant characters.
func SanitizeFileName(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	base = unsafeFileCharRe.ReplaceAllString(base, "_")
	base = strings.TrimSpace(base)
	if base == "" || base == "." || base == ".." {
		return "upload"
	}
	return base
}

// SanitizeFields applies SanitizeString to every string value in a decoded
// JSON object, recursing through nested objects and arrays. Non-string
// leaves pass through unchanged.
func SanitizeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case string:
		return SanitizeString(t)
	case map[string]any:
		return SanitizeFields(t)
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = sanitizeValue(item)
		}
		return items
	default:
		return v
	}
}

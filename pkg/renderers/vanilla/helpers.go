package vanilla

import (
	"sort"
	"strings"
)

func componentControlID(id string) string {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ""
	}
	return "fg-" + trimmed
}

func componentErrorID(id string) string {
	controlID := componentControlID(id)
	if controlID == "" {
		return ""
	}
	return controlID + "-error"
}

// cssVarsStyle renders custom properties as a deterministic inline style.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.HasPrefix(key, "--") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, key := range keys {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(strings.TrimSpace(vars[key]))
		builder.WriteByte(';')
	}
	return builder.String()
}

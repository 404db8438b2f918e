package tools

import (
	"fmt"
	"strconv"

	"github.com/poiesic/graphit/core"
)

// Tool inputs arrive as loosely typed maps assembled by the pipeline binding
// table. The helpers below normalize the shapes that occur in practice:
// values set programmatically (typed) and values carried through an
// ExecutionContext (often []any or string after crossing a boundary).

func stringValue(input map[string]any, key string) string {
	if s, ok := input[key].(string); ok {
		return s
	}
	return ""
}

func boolValue(input map[string]any, key string) bool {
	if b, ok := input[key].(bool); ok {
		return b
	}
	return false
}

func stringSlice(input map[string]any, key string) []string {
	switch v := input[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

func stringMap(input map[string]any, key string) map[string]string {
	switch v := input[key].(type) {
	case map[string]string:
		return v
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, item := range v {
			if s, ok := item.(string); ok {
				out[k] = s
			}
		}
		return out
	default:
		return nil
	}
}

// idValue parses a single identifier from an input entry.
func idValue(input map[string]any, key string) (core.ID, error) {
	v, ok := input[key]
	if !ok || v == nil {
		return 0, nil
	}
	return parseID(v)
}

// idSlice parses a list of identifiers from an input entry.
func idSlice(input map[string]any, key string) ([]core.ID, error) {
	var items []any
	switch v := input[key].(type) {
	case nil:
		return nil, nil
	case []core.ID:
		return v, nil
	case []any:
		items = v
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	default:
		items = []any{v}
	}

	ids := make([]core.ID, 0, len(items))
	for _, item := range items {
		id, err := parseID(item)
		if err != nil {
			return nil, err
		}
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseID(v any) (core.ID, error) {
	switch id := v.(type) {
	case core.ID:
		return id, nil
	case uint64:
		return core.ID(id), nil
	case string:
		if id == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid identifier %q: %w", id, err)
		}
		return core.ID(parsed), nil
	default:
		return 0, fmt.Errorf("invalid identifier type %T", v)
	}
}

// formatID renders an identifier the way it travels between tools.
func formatID(id core.ID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatIDs(ids []core.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = formatID(id)
	}
	return out
}

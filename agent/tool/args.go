package tool

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSpace(s)
}

func requireStringArg(args map[string]any, key string) (string, error) {
	s := stringArg(args, key)
	if s == "" {
		return "", fmt.Errorf("argument %q is required", key)
	}
	return s, nil
}

// intArg accepts the numeric shapes JSON decoding produces for model output.
func intArg(args map[string]any, key string, fallback int) (int, error) {
	if args == nil {
		return fallback, nil
	}
	v, ok := args[key]
	if !ok || v == nil {
		return fallback, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("argument %q is not an integer: %w", key, err)
		}
		return int(parsed), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("argument %q is not an integer: %w", key, err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("argument %q has unsupported type %T", key, v)
	}
}

package tools

import (
	"fmt"
	"regexp"
	"strings"
)

// identPattern matches ICAO/IATA-style station codes. The API accepts 3- and
// 4-letter codes plus a handful of longer WMO identifiers.
var identPattern = regexp.MustCompile(`^[A-Z0-9]{3,8}$`)

// parseStationIDs normalizes the "ids" argument into a validated list of
// station codes. It accepts a comma-separated string or a list of strings;
// codes are uppercased. Fails on empty input or any malformed code, before
// anything goes on the wire.
func parseStationIDs(value any) ([]string, error) {
	var raw []string
	switch v := value.(type) {
	case string:
		raw = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("station identifiers must be strings, got %T", item)
			}
			raw = append(raw, s)
		}
	case nil:
		return nil, fmt.Errorf("ids parameter is required")
	default:
		return nil, fmt.Errorf("ids must be a string or a list of strings, got %T", value)
	}

	var ids []string
	for _, code := range raw {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if !identPattern.MatchString(code) {
			return nil, fmt.Errorf("invalid station identifier %q: expected a 3-8 character alphanumeric code", code)
		}
		ids = append(ids, code)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("ids parameter must contain at least one station identifier")
	}
	return ids, nil
}

// formatArg returns the validated output format, defaulting when absent.
func formatArg(args map[string]any, fallback string, allowed ...string) (string, error) {
	format, _ := args["format"].(string)
	if format == "" {
		return fallback, nil
	}
	format = strings.ToLower(format)
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("invalid format %q: expected one of %s", format, strings.Join(allowed, ", "))
}

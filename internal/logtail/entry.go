package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Entry is one parsed log line.
type Entry struct {
	Time      string
	Level     string
	Component string
	Message   string
	// Attrs holds the remaining key/value pairs in the order they appeared
	// (JSON lines are sorted by key).
	Attrs [][2]string
	Raw   string
}

// Parse decodes a JSON or key=value log line. Lines in neither form come
// back with only Raw and Message set.
func Parse(line string) Entry {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "{") {
		if e, ok := parseJSON(trimmed); ok {
			e.Raw = line
			return e
		}
	}
	if pairs, ok := splitPairs(trimmed); ok {
		e := fromPairs(pairs)
		e.Raw = line
		return e
	}
	return Entry{Message: trimmed, Raw: line}
}

// String renders the entry as "time LEVEL [component] message k=v ...".
func (e Entry) String() string {
	if e.Level == "" && e.Time == "" {
		return e.Raw
	}
	var b strings.Builder
	if e.Time != "" {
		b.WriteString(e.Time)
		b.WriteByte(' ')
	}
	b.WriteString(strings.ToUpper(e.Level))
	if e.Component != "" {
		fmt.Fprintf(&b, " [%s]", e.Component)
	}
	if e.Message != "" {
		b.WriteByte(' ')
		b.WriteString(e.Message)
	}
	for _, kv := range e.Attrs {
		fmt.Fprintf(&b, " %s=%s", kv[0], kv[1])
	}
	return b.String()
}

func parseJSON(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, jsonValue(raw[k])})
	}
	return fromPairs(pairs), true
}

func jsonValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return "null"
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(encoded)
	}
}

func fromPairs(pairs [][2]string) Entry {
	var e Entry
	for _, kv := range pairs {
		switch kv[0] {
		case "ts", "time":
			e.Time = kv[1]
		case "level":
			e.Level = strings.ToLower(kv[1])
		case "msg":
			e.Message = kv[1]
		case "component":
			e.Component = kv[1]
		default:
			e.Attrs = append(e.Attrs, kv)
		}
	}
	return e
}

// splitPairs tokenizes slog's text format: space separated key=value pairs
// where values may be double-quoted with Go escaping.
func splitPairs(line string) ([][2]string, bool) {
	var pairs [][2]string
	rest := line
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsAny(rest[:eq], " \t\"") {
			return nil, false
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := closingQuote(rest)
			if end < 0 {
				return nil, false
			}
			unquoted, err := strconv.Unquote(rest[:end+1])
			if err != nil {
				return nil, false
			}
			value = unquoted
			rest = rest[end+1:]
		} else {
			end := strings.IndexByte(rest, ' ')
			if end < 0 {
				end = len(rest)
			}
			value = rest[:end]
			rest = rest[end:]
		}
		pairs = append(pairs, [2]string{key, value})
		rest = strings.TrimLeft(rest, " ")
	}
	return pairs, len(pairs) > 0
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

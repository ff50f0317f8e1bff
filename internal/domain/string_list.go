package domain

import (
	"encoding/json"
	"strings"
)

// StringList is an ordered sequence of strings that accepts either a JSON
// array or a single comma-delimited string. Order is preserved and values
// are never deduplicated.
type StringList []string

// ParseStringList splits a comma-delimited value into its elements, trimming
// surrounding whitespace from each. Empty elements are dropped.
func ParseStringList(value string) StringList {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	list := make(StringList, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

// String implements flag.Value.
func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

// Set implements flag.Value. Repeated flag occurrences append in order.
func (s *StringList) Set(value string) error {
	*s = append(*s, ParseStringList(value)...)
	return nil
}

// UnmarshalJSON accepts both a JSON array of strings and a single delimited
// string, normalizing either form into the list.
func (s *StringList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		*s = nil
		return nil
	}

	if data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = ParseStringList(single)
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*s = StringList(parsed)
	return nil
}

package donors

import (
	"fmt"
	"strings"
)

// GroupKey names a record attribute that records can be grouped by.
type GroupKey int

const (
	ByStatus GroupKey = iota
	ByType
	ByCategory
	ByCurrency
	ByFundingSourceType
	ByMonth
)

// Unspecified is the group of records whose key is missing or does not apply.
const Unspecified = "UNSPECIFIED"

var groupKeyNames = []string{"status", "type", "category", "currency", "funding-source-type", "month"}

func (k GroupKey) String() string {
	if k < 0 || int(k) >= len(groupKeyNames) {
		return fmt.Sprintf("GroupKey(%d)", int(k))
	}
	return groupKeyNames[k]
}

// GroupKeys returns all the group keys, in declaration order.
func GroupKeys() []GroupKey {
	return []GroupKey{ByStatus, ByType, ByCategory, ByCurrency, ByFundingSourceType, ByMonth}
}

// ParseGroupKey parses the name of a group key, as returned by String.
func ParseGroupKey(s string) (GroupKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	for i, name := range groupKeyNames {
		if s == name {
			return GroupKey(i), nil
		}
	}
	if s == "funding" || s == "source" {
		return ByFundingSourceType, nil
	}
	return 0, fmt.Errorf("unknown group key %q, want one of %s", s, strings.Join(groupKeyNames, ", "))
}

// Grouped is implemented by records that can be grouped by a GroupKey.
type Grouped interface {
	// GroupValue returns the value of the attribute named by key, or
	// Unspecified when the record has no such attribute.
	GroupValue(key GroupKey) string
}

// label normalizes a raw discriminator into a group label.
func label(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unspecified
	}
	return strings.ToUpper(s)
}

// KeyFunc returns the key selector for k.
func KeyFunc[R Grouped](k GroupKey) func(R) string {
	return func(r R) string { return r.GroupValue(k) }
}

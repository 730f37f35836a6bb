package donors

import (
	"fmt"
	"strings"
)

// Kind discriminates the record kinds of a dataset.
type Kind string

const (
	KindBudget        Kind = "budget"
	KindCampaign      Kind = "campaign"
	KindDonation      Kind = "donation"
	KindExpense       Kind = "expense"
	KindGrant         Kind = "grant"
	KindProjectUpdate Kind = "project-update"
	KindProject       Kind = "project"
)

// Kinds returns all the record kinds, in their canonical order.
func Kinds() []Kind {
	return []Kind{KindBudget, KindCampaign, KindDonation, KindExpense, KindGrant, KindProjectUpdate, KindProject}
}

// ParseKind parses a kind name. Plurals and underscores are accepted, so that
// "project_updates" is KindProjectUpdate.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	for _, k := range Kinds() {
		if s == string(k) || s == string(k)+"s" {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

// Monetary reports whether records of that kind carry an amount and a currency.
func (k Kind) Monetary() bool {
	switch k {
	case KindProjectUpdate, KindProject:
		return false
	}
	return true
}

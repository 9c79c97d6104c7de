package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Policy carries the book-specific constants the engine must not
// hard-code: the special-project override set, the operating-company
// name matcher for the intercompany payout exclusion, and the paid
// tolerance applied by the interest classifier.
type Policy struct {
	SpecialProjectIDs map[int64]struct{}
	CompanyNameMatch  string
	PaidTolerance     decimal.Decimal
}

// NewPolicy builds a Policy from externally-configured values. A zero
// tolerance defaults to 1%.
func NewPolicy(specialProjectIDs []int64, companyNameMatch string, paidTolerance decimal.Decimal) Policy {
	ids := make(map[int64]struct{}, len(specialProjectIDs))
	for _, id := range specialProjectIDs {
		ids[id] = struct{}{}
	}
	if paidTolerance.IsZero() {
		paidTolerance = decimal.NewFromFloat(0.01)
	}
	return Policy{
		SpecialProjectIDs: ids,
		CompanyNameMatch:  strings.ToLower(companyNameMatch),
		PaidTolerance:     paidTolerance,
	}
}

// IsSpecialProject reports whether a project id is in the override set.
// Unknown ids simply fall through to the normal lifecycle rules.
func (p Policy) IsSpecialProject(projectID int64) bool {
	_, ok := p.SpecialProjectIDs[projectID]
	return ok
}

// IsInternalInvestor reports whether an investor display name matches
// the operating company, case-insensitively. Internal capital movements
// must not appear as external cash outflow.
func (p Policy) IsInternalInvestor(name string) bool {
	if p.CompanyNameMatch == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), p.CompanyNameMatch)
}

// Engine evaluates the lending-book calculations under a fixed policy.
// It holds no mutable state; every method is a function of its
// arguments plus the policy.
type Engine struct {
	policy Policy
}

// New returns an Engine bound to the given policy.
func New(policy Policy) *Engine {
	return &Engine{policy: policy}
}

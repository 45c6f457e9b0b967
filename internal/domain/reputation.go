package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReputationEvent is an append-only ledger entry. A user's reputation is the sum of its deltas.
type ReputationEvent struct {
	ID            uuid.UUID  `db:"id"             json:"id"`
	UserID        uuid.UUID  `db:"user_id"        json:"user_id"`
	Delta         int        `db:"delta"          json:"delta"`
	Reason        string     `db:"reason"         json:"reason"`
	TranslationID *uuid.UUID `db:"translation_id" json:"translation_id,omitempty"`
	CreatedAt     time.Time  `db:"created_at"     json:"created_at"`
}

// Reputation event reasons. Lifecycle reasons double as rule names.
const (
	ReasonCreation       = "creation_reward"
	ReasonApproval       = "approval_reward"
	ReasonMerge          = "merge_reward"
	ReasonRejection      = "rejection_penalty"
	ReasonFalseRejection = "false_rejection_penalty"
	ReasonAdminPenalty   = "admin_penalty"
)

// Rule names beyond the lifecycle deltas.
const (
	RuleReviewMinReputation = "review_min_reputation"
	RuleTierContributorMin  = "tier_contributor_min"
	RuleTierReviewerMin     = "tier_reviewer_min"
	RuleTierExpertMin       = "tier_expert_min"
)

// ReputationRules maps rule name to integer value.
type ReputationRules map[string]int

// DefaultReputationRules returns the built-in rule table.
func DefaultReputationRules() ReputationRules {
	return ReputationRules{
		ReasonCreation:          1,
		ReasonApproval:          5,
		ReasonMerge:             10,
		ReasonRejection:         -2,
		ReasonFalseRejection:    -5,
		RuleReviewMinReputation: 20,
		RuleTierContributorMin:  10,
		RuleTierReviewerMin:     50,
		RuleTierExpertMin:       200,
	}
}

// IsKnownRule reports whether name is a rule the platform understands.
func IsKnownRule(name string) bool {
	_, ok := DefaultReputationRules()[name]
	return ok
}

// Get returns the rule value, falling back to the built-in default.
func (r ReputationRules) Get(name string) int {
	if v, ok := r[name]; ok {
		return v
	}
	return DefaultReputationRules()[name]
}

// Merge returns a copy of r with overrides applied.
func (r ReputationRules) Merge(overrides map[string]int) ReputationRules {
	out := make(ReputationRules, len(r)+len(overrides))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Tier is a coarse reputation band.
type Tier string

const (
	TierNewcomer    Tier = "newcomer"
	TierContributor Tier = "contributor"
	TierReviewer    Tier = "reviewer"
	TierExpert      Tier = "expert"
)

// TierFor returns the tier of a reputation score under the given rules.
func (r ReputationRules) TierFor(reputation int) Tier {
	switch {
	case reputation >= r.Get(RuleTierExpertMin):
		return TierExpert
	case reputation >= r.Get(RuleTierReviewerMin):
		return TierReviewer
	case reputation >= r.Get(RuleTierContributorMin):
		return TierContributor
	default:
		return TierNewcomer
	}
}

// ReputationRule is a persisted rule row.
type ReputationRule struct {
	Name      string     `db:"name"       json:"name"`
	Value     int        `db:"value"      json:"value"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	UpdatedBy *uuid.UUID `db:"updated_by" json:"updated_by,omitempty"`
}

// RulePreview is the simulated outcome of a rule change over recent ledger events.
type RulePreview struct {
	EventsSampled int                `json:"events_sampled"`
	UsersAffected int                `json:"users_affected"`
	TotalCurrent  int                `json:"total_current"`
	TotalProposed int                `json:"total_proposed"`
	Users         []UserRulePreview  `json:"users"`
	ProposedRules ReputationRules    `json:"proposed_rules"`
	ByReason      map[string]Reasons `json:"by_reason"`
}

// Reasons aggregates one reason's deltas before and after a rule change.
type Reasons struct {
	Events   int `json:"events"`
	Current  int `json:"current"`
	Proposed int `json:"proposed"`
}

// UserRulePreview is one user's delta sum before and after a rule change.
type UserRulePreview struct {
	UserID   uuid.UUID `json:"user_id"`
	Current  int       `json:"current"`
	Proposed int       `json:"proposed"`
	Diff     int       `json:"diff"`
}

// UserReputation summarises a user's standing.
type UserReputation struct {
	UserID     uuid.UUID         `json:"user_id"`
	Reputation int               `json:"reputation"`
	Tier       Tier              `json:"tier"`
	CanReview  bool              `json:"can_review"`
	Events     []ReputationEvent `json:"events"`
}

package domain

// TransitionEffect is the reputation consequence of a translation status change.
type TransitionEffect int

const (
	EffectNone TransitionEffect = iota
	EffectCreationReward
	EffectApprovalReward
	EffectRejectionPenalty
	EffectMergeReward
)

func (e TransitionEffect) String() string {
	switch e {
	case EffectCreationReward:
		return "creation_reward"
	case EffectApprovalReward:
		return "approval_reward"
	case EffectRejectionPenalty:
		return "rejection_penalty"
	case EffectMergeReward:
		return "merge_reward"
	default:
		return "none"
	}
}

// Transition is a (from, to) pair of translation statuses.
type Transition struct {
	From TranslationStatus
	To   TranslationStatus
}

// transitionEffects enumerates every pair. Pairs missing from the map are EffectNone.
var transitionEffects = map[Transition]TransitionEffect{
	{TranslationStatusNone, TranslationStatusDraft}:    EffectCreationReward,
	{TranslationStatusNone, TranslationStatusReview}:   EffectCreationReward,
	{TranslationStatusNone, TranslationStatusApproved}: EffectNone,
	{TranslationStatusNone, TranslationStatusRejected}: EffectNone,
	{TranslationStatusNone, TranslationStatusMerged}:   EffectNone,

	{TranslationStatusDraft, TranslationStatusDraft}:    EffectNone,
	{TranslationStatusDraft, TranslationStatusReview}:   EffectNone,
	{TranslationStatusDraft, TranslationStatusApproved}: EffectApprovalReward,
	{TranslationStatusDraft, TranslationStatusRejected}: EffectRejectionPenalty,
	{TranslationStatusDraft, TranslationStatusMerged}:   EffectMergeReward,

	{TranslationStatusReview, TranslationStatusDraft}:    EffectNone,
	{TranslationStatusReview, TranslationStatusReview}:   EffectNone,
	{TranslationStatusReview, TranslationStatusApproved}: EffectApprovalReward,
	{TranslationStatusReview, TranslationStatusRejected}: EffectRejectionPenalty,
	{TranslationStatusReview, TranslationStatusMerged}:   EffectMergeReward,

	{TranslationStatusApproved, TranslationStatusDraft}:    EffectNone,
	{TranslationStatusApproved, TranslationStatusReview}:   EffectNone,
	{TranslationStatusApproved, TranslationStatusApproved}: EffectNone,
	{TranslationStatusApproved, TranslationStatusRejected}: EffectRejectionPenalty,
	{TranslationStatusApproved, TranslationStatusMerged}:   EffectMergeReward,

	{TranslationStatusRejected, TranslationStatusDraft}:    EffectNone,
	{TranslationStatusRejected, TranslationStatusReview}:   EffectNone,
	{TranslationStatusRejected, TranslationStatusApproved}: EffectApprovalReward,
	{TranslationStatusRejected, TranslationStatusRejected}: EffectNone,
	{TranslationStatusRejected, TranslationStatusMerged}:   EffectMergeReward,

	{TranslationStatusMerged, TranslationStatusDraft}:    EffectNone,
	{TranslationStatusMerged, TranslationStatusReview}:   EffectNone,
	{TranslationStatusMerged, TranslationStatusApproved}: EffectNone,
	{TranslationStatusMerged, TranslationStatusRejected}: EffectNone,
	{TranslationStatusMerged, TranslationStatusMerged}:   EffectNone,
}

// EffectFor returns the reputation effect of moving a translation from one status to another.
// Repeated or unknown pairs yield EffectNone.
func EffectFor(from, to TranslationStatus) TransitionEffect {
	return transitionEffects[Transition{From: from, To: to}]
}

// SweepsFalseRejections reports whether the transition should penalise earlier rejecting reviewers.
func (t Transition) SweepsFalseRejections() bool {
	return t.To == TranslationStatusMerged && t.From != TranslationStatusMerged
}

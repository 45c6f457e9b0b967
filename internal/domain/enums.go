package domain

// TranslationStatus is the moderation state of a translation.
type TranslationStatus string

const (
	// TranslationStatusNone marks a translation that does not exist yet.
	// It only appears as the "from" side of a creation transition.
	TranslationStatusNone     TranslationStatus = ""
	TranslationStatusDraft    TranslationStatus = "draft"
	TranslationStatusReview   TranslationStatus = "review"
	TranslationStatusApproved TranslationStatus = "approved"
	TranslationStatusRejected TranslationStatus = "rejected"
	TranslationStatusMerged   TranslationStatus = "merged"
)

// TranslationStatuses lists every persisted status in workflow order.
var TranslationStatuses = []TranslationStatus{
	TranslationStatusDraft,
	TranslationStatusReview,
	TranslationStatusApproved,
	TranslationStatusRejected,
	TranslationStatusMerged,
}

func (s TranslationStatus) String() string { return string(s) }

func (s TranslationStatus) IsValid() bool {
	switch s {
	case TranslationStatusDraft, TranslationStatusReview, TranslationStatusApproved,
		TranslationStatusRejected, TranslationStatusMerged:
		return true
	}
	return false
}

// IsEditable reports whether the translation value may still be changed by its author.
func (s TranslationStatus) IsEditable() bool {
	switch s {
	case TranslationStatusDraft, TranslationStatusReview, TranslationStatusRejected:
		return true
	}
	return false
}

// AppealStatus is the lifecycle state of an appeal.
type AppealStatus string

const (
	AppealStatusOpen     AppealStatus = "open"
	AppealStatusClosed   AppealStatus = "closed"
	AppealStatusResolved AppealStatus = "resolved"
)

func (s AppealStatus) String() string { return string(s) }

func (s AppealStatus) IsValid() bool {
	switch s {
	case AppealStatusOpen, AppealStatusClosed, AppealStatusResolved:
		return true
	}
	return false
}

// IsFinal reports whether the appeal no longer accepts changes.
func (s AppealStatus) IsFinal() bool {
	return s == AppealStatusClosed || s == AppealStatusResolved
}

// ReportStatus is the moderation state of a message report.
type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "pending"
	ReportStatusReviewed    ReportStatus = "reviewed"
	ReportStatusDismissed   ReportStatus = "dismissed"
	ReportStatusActionTaken ReportStatus = "action_taken"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusDismissed, ReportStatusActionTaken:
		return true
	}
	return false
}

// CommunityType separates system-managed language communities from user-created ones.
type CommunityType string

const (
	CommunityTypeLanguage CommunityType = "language"
	CommunityTypeUser     CommunityType = "user"
)

func (t CommunityType) String() string { return string(t) }

func (t CommunityType) IsValid() bool {
	return t == CommunityTypeLanguage || t == CommunityTypeUser
}

// CommunityRole is a member's role inside a community.
type CommunityRole string

const (
	CommunityRoleCreator   CommunityRole = "creator"
	CommunityRoleModerator CommunityRole = "moderator"
	CommunityRoleMember    CommunityRole = "member"
)

func (r CommunityRole) String() string { return string(r) }

func (r CommunityRole) IsValid() bool {
	switch r {
	case CommunityRoleCreator, CommunityRoleModerator, CommunityRoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role may edit community content (goals, description).
func (r CommunityRole) CanManage() bool {
	return r == CommunityRoleCreator || r == CommunityRoleModerator
}

// TaskStatus is the state of an async task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusRunning, TaskStatusCompleted, TaskStatusFailed:
		return true
	}
	return false
}

// TaskType identifies what an async task does.
type TaskType string

const (
	TaskTypeHarvest TaskType = "harvest"
	TaskTypeLDES    TaskType = "ldes"
)

func (t TaskType) String() string { return string(t) }

func (t TaskType) IsValid() bool {
	return t == TaskTypeHarvest || t == TaskTypeLDES
}

// SourceKind is how a vocabulary source is ingested.
type SourceKind string

const (
	SourceKindSPARQL SourceKind = "sparql"
	SourceKindLDES   SourceKind = "ldes"
	SourceKindUpload SourceKind = "upload"
)

func (k SourceKind) String() string { return string(k) }

func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindSPARQL, SourceKindLDES, SourceKindUpload:
		return true
	}
	return false
}

// ActivityAction names an entry in the user_activity audit trail.
type ActivityAction string

const (
	ActivityTranslationCreated       ActivityAction = "translation_created"
	ActivityTranslationUpdated       ActivityAction = "translation_updated"
	ActivityTranslationStatusChanged ActivityAction = "translation_status_changed"
	ActivityTranslationLanguage      ActivityAction = "translation_language_changed"
	ActivityAppealCreated            ActivityAction = "appeal_created"
	ActivityAppealUpdated            ActivityAction = "appeal_updated"
	ActivityAppealMessagePosted      ActivityAction = "appeal_message_posted"
	ActivityMessageReported          ActivityAction = "message_reported"
	ActivityReportResolved           ActivityAction = "report_resolved"
	ActivityUserBanned               ActivityAction = "admin_user_banned"
	ActivityUserUnbanned             ActivityAction = "admin_user_unbanned"
	ActivityUserPromoted             ActivityAction = "admin_user_promoted"
	ActivityUserDemoted              ActivityAction = "admin_user_demoted"
	ActivityUserPenalized            ActivityAction = "admin_user_penalized"
	ActivityReputationRulesUpdated   ActivityAction = "admin_reputation_rules_updated"
	ActivitySourceCreated            ActivityAction = "admin_source_created"
	ActivityTaskLaunched             ActivityAction = "admin_task_launched"
	ActivityCommunityCreated         ActivityAction = "community_created"
	ActivityCommunityDeleted         ActivityAction = "community_deleted"
)

func (a ActivityAction) String() string { return string(a) }

package model

// Roles
const (
	RoleMember    = "member"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// AllowedRoles defines which roles a candidate record may carry
var AllowedRoles = map[string]bool{
	RoleMember:    true,
	RoleAdmin:     true,
	RoleModerator: true,
}

// Notification states track registration-mail delivery per user.
// Transitions are owned by the notifier: pending -> sent | failed.
const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// Batch outcome statuses
const (
	OutcomeCreated   = "created"
	OutcomeRejected  = "rejected"
	OutcomeDuplicate = "duplicate"
)

// Paging defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MaxBulkBatchSize bounds the work a single bulk request can submit
const MaxBulkBatchSize = 500

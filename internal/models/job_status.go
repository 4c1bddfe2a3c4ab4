package models

/*
Job and Task status/type constants for use throughout the codebase.
Centralizing these avoids magic strings and improves maintainability.
*/

// Job status constants
const (
	JobStatusEnqueued  = "enqueued"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCancelled = "cancelled"
	JobStatusRetrying  = "retrying"
	JobStatusTimedOut  = "timed_out"
)

// Task type constants
const (
	TaskTypeStyling        = "styling"
	TaskTypeClassification = "classification"
	TaskTypeUsageTracking  = "usage_tracking"
)

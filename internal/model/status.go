package model

// RefreshStatus represents the state of the channel list refresh
type RefreshStatus string

const (
	// RefreshStatusIdle means no refresh has run yet
	RefreshStatusIdle RefreshStatus = "Idle"

	// RefreshStatusRefreshing means a channel list fetch is in flight
	RefreshStatusRefreshing RefreshStatus = "Refreshing"

	// RefreshStatusCompleted means the last refresh delivered channels
	RefreshStatusCompleted RefreshStatus = "Completed"

	// RefreshStatusEmpty means the last refresh found no channels
	RefreshStatusEmpty RefreshStatus = "Empty"

	// RefreshStatusFailed means the last refresh failed to fetch or parse
	RefreshStatusFailed RefreshStatus = "Failed"
)

// String returns the string representation of RefreshStatus
func (rs RefreshStatus) String() string {
	return string(rs)
}

// IsActive returns true while a refresh is running
func (rs RefreshStatus) IsActive() bool {
	return rs == RefreshStatusRefreshing
}

// IsFinished returns true if the refresh reached a terminal state
func (rs RefreshStatus) IsFinished() bool {
	return rs == RefreshStatusCompleted || rs == RefreshStatusEmpty || rs == RefreshStatusFailed
}

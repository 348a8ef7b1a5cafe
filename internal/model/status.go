package model

// RefreshStatus represents where a component is inside its refresh cycle
type RefreshStatus string

const (
	// RefreshStatusIdle means the component waits for its next scheduled refresh
	RefreshStatusIdle RefreshStatus = "Idle"

	// RefreshStatusFetching means a provider call is in progress
	RefreshStatusFetching RefreshStatus = "Fetching"

	// RefreshStatusRendering means fetched data is being turned into widgets
	RefreshStatusRendering RefreshStatus = "Rendering"
)

// String returns the string representation of RefreshStatus
func (rs RefreshStatus) String() string {
	return string(rs)
}

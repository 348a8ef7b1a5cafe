package schedule

// Package schedule runs periodic refresh tasks on a single goroutine. Tasks never
// overlap; each one is re-armed after it finishes and can be withdrawn through the
// Handle returned at registration.

package model

// Package model defines the state each dashboard component holds between refresh
// cycles, plus the provider-neutral weather report and headline types. Structures
// are plain values; components replace them wholesale on every successful refresh.

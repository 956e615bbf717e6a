package main

// Exit codes.
const (
	ExitSuccess    = 0 // Success
	ExitError      = 1 // General error (runtime failure)
	ExitUsageError = 2 // Validation error (bad identifier, field, or parameter)
	ExitNotFound   = 3 // Entity not found upstream
	ExitAPIError   = 4 // Upstream or transport failure
)

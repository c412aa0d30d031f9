package practicum

// StatusAPI defines the single operation the poll loop needs from the
// homework review API. This helps in decoupling the loop from the concrete
// HTTP transport.
type StatusAPI interface {
	// HomeworkStatuses fetches review updates that happened after fromDate.
	// The decoded body is returned untyped; shape validation happens
	// downstream.
	HomeworkStatuses(fromDate int64) (any, error)
}

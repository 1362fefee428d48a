package server

// The failure variants below form the closed set the advice boundary
// translates. Expected business outcomes (not found, conflict) never reach
// it; handlers answer those locally with plain responses.

// ValidationError carries per-field complaints for a rejected request body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed for one or more arguments"
}

// InvalidArgumentError reports a malformed request input, such as a
// non-integer id segment or a missing required parameter.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

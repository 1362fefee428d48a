package types

// CreateItemRequest is the POST /api/items body. Pointer fields distinguish
// a missing or null field from a zero value during validation.
type CreateItemRequest struct {
	ID        *int    `json:"id"`
	FirstName *string `json:"firstName"`
}

// Validate checks required fields and returns a field name to complaint
// mapping. An empty map means the request is valid.
func (r *CreateItemRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.ID == nil {
		errs["id"] = "must not be null"
	}
	if r.FirstName == nil {
		errs["firstName"] = "must not be null"
	}
	return errs
}

// ErrorResponse is the uniform envelope rendered for every intercepted
// failure. Errors carries per-field complaints and is present only for
// validation failures.
type ErrorResponse struct {
	Timestamp int64             `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
	Path      string            `json:"path"`
}

type StatsResponse struct {
	TotalItems int `json:"total_items"`
}

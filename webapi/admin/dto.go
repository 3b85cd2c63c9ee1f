package admin

// StatusRequest is the body of PATCH /admin/accounts/:accountId/status.
// Pointer so that a missing field fails validation instead of defaulting to
// false.
type StatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

package transaction

// AmountRequest is the body of every money-moving endpoint. The amount is a
// decimal string with at most two fraction digits, e.g. "150.00".
type AmountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

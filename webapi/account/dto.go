package account

import "github.com/ksuvorov/bankledger/pkg/money"

// CreateAccountRequest is the body of POST /account.
type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// BalanceResponse is the body of GET /account/:id/balance.
type BalanceResponse struct {
	AccountID string       `json:"accountId"`
	Balance   money.Amount `json:"balance"`
}

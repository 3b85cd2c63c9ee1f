// Package domain holds the shared vocabulary of the ledger: roles, transaction
// types and statuses, and the sentinel errors every layer maps against.
package domain

// Role gates access to API operations.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// TransactionType identifies which ledger operation produced a record.
type TransactionType string

const (
	TypeDeposit     TransactionType = "DEPOSIT"
	TypeWithdraw    TransactionType = "WITHDRAW"
	TypeTransfer    TransactionType = "TRANSFER"
	TypeP2PTransfer TransactionType = "P2P_TRANSFER"
)

// TransactionStatus is the lifecycle state of a transaction record.
// Operations are synchronous, so only StatusSuccess is ever written today;
// the other states exist in the schema for forward compatibility.
type TransactionStatus string

const (
	StatusSuccess    TransactionStatus = "SUCCESS"
	StatusProcessing TransactionStatus = "PROCESSING"
	StatusReject     TransactionStatus = "REJECT"
)

// Record field convention: the debited account is always FromAccountID and the
// credited account is always ToAccountID. Deposits carry only ToAccountID,
// withdrawals only FromAccountID.

package dto

import "github.com/google/uuid"

// StatementRunResult summarizes one run of the statement generator
type StatementRunResult struct {
	Processed  int         `json:"processed"`
	Statements []uuid.UUID `json:"statements"`
	Skipped    int         `json:"skipped"`
	Failed     int         `json:"failed"`
	Overdue    int         `json:"overdue"`
}

// SnapshotRunResult summarizes one run of the daily snapshot job
type SnapshotRunResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// InstallmentRunResult summarizes installment reconciliation
type InstallmentRunResult struct {
	UsersProcessed   int `json:"usersProcessed"`
	PurchasesUpdated int `json:"purchasesUpdated"`
	ChargesCreated   int `json:"chargesCreated"`
	Failed           int `json:"failed"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// SeedRequest describes the demo data to generate for one user.
// A zero Seed picks a random one.
type SeedRequest struct {
	UserID uuid.UUID
	Months int
	Seed   uint64
	Today  time.Time
}

// SeedResult summarizes a demo data run
type SeedResult struct {
	UserID             uuid.UUID `json:"userId"`
	Accounts           int       `json:"accounts"`
	Categories         int       `json:"categories"`
	Transactions       int       `json:"transactions"`
	Skipped            int       `json:"skipped"`
	Installments       int       `json:"installments"`
	InstallmentCharges int       `json:"installmentCharges"`
}

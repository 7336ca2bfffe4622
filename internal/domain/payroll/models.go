package payroll

import (
	"time"

	"github.com/google/uuid"
)

// Deductions holds every amount derived from a gross monthly salary. Values
// are unrounded; formatting to two decimals happens only when rendering.
type Deductions struct {
	SocialSecurity   float64 `json:"socialSecurity"`
	MonthlyIncomeTax float64 `json:"monthlyIncomeTax"`
	TotalDeduction   float64 `json:"totalDeduction"`
	NetSalary        float64 `json:"netSalary"`
}

type WorkerRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	GrossSalary  float64   `json:"grossSalary"`
	CalculatedAt time.Time `json:"calculatedAt"`
	Deductions
}

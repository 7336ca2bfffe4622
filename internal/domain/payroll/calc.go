package payroll

import (
	"math"
	"strings"
)

// Compute derives INSS, monthly IR, total deduction and net pay from a gross
// monthly salary.
func Compute(grossSalary float64) (Deductions, error) {
	if !validGross(grossSalary) {
		return Deductions{}, ErrInvalidGross
	}

	socialSecurity := grossSalary * SocialSecurityRate
	annualBase := (grossSalary - socialSecurity) * MonthsPerYear
	monthlyTax := AnnualIncomeTax(annualBase) / MonthsPerYear
	total := socialSecurity + monthlyTax

	return Deductions{
		SocialSecurity:   socialSecurity,
		MonthlyIncomeTax: monthlyTax,
		TotalDeduction:   total,
		NetSalary:        grossSalary - total,
	}, nil
}

// AnnualIncomeTax applies the progressive IR schedule to an annualized base.
func AnnualIncomeTax(base float64) float64 {
	for _, bracket := range incomeTaxBrackets[:len(incomeTaxBrackets)-1] {
		if base <= bracket.Upper {
			return marginalTax(base, bracket)
		}
	}
	return marginalTax(base, incomeTaxBrackets[len(incomeTaxBrackets)-1])
}

func marginalTax(base float64, bracket incomeTaxBracket) float64 {
	if bracket.Rate == 0 {
		return bracket.Base
	}
	return (base-bracket.Lower)*bracket.Rate + bracket.Base
}

// NewWorkerRecord validates the name and computes deductions for gross.
// ID and CalculatedAt are left for the caller to assign.
func NewWorkerRecord(name string, grossSalary float64) (WorkerRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return WorkerRecord{}, ErrNameRequired
	}
	deductions, err := Compute(grossSalary)
	if err != nil {
		return WorkerRecord{}, err
	}
	return WorkerRecord{
		Name:        name,
		GrossSalary: grossSalary,
		Deductions:  deductions,
	}, nil
}

func validGross(value float64) bool {
	return value > 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}

package payroll

const (
	// SocialSecurityRate is the INSS employee withholding applied to gross pay.
	SocialSecurityRate = 0.07

	MonthsPerYear = 12
)

// incomeTaxBracket is one row of the IR schedule. Base is the cumulative tax
// owed at Lower; the marginal Rate applies to the portion above Lower up to
// and including Upper.
type incomeTaxBracket struct {
	Lower float64
	Upper float64
	Rate  float64
	Base  float64
}

// Upper of the last bracket is ignored.
var incomeTaxBrackets = []incomeTaxBracket{
	{Lower: 0, Upper: 100_000, Rate: 0, Base: 0},
	{Lower: 100_000, Upper: 200_000, Rate: 0.15, Base: 0},
	{Lower: 200_000, Upper: 350_000, Rate: 0.20, Base: 15_000},
	{Lower: 350_000, Upper: 500_000, Rate: 0.25, Base: 45_000},
	{Lower: 500_000, Rate: 0.30, Base: 82_500},
}

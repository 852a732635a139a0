package model

import "math"

// TaxRate is applied to every treatment price (2.5%).
const TaxRate = 0.025

// Payment derives the tax-inclusive total for an amount. Tax and Total
// are deliberately independent expressions: the tax line is shown
// unrounded (formatting trims it to two decimals) while the total is
// rounded on the cent before formatting. The two can differ by a cent
// from a naive price+tax sum; that behaviour is contractual.
type Payment struct {
	Amount float64 `json:"amount"`
}

func (p Payment) Tax() float64 {
	return p.Amount * TaxRate
}

func (p Payment) Total() float64 {
	return math.Round(p.Amount*(1+TaxRate)*100) / 100
}

// Invoice is produced by billing for an appointment. The treatment is
// supplied independently at invoice time and may differ from the one
// on the appointment.
type Invoice struct {
	ID          int          `json:"id"`
	Appointment *Appointment `json:"appointment"`
	Treatment   Treatment    `json:"treatment"`
	Payment     Payment      `json:"payment"`
}

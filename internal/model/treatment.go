package model

import "fmt"

// Treatment is an immutable catalog value. Prices are in LKR.
type Treatment struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FinalPrice returns the price a payment is computed from. Today it is
// the list price unchanged; discount logic would hook in here.
func (t Treatment) FinalPrice() float64 {
	return t.Price
}

func (t Treatment) Details() string {
	return fmt.Sprintf("Name: %s, Price: LKR %.2f", t.Name, t.Price)
}

// DefaultTreatments returns the fixed catalog the clinic offers.
func DefaultTreatments() []Treatment {
	return []Treatment{
		{ID: 1, Name: "Acne Treatment", Price: 2750.00},
		{ID: 2, Name: "Skin Whitening", Price: 7650.00},
		{ID: 3, Name: "Mole Removal", Price: 3850.00},
		{ID: 4, Name: "Laser Treatment", Price: 12500.00},
	}
}

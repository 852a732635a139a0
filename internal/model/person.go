package model

// Person is the contact capability shared by Patient and Doctor: both
// carry a name, email and contact number and can describe themselves as
// a formatted contact-info line. There is no shared base record; the
// two types implement this independently.
type Person interface {
	ContactInfo() string
}

var (
	_ Person = (*Patient)(nil)
	_ Person = (*Doctor)(nil)
)

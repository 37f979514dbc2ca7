package models

// Student is a row of the official student roster — the authoritative list of
// people eligible to sign up. The roster is read-only to this service: it is
// populated out of band by the institution and never mutated here.
//
// Signup requires an exact match on all four fields.
type Student struct {
	PRN    string `json:"prn"`
	Name   string `json:"name"`
	Course string `json:"course"`
	Year   int    `json:"year"`
}

// TableName returns the name of the database table
// associated with the Student model.
func (s Student) TableName() string {
	return "students"
}

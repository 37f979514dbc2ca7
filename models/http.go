package models

// SignupRequest is the body of POST /signup.
//
// Year is accepted as a number to match the roster schema; Interests is a
// free-form profile string stored verbatim.
type SignupRequest struct {
	PRN       string `json:"prn"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Course    string `json:"course"`
	Year      int    `json:"year"`
	Interests string `json:"interests"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	PRN      string `json:"prn"`
	Password string `json:"password"`
}

// AddItemRequest is the body of POST /marketplace.
//
// The seller is always the authenticated caller. A seller_id field supplied
// by the client is deliberately absent here so it can never be bound.
type AddItemRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
}

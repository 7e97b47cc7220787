package domain

// Feedback is a visitor-submitted platform rating. Name is optional;
// rating runs 1 through 5.
type Feedback struct {
	Name    string `json:"name,omitempty"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

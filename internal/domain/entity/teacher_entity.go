package entity

// Teacher is the profile entity visitors browse and review.
//
// IDs are assigned by the storage layer from a strictly increasing,
// store-scoped counter and are never reused or mutated.
type Teacher struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

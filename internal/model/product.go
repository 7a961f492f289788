package model

// Product represents an item in the storefront catalogue.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image,omitempty"`
}

// ProductInput carries the fields of a create or update request. Pointer
// fields distinguish "absent" from a legitimate zero value, so a partial
// update setting stock to 0 is applied rather than skipped.
type ProductInput struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Rating      *float64 `json:"rating"`
	Image       *string  `json:"image"`
}

package validation

// CreateCustomerRequest is the payload for POST /customers
type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	Address     string `json:"address" validate:"required"`
	Nationality string `json:"nationality" validate:"required"`
}

// UpdateCustomerRequest is the payload for PUT /customers/:id. All fields
// are optional; a field that is present must still satisfy the same rules
// as on creation, but absent fields are not re-checked.
type UpdateCustomerRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,min=10"`
	Address     *string `json:"address" validate:"omitempty"`
	Nationality *string `json:"nationality" validate:"omitempty"`
}

// CreateOrderRequest is the payload for POST /order/:id. The order state is
// never taken from the caller; new orders always start as Requested.
type CreateOrderRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateItemRequest is the payload for POST /item/:id
type CreateItemRequest struct {
	Width  *float64 `json:"width" validate:"required,gt=0"`
	Length *float64 `json:"length" validate:"required,gt=0"`
}

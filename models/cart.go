package models

// CartItem represents a line item in the cart.
// It only references a snack by id; price and stock are resolved against a
// catalog snapshot when the cart is priced.
type CartItem struct {
	SnackID  string `json:"snackId"`
	Quantity int    `json:"quantity"`
}

// CartLineDetail represents a cart line joined with its catalog entry
type CartLineDetail struct {
	CartItem
	Snack     Snack   `json:"snack"`
	LineTotal float64 `json:"lineTotal"` // price * quantity, rounded to cents
}

// CartSummary represents the priced breakdown of a cart.
// Example:
// {
//   "itemCount": 2,
//   "subtotal": 6.48,
//   "tax": 1.04,
//   "total": 7.52
// }
type CartSummary struct {
	ItemCount int     `json:"itemCount"` // Sum of quantities
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// CartResponse represents the response for the cart endpoint.
// Stale is set when the catalog could not be fetched and the summary was
// priced against the last catalog snapshot seen.
type CartResponse struct {
	Items   []CartItem       `json:"items"`
	Lines   []CartLineDetail `json:"lines"`
	Summary CartSummary      `json:"summary"`
	Display CartDisplay      `json:"display"`
	Stale   bool             `json:"stale"`
}

// CartDisplay holds the summary amounts formatted as currency, e.g. "$7.52"
type CartDisplay struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// CartItemsResponse represents the response for cart mutations
type CartItemsResponse struct {
	Items []CartItem `json:"items"`
}

// AddCartItemRequest represents the request body for adding a snack to the cart
// Example: {"snackId": "1"}
type AddCartItemRequest struct {
	SnackID string `json:"snackId"`
}

// UpdateCartItemRequest represents the request body for setting a line quantity
// Example: {"quantity": 3}
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

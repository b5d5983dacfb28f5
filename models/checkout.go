package models

// CheckoutReceipt represents the result of a successful checkout
// Example: {"success": true, "transactionId": "txn_1718000000000_3f0c..."}
type CheckoutReceipt struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
}

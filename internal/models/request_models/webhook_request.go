package request_models

// PaymentNotification is the IPN body sent by the payment provider.
// OrderDescription is set by the purchase flow to the buyer's Discord user
// id before the checkout redirect.
type PaymentNotification struct {
	PaymentStatus    string `json:"payment_status"`
	PaymentID        int64  `json:"payment_id"`
	PurchaseID       uint   `json:"purchase_id"`
	OrderID          string `json:"order_id"`
	OrderDescription string `json:"order_description"`
	PayAddress       string `json:"pay_address"`
}

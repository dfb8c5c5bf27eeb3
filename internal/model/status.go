package model

// OrderStatus is the lifecycle status of an order record.
type OrderStatus string

const (
	OrderStatusPaymentPending OrderStatus = "payment_pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusFailed         OrderStatus = "failed"
	OrderStatusDelivered      OrderStatus = "delivered"

	// OrderStatusUnrecognized is reported for rows carrying a status string
	// this service does not know about.
	OrderStatusUnrecognized OrderStatus = "unrecognized"
)

// ParseOrderStatus maps a raw status string onto the closed enumeration.
// Unknown strings map to OrderStatusUnrecognized rather than failing, since
// the gateway callback path may write statuses this service predates.
func ParseOrderStatus(s string) OrderStatus {
	switch OrderStatus(s) {
	case OrderStatusPaymentPending, OrderStatusProcessing, OrderStatusPaid,
		OrderStatusFailed, OrderStatusDelivered:
		return OrderStatus(s)
	default:
		return OrderStatusUnrecognized
	}
}

// PaymentStatus is the status of a payment transaction as reported by the
// gateway callback.
type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"

	// PaymentStatusUnknown means no transaction record exists yet; the
	// gateway callback may simply not have arrived.
	PaymentStatusUnknown PaymentStatus = "unknown"

	// PaymentStatusUnrecognized covers transaction rows with a status
	// string outside the known set.
	PaymentStatusUnrecognized PaymentStatus = "unrecognized"
)

// ParsePaymentStatus maps a raw status string onto the closed enumeration.
func ParsePaymentStatus(s string) PaymentStatus {
	switch PaymentStatus(s) {
	case PaymentStatusCreated, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusUnknown:
		return PaymentStatus(s)
	default:
		return PaymentStatusUnrecognized
	}
}

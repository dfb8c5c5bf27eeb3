package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeInvalidCoupon    = "INVALID_COUPON"
	ErrCodeExpiredCoupon    = "EXPIRED_COUPON"
	ErrCodeEmptyCart        = "EMPTY_CART"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeNonPositiveTotal = "NON_POSITIVE_TOTAL"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeIdentityMismatch = "IDENTITY_MISMATCH"
	ErrCodeInvalidToken     = "INVALID_TOKEN"
	ErrCodeTokenExpired     = "TOKEN_EXPIRED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodePaymentGateway   = "PAYMENT_GATEWAY_ERROR"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCoupon    = NewDomainError(ErrCodeInvalidCoupon, "Coupon code is not valid")
	ErrExpiredCoupon    = NewDomainError(ErrCodeExpiredCoupon, "Coupon code has expired")
	ErrEmptyCart        = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one item")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrNonPositiveTotal = NewDomainError(ErrCodeNonPositiveTotal, "Order total must be greater than zero")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrIdentityMismatch = NewDomainError(ErrCodeIdentityMismatch, "User identity does not match the session")
	ErrInvalidToken     = NewDomainError(ErrCodeInvalidToken, "Session token is not valid")
	ErrTokenExpired     = NewDomainError(ErrCodeTokenExpired, "Session token has expired")
	ErrUnauthorised     = NewDomainError(ErrCodeUnauthorised, "Authentication is required")
	ErrPaymentGateway   = NewDomainError(ErrCodePaymentGateway, "Payment gateway request failed")
)

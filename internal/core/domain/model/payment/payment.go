package payment

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when validating a zero-value Payment.
var ErrPaymentIsNotConstructed = errors.New(
	"Payment must be created via NewPayment constructor")

// Payment is one attempt to collect money for an order. An order may see
// several attempts; only one of them may reach Captured.
type Payment struct {
	id               kernel.UUID
	paymentReference string
	orderID          kernel.UUID
	amount           kernel.Money
	paymentMethod    string
	status           Status
	transactionID    string
	authorizedAt     *time.Time
	capturedAt       *time.Time
	failedAt         *time.Time
	refundedAt       *time.Time
	failureReason    string

	isConstructed bool
}

// NewPayment creates a pending payment attempt for an order.
func NewPayment(
	id kernel.UUID,
	paymentReference string,
	orderID kernel.UUID,
	amount kernel.Money,
	paymentMethod string,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(paymentReference) == "" {
		return nil, errs.NewValueIsRequiredError("paymentReference")
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := amount.Validate(); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, errs.NewValueIsRequiredError("paymentMethod")
	}

	return &Payment{
		id:               id,
		paymentReference: paymentReference,
		orderID:          orderID,
		amount:           amount,
		paymentMethod:    paymentMethod,
		status:           StatusPending,
		isConstructed:    true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	paymentReference string,
	orderID kernel.UUID,
	amount kernel.Money,
	paymentMethod string,
	status Status,
	transactionID string,
	authorizedAt *time.Time,
	capturedAt *time.Time,
	failedAt *time.Time,
	refundedAt *time.Time,
	failureReason string,
) (*Payment, error) {
	payment, err := NewPayment(id, paymentReference, orderID, amount, paymentMethod)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	payment.status = status
	payment.transactionID = transactionID
	payment.authorizedAt = authorizedAt
	payment.capturedAt = capturedAt
	payment.failedAt = failedAt
	payment.refundedAt = refundedAt
	payment.failureReason = failureReason
	return payment, nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// PaymentReference returns the human-facing reference code.
func (p *Payment) PaymentReference() string {
	return p.paymentReference
}

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the charged amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// PaymentMethod returns the customer's chosen payment method.
func (p *Payment) PaymentMethod() string {
	return p.paymentMethod
}

// Status returns the payment's current lifecycle status.
func (p *Payment) Status() Status {
	return p.status
}

// TransactionID returns the gateway transaction identifier, empty until the
// payment is authorized.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// AuthorizedAt returns when the gateway approved the payment, nil before.
func (p *Payment) AuthorizedAt() *time.Time {
	return p.authorizedAt
}

// CapturedAt returns when the funds were collected, nil before.
func (p *Payment) CapturedAt() *time.Time {
	return p.capturedAt
}

// FailedAt returns when the payment failed, nil unless failed.
func (p *Payment) FailedAt() *time.Time {
	return p.failedAt
}

// RefundedAt returns when captured funds were returned, nil unless refunded.
func (p *Payment) RefundedAt() *time.Time {
	return p.refundedAt
}

// FailureReason returns why the payment failed, empty unless failed.
func (p *Payment) FailureReason() string {
	return p.failureReason
}

// Authorize records the gateway approval with its transaction identifier.
func (p *Payment) Authorize(transactionID string) error {
	if strings.TrimSpace(transactionID) == "" {
		return errs.NewValueIsRequiredError("transactionID")
	}
	status, err := p.status.Authorize()
	if err != nil {
		return err
	}

	now := time.Now()
	p.status = status
	p.transactionID = transactionID
	p.authorizedAt = &now
	return nil
}

// Capture collects previously authorized funds.
func (p *Payment) Capture() error {
	status, err := p.status.Capture()
	if err != nil {
		return err
	}

	now := time.Now()
	p.status = status
	p.capturedAt = &now
	return nil
}

// Fail records a gateway decline or a later processing failure.
func (p *Payment) Fail(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	status, err := p.status.Fail()
	if err != nil {
		return err
	}

	now := time.Now()
	p.status = status
	p.failedAt = &now
	p.failureReason = reason
	return nil
}

// Refund returns captured funds to the customer.
func (p *Payment) Refund() error {
	status, err := p.status.Refund()
	if err != nil {
		return err
	}

	now := time.Now()
	p.status = status
	p.refundedAt = &now
	return nil
}

// Validate checks the payment was created via a constructor.
func (p *Payment) Validate() error {
	if !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// NewPaymentReference generates a reference code like PAY-1A2B3C4D.
func NewPaymentReference() string {
	return "PAY-" + strings.ToUpper(kernel.NewUUID().String()[:8])
}

// NewTransactionID generates a gateway transaction identifier like
// TXN-1A2B3C4D-5E6F.
func NewTransactionID() string {
	return "TXN-" + strings.ToUpper(kernel.NewUUID().String()[:12])
}

package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// PaymentResult is the outcome of a charge attempt. TxID is only set when the
// charge was approved.
type PaymentResult struct {
	Approved bool
	TxID     string
	Reason   string
}

// PaymentGateway authorizes charges. The storefront ships with a simulated
// implementation; a real processor can be substituted behind this interface.
type PaymentGateway interface {
	Charge(ctx context.Context, amount float64) (*PaymentResult, error)
}

// SimulatedGateway approves every positive amount without contacting any
// processor. Non-positive amounts are declined so the decline path stays
// exercisable.
type SimulatedGateway struct{}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

func (g *SimulatedGateway) Charge(_ context.Context, amount float64) (*PaymentResult, error) {
	if amount <= 0 {
		return &PaymentResult{
			Approved: false,
			Reason:   "amount must be greater than zero",
		}, nil
	}

	return &PaymentResult{
		Approved: true,
		TxID:     newTransactionID(),
		Reason:   "payment processed successfully",
	}, nil
}

// newTransactionID builds the tx_<millis>_<suffix> identifier the storefront
// shows on confirmation screens; it doubles as the order id.
func newTransactionID() string {
	return fmt.Sprintf("tx_%d_%s", time.Now().UnixMilli(), randomBase36(9))
}

func randomBase36(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

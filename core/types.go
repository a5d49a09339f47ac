package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Bid is a request to buy a number of lots at a per-unit price.
//
// Amount is in minor currency units and may be negative. Quantity is the
// number of units requested; zero-quantity bids are accepted by the type and
// resolve to zero-quantity sales — filter them upstream if that is undesired.
//
// Ranking treats bids with equal amounts as interchangeable: Less compares
// amounts only. The ID exists for traceability and never participates in
// ordering. It identifies the bid, not a bidder: a bidder submitting two bids
// produces two unrelated ids.
type Bid struct {
	ID       uuid.UUID `json:"id"`
	Amount   int64     `json:"amount"`
	Quantity int       `json:"quantity"`
}

// NewBid creates a bid with a fresh identifier. Resolution uses this for
// partial fills too, so a partially filled sale carries an id of its own
// rather than the originating bid's.
func NewBid(amount int64, quantity int) Bid {
	return Bid{ID: uuid.New(), Amount: amount, Quantity: quantity}
}

// Less reports whether b ranks below other. Only the amount participates;
// equal-amount bids are ranking-equivalent regardless of id or quantity.
func (b Bid) Less(other Bid) bool {
	return b.Amount < other.Amount
}

// Bids is a collection of bids submitted to one resolution.
type Bids []Bid

// Sale records the outcome for one winning bid.
type Sale struct {
	// BidderID is the id of the winning bid. For a partial fill this is the
	// fresh id of the reduced bid synthesized during allocation.
	BidderID uuid.UUID `json:"bidder_id"`
	Amount   int64     `json:"amount"`
	Quantity int       `json:"quantity"`
}

// NewSale creates a sale for the given winning bid id.
func NewSale(bidderID uuid.UUID, amount int64, quantity int) Sale {
	return Sale{BidderID: bidderID, Amount: amount, Quantity: quantity}
}

// Sales is an ordered collection of sales, highest-priced winner first.
type Sales []Sale

// Strategy selects the pricing rule used to resolve bids. The set is closed:
// dispatch in ResolveBids is an exhaustive switch, and adding a rule is a
// compile-time change, not a runtime registration.
type Strategy int

const (
	// SinglePrice charges every winner the lowest winning bid's amount.
	SinglePrice Strategy = iota
	// MultiPrice charges every winner its own bid amount (pay-as-bid).
	MultiPrice
)

func (s Strategy) String() string {
	switch s {
	case SinglePrice:
		return "single_price"
	case MultiPrice:
		return "multi_price"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

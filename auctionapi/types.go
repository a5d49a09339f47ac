package auctionapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudx-io/lotclear/core"
)

// Strategy names used on the wire.
const (
	StrategySinglePrice = "single_price"
	StrategyMultiPrice  = "multi_price"
)

// ParseStrategy maps a wire strategy name to a core.Strategy. An empty name
// selects the default single-price rule, matching the builder's default.
func ParseStrategy(name string) (core.Strategy, error) {
	switch name {
	case StrategySinglePrice, "":
		return core.SinglePrice, nil
	case StrategyMultiPrice:
		return core.MultiPrice, nil
	default:
		return core.SinglePrice, fmt.Errorf("unknown auction strategy %q", name)
	}
}

// WireBid is the transport representation of a core.Bid.
type WireBid struct {
	ID       string `json:"id" cbor:"id"`
	Amount   int64  `json:"amount" cbor:"amount"`
	Quantity int    `json:"quantity" cbor:"quantity"`
}

// WireSale is the transport representation of a core.Sale.
type WireSale struct {
	BidderID string `json:"bidder_id" cbor:"bidder_id"`
	Amount   int64  `json:"amount" cbor:"amount"`
	Quantity int    `json:"quantity" cbor:"quantity"`
}

// ResolutionRequest carries everything needed to resolve one auction: the
// configuration and the bid set. It is a pure value record — how it reaches
// the resolver (queue, RPC, file) is the embedding system's concern.
type ResolutionRequest struct {
	AuctionID    string    `json:"auction_id" cbor:"auction_id"`
	Lots         int       `json:"lots" cbor:"lots"`
	ReservePrice int64     `json:"reserve_price" cbor:"reserve_price"`
	Strategy     string    `json:"strategy,omitempty" cbor:"strategy,omitempty"`
	Bids         []WireBid `json:"bids" cbor:"bids"`
	Timestamp    time.Time `json:"timestamp,omitempty" cbor:"timestamp,omitempty"`
}

// Auction builds the core auction configured by the request.
func (r *ResolutionRequest) Auction() (core.Auction, error) {
	strategy, err := ParseStrategy(r.Strategy)
	if err != nil {
		return core.Auction{}, err
	}
	auction := core.NewAuctionBuilder().
		Lots(r.Lots).
		ReservePrice(r.ReservePrice).
		Strategy(strategy).
		Build()
	return auction, nil
}

// CoreBids converts the request's wire bids into core bids, surfacing
// unparseable ids.
func (r *ResolutionRequest) CoreBids() (core.Bids, error) {
	bids := make(core.Bids, 0, len(r.Bids))
	for _, wire := range r.Bids {
		id, err := uuid.Parse(wire.ID)
		if err != nil {
			return nil, fmt.Errorf("parse bid id %q: %w", wire.ID, err)
		}
		bids = append(bids, core.Bid{ID: id, Amount: wire.Amount, Quantity: wire.Quantity})
	}
	return bids, nil
}

// Resolve runs the configured auction over the request's bids and seals the
// outcome into a ResolutionResult. It fails only on malformed wire data; the
// resolution itself cannot fail.
func (r *ResolutionRequest) Resolve() (*ResolutionResult, error) {
	auction, err := r.Auction()
	if err != nil {
		return nil, err
	}
	bids, err := r.CoreBids()
	if err != nil {
		return nil, err
	}

	sales := auction.ResolveBids(bids)

	return &ResolutionResult{
		AuctionID: r.AuctionID,
		Strategy:  auction.Strategy().String(),
		Sales:     WireSalesFromCore(sales),
		BidsHash:  core.ComputeBidsHash(bids),
		SalesHash: core.ComputeSalesHash(sales),
		Timestamp: time.Now().UTC(),
	}, nil
}

// ResolutionResult carries the outcome of one resolution plus digests binding
// it to the bid set it was produced from.
type ResolutionResult struct {
	AuctionID string     `json:"auction_id" cbor:"auction_id"`
	Strategy  string     `json:"strategy" cbor:"strategy"`
	Sales     []WireSale `json:"sales" cbor:"sales"`
	BidsHash  string     `json:"bids_hash" cbor:"bids_hash"`
	SalesHash string     `json:"sales_hash" cbor:"sales_hash"`
	Timestamp time.Time  `json:"timestamp,omitempty" cbor:"timestamp,omitempty"`
}

// CoreSales converts the result's wire sales into core sales, surfacing
// unparseable ids.
func (r *ResolutionResult) CoreSales() (core.Sales, error) {
	sales := make(core.Sales, 0, len(r.Sales))
	for _, wire := range r.Sales {
		id, err := uuid.Parse(wire.BidderID)
		if err != nil {
			return nil, fmt.Errorf("parse sale bidder id %q: %w", wire.BidderID, err)
		}
		sales = append(sales, core.Sale{BidderID: id, Amount: wire.Amount, Quantity: wire.Quantity})
	}
	return sales, nil
}

// WireBidsFromCore converts core bids to their wire representation.
func WireBidsFromCore(bids core.Bids) []WireBid {
	wire := make([]WireBid, 0, len(bids))
	for _, bid := range bids {
		wire = append(wire, WireBid{ID: bid.ID.String(), Amount: bid.Amount, Quantity: bid.Quantity})
	}
	return wire
}

// WireSalesFromCore converts core sales to their wire representation.
func WireSalesFromCore(sales core.Sales) []WireSale {
	wire := make([]WireSale, 0, len(sales))
	for _, sale := range sales {
		wire = append(wire, WireSale{BidderID: sale.BidderID.String(), Amount: sale.Amount, Quantity: sale.Quantity})
	}
	return wire
}

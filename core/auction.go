package core

// Auction is the immutable configuration for one resolution: the number of
// lots for sale, the reserve price, and the pricing strategy. One Auction may
// resolve any number of independent bid sets; ResolveBids holds no state
// across calls and is safe for concurrent use as long as each call receives
// its own bid slice.
type Auction struct {
	lots         int
	reservePrice int64
	strategy     Strategy
}

// Lots returns the total number of units for sale.
func (a Auction) Lots() int { return a.lots }

// ReservePrice returns the minimum acceptable per-unit amount.
func (a Auction) ReservePrice() int64 { return a.reservePrice }

// Strategy returns the configured pricing strategy.
func (a Auction) Strategy() Strategy { return a.strategy }

// ResolveBids allocates the auction's lots to the given bids and returns the
// resulting sales, highest-priced winner first. It is total over its inputs:
// an empty bid set, zero lots, or no bid clearing the reserve all degrade to
// an empty result, never an error.
func (a Auction) ResolveBids(bids Bids) Sales {
	switch a.strategy {
	case MultiPrice:
		return multiPrice(a, bids)
	case SinglePrice:
		return singlePrice(a, bids)
	default:
		// Out-of-range strategy values resolve like the zero value.
		return singlePrice(a, bids)
	}
}

// AuctionBuilder assembles an Auction, applying defaults for any field left
// unset: one lot, zero reserve price, single-price strategy. No validation is
// performed — negative lots or reserve prices pass through as-is, and the
// resolver's behavior under them, while deterministic, is the caller's
// problem.
type AuctionBuilder struct {
	lots         int
	reservePrice *int64
	strategy     *Strategy
}

// NewAuctionBuilder returns a builder with all defaults in place; Build may
// be called immediately.
func NewAuctionBuilder() *AuctionBuilder {
	return &AuctionBuilder{lots: 1}
}

// Lots sets the number of lots for sale.
func (b *AuctionBuilder) Lots(lots int) *AuctionBuilder {
	b.lots = lots
	return b
}

// ReservePrice sets the minimum acceptable per-unit amount.
func (b *AuctionBuilder) ReservePrice(price int64) *AuctionBuilder {
	b.reservePrice = &price
	return b
}

// Strategy sets the pricing strategy.
func (b *AuctionBuilder) Strategy(s Strategy) *AuctionBuilder {
	b.strategy = &s
	return b
}

// Build assembles the Auction, filling defaults for unset fields.
func (b *AuctionBuilder) Build() Auction {
	auction := Auction{lots: b.lots}
	if b.reservePrice != nil {
		auction.reservePrice = *b.reservePrice
	}
	if b.strategy != nil {
		auction.strategy = *b.strategy
	}
	return auction
}

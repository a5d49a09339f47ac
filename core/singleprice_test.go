package core

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestSinglePrice_NoBids(t *testing.T) {
	auction := NewAuctionBuilder().Lots(10).Build()

	sales := auction.ResolveBids(Bids{})

	check.Equal(t, 0, len(sales))
}

func TestSinglePrice_AllBidsWinWithLargeSupply(t *testing.T) {
	bids := Bids{NewBid(10, 1), NewBid(20, 1)}
	auction := NewAuctionBuilder().Lots(10).Build()

	sales := auction.ResolveBids(bids)

	// Everyone wins, and everyone pays the lowest winning bid's amount.
	assert.Equal(t, 2, len(sales))
	check.Equal(t, int64(10), sales[0].Amount)
	check.Equal(t, int64(10), sales[1].Amount)
}

func TestSinglePrice_SmallSupplyServesHighestBid(t *testing.T) {
	bids := Bids{NewBid(10, 1), NewBid(20, 1)}
	auction := NewAuctionBuilder().Lots(1).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 1, len(sales))
	check.Equal(t, int64(20), sales[0].Amount)
	check.Equal(t, 1, sales[0].Quantity)
	check.Equal(t, bids[1].ID, sales[0].BidderID)
}

func TestSinglePrice_WinnersOrderedHighestFirst(t *testing.T) {
	bids := Bids{NewBid(10, 1), NewBid(30, 1), NewBid(20, 1)}
	auction := NewAuctionBuilder().Lots(3).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 3, len(sales))
	check.Equal(t, bids[1].ID, sales[0].BidderID)
	check.Equal(t, bids[2].ID, sales[1].BidderID)
	check.Equal(t, bids[0].ID, sales[2].BidderID)
}

func TestSinglePrice_PartialFill(t *testing.T) {
	bids := Bids{NewBid(10, 2), NewBid(20, 1)}
	auction := NewAuctionBuilder().Lots(2).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 2, len(sales))
	check.Equal(t, int64(10), sales[0].Amount)
	check.Equal(t, int64(10), sales[1].Amount)
	check.Equal(t, 1, sales[0].Quantity)
	check.Equal(t, 1, sales[1].Quantity)

	// The partial fill is a new bid, so its sale carries a fresh id.
	check.Equal(t, bids[1].ID, sales[0].BidderID)
	check.NotEqual(t, bids[0].ID, sales[1].BidderID)
}

func TestSinglePrice_PartialFillStopsScan(t *testing.T) {
	// After the 20-priced bid takes 1 lot, the 15-priced bid only partially
	// fits; the 10-priced bid would fit in full but is never considered.
	bids := Bids{NewBid(20, 1), NewBid(15, 5), NewBid(10, 1)}
	auction := NewAuctionBuilder().Lots(3).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 2, len(sales))
	check.Equal(t, int64(15), sales[0].Amount)
	check.Equal(t, int64(15), sales[1].Amount)
	check.Equal(t, 1, sales[0].Quantity)
	check.Equal(t, 2, sales[1].Quantity)
}

func TestSinglePrice_ExhaustedSupplyStopsScan(t *testing.T) {
	bids := Bids{NewBid(20, 2), NewBid(10, 1)}
	auction := NewAuctionBuilder().Lots(2).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 1, len(sales))
	check.Equal(t, int64(20), sales[0].Amount)
	check.Equal(t, 2, sales[0].Quantity)
}

func TestSinglePrice_ReservePriceApplied(t *testing.T) {
	bids := Bids{NewBid(55, 1), NewBid(20, 1)}
	auction := NewAuctionBuilder().Lots(2).ReservePrice(50).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 1, len(sales))
	check.Equal(t, int64(55), sales[0].Amount)
}

func TestSinglePrice_BidAtReserveIsEligible(t *testing.T) {
	// The cutoff is strictly below the reserve, so an exact match wins.
	bids := Bids{NewBid(50, 1)}
	auction := NewAuctionBuilder().Lots(1).ReservePrice(50).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 1, len(sales))
	check.Equal(t, int64(50), sales[0].Amount)
}

func TestSinglePrice_AllBidsBelowReserve(t *testing.T) {
	bids := Bids{NewBid(10, 1), NewBid(20, 1)}
	auction := NewAuctionBuilder().Lots(5).ReservePrice(100).Build()

	sales := auction.ResolveBids(bids)

	check.Equal(t, 0, len(sales))
}

func TestSinglePrice_ZeroLots(t *testing.T) {
	bids := Bids{NewBid(10, 1), NewBid(20, 1)}
	auction := NewAuctionBuilder().Lots(0).Build()

	sales := auction.ResolveBids(bids)

	check.Equal(t, 0, len(sales))
}

func TestSinglePrice_ZeroQuantityBidWins(t *testing.T) {
	// Degenerate but accepted: a zero-quantity bid fits trivially and becomes
	// a zero-quantity sale at the clearing price. Filtering these is the
	// caller's job.
	bids := Bids{NewBid(30, 0), NewBid(20, 1)}
	auction := NewAuctionBuilder().Lots(1).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 2, len(sales))
	check.Equal(t, 0, sales[0].Quantity)
	check.Equal(t, int64(20), sales[0].Amount)
	check.Equal(t, int64(20), sales[1].Amount)
}

func TestSinglePrice_NegativeAmountsAllowed(t *testing.T) {
	// Amounts are signed; with a zero reserve a negative bid never clears,
	// but lowering the reserve below it makes it eligible.
	bids := Bids{NewBid(-10, 1)}

	sales := NewAuctionBuilder().Lots(1).Build().ResolveBids(bids)
	check.Equal(t, 0, len(sales))

	sales = NewAuctionBuilder().Lots(1).ReservePrice(-20).Build().ResolveBids(bids)
	assert.Equal(t, 1, len(sales))
	check.Equal(t, int64(-10), sales[0].Amount)
}

func TestSinglePrice_EqualAmountsKeepSubmissionOrder(t *testing.T) {
	// Equal-amount bids are ranking-equivalent; the stable sort keeps their
	// submission order so resolutions are reproducible.
	bids := Bids{NewBid(10, 1), NewBid(10, 1), NewBid(10, 1)}
	auction := NewAuctionBuilder().Lots(2).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 2, len(sales))
	check.Equal(t, bids[0].ID, sales[0].BidderID)
	check.Equal(t, bids[1].ID, sales[1].BidderID)
}

func TestSinglePrice_SupplyNeverExceeded(t *testing.T) {
	auctions := []Auction{
		NewAuctionBuilder().Lots(1).Build(),
		NewAuctionBuilder().Lots(5).Build(),
		NewAuctionBuilder().Lots(5).ReservePrice(15).Build(),
		NewAuctionBuilder().Lots(100).Build(),
	}
	bids := Bids{NewBid(10, 3), NewBid(25, 4), NewBid(15, 2), NewBid(25, 1)}

	for _, auction := range auctions {
		sales := auction.ResolveBids(bids)

		total := 0
		for _, sale := range sales {
			total += sale.Quantity
			check.True(t, sale.Amount >= auction.ReservePrice())
		}
		check.True(t, total <= auction.Lots())
	}
}

func TestSinglePrice_FullSupplyMeansNoPartialFills(t *testing.T) {
	// Total demand fits the supply and every bid clears the reserve, so every
	// bid wins its full quantity.
	bids := Bids{NewBid(10, 3), NewBid(25, 4), NewBid(15, 2)}
	auction := NewAuctionBuilder().Lots(9).Build()

	sales := auction.ResolveBids(bids)

	assert.Equal(t, 3, len(sales))
	check.Equal(t, 4, sales[0].Quantity)
	check.Equal(t, 2, sales[1].Quantity)
	check.Equal(t, 3, sales[2].Quantity)
	for _, sale := range sales {
		check.Equal(t, int64(10), sale.Amount)
	}
}

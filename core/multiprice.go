package core

// multiPrice resolves bids pay-as-bid: allocation is identical to the
// single-price walk, but each winner is charged its own bid amount instead of
// a shared clearing price.
func multiPrice(auction Auction, bids Bids) Sales {
	winners := allocateLots(auction, bids)

	sales := make(Sales, 0, len(winners))
	for _, bid := range winners {
		sales = append(sales, NewSale(bid.ID, bid.Amount, bid.Quantity))
	}
	return sales
}

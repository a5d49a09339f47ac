package core

// singlePrice resolves bids at a uniform clearing price: lots are allocated
// to the highest bids, and every winner is charged the amount of the last
// accepted bid — the lowest winning bid, since allocation walks the bids in
// descending order. This is the last-accepted-bid rule; alternatives such as
// first-rejected-bid are deliberately not offered.
func singlePrice(auction Auction, bids Bids) Sales {
	winners := allocateLots(auction, bids)
	if len(winners) == 0 {
		return Sales{}
	}

	clearingPrice := winners[len(winners)-1].Amount

	sales := make(Sales, 0, len(winners))
	for _, bid := range winners {
		sales = append(sales, NewSale(bid.ID, clearingPrice, bid.Quantity))
	}
	return sales
}

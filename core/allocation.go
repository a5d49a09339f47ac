package core

import "sort"

// allocateLots runs the allocation walk shared by every pricing strategy.
//
// Bids are ordered by amount descending with a stable sort, so equal-amount
// bids keep their submission order and resolutions are reproducible. The walk
// then fills greedily:
//   - a bid strictly below the reserve price ends the scan (everything after
//     it ranks lower);
//   - a bid whose quantity fits the remaining supply wins in full;
//   - otherwise, if any supply remains, a fresh bid for the remaining
//     quantity wins in its place and the scan ends;
//   - otherwise the supply is exhausted and the scan ends.
//
// Winners are returned in acceptance order. Note that once a partial fill
// happens no further bids are considered, even ones that would individually
// fit. The caller's bid slice is never mutated.
func allocateLots(auction Auction, bids Bids) Bids {
	ordered := make(Bids, len(bids))
	copy(ordered, bids)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[j].Less(ordered[i])
	})

	remaining := auction.lots
	winners := make(Bids, 0, len(ordered))
	for _, bid := range ordered {
		if bid.Amount < auction.reservePrice {
			break
		}
		if bid.Quantity <= remaining {
			remaining -= bid.Quantity
			winners = append(winners, bid)
		} else if remaining > 0 {
			winners = append(winners, NewBid(bid.Amount, remaining))
			remaining = 0
			break
		} else {
			break
		}
	}

	return winners
}

package core

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// ComputeBidHash computes the deterministic digest of a single bid.
//
// Formula: SHA256(id + "|" + amount + "|" + quantity)
func ComputeBidHash(bid Bid) string {
	data := fmt.Sprintf("%s|%d|%d", bid.ID, bid.Amount, bid.Quantity)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// ComputeBidsHash computes the digest of a bid set, independent of submission
// order: the same set hashed before and after the resolver's internal sort
// yields the same value.
//
// Formula: SHA256(sorted per-bid hashes joined by "|")
func ComputeBidsHash(bids Bids) string {
	hashes := make([]string, 0, len(bids))
	for _, bid := range bids {
		hashes = append(hashes, ComputeBidHash(bid))
	}
	sort.Strings(hashes)

	hash := sha256.Sum256([]byte(strings.Join(hashes, "|")))
	return fmt.Sprintf("%x", hash)
}

// ComputeSalesHash computes the digest of a resolution outcome. Unlike
// ComputeBidsHash it is order dependent, since winner order is part of the
// result.
//
// Formula: SHA256("bidder_id|amount|quantity" per sale, joined by "||")
func ComputeSalesHash(sales Sales) string {
	parts := make([]string, 0, len(sales))
	for _, sale := range sales {
		parts = append(parts, fmt.Sprintf("%s|%d|%d", sale.BidderID, sale.Amount, sale.Quantity))
	}

	hash := sha256.Sum256([]byte(strings.Join(parts, "||")))
	return fmt.Sprintf("%x", hash)
}

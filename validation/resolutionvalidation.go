// Package validation re-verifies auction resolution results.
//
// Given the request a result claims to answer, it checks the structural
// invariants every resolution must satisfy (supply cap, reserve cutoff,
// pricing rule, per-bid quantity cap) and recomputes the digests binding the
// result to its bid set. It never re-runs the auction: partial fills carry
// fresh ids, so a re-resolution would not be byte-identical, and the point is
// to verify the result in hand, not to produce another one.
package validation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cloudx-io/lotclear/auctionapi"
	"github.com/cloudx-io/lotclear/core"
)

// ResolutionValidationInput pairs a result with the request it claims to
// resolve.
type ResolutionValidationInput struct {
	Request *auctionapi.ResolutionRequest
	Result  *auctionapi.ResolutionResult
}

// ResolutionValidationResult holds the outcome of each individual check.
// Call IsValid for the overall verdict; ValidationDetails explains failures.
type ResolutionValidationResult struct {
	// SupplyValid: the sum of sale quantities does not exceed the lots.
	SupplyValid bool `json:"supply_valid"`
	// ReserveValid: every sale's amount is at or above the reserve price.
	ReserveValid bool `json:"reserve_valid"`
	// PricingValid: the sale amounts follow the configured pricing rule.
	PricingValid bool `json:"pricing_valid"`
	// QuantityValid: no sale is awarded more units than its bid requested.
	QuantityValid bool `json:"quantity_valid"`
	// BidsHashValid: the recorded bids digest matches the request's bid set.
	BidsHashValid bool `json:"bids_hash_valid"`
	// SalesHashValid: the recorded sales digest matches the listed sales.
	SalesHashValid bool `json:"sales_hash_valid"`

	ValidationDetails []string `json:"validation_details,omitempty"`
}

// IsValid reports whether every check passed.
func (r *ResolutionValidationResult) IsValid() bool {
	return r.SupplyValid &&
		r.ReserveValid &&
		r.PricingValid &&
		r.QuantityValid &&
		r.BidsHashValid &&
		r.SalesHashValid
}

func (r *ResolutionValidationResult) fail(check *bool, format string, args ...any) {
	*check = false
	r.ValidationDetails = append(r.ValidationDetails, fmt.Sprintf(format, args...))
}

// ValidateResolution validates a resolution result against its request.
//
// It returns an error only when validation cannot be performed at all
// (malformed ids, unknown strategy, missing input); a result that merely
// fails its checks comes back with the failing checks false and an entry in
// ValidationDetails for each.
func ValidateResolution(input *ResolutionValidationInput) (*ResolutionValidationResult, error) {
	if input == nil || input.Request == nil || input.Result == nil {
		return nil, fmt.Errorf("validation input requires both a request and a result")
	}

	auction, err := input.Request.Auction()
	if err != nil {
		return nil, fmt.Errorf("parse auction configuration: %w", err)
	}
	bids, err := input.Request.CoreBids()
	if err != nil {
		return nil, fmt.Errorf("parse request bids: %w", err)
	}
	sales, err := input.Result.CoreSales()
	if err != nil {
		return nil, fmt.Errorf("parse result sales: %w", err)
	}

	result := &ResolutionValidationResult{
		SupplyValid:    true,
		ReserveValid:   true,
		PricingValid:   true,
		QuantityValid:  true,
		BidsHashValid:  true,
		SalesHashValid: true,
	}

	validateSupply(result, auction, sales)
	validateReserve(result, auction, sales)
	validatePricing(result, auction, bids, sales)
	validateQuantities(result, bids, sales)
	validateHashes(result, input.Result, bids, sales)

	return result, nil
}

func validateSupply(result *ResolutionValidationResult, auction core.Auction, sales core.Sales) {
	total := 0
	for _, sale := range sales {
		total += sale.Quantity
	}
	if total > auction.Lots() {
		result.fail(&result.SupplyValid, "sold %d units but only %d lots were for sale", total, auction.Lots())
	}
}

func validateReserve(result *ResolutionValidationResult, auction core.Auction, sales core.Sales) {
	for _, sale := range sales {
		if sale.Amount < auction.ReservePrice() {
			result.fail(&result.ReserveValid, "sale %s amount %d is below reserve price %d", sale.BidderID, sale.Amount, auction.ReservePrice())
		}
	}
}

// validatePricing checks the strategy's price rule. Single-price: all sales
// share one amount, and that amount is the lowest among them. Multi-price:
// each sale's amount equals its originating bid's amount; a partial-fill sale
// carries a fresh id the request never saw, so those are matched by amount
// against the bid set instead.
func validatePricing(result *ResolutionValidationResult, auction core.Auction, bids core.Bids, sales core.Sales) {
	if len(sales) == 0 {
		return
	}

	bidsByID := make(map[uuid.UUID]core.Bid, len(bids))
	amounts := make(map[int64]bool, len(bids))
	for _, bid := range bids {
		bidsByID[bid.ID] = bid
		amounts[bid.Amount] = true
	}

	switch auction.Strategy() {
	case core.MultiPrice:
		for _, sale := range sales {
			if bid, known := bidsByID[sale.BidderID]; known {
				if sale.Amount != bid.Amount {
					result.fail(&result.PricingValid, "sale %s charged %d but its bid offered %d", sale.BidderID, sale.Amount, bid.Amount)
				}
			} else if !amounts[sale.Amount] {
				result.fail(&result.PricingValid, "sale %s charged %d, an amount no bid offered", sale.BidderID, sale.Amount)
			}
		}
	default:
		clearing := sales[0].Amount
		for _, sale := range sales {
			if sale.Amount != clearing {
				result.fail(&result.PricingValid, "sale %s charged %d, breaking the uniform clearing price %d", sale.BidderID, sale.Amount, clearing)
			}
			if sale.Amount < clearing {
				clearing = sale.Amount
			}
		}
		if !amounts[clearing] {
			result.fail(&result.PricingValid, "clearing price %d matches no bid's amount", clearing)
		}
	}
}

// validateQuantities checks each sale against its originating bid's request.
// Partial-fill sales have ids unknown to the request; for those the only
// bound available is the lot supply, which validateSupply already enforces.
func validateQuantities(result *ResolutionValidationResult, bids core.Bids, sales core.Sales) {
	bidsByID := make(map[uuid.UUID]core.Bid, len(bids))
	for _, bid := range bids {
		bidsByID[bid.ID] = bid
	}

	for _, sale := range sales {
		bid, known := bidsByID[sale.BidderID]
		if !known {
			continue
		}
		if sale.Quantity > bid.Quantity {
			result.fail(&result.QuantityValid, "sale %s awarded %d units but its bid requested %d", sale.BidderID, sale.Quantity, bid.Quantity)
		}
	}
}

func validateHashes(result *ResolutionValidationResult, wire *auctionapi.ResolutionResult, bids core.Bids, sales core.Sales) {
	if computed := core.ComputeBidsHash(bids); computed != wire.BidsHash {
		result.fail(&result.BidsHashValid, "bids hash mismatch: computed %s, recorded %s", computed, wire.BidsHash)
	}
	if computed := core.ComputeSalesHash(sales); computed != wire.SalesHash {
		result.fail(&result.SalesHashValid, "sales hash mismatch: computed %s, recorded %s", computed, wire.SalesHash)
	}
}

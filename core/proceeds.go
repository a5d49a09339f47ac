package core

import "github.com/shopspring/decimal"

// Amounts are minor currency units; two decimal places per major unit.
const minorUnitExponent int32 = -2

// ResolutionSummary aggregates a resolution outcome for reporting. Monetary
// figures are expressed in major currency units.
type ResolutionSummary struct {
	UnitsSold   int
	UnitsUnsold int

	TotalProceeds decimal.Decimal

	// AveragePrice is the proceeds-weighted average per-unit price; zero when
	// no units were sold.
	AveragePrice decimal.Decimal

	// ClearingPrice is the uniform per-unit price of a single-price
	// resolution; nil for pay-as-bid resolutions and empty results.
	ClearingPrice *decimal.Decimal
}

// Summarize derives reporting figures from a resolution outcome. It is a pure
// derivation over the returned sales and does not re-run the auction.
func Summarize(auction Auction, sales Sales) ResolutionSummary {
	summary := ResolutionSummary{
		TotalProceeds: decimal.Zero,
		AveragePrice:  decimal.Zero,
	}

	for _, sale := range sales {
		summary.UnitsSold += sale.Quantity

		price := decimal.New(sale.Amount, minorUnitExponent)
		quantity := decimal.NewFromInt(int64(sale.Quantity))
		summary.TotalProceeds = summary.TotalProceeds.Add(price.Mul(quantity))
	}

	if unsold := auction.Lots() - summary.UnitsSold; unsold > 0 {
		summary.UnitsUnsold = unsold
	}

	if summary.UnitsSold > 0 {
		sold := decimal.NewFromInt(int64(summary.UnitsSold))
		summary.AveragePrice = summary.TotalProceeds.DivRound(sold, 4)
	}

	if auction.Strategy() == SinglePrice && len(sales) > 0 {
		clearing := decimal.New(sales[0].Amount, minorUnitExponent)
		summary.ClearingPrice = &clearing
	}

	return summary
}

package domain

import "github.com/shopspring/decimal"

// ProjectionPoint is one cycle's position in a projected balance walk.
// Points are produced fresh on every projection call and never persisted
// by the engine.
type ProjectionPoint struct {
	Date       Date            `json:"date"`
	CycleIndex int             `json:"cycleIndex"`
	Balance    decimal.Decimal `json:"balance"`
	CycleStart Date            `json:"cycleStart"`
	CycleEnd   Date            `json:"cycleEnd"`
}

// RepaymentCost is the total cost of clearing a debt: everything paid
// including interest, and the number of cycles it took. Cycles equal to
// the walk's cap means the debt did not clear within the cap.
type RepaymentCost struct {
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Cycles    int             `json:"cycles"`
}

// InterestPaid returns how much of the total went to interest rather than
// principal.
func (rc RepaymentCost) InterestPaid(startingBalance decimal.Decimal) decimal.Decimal {
	interest := rc.TotalPaid.Sub(startingBalance)
	if interest.IsNegative() {
		return decimal.Zero
	}
	return interest
}

// FinalBalance returns the last point's balance, or zero for an empty
// projection.
func FinalBalance(points []ProjectionPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	return points[len(points)-1].Balance
}

// Package betting holds the pure rules for slip outcomes and advisor pricing.
package betting

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/tipsters/internal/domain"
)

// AdvisorThreshold is the GP balance from which a user can sell slips.
const AdvisorThreshold = 10000

var (
	tierLow    = decimal.NewFromInt(10000)
	tierMid    = decimal.NewFromInt(15000)
	tierHigh   = decimal.NewFromInt(18000)
	priceLow   = decimal.RequireFromString("2.90")
	priceMid   = decimal.RequireFromString("3.50")
	priceHigh  = decimal.RequireFromString("4.00")
	shareRatio = decimal.RequireFromString("0.50")
	overLine   = decimal.RequireFromString("2.5")
)

// SelectionWins evaluates one leg against a score. A negative goal count
// means the score is unknown and the leg is not winning.
func SelectionWins(market, selection string, gh, ga int) bool {
	if gh < 0 || ga < 0 {
		return false
	}

	switch market {
	case "Match Winner":
		switch selection {
		case "Home":
			return gh > ga
		case "Draw":
			return gh == ga
		case "Away":
			return ga > gh
		}
	case "Double Chance":
		switch selection {
		case "Home/Draw", "Home or Draw":
			return gh >= ga
		case "Draw/Away", "Draw or Away":
			return ga >= gh
		case "Home/Away", "Home or Away":
			return gh != ga
		}
	case "Both Teams Score":
		switch selection {
		case "Yes":
			return gh > 0 && ga > 0
		case "No":
			return gh == 0 || ga == 0
		}
	case "Goals Over/Under", "Over/Under":
		total := decimal.NewFromInt(int64(gh + ga))
		switch selection {
		case "Over 2.5":
			return total.GreaterThan(overLine)
		case "Under 2.5":
			return total.LessThan(overLine)
		}
	}
	return false
}

// Wins evaluates a stored selection with its joined match score.
func Wins(s domain.Selection) bool {
	return SelectionWins(s.Market, s.Selection, s.GoalsHome, s.GoalsAway)
}

// SlipStatus is WON or LOST only once every match is finished.
func SlipStatus(selections []domain.Selection) domain.SlipStatus {
	if len(selections) == 0 {
		return domain.SlipLive
	}

	allWinning := true
	for _, s := range selections {
		if s.MatchStatus != domain.MatchFinished {
			return domain.SlipLive
		}
		if !Wins(s) {
			allWinning = false
		}
	}
	if allWinning {
		return domain.SlipWon
	}
	return domain.SlipLost
}

// UnlockPrice is the euro price of an advisor slip for the advisor's current
// GP balance. Zero means not for sale.
func UnlockPrice(balance float64) decimal.Decimal {
	b := decimal.NewFromFloat(balance)
	switch {
	case b.GreaterThanOrEqual(tierHigh):
		return priceHigh
	case b.GreaterThanOrEqual(tierMid):
		return priceMid
	case b.GreaterThanOrEqual(tierLow):
		return priceLow
	default:
		return decimal.Zero
	}
}

// AdvisorShare is the advisor's half of a sale, rounded to cents.
func AdvisorShare(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(shareRatio).Round(2)
}

func IsAdvisor(balance float64) bool {
	return balance >= AdvisorThreshold
}

// RoundMoney rounds an amount to the cent, the precision money columns store.
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

func PotentialWin(stake, totalOdds float64) float64 {
	return decimal.NewFromFloat(stake).
		Mul(decimal.NewFromFloat(totalOdds)).
		Round(2).
		InexactFloat64()
}

// CombinedOdds multiplies leg odds into the slip total.
func CombinedOdds(odds []float64) float64 {
	if len(odds) == 0 {
		return 0
	}
	total := decimal.NewFromInt(1)
	for _, o := range odds {
		total = total.Mul(decimal.NewFromFloat(o))
	}
	return total.Round(2).InexactFloat64()
}

// FormatPrice renders a euro price with two decimals.
func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(2)
}

package display

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Pure presentation helpers shared by listing cards and the detail view.
// Every function takes its inputs explicitly; time based ones take the
// current time as a parameter instead of reading the clock.

// Currency renders a whole-dollar USD amount with thousands separators.
// Negative amounts keep their sign in front of the dollar symbol.
func Currency(amount float64) string {
	n := decimal.NewFromFloat(amount).Round(0).IntPart()
	if n < 0 {
		return "-$" + humanize.Comma(-n)
	}
	return "$" + humanize.Comma(n)
}

// CompactCount abbreviates large counts to one decimal place, e.g.
// 1250000 -> "1.3M", 8500 -> "8.5K", 850 -> "850". Rounding is half
// away from zero.
func CompactCount(n float64) string {
	switch {
	case n >= 1e6:
		return decimal.NewFromFloat(n / 1e6).StringFixed(1) + "M"
	case n >= 1e3:
		return decimal.NewFromFloat(n / 1e3).StringFixed(1) + "K"
	default:
		return decimal.NewFromFloat(n).Round(0).String()
	}
}

// TimeRemaining is the coarse countdown used on listing cards:
// "{days}d {hours}h" while days remain, "{hours}h" under a day, and
// "Ended" once the end time has passed.
func TimeRemaining(end, now time.Time) string {
	diff := end.Sub(now)
	if diff <= 0 {
		return "Ended"
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	return fmt.Sprintf("%dh", hours)
}

// TimeRemainingFine is the detail-view countdown. It appends minutes and
// drops zero-valued leading units.
func TimeRemainingFine(end, now time.Time) string {
	diff := end.Sub(now)
	if diff <= 0 {
		return "Ended"
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// ProfitMargin returns monthly profit over revenue as a percentage.
// Zero revenue returns 0 rather than propagating a division fault.
func ProfitMargin(monthlyProfit, monthlyRevenue float64) float64 {
	if monthlyRevenue == 0 {
		return 0
	}
	return monthlyProfit / monthlyRevenue * 100
}

// AnnualROI returns the trailing yearly profit over asking price as a
// percentage. Zero price returns 0.
func AnnualROI(annualProfit, price float64) float64 {
	if price == 0 {
		return 0
	}
	return annualProfit / price * 100
}

// ROIFromMonthly annualizes a monthly profit figure before computing ROI
func ROIFromMonthly(monthlyProfit, price float64) float64 {
	return AnnualROI(monthlyProfit*12, price)
}

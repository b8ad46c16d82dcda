package game

import "github.com/appengine-ltd/short-order/internal/config"

const StarCriteria = 5

// StarBreakdown is, in order: perfect day, side on menu, drink on menu,
// complexity past the low bar, complexity past the high bar.
type StarBreakdown [StarCriteria]bool

func (b StarBreakdown) Count() int {
	n := 0
	for _, ok := range b {
		if ok {
			n++
		}
	}
	return n
}

var StarLabels = [StarCriteria]string{
	"Perfect service",
	"Sides on the menu",
	"Drinks on the menu",
	"Varied menu",
	"Ambitious menu",
}

// Rate scores the day at closing. A perfect day latches the standing
// service star; the menu criteria are judged fresh every day.
func Rate(day *DayState, menu Menu, complexity float64, b config.Balance) StarBreakdown {
	if day.PerfectDay {
		day.EarnedServiceStar = true
	}
	return StarBreakdown{
		day.EarnedServiceStar,
		len(menu.Sides) > 0,
		len(menu.Drinks) > 0,
		complexity >= b.ComplexityStarLow,
		complexity >= b.ComplexityStarHigh,
	}
}

type DaySummary struct {
	Day       int           `json:"day"`
	Earned    float64       `json:"earned"`
	BagsSold  int           `json:"bags_sold"`
	Served    int           `json:"served"`
	Late      int           `json:"late"`
	GivenUp   int           `json:"given_up"`
	ClosingAt float64       `json:"closing_at"`
	Stars     StarBreakdown `json:"stars"`
}

func Summarize(day *DayState, stars StarBreakdown) DaySummary {
	closing := 0.0
	if day.ClosingAt != nil {
		closing = *day.ClosingAt
	}
	return DaySummary{
		Day:       day.Day,
		Earned:    day.DailyEarned,
		BagsSold:  day.DailyBagsSold,
		Served:    day.DailyServed,
		Late:      day.DailyLate,
		GivenUp:   day.DailyGivenUp,
		ClosingAt: closing,
		Stars:     stars,
	}
}

package game

// DayState is the day economy threaded through the scheduler, the
// fulfillment step and the rating.
type DayState struct {
	Day               int      `json:"day"`
	Money             float64  `json:"money"`
	DailyEarned       float64  `json:"daily_earned"`
	DailyBagsSold     int      `json:"daily_bags_sold"`
	DailyServed       int      `json:"daily_served"`
	DailyLate         int      `json:"daily_late"`
	DailyGivenUp      int      `json:"daily_given_up"`
	PerfectDay        bool     `json:"perfect_day"`
	EarnedServiceStar bool     `json:"earned_service_star"`
	ClosingAt         *float64 `json:"closing_at,omitempty"`
	PrepRemaining     float64  `json:"prep_remaining"`
	PrepDuration      float64  `json:"prep_duration"`
}

func NewDayState(day int, money float64) DayState {
	if day < 1 {
		day = 1
	}
	d := DayState{Day: day, Money: money}
	d.BeginDay()
	return d
}

// BeginDay clears the daily counters. Money and the standing service star
// carry over.
func (d *DayState) BeginDay() {
	d.DailyEarned = 0
	d.DailyBagsSold = 0
	d.DailyServed = 0
	d.DailyLate = 0
	d.DailyGivenUp = 0
	d.PerfectDay = true
	d.ClosingAt = nil
	d.PrepRemaining = 0
	d.PrepDuration = 0
}

func (d *DayState) Credit(amount float64) {
	d.Money += amount
	d.DailyEarned += amount
}

func (d *DayState) Closed() bool {
	return d.ClosingAt != nil
}

// PrepRatio is the fraction of prep time remaining, 0 once service opens.
func (d *DayState) PrepRatio() float64 {
	if d.PrepDuration <= 0 || d.PrepRemaining <= 0 {
		return 0
	}
	return min(d.PrepRemaining/d.PrepDuration, 1)
}

package game

import "github.com/dechi99991/cooking-sim/internal/event"

// Phase is one step of a simulated day.
type Phase string

const (
	PhaseBreakfast        Phase = "breakfast"
	PhaseGoToWork         Phase = "go_to_work"
	PhaseLunch            Phase = "lunch"
	PhaseLeaveWork        Phase = "leave_work"
	PhaseShopping         Phase = "shopping"
	PhaseDinner           Phase = "dinner"
	PhaseOnlineShopping   Phase = "online_shopping"
	PhaseSleep            Phase = "sleep"
	PhaseHolidayShopping1 Phase = "holiday_shopping_1"
	PhaseHolidayLunch     Phase = "holiday_lunch"
	PhaseHolidayShopping2 Phase = "holiday_shopping_2"
)

var weekdayPhases = []Phase{
	PhaseBreakfast,
	PhaseGoToWork,
	PhaseLunch,
	PhaseLeaveWork,
	PhaseShopping,
	PhaseDinner,
	PhaseOnlineShopping,
	PhaseSleep,
}

var holidayPhases = []Phase{
	PhaseBreakfast,
	PhaseHolidayShopping1,
	PhaseHolidayLunch,
	PhaseHolidayShopping2,
	PhaseDinner,
	PhaseOnlineShopping,
	PhaseSleep,
}

// Weekday indices within the simulated calendar. Day mod 7 gives the weekday;
// index 5 and up is the weekend, and index 6 never occurs because leaving a
// Saturday always skips straight to Monday.
const (
	weekdayMonday   = 0
	weekdayFriday   = 4
	weekdaySaturday = 5
)

func Weekday(day int) int { return day % 7 }

func IsHolidayDay(day int) bool { return Weekday(day) >= 5 }

// phaseTiming maps a phase entry to the event checkpoint it triggers.
// Breakfast's wake_up check runs at day start instead, since a day begins
// already in Breakfast.
func phaseTiming(p Phase) (event.Timing, bool) {
	switch p {
	case PhaseGoToWork:
		return event.TimingGoToWork, true
	case PhaseLunch, PhaseHolidayLunch:
		return event.TimingAfterLunch, true
	case PhaseLeaveWork:
		return event.TimingLeaveWork, true
	case PhaseShopping, PhaseHolidayShopping1, PhaseHolidayShopping2:
		return event.TimingAtShop, true
	case PhaseDinner:
		return event.TimingAfterWork, true
	case PhaseSleep:
		return event.TimingNight, true
	default:
		return "", false
	}
}

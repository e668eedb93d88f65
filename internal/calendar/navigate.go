package calendar

// Direction is a month-stepper direction.
type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

// Navigate steps the displayed month by one, rolling over year
// boundaries. Month is 0-11.
func Navigate(year, month int, dir Direction) (int, int) {
	switch dir {
	case Next:
		if month == 11 {
			return year + 1, 0
		}
		return year, month + 1
	case Prev:
		if month == 0 {
			return year - 1, 11
		}
		return year, month - 1
	}
	return year, month
}

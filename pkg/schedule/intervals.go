package schedule

// Intervals maps a task-type label to the recommended number of days
// after the base date. Unknown labels are worth zero days.
type Intervals map[string]int

var defaultIntervals = Intervals{
	"파종-정식": 0,
	"물주기": 1,
	"비료주기": 7,
	"약치기": 14,
	"풀매기": 21,
	"가지치기": 30,
	"수확": 60,
	"토양관리": 7,
	"병해충방제": 10,
	"저장-포장": 3,
	"기타": 0,
}

// DefaultIntervals returns a fresh copy of the built-in table.
func DefaultIntervals() Intervals {
	out := make(Intervals, len(defaultIntervals))
	for k, v := range defaultIntervals {
		out[k] = v
	}
	return out
}

func (iv Intervals) Days(taskType string) int {
	if d, ok := iv[taskType]; ok && d > 0 {
		return d
	}
	return 0
}

// Merge returns a copy of iv with every entry of over applied on top.
func (iv Intervals) Merge(over Intervals) Intervals {
	out := make(Intervals, len(iv)+len(over))
	for k, v := range iv {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

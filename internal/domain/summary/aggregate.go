package summary

import (
	"sort"
	"strconv"
)

// FallbackVertical is the bucket label for rows whose vertical is empty.
// Rows are binned under it rather than dropped.
const FallbackVertical = "N/A"

// Row is one member's derived attendance summary. Rows are recomputed from
// scratch on every fetch and never persisted.
type Row struct {
	RollNo     string     `json:"roll_no"`
	Name       string     `json:"name"`
	Vertical   string     `json:"vertical"`
	Department string     `json:"department"`
	Year       int        `json:"year"`
	Attended   int        `json:"attended"`
	Total      int        `json:"total_meetings"`
	Percentage Percentage `json:"percentage"`
}

// Mark is one member's presence flag within a meeting roster.
type Mark struct {
	RollNo   string
	Attended bool
}

// MeetingRoster is the attendance roster of a single meeting.
type MeetingRoster struct {
	MeetingID string
	Marks     []Mark
}

// BuildAttendanceMap folds per-meeting rosters into roll_no -> attended
// count. A roll number accumulates +1 for every meeting where its flag is
// true; members absent from a roster simply accumulate nothing from that
// meeting. Summation is commutative, so roster order does not matter.
// Members who never attended are absent from the map; read them through
// the map's zero value.
func BuildAttendanceMap(rosters []MeetingRoster) map[string]int {
	attended := make(map[string]int)
	for _, roster := range rosters {
		for _, mark := range roster.Marks {
			if mark.Attended {
				attended[mark.RollNo]++
			}
		}
	}
	return attended
}

// Order is a ranking direction.
type Order string

const (
	Desc Order = "desc"
	Asc  Order = "asc"
)

// Rank orders rows by percentage, highest first by default. The sentinel
// ranks as zero. The sort is stable: ties keep their input order.
func Rank(rows []Row, order Order) []Row {
	ranked := make([]Row, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		if order == Asc {
			return ranked[i].Percentage.rank() < ranked[j].Percentage.rank()
		}
		return ranked[i].Percentage.rank() > ranked[j].Percentage.rank()
	})
	return ranked
}

// VerticalAverage is the mean of the numeric member percentages within one
// vertical, for dashboard display.
type VerticalAverage struct {
	Vertical   string  `json:"vertical"`
	Percentage float64 `json:"percentage"`
}

// GroupByVertical partitions rows by exact vertical string and averages the
// numeric percentages of each partition. Not-applicable rows are excluded
// from both the numerator and the denominator; a partition with no numeric
// rows averages to 0, a quirk the dashboards rely on for a numeric display
// default. Output follows first-seen vertical order.
func GroupByVertical(rows []Row) []VerticalAverage {
	type bucket struct {
		total float64
		count int
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, row := range rows {
		vertical := row.Vertical
		if vertical == "" {
			vertical = FallbackVertical
		}
		b, ok := buckets[vertical]
		if !ok {
			b = &bucket{}
			buckets[vertical] = b
			order = append(order, vertical)
		}
		if value, numeric := row.Percentage.Value(); numeric {
			b.total += value
			b.count++
		}
	}

	averages := make([]VerticalAverage, 0, len(order))
	for _, vertical := range order {
		b := buckets[vertical]
		avg := 0.0
		if b.count > 0 {
			avg = b.total / float64(b.count)
		}
		averages = append(averages, VerticalAverage{Vertical: vertical, Percentage: avg})
	}
	return averages
}

// Filter selects rows matching every set criterion. Vertical matches by
// exact string equality; Year compares against the row's year rendered as a
// string, mirroring how a select input stores it. Unset criteria pass
// everything through.
type Filter struct {
	Vertical string
	Year     string
}

// Apply returns the rows satisfying the filter.
func (f Filter) Apply(rows []Row) []Row {
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if f.Vertical != "" && row.Vertical != f.Vertical {
			continue
		}
		if f.Year != "" && strconv.Itoa(row.Year) != f.Year {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

package stats

import "roomly/models"

// MonthlyRoomTypeCount maps month (1-12) x room type to a reservation count.
// Every month and every known room type is present, zero-filled, so chart
// rendering never has to special-case missing buckets.
type MonthlyRoomTypeCount map[int]map[models.RoomType]int

// NewMonthlyRoomTypeCount returns an all-zero 12-month count.
func NewMonthlyRoomTypeCount() MonthlyRoomTypeCount {
	counts := make(MonthlyRoomTypeCount, 12)
	for month := 1; month <= 12; month++ {
		counts[month] = make(map[models.RoomType]int, len(models.RoomTypes()))
		for _, rt := range models.RoomTypes() {
			counts[month][rt] = 0
		}
	}
	return counts
}

// AggregateByMonthAndType buckets records by the month of their start date and
// by room type. Records whose room type falls outside the closed set are
// skipped; the chart categories are fixed.
func AggregateByMonthAndType(records []models.ReservationRecord) MonthlyRoomTypeCount {
	counts := NewMonthlyRoomTypeCount()
	for _, r := range records {
		rt, ok := models.ParseRoomType(r.RoomType)
		if !ok {
			continue
		}
		if r.StartDate.IsZero() {
			continue
		}
		counts[int(r.StartDate.Month())][rt]++
	}
	return counts
}

// Series flattens one room type's counts into a January-to-December slice, the
// shape a bar chart consumes.
func (c MonthlyRoomTypeCount) Series(rt models.RoomType) []int {
	series := make([]int, 12)
	for month := 1; month <= 12; month++ {
		series[month-1] = c[month][rt]
	}
	return series
}

// Package catalog holds the fixed set of bookable space offerings.
//
// The table is compiled into the binary and shared by the booking ledger
// and by HTTP clients through GET /api/spaces.
package catalog

import "time"

// BillingPeriod is the unit a sub-type price is charged per.
type BillingPeriod string

const (
	PeriodHour  BillingPeriod = "hour"
	PeriodDay   BillingPeriod = "day"
	PeriodMonth BillingPeriod = "month"
)

// Offer is a priced sub-type of a space.
type Offer struct {
	Name   string
	Price  int64
	Period BillingPeriod
}

// Space groups offers of one space type.
type Space struct {
	Type    string
	Name    string
	Options []Offer
}

const (
	PrivateCabin   = "private-cabin"
	OpenDesk       = "open-desk"
	Conference     = "conference"
	PrivateChamber = "private-chamber"
)

var spaces = []Space{
	{
		Type: PrivateCabin,
		Name: "Private Cabins",
		Options: []Offer{
			{Name: "Type 1", Price: 35000, Period: PeriodMonth},
			{Name: "Type 2", Price: 25000, Period: PeriodMonth},
			{Name: "Type 3", Price: 20000, Period: PeriodMonth},
		},
	},
	{
		Type: OpenDesk,
		Name: "Open Desk Area",
		Options: []Offer{
			{Name: "Monthly", Price: 5000, Period: PeriodMonth},
			{Name: "Day Pass", Price: 350, Period: PeriodDay},
		},
	},
	{
		Type: Conference,
		Name: "Conference Room",
		Options: []Offer{
			{Name: "Hourly", Price: 2000, Period: PeriodHour},
		},
	},
	{
		Type: PrivateChamber,
		Name: "Private Chamber",
		Options: []Offer{
			{Name: "Day Pass", Price: 2000, Period: PeriodDay},
		},
	},
}

// Spaces returns a copy of the catalog.
func Spaces() []Space {
	out := make([]Space, len(spaces))
	for i, s := range spaces {
		out[i] = Space{Type: s.Type, Name: s.Name, Options: append([]Offer(nil), s.Options...)}
	}
	return out
}

// Lookup finds the offer for spaceType and subType.
func Lookup(spaceType, subType string) (Offer, bool) {
	for _, s := range spaces {
		if s.Type != spaceType {
			continue
		}
		for _, o := range s.Options {
			if o.Name == subType {
				return o, true
			}
		}
		return Offer{}, false
	}
	return Offer{}, false
}

// Length returns the wall-clock length of one billing period. A month is 30 days.
func (p BillingPeriod) Length() time.Duration {
	switch p {
	case PeriodHour:
		return time.Hour
	case PeriodDay:
		return 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// Quote prices the span between start and end, charging every started period.
// At least one period is always charged.
func Quote(o Offer, start, end time.Time) int64 {
	span := end.Sub(start)
	unit := o.Period.Length()
	units := int64(span / unit)
	if span%unit != 0 {
		units++
	}
	if units < 1 {
		units = 1
	}
	return units * o.Price
}

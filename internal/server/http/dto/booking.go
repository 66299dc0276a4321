package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp accepts RFC 3339 timestamps or plain YYYY-MM-DD dates and
// always renders as RFC 3339 in UTC.
type Timestamp time.Time

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*t = Timestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339))
}

// Time returns the underlying time value.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// BookingRequest describes booking creation payload. UserID may be omitted.
type BookingRequest struct {
	UserID      string    `json:"userId"`
	SpaceType   string    `json:"spaceType"`
	SubType     string    `json:"subType"`
	StartDate   Timestamp `json:"startDate"`
	EndDate     Timestamp `json:"endDate"`
	TotalAmount int64     `json:"totalAmount"`
}

// BookingResponse describes a stored booking.
type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	SpaceType   string    `json:"spaceType"`
	SubType     string    `json:"subType"`
	StartDate   Timestamp `json:"startDate"`
	EndDate     Timestamp `json:"endDate"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   Timestamp `json:"createdAt"`
}

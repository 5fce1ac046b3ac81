package availability

import (
	"encoding/json"
	"fmt"
)

// BlockedDay is a single unavailable date.
type BlockedDay struct {
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
}

// UnmarshalJSON accepts either a bare "YYYY-MM-DD" string or an object with
// date and reason fields.
func (b *BlockedDay) UnmarshalJSON(data []byte) error {
	var date string
	if err := json.Unmarshal(data, &date); err == nil {
		*b = BlockedDay{Date: date}
		return nil
	}
	type alias BlockedDay
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("blocked day must be a date string or an object: %w", err)
	}
	*b = BlockedDay(aux)
	return nil
}

// BlockedRange is an inclusive run of unavailable dates, for example a
// maintenance window.
type BlockedRange struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	Reason      string `json:"reason,omitempty"`
	Maintenance bool   `json:"maintenance,omitempty"`
}

// File is the on-disk availability document.
type File struct {
	MinimumNights int            `json:"minimumNights,omitempty"`
	Blocked       []BlockedDay   `json:"blocked"`
	Ranges        []BlockedRange `json:"ranges"`
}

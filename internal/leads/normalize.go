package leads

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when a field is absent or blank after trimming.
const (
	DefaultSource = "website"
	DefaultStatus = "New"
)

// Normalize coerces an arbitrary inbound payload into a fully populated
// Record. It never fails: absent keys, nulls, and type mismatches resolve
// to the empty string or a default, never to an error. A partial lead is
// worth more than a rejected one.
//
// Canonical keys are the snake_case column names; older clients sent
// "mobile" for phone, "destination" for state, and camelCase date keys,
// and those are absorbed as aliases. The timestamp always comes from the
// server clock; a request-supplied timestamp is ignored.
func Normalize(raw map[string]any, now time.Time) Record {
	return Record{
		Timestamp:     now.Format("2006-01-02 15:04:05"),
		Name:          scalar(raw, "name"),
		Phone:         coalesce(scalar(raw, "phone"), scalar(raw, "mobile")),
		Email:         scalar(raw, "email"),
		State:         coalesce(scalar(raw, "state"), scalar(raw, "destination")),
		StartDate:     coalesce(scalar(raw, "start_date"), scalar(raw, "startDate")),
		EndDate:       coalesce(scalar(raw, "end_date"), scalar(raw, "endDate")),
		Days:          scalar(raw, "days"),
		Travellers:    scalar(raw, "travellers"),
		Rooms:         scalar(raw, "rooms"),
		HotelCategory: coalesce(scalar(raw, "hotel_category"), scalar(raw, "hotelClass")),
		Guide:         scalar(raw, "guide"),
		Vehicle:       scalar(raw, "vehicle"),
		Package:       scalar(raw, "package"),
		Source:        coalesce(scalar(raw, "source"), DefaultSource),
		Message:       scalar(raw, "message"),
		Status:        coalesce(scalar(raw, "status"), DefaultStatus),
	}
}

// scalar extracts raw[key] as a trimmed string. JSON numbers render
// without a trailing ".0" so a payload of 5 and "5" land identically.
func scalar(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		// Arrays, objects, and anything else a client invents.
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

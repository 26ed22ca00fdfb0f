package adapter

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/features/delivery/domain"
)

// deliveryDatesResponse mirrors the DeliveryDates envelope. Pointer fields
// make missing keys an explicit branch rather than a zero value.
type deliveryDatesResponse struct {
	Response *struct {
		Dates *struct {
			Date json.RawMessage `json:"DeliveryEstimateDate"`
		} `json:"DeliveryEstimateDates"`
	} `json:"DeliveryEstimateRequestResponse"`
}

// deliveryDateItem is one estimate entry.
type deliveryDateItem struct {
	DeliveryDate         *string `json:"DeliveryDate"`
	NumberOfWorkingDays  *int    `json:"NumberOfWorkingDays"`
	TimedDeliveryEnabled *bool   `json:"TimedDeliveryEnabled"`
}

// DecodeDeliveryDates decodes a DeliveryDates response body into estimates,
// preserving upstream order. The upstream collapses a one-element estimate
// list into a bare object; both forms are accepted.
func DecodeDeliveryDates(body []byte) ([]domain.DeliveryDateEstimate, error) {
	var resp deliveryDatesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse delivery dates response: %w", err)
	}

	if resp.Response == nil {
		return nil, &auspost.MalformedResponseError{Path: "DeliveryEstimateRequestResponse"}
	}
	if resp.Response.Dates == nil {
		return nil, &auspost.MalformedResponseError{Path: "DeliveryEstimateRequestResponse.DeliveryEstimateDates"}
	}
	if len(resp.Response.Dates.Date) == 0 {
		return nil, &auspost.MalformedResponseError{Path: "DeliveryEstimateRequestResponse.DeliveryEstimateDates.DeliveryEstimateDate"}
	}

	items, err := auspost.EnsureSequence(resp.Response.Dates.Date)
	if err != nil {
		return nil, &auspost.MalformedResponseError{Path: "DeliveryEstimateRequestResponse.DeliveryEstimateDates.DeliveryEstimateDate"}
	}

	estimates := make([]domain.DeliveryDateEstimate, 0, len(items))
	for _, raw := range items {
		var item deliveryDateItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to parse delivery date entry: %w", err)
		}
		if item.DeliveryDate == nil {
			return nil, &auspost.MalformedResponseError{Path: "DeliveryEstimateDate.DeliveryDate"}
		}
		if item.NumberOfWorkingDays == nil {
			return nil, &auspost.MalformedResponseError{Path: "DeliveryEstimateDate.NumberOfWorkingDays"}
		}
		if item.TimedDeliveryEnabled == nil {
			return nil, &auspost.MalformedResponseError{Path: "DeliveryEstimateDate.TimedDeliveryEnabled"}
		}

		date, err := auspost.ParseTimestamp(*item.DeliveryDate)
		if err != nil {
			return nil, err
		}

		estimates = append(estimates, domain.DeliveryDateEstimate{
			Date:                   date,
			WorkingDays:            *item.NumberOfWorkingDays,
			TimedDeliveryAvailable: *item.TimedDeliveryEnabled,
		})
	}

	return estimates, nil
}

// timeslotsResponse mirrors the DeliveryTimeslots envelope.
type timeslotsResponse struct {
	Timeslots *struct {
		Day json.RawMessage `json:"DayTimeslot"`
	} `json:"DeliveryTimeslots"`
}

// dayTimeslotItem is one weekday entry with its raw period list.
type dayTimeslotItem struct {
	WeekdayDescription *string         `json:"WeekdayDescription"`
	TimePeriod         json.RawMessage `json:"TimePeriod"`
}

// timePeriodItem is one delivery window in upstream 12-hour form.
type timePeriodItem struct {
	StartTime      *string            `json:"StartTime"`
	EndTime        *string            `json:"EndTime"`
	TimePeriodName *string            `json:"TimePeriodName"`
	Duration       auspost.FlexString `json:"Duration"`
}

// DecodeTimeslots decodes a DeliveryTimeslots response body into one
// TimeSlot per weekday, converting each period's 12-hour clock to 24-hour
// form and preserving period order.
func DecodeTimeslots(body []byte) ([]domain.TimeSlot, error) {
	var resp timeslotsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse timeslots response: %w", err)
	}

	if resp.Timeslots == nil {
		return nil, &auspost.MalformedResponseError{Path: "DeliveryTimeslots"}
	}
	if len(resp.Timeslots.Day) == 0 {
		return nil, &auspost.MalformedResponseError{Path: "DeliveryTimeslots.DayTimeslot"}
	}

	days, err := auspost.EnsureSequence(resp.Timeslots.Day)
	if err != nil {
		return nil, &auspost.MalformedResponseError{Path: "DeliveryTimeslots.DayTimeslot"}
	}

	slots := make([]domain.TimeSlot, 0, len(days))
	for _, rawDay := range days {
		var day dayTimeslotItem
		if err := json.Unmarshal(rawDay, &day); err != nil {
			return nil, fmt.Errorf("failed to parse day timeslot entry: %w", err)
		}
		if day.WeekdayDescription == nil {
			return nil, &auspost.MalformedResponseError{Path: "DayTimeslot.WeekdayDescription"}
		}
		if len(day.TimePeriod) == 0 {
			return nil, &auspost.MalformedResponseError{Path: "DayTimeslot.TimePeriod"}
		}

		periods, err := decodeTimePeriods(day.TimePeriod)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.TimeSlot{
			Weekday: *day.WeekdayDescription,
			Periods: periods,
		})
	}

	return slots, nil
}

// decodeTimePeriods decodes a raw period list, converting the 12-hour
// start/end pair via its AM/PM qualifier.
func decodeTimePeriods(raw json.RawMessage) ([]domain.TimePeriod, error) {
	items, err := auspost.EnsureSequence(raw)
	if err != nil {
		return nil, &auspost.MalformedResponseError{Path: "DayTimeslot.TimePeriod"}
	}

	periods := make([]domain.TimePeriod, 0, len(items))
	for _, rawItem := range items {
		var item timePeriodItem
		if err := json.Unmarshal(rawItem, &item); err != nil {
			return nil, fmt.Errorf("failed to parse time period entry: %w", err)
		}
		if item.StartTime == nil {
			return nil, &auspost.MalformedResponseError{Path: "TimePeriod.StartTime"}
		}
		if item.EndTime == nil {
			return nil, &auspost.MalformedResponseError{Path: "TimePeriod.EndTime"}
		}
		if item.TimePeriodName == nil {
			return nil, &auspost.MalformedResponseError{Path: "TimePeriod.TimePeriodName"}
		}

		start, err := auspost.To24Hour(*item.StartTime, *item.TimePeriodName)
		if err != nil {
			return nil, fmt.Errorf("bad period start: %w", err)
		}
		end, err := auspost.To24Hour(*item.EndTime, *item.TimePeriodName)
		if err != nil {
			return nil, fmt.Errorf("bad period end: %w", err)
		}

		periods = append(periods, domain.TimePeriod{
			Start:    start,
			End:      end,
			Duration: item.Duration.String(),
		})
	}

	return periods, nil
}

// capabilitiesResponse mirrors the PostcodeCapability envelope.
type capabilitiesResponse struct {
	Capabilities *struct {
		Capability json.RawMessage `json:"PostcodeDeliveryCapability"`
	} `json:"PostcodeDeliveryCapabilities"`
}

// capabilityItem is one per-postcode entry with its raw weekday list.
type capabilityItem struct {
	Postcode     *int            `json:"Postcode"`
	LastModified *string         `json:"LastModified"`
	WeekDay      json.RawMessage `json:"WeekDay"`
}

// weekDayItem is one weekday capability entry.
type weekDayItem struct {
	DayType                 *int  `json:"DayType"`
	StandardDeliveryEnabled *bool `json:"StandardDeliveryEnabled"`
	TimedDeliveryEnabled    *bool `json:"TimedDeliveryEnabled"`
}

// DecodePostcodeCapabilities decodes a PostcodeCapability response body.
// Each postcode must carry exactly seven weekday entries; they are sorted
// into Monday through Sunday order regardless of how the upstream ordered
// the day codes.
func DecodePostcodeCapabilities(body []byte) ([]domain.PostcodeCapability, error) {
	var resp capabilitiesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse postcode capabilities response: %w", err)
	}

	if resp.Capabilities == nil {
		return nil, &auspost.MalformedResponseError{Path: "PostcodeDeliveryCapabilities"}
	}
	if len(resp.Capabilities.Capability) == 0 {
		return nil, &auspost.MalformedResponseError{Path: "PostcodeDeliveryCapabilities.PostcodeDeliveryCapability"}
	}

	items, err := auspost.EnsureSequence(resp.Capabilities.Capability)
	if err != nil {
		return nil, &auspost.MalformedResponseError{Path: "PostcodeDeliveryCapabilities.PostcodeDeliveryCapability"}
	}

	capabilities := make([]domain.PostcodeCapability, 0, len(items))
	for _, raw := range items {
		var item capabilityItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to parse postcode capability entry: %w", err)
		}
		if item.Postcode == nil {
			return nil, &auspost.MalformedResponseError{Path: "PostcodeDeliveryCapability.Postcode"}
		}
		if item.LastModified == nil {
			return nil, &auspost.MalformedResponseError{Path: "PostcodeDeliveryCapability.LastModified"}
		}
		if len(item.WeekDay) == 0 {
			return nil, &auspost.MalformedResponseError{Path: "PostcodeDeliveryCapability.WeekDay"}
		}

		lastModified, err := auspost.ParseTimestamp(*item.LastModified)
		if err != nil {
			return nil, err
		}

		days, err := decodeWeekDays(item.WeekDay)
		if err != nil {
			return nil, err
		}

		capabilities = append(capabilities, domain.PostcodeCapability{
			Postcode:     *item.Postcode,
			LastModified: lastModified,
			Days:         days,
		})
	}

	return capabilities, nil
}

// decodeWeekDays decodes and orders the weekday list, enforcing exactly
// one entry per weekday.
func decodeWeekDays(raw json.RawMessage) ([]domain.DayCapability, error) {
	items, err := auspost.EnsureSequence(raw)
	if err != nil {
		return nil, &auspost.MalformedResponseError{Path: "PostcodeDeliveryCapability.WeekDay"}
	}

	type codedDay struct {
		code int
		day  domain.DayCapability
	}

	coded := make([]codedDay, 0, len(items))
	for _, rawItem := range items {
		var item weekDayItem
		if err := json.Unmarshal(rawItem, &item); err != nil {
			return nil, fmt.Errorf("failed to parse weekday entry: %w", err)
		}
		if item.DayType == nil {
			return nil, &auspost.MalformedResponseError{Path: "WeekDay.DayType"}
		}
		if item.StandardDeliveryEnabled == nil {
			return nil, &auspost.MalformedResponseError{Path: "WeekDay.StandardDeliveryEnabled"}
		}
		if item.TimedDeliveryEnabled == nil {
			return nil, &auspost.MalformedResponseError{Path: "WeekDay.TimedDeliveryEnabled"}
		}

		name, err := auspost.WeekdayName(*item.DayType)
		if err != nil {
			return nil, err
		}

		coded = append(coded, codedDay{
			code: *item.DayType,
			day: domain.DayCapability{
				Weekday:                 name,
				StandardDeliveryEnabled: *item.StandardDeliveryEnabled,
				TimedDeliveryEnabled:    *item.TimedDeliveryEnabled,
			},
		})
	}

	sort.SliceStable(coded, func(i, j int) bool { return coded[i].code < coded[j].code })

	if len(coded) != 7 {
		return nil, fmt.Errorf("%w: expected 7 weekday entries, got %d", auspost.ErrInvariantViolation, len(coded))
	}
	days := make([]domain.DayCapability, 0, 7)
	for i, cd := range coded {
		if cd.code != i+1 {
			return nil, fmt.Errorf("%w: duplicate or missing weekday code %d", auspost.ErrInvariantViolation, cd.code)
		}
		days = append(days, cd.day)
	}

	return days, nil
}

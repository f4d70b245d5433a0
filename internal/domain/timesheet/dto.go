package timesheet

import "github.com/jornadahq/jornada-backend-go/internal/pkg/validator"

// ========================================
// CLOCK ACTION DTOs
// ========================================

type ClockActionRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (r *ClockActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCoordinate(r.Lat, r.Lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "lat/lng must be a valid coordinate",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ClockActionResponse reports the geofence outcome of a start/end
// action; Hours and Overtime are only set by end.
type ClockActionResponse struct {
	DistanceMeters float64  `json:"distance_m"`
	WithinRadius   bool     `json:"within_radius"`
	RadiusMeters   float64  `json:"radius_m"`
	Hours          *float64 `json:"hours,omitempty"`
	Overtime       *float64 `json:"overtime,omitempty"`
}

// SessionStateResponse drives the client's clock buttons: exactly the
// legal transitions for the worker's current state are enabled.
type SessionStateResponse struct {
	State         State `json:"state"`
	CanStart      bool  `json:"can_start"`
	CanBreakStart bool  `json:"can_break_start"`
	CanBreakEnd   bool  `json:"can_break_end"`
	CanEnd        bool  `json:"can_end"`
}

type TimesheetResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	StartTime   *string `json:"start_time,omitempty"`
	BreakStart  *string `json:"break_start,omitempty"`
	BreakEnd    *string `json:"break_end,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	StartWithin bool    `json:"start_within"`
	EndWithin   bool    `json:"end_within"`
	Hours       float64 `json:"hours"`
	Overtime    float64 `json:"overtime"`
}

// ========================================
// SCHEDULE-CHANGE REQUEST DTOs
// ========================================

type CreateTimesheetRequestRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *CreateTimesheetRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}

	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	} else if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectTimesheetRequestRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectTimesheetRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimesheetRequestResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id,omitempty"`
	Email      *string `json:"email,omitempty"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  string  `json:"created_at"`
	ApprovedBy *string `json:"approved_by,omitempty"`
}

// ========================================
// OVERTIME SUMMARY DTOs
// ========================================

// OvertimeSummaryEntry is one month of the rollup: hours is the summed
// effective hours, overtime what exceeds the month's full-day total.
type OvertimeSummaryEntry struct {
	Month    string  `json:"month"`
	Hours    float64 `json:"hours"`
	Overtime float64 `json:"overtime"`
}

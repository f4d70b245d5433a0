package timesheet

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/company"
	"github.com/jornadahq/jornada-backend-go/internal/domain/employee"
	"github.com/jornadahq/jornada-backend-go/internal/domain/timesheet"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/utils"
	"github.com/jornadahq/jornada-backend-go/internal/repository/postgresql"
)

// Monthly aggregation amortizes against fixed 8-hour days regardless
// of the worker's contracted baseline.
const aggregationDayHours = 8.0

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimesheetRepository
	timesheet.TimesheetRequestRepository
	company.CompanyRepository
	employee.EmployeeRepository
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepo timesheet.TimesheetRepository,
	requestRepo timesheet.TimesheetRequestRepository,
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:                         db,
		TimesheetRepository:        timesheetRepo,
		TimesheetRequestRepository: requestRepo,
		CompanyRepository:          companyRepo,
		EmployeeRepository:         employeeRepo,
	}
}

func claimsUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

// Start implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Start(ctx context.Context, req timesheet.ClockActionRequest) (timesheet.ClockActionResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.ClockActionResponse{}, err
	}

	userID, err := claimsUserID(ctx)
	if err != nil {
		return timesheet.ClockActionResponse{}, err
	}

	loc, err := s.CompanyRepository.GetReferenceLocation(ctx)
	if err != nil {
		return timesheet.ClockActionResponse{}, fmt.Errorf("failed to get reference location: %w", err)
	}

	distance := utils.CalculateHaversineDistance(req.Lat, req.Lng, loc.Lat, loc.Lng)
	within := utils.WithinRadius(distance, utils.DefaultGeofenceRadiusMeters)

	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	_, err = s.TimesheetRepository.StartSession(ctx, timesheet.Timesheet{
		UserID:      userID,
		Date:        date,
		StartTime:   &now,
		StartLat:    &req.Lat,
		StartLng:    &req.Lng,
		StartWithin: within,
	})
	if err != nil {
		return timesheet.ClockActionResponse{}, err
	}

	return timesheet.ClockActionResponse{
		DistanceMeters: utils.Round2(distance),
		WithinRadius:   within,
		RadiusMeters:   utils.DefaultGeofenceRadiusMeters,
	}, nil
}

// BreakStart implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) BreakStart(ctx context.Context) error {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	open, err := s.TimesheetRepository.GetOpenSession(ctx, userID)
	if err != nil {
		return err
	}
	if open.BreakStart != nil {
		return timesheet.ErrBreakAlreadyStarted
	}

	return s.TimesheetRepository.SetBreakStart(ctx, open.ID, time.Now().UTC())
}

// BreakEnd implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) BreakEnd(ctx context.Context) error {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	open, err := s.TimesheetRepository.GetOpenSession(ctx, userID)
	if err != nil {
		return err
	}
	if open.BreakStart == nil {
		return timesheet.ErrNoBreakStarted
	}
	if open.BreakEnd != nil {
		return timesheet.ErrBreakAlreadyEnded
	}

	return s.TimesheetRepository.SetBreakEnd(ctx, open.ID, time.Now().UTC())
}

// End implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) End(ctx context.Context, req timesheet.ClockActionRequest) (timesheet.ClockActionResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.ClockActionResponse{}, err
	}

	userID, err := claimsUserID(ctx)
	if err != nil {
		return timesheet.ClockActionResponse{}, err
	}

	open, err := s.TimesheetRepository.GetOpenSession(ctx, userID)
	if err != nil {
		return timesheet.ClockActionResponse{}, err
	}

	loc, err := s.CompanyRepository.GetReferenceLocation(ctx)
	if err != nil {
		return timesheet.ClockActionResponse{}, fmt.Errorf("failed to get reference location: %w", err)
	}

	// Read everything before the close so a failed read leaves the
	// session open and the caller can simply retry.
	baseline, err := s.EmployeeRepository.GetDailyBaseline(ctx, userID)
	if err != nil {
		return timesheet.ClockActionResponse{}, fmt.Errorf("failed to get daily baseline: %w", err)
	}

	distance := utils.CalculateHaversineDistance(req.Lat, req.Lng, loc.Lat, loc.Lng)
	within := utils.WithinRadius(distance, utils.DefaultGeofenceRadiusMeters)

	now := time.Now().UTC()
	if err := s.TimesheetRepository.CloseSession(ctx, open.ID, now, req.Lat, req.Lng, within); err != nil {
		return timesheet.ClockActionResponse{}, err
	}

	effective := utils.EffectiveHours(open.StartTime, &now, open.BreakStart, open.BreakEnd)
	hours := utils.Round2(effective)
	overtime := utils.Round2(utils.Overtime(effective, baseline))

	return timesheet.ClockActionResponse{
		DistanceMeters: utils.Round2(distance),
		WithinRadius:   within,
		RadiusMeters:   utils.DefaultGeofenceRadiusMeters,
		Hours:          &hours,
		Overtime:       &overtime,
	}, nil
}

// SessionState implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SessionState(ctx context.Context) (timesheet.SessionStateResponse, error) {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return timesheet.SessionStateResponse{}, err
	}

	open, err := s.TimesheetRepository.GetOpenSession(ctx, userID)
	if err != nil {
		if errors.Is(err, timesheet.ErrNoOpenSession) {
			return timesheet.SessionStateResponse{
				State:    timesheet.StateNone,
				CanStart: true,
			}, nil
		}
		return timesheet.SessionStateResponse{}, err
	}

	state := timesheet.StateOf(&open)
	resp := timesheet.SessionStateResponse{State: state}
	switch state {
	case timesheet.StateOnBreak:
		resp.CanBreakEnd = true
	case timesheet.StateOpen:
		resp.CanEnd = true
		resp.CanBreakStart = open.BreakStart == nil
	}

	return resp, nil
}

func (s *TimesheetServiceImpl) toResponse(ts timesheet.Timesheet, baseline float64) timesheet.TimesheetResponse {
	effective := utils.EffectiveHours(ts.StartTime, ts.EndTime, ts.BreakStart, ts.BreakEnd)
	return timesheet.TimesheetResponse{
		ID:          ts.ID,
		Date:        ts.Date.Format("2006-01-02"),
		StartTime:   timePtrToString(ts.StartTime),
		BreakStart:  timePtrToString(ts.BreakStart),
		BreakEnd:    timePtrToString(ts.BreakEnd),
		EndTime:     timePtrToString(ts.EndTime),
		StartWithin: ts.StartWithin,
		EndWithin:   ts.EndWithin,
		Hours:       utils.Round2(effective),
		Overtime:    utils.Round2(utils.Overtime(effective, baseline)),
	}
}

// ListMine implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListMine(ctx context.Context) ([]timesheet.TimesheetResponse, error) {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.listAnnotated(ctx, userID)
}

// ListByUser implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListByUser(ctx context.Context, userID string) ([]timesheet.TimesheetResponse, error) {
	return s.listAnnotated(ctx, userID)
}

func (s *TimesheetServiceImpl) listAnnotated(ctx context.Context, userID string) ([]timesheet.TimesheetResponse, error) {
	records, err := s.TimesheetRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}

	baseline, err := s.EmployeeRepository.GetDailyBaseline(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily baseline: %w", err)
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(records))
	for _, ts := range records {
		responses = append(responses, s.toResponse(ts, baseline))
	}

	return responses, nil
}

func requestToResponse(req timesheet.TimesheetRequest) timesheet.TimesheetRequestResponse {
	return timesheet.TimesheetRequestResponse{
		ID:         req.ID,
		UserID:     req.UserID,
		Email:      req.Email,
		Date:       req.Date.Format("2006-01-02"),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     string(req.Status),
		Reason:     req.Reason,
		CreatedAt:  req.CreatedAt.Format(time.RFC3339),
		ApprovedBy: req.ApprovedBy,
	}
}

// CreateRequest implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CreateRequest(ctx context.Context, req timesheet.CreateTimesheetRequestRequest) (timesheet.TimesheetRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetRequestResponse{}, err
	}

	userID, err := claimsUserID(ctx)
	if err != nil {
		return timesheet.TimesheetRequestResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return timesheet.TimesheetRequestResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.TimesheetRequestRepository.Create(ctx, timesheet.TimesheetRequest{
		UserID:    userID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return timesheet.TimesheetRequestResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	return requestToResponse(created), nil
}

// ListMyRequests implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListMyRequests(ctx context.Context) ([]timesheet.TimesheetRequestResponse, error) {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.TimesheetRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	responses := make([]timesheet.TimesheetRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, requestToResponse(req))
	}

	return responses, nil
}

// ListPendingRequests implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListPendingRequests(ctx context.Context) ([]timesheet.TimesheetRequestResponse, error) {
	requests, err := s.TimesheetRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	responses := make([]timesheet.TimesheetRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, requestToResponse(req))
	}

	return responses, nil
}

// ApproveRequest implements timesheet.TimesheetService.
//
// The status flip and the synthesized attendance record are one
// transaction; the status predicate on the update makes a concurrent
// duplicate decision lose cleanly instead of materializing twice.
func (s *TimesheetServiceImpl) ApproveRequest(ctx context.Context, id string) error {
	adminID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		req, err := s.TimesheetRequestRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.TimesheetRequestRepository.Decide(txCtx, id, timesheet.RequestStatusAccepted, adminID, nil); err != nil {
			return err
		}

		if _, err := s.TimesheetRepository.Create(txCtx, req.Materialize()); err != nil {
			return fmt.Errorf("failed to materialize attendance record: %w", err)
		}

		return nil
	})
}

// RejectRequest implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) RejectRequest(ctx context.Context, req timesheet.RejectTimesheetRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	adminID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	return s.TimesheetRequestRepository.Decide(ctx, req.ID, timesheet.RequestStatusRejected, adminID, &req.Reason)
}

// OvertimeSummary implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) OvertimeSummary(ctx context.Context, userID string) ([]timesheet.OvertimeSummaryEntry, error) {
	var filter *string
	if userID != "" {
		filter = &userID
	}

	records, err := s.TimesheetRepository.ListClosed(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed timesheets: %w", err)
	}

	totals := make(map[string]float64)
	for _, ts := range records {
		month := ts.Date.Format("2006-01")
		totals[month] += utils.EffectiveHours(ts.StartTime, ts.EndTime, ts.BreakStart, ts.BreakEnd)
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	entries := make([]timesheet.OvertimeSummaryEntry, 0, len(months))
	for _, month := range months {
		total := totals[month]
		fullDays := math.Ceil(total / aggregationDayHours)
		overtime := math.Max(0, total-fullDays*aggregationDayHours)
		entries = append(entries, timesheet.OvertimeSummaryEntry{
			Month:    month,
			Hours:    utils.Round2(total),
			Overtime: utils.Round2(overtime),
		})
	}

	return entries, nil
}

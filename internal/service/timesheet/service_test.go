package timesheet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jornadahq/jornada-backend-go/internal/domain/company"
	"github.com/jornadahq/jornada-backend-go/internal/domain/employee"
	"github.com/jornadahq/jornada-backend-go/internal/domain/timesheet"
)

const testWorkerID = "0194e000-0000-7000-8000-000000000001"

// Company reference coordinate used by the fakes (central Madrid).
const (
	refLat = 40.4168
	refLng = -3.7038
)

func authedCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// ========================================
// IN-MEMORY FAKES
// ========================================

type fakeTimesheetRepo struct {
	records map[string]timesheet.Timesheet
	seq     int
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{records: make(map[string]timesheet.Timesheet)}
}

func (f *fakeTimesheetRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("ts-%04d", f.seq)
}

func (f *fakeTimesheetRepo) StartSession(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	for _, existing := range f.records {
		if existing.UserID == ts.UserID && existing.EndTime == nil {
			return timesheet.Timesheet{}, timesheet.ErrSessionAlreadyOpen
		}
	}
	ts.ID = f.nextID()
	f.records[ts.ID] = ts
	return ts, nil
}

func (f *fakeTimesheetRepo) GetOpenSession(ctx context.Context, userID string) (timesheet.Timesheet, error) {
	for _, existing := range f.records {
		if existing.UserID == userID && existing.EndTime == nil {
			return existing, nil
		}
	}
	return timesheet.Timesheet{}, timesheet.ErrNoOpenSession
}

func (f *fakeTimesheetRepo) SetBreakStart(ctx context.Context, id string, at time.Time) error {
	rec, ok := f.records[id]
	if !ok || rec.EndTime != nil || rec.BreakStart != nil {
		return timesheet.ErrBreakAlreadyStarted
	}
	rec.BreakStart = &at
	f.records[id] = rec
	return nil
}

func (f *fakeTimesheetRepo) SetBreakEnd(ctx context.Context, id string, at time.Time) error {
	rec, ok := f.records[id]
	if !ok || rec.EndTime != nil || rec.BreakStart == nil || rec.BreakEnd != nil {
		return timesheet.ErrBreakAlreadyEnded
	}
	rec.BreakEnd = &at
	f.records[id] = rec
	return nil
}

func (f *fakeTimesheetRepo) CloseSession(ctx context.Context, id string, at time.Time, lat, lng float64, within bool) error {
	rec, ok := f.records[id]
	if !ok || rec.EndTime != nil {
		return timesheet.ErrNoOpenSession
	}
	rec.EndTime = &at
	rec.EndLat = &lat
	rec.EndLng = &lng
	rec.EndWithin = within
	f.records[id] = rec
	return nil
}

func (f *fakeTimesheetRepo) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	ts.ID = f.nextID()
	f.records[ts.ID] = ts
	return ts, nil
}

func (f *fakeTimesheetRepo) ListByUser(ctx context.Context, userID string) ([]timesheet.Timesheet, error) {
	var out []timesheet.Timesheet
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	// (date desc, id desc)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date.After(out[i].Date) ||
				(out[j].Date.Equal(out[i].Date) && out[j].ID > out[i].ID) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeTimesheetRepo) ListClosed(ctx context.Context, userID *string) ([]timesheet.Timesheet, error) {
	var out []timesheet.Timesheet
	for _, rec := range f.records {
		if rec.EndTime == nil {
			continue
		}
		if userID != nil && rec.UserID != *userID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests map[string]timesheet.TimesheetRequest
	seq      int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]timesheet.TimesheetRequest)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req timesheet.TimesheetRequest) (timesheet.TimesheetRequest, error) {
	f.seq++
	req.ID = fmt.Sprintf("req-%04d", f.seq)
	req.Status = timesheet.RequestStatusPending
	req.CreatedAt = time.Now().UTC()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (timesheet.TimesheetRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return timesheet.TimesheetRequest{}, timesheet.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) ListByUser(ctx context.Context, userID string) ([]timesheet.TimesheetRequest, error) {
	var out []timesheet.TimesheetRequest
	for _, req := range f.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListPending(ctx context.Context) ([]timesheet.TimesheetRequest, error) {
	var out []timesheet.TimesheetRequest
	for _, req := range f.requests {
		if req.Status == timesheet.RequestStatusPending {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) Decide(ctx context.Context, id string, status timesheet.RequestStatus, approvedBy string, reason *string) error {
	req, ok := f.requests[id]
	if !ok {
		return timesheet.ErrRequestNotFound
	}
	if req.Status != timesheet.RequestStatusPending {
		return timesheet.ErrRequestAlreadyDecided
	}
	req.Status = status
	req.ApprovedBy = &approvedBy
	if reason != nil {
		req.Reason = reason
	}
	f.requests[id] = req
	return nil
}

type fakeCompanyRepo struct{}

func (fakeCompanyRepo) Get(ctx context.Context) (company.Company, error) {
	return company.Company{ID: "co-1", Name: "Test Co", Lat: refLat, Lng: refLng}, nil
}

func (fakeCompanyRepo) GetReferenceLocation(ctx context.Context) (company.Location, error) {
	return company.Location{Lat: refLat, Lng: refLng}, nil
}

func (fakeCompanyRepo) UpdateLocation(ctx context.Context, lat, lng float64) (company.Company, error) {
	return company.Company{ID: "co-1", Name: "Test Co", Lat: lat, Lng: lng}, nil
}

type fakeEmployeeRepo struct {
	baselines   map[string]float64
	balances    map[string]employee.VacationBalance
	baselineErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		baselines: make(map[string]float64),
		balances:  make(map[string]employee.VacationBalance),
	}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) GetDailyBaseline(ctx context.Context, userID string) (float64, error) {
	if f.baselineErr != nil {
		return 0, f.baselineErr
	}
	if hours, ok := f.baselines[userID]; ok {
		return hours, nil
	}
	return employee.DefaultDailyHours, nil
}

func (f *fakeEmployeeRepo) GetVacationBalance(ctx context.Context, userID string) (employee.VacationBalance, error) {
	if balance, ok := f.balances[userID]; ok {
		return balance, nil
	}
	return employee.VacationBalance{TotalDays: employee.DefaultVacationDays, Year: time.Now().UTC().Year()}, nil
}

func (f *fakeEmployeeRepo) SetVacationUsed(ctx context.Context, userID string, used, year int) error {
	balance := f.balances[userID]
	balance.UsedDays = used
	balance.Year = year
	f.balances[userID] = balance
	return nil
}

func (f *fakeEmployeeRepo) IncrementVacationUsed(ctx context.Context, userID string, days int) error {
	balance := f.balances[userID]
	balance.UsedDays += days
	f.balances[userID] = balance
	return nil
}

func newTestService(tsRepo *fakeTimesheetRepo, reqRepo *fakeRequestRepo, empRepo *fakeEmployeeRepo) timesheet.TimesheetService {
	return NewTimesheetService(nil, tsRepo, reqRepo, fakeCompanyRepo{}, empRepo)
}

// ========================================
// CLOCK STATE MACHINE
// ========================================

func TestStart_Success(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	resp, err := svc.Start(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.NoError(t, err)
	assert.True(t, resp.WithinRadius)
	assert.Equal(t, float64(200), resp.RadiusMeters)
	assert.Equal(t, float64(0), resp.DistanceMeters)
	assert.Nil(t, resp.Hours)
	assert.Nil(t, resp.Overtime)
}

func TestStart_SecondStartRejected(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	_, err := svc.Start(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.NoError(t, err)

	_, err = svc.Start(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	assert.ErrorIs(t, err, timesheet.ErrSessionAlreadyOpen)
}

func TestStart_OutsideRadiusStillSucceeds(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	// Barcelona, roughly 505 km from the reference point.
	resp, err := svc.Start(ctx, timesheet.ClockActionRequest{Lat: 41.3874, Lng: 2.1686})
	require.NoError(t, err)
	assert.False(t, resp.WithinRadius)
	assert.Greater(t, resp.DistanceMeters, 500_000.0)
}

func TestStart_InvalidCoordinates(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	_, err := svc.Start(ctx, timesheet.ClockActionRequest{Lat: 91.0, Lng: 0})
	assert.Error(t, err)
}

func TestBreakFlow(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	assert.ErrorIs(t, svc.BreakStart(ctx), timesheet.ErrNoOpenSession)
	assert.ErrorIs(t, svc.BreakEnd(ctx), timesheet.ErrNoOpenSession)

	_, err := svc.Start(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.BreakEnd(ctx), timesheet.ErrNoBreakStarted)

	require.NoError(t, svc.BreakStart(ctx))
	assert.ErrorIs(t, svc.BreakStart(ctx), timesheet.ErrBreakAlreadyStarted)

	require.NoError(t, svc.BreakEnd(ctx))
	assert.ErrorIs(t, svc.BreakEnd(ctx), timesheet.ErrBreakAlreadyEnded)

	// One break per session.
	assert.ErrorIs(t, svc.BreakStart(ctx), timesheet.ErrBreakAlreadyStarted)
}

func TestEnd_NoOpenSession(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	_, err := svc.End(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	assert.ErrorIs(t, err, timesheet.ErrNoOpenSession)
}

func TestEnd_ClosesAndReportsHours(t *testing.T) {
	tsRepo := newFakeTimesheetRepo()
	svc := newTestService(tsRepo, newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	_, err := svc.Start(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.NoError(t, err)

	// Backdate the open session so the close yields real hours.
	open, err := tsRepo.GetOpenSession(ctx, testWorkerID)
	require.NoError(t, err)
	started := open.StartTime.Add(-9 * time.Hour)
	open.StartTime = &started
	tsRepo.records[open.ID] = open

	resp, err := svc.End(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.NoError(t, err)
	require.NotNil(t, resp.Hours)
	require.NotNil(t, resp.Overtime)
	assert.InDelta(t, 9.0, *resp.Hours, 0.01)
	assert.InDelta(t, 1.0, *resp.Overtime, 0.01)
	assert.True(t, resp.WithinRadius)

	_, err = svc.End(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	assert.ErrorIs(t, err, timesheet.ErrNoOpenSession)
}

func TestEnd_BaselineFailureLeavesSessionOpen(t *testing.T) {
	tsRepo := newFakeTimesheetRepo()
	empRepo := newFakeEmployeeRepo()
	svc := newTestService(tsRepo, newFakeRequestRepo(), empRepo)
	ctx := authedCtx(t, testWorkerID)

	_, err := svc.Start(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.NoError(t, err)

	empRepo.baselineErr = fmt.Errorf("connection reset")
	_, err = svc.End(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.Error(t, err)

	// The failed close must not have stamped the session.
	open, err := tsRepo.GetOpenSession(ctx, testWorkerID)
	require.NoError(t, err)
	assert.Nil(t, open.EndTime)

	// A retry once the store recovers goes through.
	empRepo.baselineErr = nil
	resp, err := svc.End(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.NoError(t, err)
	require.NotNil(t, resp.Hours)
}

func TestSessionState_Progression(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	state, err := svc.SessionState(ctx)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StateNone, state.State)
	assert.True(t, state.CanStart)
	assert.False(t, state.CanEnd)

	_, err = svc.Start(ctx, timesheet.ClockActionRequest{Lat: refLat, Lng: refLng})
	require.NoError(t, err)

	state, err = svc.SessionState(ctx)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StateOpen, state.State)
	assert.False(t, state.CanStart)
	assert.True(t, state.CanBreakStart)
	assert.True(t, state.CanEnd)

	require.NoError(t, svc.BreakStart(ctx))
	state, err = svc.SessionState(ctx)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StateOnBreak, state.State)
	assert.True(t, state.CanBreakEnd)
	assert.False(t, state.CanBreakStart)
	assert.False(t, state.CanEnd)

	require.NoError(t, svc.BreakEnd(ctx))
	state, err = svc.SessionState(ctx)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StateOpen, state.State)
	assert.False(t, state.CanBreakStart)
	assert.True(t, state.CanEnd)
}

// ========================================
// LISTINGS AND AGGREGATION
// ========================================

func seedClosedRecord(repo *fakeTimesheetRepo, userID, day string, hours, breakHours float64) {
	date, _ := time.Parse("2006-01-02", day)
	start := date.Add(8 * time.Hour)
	end := start.Add(time.Duration(hours*float64(time.Hour)) + time.Duration(breakHours*float64(time.Hour)))
	rec := timesheet.Timesheet{
		UserID:    userID,
		Date:      date,
		StartTime: &start,
		EndTime:   &end,
	}
	if breakHours > 0 {
		bs := start.Add(4 * time.Hour)
		be := bs.Add(time.Duration(breakHours * float64(time.Hour)))
		rec.BreakStart = &bs
		rec.BreakEnd = &be
	}
	repo.seq++
	rec.ID = fmt.Sprintf("ts-%04d", repo.seq)
	repo.records[rec.ID] = rec
}

func TestListMine_AnnotatesHoursAndOrders(t *testing.T) {
	tsRepo := newFakeTimesheetRepo()
	svc := newTestService(tsRepo, newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	seedClosedRecord(tsRepo, testWorkerID, "2025-03-10", 9, 1)
	seedClosedRecord(tsRepo, testWorkerID, "2025-03-11", 7, 0)
	seedClosedRecord(tsRepo, "someone-else", "2025-03-11", 8, 0)

	list, err := svc.ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first.
	assert.Equal(t, "2025-03-11", list[0].Date)
	assert.Equal(t, "2025-03-10", list[1].Date)

	assert.InDelta(t, 7.0, list[0].Hours, 0.001)
	assert.InDelta(t, 0.0, list[0].Overtime, 0.001)

	// 10h raw minus 1h break.
	assert.InDelta(t, 9.0, list[1].Hours, 0.001)
	assert.InDelta(t, 1.0, list[1].Overtime, 0.001)
}

func TestListMine_CustomBaseline(t *testing.T) {
	tsRepo := newFakeTimesheetRepo()
	empRepo := newFakeEmployeeRepo()
	empRepo.baselines[testWorkerID] = 6
	svc := newTestService(tsRepo, newFakeRequestRepo(), empRepo)
	ctx := authedCtx(t, testWorkerID)

	seedClosedRecord(tsRepo, testWorkerID, "2025-03-10", 9, 0)

	list, err := svc.ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 3.0, list[0].Overtime, 0.001)
}

func TestOvertimeSummary_MonthlyAmortization(t *testing.T) {
	tsRepo := newFakeTimesheetRepo()
	svc := newTestService(tsRepo, newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, "admin-1")

	// January: 9 + 7 = 16h, two full days, no overtime.
	seedClosedRecord(tsRepo, testWorkerID, "2025-01-06", 9, 0)
	seedClosedRecord(tsRepo, testWorkerID, "2025-01-07", 7, 0)

	// February: 9 + 9 + 9 = 27h; four amortized days swallow the
	// daily excess entirely.
	seedClosedRecord(tsRepo, testWorkerID, "2025-02-03", 9, 0)
	seedClosedRecord(tsRepo, testWorkerID, "2025-02-04", 9, 0)
	seedClosedRecord(tsRepo, testWorkerID, "2025-02-05", 9, 0)

	entries, err := svc.OvertimeSummary(ctx, testWorkerID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "2025-01", entries[0].Month)
	assert.InDelta(t, 16.0, entries[0].Hours, 0.001)
	assert.InDelta(t, 0.0, entries[0].Overtime, 0.001)

	assert.Equal(t, "2025-02", entries[1].Month)
	assert.InDelta(t, 27.0, entries[1].Hours, 0.001)
	assert.InDelta(t, 0.0, entries[1].Overtime, 0.001)
}

func TestOvertimeSummary_ExcludesOpenRecords(t *testing.T) {
	tsRepo := newFakeTimesheetRepo()
	svc := newTestService(tsRepo, newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, "admin-1")

	seedClosedRecord(tsRepo, testWorkerID, "2025-01-06", 8, 0)

	now := time.Now().UTC()
	tsRepo.records["open-1"] = timesheet.Timesheet{
		ID:        "open-1",
		UserID:    testWorkerID,
		Date:      time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
		StartTime: &now,
	}

	entries, err := svc.OvertimeSummary(ctx, testWorkerID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InDelta(t, 8.0, entries[0].Hours, 0.001)
}

// ========================================
// SCHEDULE-CHANGE REQUESTS
// ========================================

func TestCreateRequest_Validation(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	_, err := svc.CreateRequest(ctx, timesheet.CreateTimesheetRequestRequest{
		Date:      "not-a-date",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	assert.Error(t, err)

	_, err = svc.CreateRequest(ctx, timesheet.CreateTimesheetRequestRequest{
		Date:      "2025-04-01",
		StartTime: "9am",
		EndTime:   "17:00",
	})
	assert.Error(t, err)
}

func TestCreateRequest_Success(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, testWorkerID)

	resp, err := svc.CreateRequest(ctx, timesheet.CreateTimesheetRequestRequest{
		Date:      "2025-04-01",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(timesheet.RequestStatusPending), resp.Status)
	assert.Equal(t, "2025-04-01", resp.Date)

	mine, err := svc.ListMyRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestRejectRequest_RequiresReason(t *testing.T) {
	svc := newTestService(newFakeTimesheetRepo(), newFakeRequestRepo(), newFakeEmployeeRepo())
	ctx := authedCtx(t, "admin-1")

	err := svc.RejectRequest(ctx, timesheet.RejectTimesheetRequestRequest{ID: "req-0001"})
	assert.Error(t, err)
}

func TestRejectRequest_OneShot(t *testing.T) {
	reqRepo := newFakeRequestRepo()
	svc := newTestService(newFakeTimesheetRepo(), reqRepo, newFakeEmployeeRepo())
	workerCtx := authedCtx(t, testWorkerID)
	adminCtx := authedCtx(t, "admin-1")

	created, err := svc.CreateRequest(workerCtx, timesheet.CreateTimesheetRequestRequest{
		Date:      "2025-04-01",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RejectRequest(adminCtx, timesheet.RejectTimesheetRequestRequest{
		ID:     created.ID,
		Reason: "not approved",
	}))

	err = svc.RejectRequest(adminCtx, timesheet.RejectTimesheetRequestRequest{
		ID:     created.ID,
		Reason: "again",
	})
	assert.ErrorIs(t, err, timesheet.ErrRequestAlreadyDecided)
}

func TestMaterialize_BuildsClosedEightHourRecord(t *testing.T) {
	date, _ := time.Parse("2006-01-02", "2025-04-01")
	req := timesheet.TimesheetRequest{
		UserID:    testWorkerID,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	rec := req.Materialize()
	require.NotNil(t, rec.StartTime)
	require.NotNil(t, rec.EndTime)
	assert.Equal(t, timesheet.StateClosed, timesheet.StateOf(&rec))
	assert.Nil(t, rec.BreakStart)
	assert.Equal(t, 8.0, rec.EndTime.Sub(*rec.StartTime).Hours())
	assert.Equal(t, date, rec.Date)
}

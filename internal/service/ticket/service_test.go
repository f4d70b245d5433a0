package ticket

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jornadahq/jornada-backend-go/internal/domain/employee"
	"github.com/jornadahq/jornada-backend-go/internal/domain/ticket"
)

const testWorkerID = "0194e000-0000-7000-8000-000000000003"

func authedCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeTicketRepo struct {
	tickets map[string]ticket.Ticket
	seq     int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]ticket.Ticket)}
}

func (f *fakeTicketRepo) Create(ctx context.Context, t ticket.Ticket) (ticket.Ticket, error) {
	f.seq++
	t.ID = fmt.Sprintf("tkt-%04d", f.seq)
	t.Status = ticket.StatusPending
	t.CreatedAt = time.Now().UTC()
	f.tickets[t.ID] = t
	return t, nil
}

func (f *fakeTicketRepo) GetByID(ctx context.Context, id string) (ticket.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return ticket.Ticket{}, ticket.ErrTicketNotFound
	}
	return t, nil
}

func (f *fakeTicketRepo) ListByUser(ctx context.Context, userID string) ([]ticket.Ticket, error) {
	var out []ticket.Ticket
	for _, t := range f.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListPending(ctx context.Context) ([]ticket.Ticket, error) {
	var out []ticket.Ticket
	for _, t := range f.tickets {
		if t.Status == ticket.StatusPending {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) Decide(ctx context.Context, id string, status ticket.Status, approvedBy string, reason *string) error {
	t, ok := f.tickets[id]
	if !ok {
		return ticket.ErrTicketNotFound
	}
	if t.Status != ticket.StatusPending {
		return ticket.ErrTicketAlreadyDecided
	}
	t.Status = status
	t.ApprovedBy = &approvedBy
	if reason != nil {
		t.Reason = reason
	}
	f.tickets[id] = t
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	emp, ok := f.employees[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) GetDailyBaseline(ctx context.Context, userID string) (float64, error) {
	return employee.DefaultDailyHours, nil
}

func (f *fakeEmployeeRepo) GetVacationBalance(ctx context.Context, userID string) (employee.VacationBalance, error) {
	return employee.VacationBalance{}, nil
}

func (f *fakeEmployeeRepo) SetVacationUsed(ctx context.Context, userID string, used, year int) error {
	return nil
}

func (f *fakeEmployeeRepo) IncrementVacationUsed(ctx context.Context, userID string, days int) error {
	return nil
}

func newTestService(allowDiets, allowTransport, allowLodging bool) (ticket.TicketService, *fakeTicketRepo) {
	ticketRepo := newFakeTicketRepo()
	empRepo := newFakeEmployeeRepo()
	empRepo.employees[testWorkerID] = employee.Employee{
		ID:             "emp-1",
		UserID:         testWorkerID,
		AllowDiets:     allowDiets,
		AllowTransport: allowTransport,
		AllowLodging:   allowLodging,
	}
	return NewTicketService(ticketRepo, empRepo), ticketRepo
}

func TestCreate_AllowedCategory(t *testing.T) {
	svc, _ := newTestService(true, false, false)
	ctx := authedCtx(t, testWorkerID)

	url := "https://receipts.example.com/abc123"
	resp, err := svc.Create(ctx, ticket.CreateTicketRequest{
		Category:   "DIETAS",
		Amount:     14.50,
		Date:       "2025-05-12",
		ReceiptURL: &url,
	})
	require.NoError(t, err)
	assert.Equal(t, string(ticket.StatusPending), resp.Status)
	assert.Equal(t, "DIETAS", resp.Category)
	require.NotNil(t, resp.ReceiptURL)
	assert.Equal(t, url, *resp.ReceiptURL)
}

func TestCreate_DisallowedCategory(t *testing.T) {
	svc, _ := newTestService(true, false, false)
	ctx := authedCtx(t, testWorkerID)

	_, err := svc.Create(ctx, ticket.CreateTicketRequest{
		Category: "ALOJAMIENTO",
		Amount:   80,
		Date:     "2025-05-12",
	})
	assert.ErrorIs(t, err, ticket.ErrCategoryNotAllowed)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(true, true, true)
	ctx := authedCtx(t, testWorkerID)

	_, err := svc.Create(ctx, ticket.CreateTicketRequest{Category: "FUEL", Amount: 10, Date: "2025-05-12"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, ticket.CreateTicketRequest{Category: "DIETAS", Amount: 0, Date: "2025-05-12"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, ticket.CreateTicketRequest{Category: "DIETAS", Amount: 10, Date: "12/05/2025"})
	assert.Error(t, err)
}

func TestDecide_OneShot(t *testing.T) {
	svc, _ := newTestService(false, true, false)
	workerCtx := authedCtx(t, testWorkerID)
	adminCtx := authedCtx(t, "admin-1")

	created, err := svc.Create(workerCtx, ticket.CreateTicketRequest{
		Category: "TRANSPORTE",
		Amount:   32.80,
		Date:     "2025-05-12",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(adminCtx, created.ID))
	assert.ErrorIs(t, svc.Approve(adminCtx, created.ID), ticket.ErrTicketAlreadyDecided)
	assert.ErrorIs(t, svc.Reject(adminCtx, ticket.RejectTicketRequest{
		ID:     created.ID,
		Reason: "late",
	}), ticket.ErrTicketAlreadyDecided)
}

func TestApprove_UnknownTicket(t *testing.T) {
	svc, _ := newTestService(true, true, true)
	ctx := authedCtx(t, "admin-1")

	assert.ErrorIs(t, svc.Approve(ctx, "missing"), ticket.ErrTicketNotFound)
}

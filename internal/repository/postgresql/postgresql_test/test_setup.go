package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jornadahq/jornada-backend-go/internal/domain/user"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

// requireTestDB connects to the database named by TEST_DATABASE_URL.
// Tests are skipped when the variable is unset so the suite stays green
// on machines without a local Postgres. Apply migrations/schema.sql to
// the test database before running.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn, 4, 1)
	})
	require.NoError(t, testDBErr, "failed to connect to test database")
	return testDB
}

func truncateAllTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"tickets",
		"vacation_requests",
		"timesheet_requests",
		"timesheets",
		"employees",
		"users",
		"companies",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}

func createTestCompany(t *testing.T, ctx context.Context, db *database.DB, lat, lng float64) string {
	t.Helper()

	var companyID string
	err := db.QueryRow(ctx, `
		INSERT INTO companies (id, name, lat, lng)
		VALUES (gen_random_uuid(), 'Test Company', $1, $2)
		RETURNING id
	`, lat, lng).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

func createTestUser(t *testing.T, ctx context.Context, db *database.DB, companyID string, email string, role user.Role) user.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	var created user.User
	err = db.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, role, company_id)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id, email, password_hash, role, company_id, created_at, updated_at
	`, email, string(hashed), role, companyID).Scan(
		&created.ID, &created.Email, &created.PasswordHash, &created.Role,
		&created.CompanyID, &created.CreatedAt, &created.UpdatedAt,
	)
	require.NoError(t, err)
	return created
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, userID string, vacationDays, vacationDaysUsed int) string {
	t.Helper()

	var employeeID string
	err := db.QueryRow(ctx, `
		INSERT INTO employees (id, user_id, vacation_days, vacation_days_used, vacation_year)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id
	`, userID, vacationDays, vacationDaysUsed, time.Now().UTC().Year()).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

// authedCtx builds a request context carrying verified claims for the
// given user, the shape the services read after the JWT middleware.
func authedCtx(t *testing.T, userID string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newUUID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

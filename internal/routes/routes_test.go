package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub/internal/handlers"
	"staffhub/internal/pdf"
	"staffhub/internal/repositories"
	"staffhub/internal/services"
)

var testSecret = []byte("routes-test-secret")

func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	supportRepo := repositories.NewSupportRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)

	authService := services.NewAuthService(testSecret, 15*time.Minute)
	emailService := services.NewEmailService("localhost", 1025, "", "", "noreply@example.com")
	userService := services.NewUserService(userRepo, emailService, authService)
	leadService := services.NewLeadService(leadRepo)
	bookingService := services.NewBookingService(bookingRepo)
	supportService := services.NewSupportService(supportRepo)
	resourceService := services.NewResourceService(resourceRepo)
	reportService := services.NewReportService(userRepo, leadRepo, bookingRepo, pdf.NewStatementGenerator("Test Co"))

	r := gin.New()
	SetupRoutes(r, testSecret,
		handlers.NewAuthHandler(userService, authService),
		handlers.NewLeadHandler(leadService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewAdminHandler(userService, bookingService),
		handlers.NewSupportHandler(supportService),
		handlers.NewResourceHandler(resourceService),
		handlers.NewReportHandler(reportService),
	)
	return r, mock
}

func tokenFor(t *testing.T, userID int, role string) string {
	t.Helper()
	tok, err := services.NewAuthService(testSecret, 15*time.Minute).NewAccessToken(userID, role)
	require.NoError(t, err)
	return tok
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/leads/", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProtectedRouteWithGarbageToken(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/leads/", "not-a-jwt", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewerCannotRequestLeads(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/leads/request", tokenFor(t, 5, "viewer"),
		gin.H{"industry": "SaaS", "region": "North", "quantity": 10})

	assert.Equal(t, http.StatusForbidden, w.Code)
	// the store was never touched
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepCreatesBookingWithCommission(t *testing.T) {
	r, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(7, "Acme Ltd", "2024-05-01", 500.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))
	mock.ExpectQuery("INSERT INTO commissions").
		WithArgs(41, 7, 50.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(91))
	mock.ExpectCommit()

	w := doJSON(t, r, http.MethodPost, "/bookings/", tokenFor(t, 7, "rep"),
		gin.H{"client_name": "Acme Ltd", "meeting_date": "2024-05-01", "sale_amount": 500})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Booking struct {
			ID     int `json:"id"`
			UserID int `json:"user_id"`
		} `json:"booking"`
		Commission struct {
			BookingID        int     `json:"booking_id"`
			CommissionAmount float64 `json:"commission_amount"`
			IsPaid           bool    `json:"is_paid"`
		} `json:"commission"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 41, resp.Booking.ID)
	assert.Equal(t, 7, resp.Booking.UserID)
	assert.Equal(t, 41, resp.Commission.BookingID)
	assert.Equal(t, 50.00, resp.Commission.CommissionAmount)
	assert.False(t, resp.Commission.IsPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingValidationRejected(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/bookings/", tokenFor(t, 7, "rep"),
		gin.H{"client_name": "", "meeting_date": "2024-05-01", "sale_amount": 500})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepCannotMarkCommissionPaid(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPut, "/bookings/commissions/91/pay", tokenFor(t, 7, "rep"), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminMarksCommissionPaid(t *testing.T) {
	r, mock := newTestServer(t)

	mock.ExpectQuery("UPDATE commissions").
		WithArgs(91).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "user_id", "commission_amount", "is_paid", "created_at"}).
			AddRow(91, 41, 7, 50.0, true, time.Now()))

	w := doJSON(t, r, http.MethodPut, "/bookings/commissions/91/pay", tokenFor(t, 1, "admin"), nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cm struct {
		IsPaid bool `json:"is_paid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cm))
	assert.True(t, cm.IsPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminAssignsLeads(t *testing.T) {
	r, mock := newTestServer(t)

	leadRow := func(id int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "name", "contact", "industry", "region", "quantity", "status",
			"assigned_to", "requested_by", "notes", "tags", "created_at", "updated_at",
		}).AddRow(id, "Lead request", nil, "SaaS", "North", 5, "Requested", nil, 7, nil, nil, time.Now(), time.Now())
	}
	mock.ExpectQuery("SELECT (.+) FROM leads WHERE id").WithArgs(3).WillReturnRows(leadRow(3))
	mock.ExpectQuery("SELECT (.+) FROM leads WHERE id").WithArgs(4).WillReturnRows(leadRow(4))
	mock.ExpectExec("UPDATE leads").
		WithArgs(9, "Assigned", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	w := doJSON(t, r, http.MethodPost, "/leads/assign", tokenFor(t, 1, "admin"),
		gin.H{"leadIds": []int{3, 4}, "userId": 9})

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepCannotAssignLeads(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/leads/assign", tokenFor(t, 7, "rep"),
		gin.H{"leadIds": []int{3}, "userId": 9})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepCannotReachAdminRoutes(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/admin/users", tokenFor(t, 7, "rep"), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

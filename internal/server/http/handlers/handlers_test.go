package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/coworking/internal/domain/catalog"
	domainErrors "github.com/polkiloo/coworking/internal/domain/errors"
	"github.com/polkiloo/coworking/internal/domain/model"
	"github.com/polkiloo/coworking/internal/server/http/dto"
	"github.com/polkiloo/coworking/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/coworking/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.TokenContextKey, "token-"+id)
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", resp.Body.String(), err)
	}
	return body.Error
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != "" {
		t.Fatalf("expected empty id when not set, got %q", got)
	}

	c.Set(middleware.UserIDContextKey, "user-42")
	if got := CurrentUserID(c); got != "user-42" {
		t.Fatalf("expected user-42, got %q", got)
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{domainErrors.ErrDuplicateEmail, http.StatusBadRequest, domainErrors.ErrDuplicateEmail.Error()},
		{domainErrors.ErrInvalidInput, http.StatusBadRequest, domainErrors.ErrInvalidInput.Error()},
		{domainErrors.ErrNotFound, http.StatusBadRequest, domainErrors.ErrNotFound.Error()},
		{domainErrors.ErrInvalidCredentials, http.StatusBadRequest, domainErrors.ErrInvalidCredentials.Error()},
		{domainErrors.ErrInvalidSpace, http.StatusBadRequest, domainErrors.ErrInvalidSpace.Error()},
		{fmt.Errorf("create: %w", domainErrors.ErrInvalidDateRange), http.StatusBadRequest, domainErrors.ErrInvalidDateRange.Error()},
		{domainErrors.ErrInvalidToken, http.StatusUnauthorized, domainErrors.ErrInvalidToken.Error()},
		{domainErrors.ErrForbidden, http.StatusForbidden, domainErrors.ErrForbidden.Error()},
		{domainErrors.WrapStore("insert user", errors.New("conn refused")), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			resp := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(resp)
			respondError(c, tt.err)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := decodeError(t, resp); got != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, got)
			}
			if tt.status == http.StatusInternalServerError && len(c.Errors) != 1 {
				t.Fatalf("expected error attached to context")
			}
		})
	}
}

func TestAuthHandlerSignup(t *testing.T) {
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.SignupRequest{Email: email, Password: password, Name: "Jane"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotEmail, gotPassword, gotName string) (string, error) {
		if gotEmail != email || gotPassword != password || gotName != "Jane" {
			t.Fatalf("unexpected signup passed to facade: %q %q %q", gotEmail, gotPassword, gotName)
		}
		return "session-token", nil
	}})

	resp := performRequest(t, http.MethodPost, "/signup", "/signup", handler.Signup, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil || decoded.Token != "session-token" {
		t.Fatalf("unexpected body %q (%v)", resp.Body.String(), err)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}

	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "coworking_token" && cookie.Value == "session-token" {
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named coworking_token")
	}
}

func TestAuthHandlerSignupFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid input", body: []byte(`{"email":"","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", domainErrors.ErrInvalidInput
		}}, status: http.StatusBadRequest},
		{name: "duplicate", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", domainErrors.ErrDuplicateEmail
		}}, status: http.StatusBadRequest},
		{name: "internal", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/signup", "/signup", NewAuthHandler(tt.facade).Signup, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if decodeError(t, resp) == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil || decoded.Token != "token" {
		t.Fatalf("unexpected body %q (%v)", resp.Body.String(), err)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
		msg    string
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest, msg: invalidBodyMessage},
		{name: "wrong password", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusBadRequest, msg: domainErrors.ErrInvalidCredentials.Error()},
		{name: "unknown email", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrNotFound
		}}, status: http.StatusBadRequest, msg: domainErrors.ErrNotFound.Error()},
		{name: "internal", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError, msg: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := decodeError(t, resp); got != tt.msg {
				t.Fatalf("expected message %q, got %q", tt.msg, got)
			}
		})
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	var revoked string
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{LogoutFn: func(_ context.Context, token string) error {
		revoked = token
		return nil
	}})
	resp := performRequest(t, http.MethodPost, "/logout", "/logout", handler.Logout, asUser("user-1"), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if revoked != "token-user-1" {
		t.Fatalf("expected request token to be revoked, got %q", revoked)
	}

	handler = NewAuthHandler(testhelpers.AuthFacadeStub{LogoutFn: func(context.Context, string) error {
		return domainErrors.ErrInvalidToken
	}})
	resp = performRequest(t, http.MethodPost, "/logout", "/logout", handler.Logout, asUser("user-1"), nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthHandlerMe(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{ProfileFn: func(_ context.Context, id string) (*model.User, error) {
		return &model.User{ID: id, Email: "me@example.com", Name: "Me", PasswordHash: "secret-hash", CreatedAt: created}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/me", "/me", handler.Me, asUser("user-7"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("secret-hash")) {
		t.Fatal("password hash leaked in profile response")
	}
	var decoded dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != "user-7" || decoded.Email != "me@example.com" || !decoded.CreatedAt.Time().Equal(created) {
		t.Fatalf("unexpected profile %+v", decoded)
	}

	handler = NewAuthHandler(testhelpers.AuthFacadeStub{ProfileFn: func(context.Context, string) (*model.User, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp = performRequest(t, http.MethodGet, "/me", "/me", handler.Me, asUser("gone"), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestBookingHandlerCreate(t *testing.T) {
	var got model.BookingRequest
	var actor string
	facade := testhelpers.BookingFacadeStub{CreateFn: func(_ context.Context, actorID string, req model.BookingRequest) (*model.Booking, error) {
		actor, got = actorID, req
		return &model.Booking{ID: "b-1", UserID: actorID, SpaceType: req.SpaceType, SubType: req.SubType,
			StartDate: req.StartDate, EndDate: req.EndDate, TotalAmount: 4000}, nil
	}}
	body := []byte(`{"spaceType":"conference","subType":"Hourly","startDate":"2025-01-02T09:00:00Z","endDate":"2025-01-02T11:00:00Z"}`)

	resp := performRequest(t, http.MethodPost, "/bookings", "/bookings", NewBookingHandler(facade).Create, asUser("U1"), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if actor != "U1" || got.UserID != "" || got.SpaceType != catalog.Conference || got.SubType != "Hourly" {
		t.Fatalf("unexpected request passed to facade: actor=%q %+v", actor, got)
	}
	if !got.StartDate.Equal(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date %s", got.StartDate)
	}

	var decoded dto.BookingResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != "b-1" || decoded.UserID != "U1" || decoded.TotalAmount != 4000 {
		t.Fatalf("unexpected booking %+v", decoded)
	}
}

func TestBookingHandlerCreateFailures(t *testing.T) {
	valid := []byte(`{"userId":"U1","spaceType":"private-cabin","subType":"Type 4","startDate":"2025-01-01","endDate":"2025-02-01","totalAmount":35000}`)
	tests := []struct {
		name   string
		facade testhelpers.BookingFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("{"), status: http.StatusBadRequest},
		{name: "bad date", body: []byte(`{"spaceType":"conference","subType":"Hourly","startDate":"soon"}`), status: http.StatusBadRequest},
		{name: "invalid space", body: valid, facade: testhelpers.BookingFacadeStub{CreateFn: func(context.Context, string, model.BookingRequest) (*model.Booking, error) {
			return nil, domainErrors.ErrInvalidSpace
		}}, status: http.StatusBadRequest},
		{name: "invalid range", body: valid, facade: testhelpers.BookingFacadeStub{CreateFn: func(context.Context, string, model.BookingRequest) (*model.Booking, error) {
			return nil, domainErrors.ErrInvalidDateRange
		}}, status: http.StatusBadRequest},
		{name: "other user", body: valid, facade: testhelpers.BookingFacadeStub{CreateFn: func(context.Context, string, model.BookingRequest) (*model.Booking, error) {
			return nil, domainErrors.ErrForbidden
		}}, status: http.StatusForbidden},
		{name: "internal", body: valid, facade: testhelpers.BookingFacadeStub{CreateFn: func(context.Context, string, model.BookingRequest) (*model.Booking, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/bookings", "/bookings", NewBookingHandler(tt.facade).Create, asUser("U1"), tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestBookingHandlerListByUser(t *testing.T) {
	var actor, target string
	facade := testhelpers.BookingFacadeStub{BookingsFn: func(_ context.Context, actorID, userID string) ([]model.Booking, error) {
		actor, target = actorID, userID
		return []model.Booking{{ID: "1", UserID: userID}, {ID: "2", UserID: userID}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/bookings/:userId", "/bookings/U1", NewBookingHandler(facade).ListByUser, asUser("U1"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if actor != "U1" || target != "U1" {
		t.Fatalf("unexpected facade arguments %q %q", actor, target)
	}
	var decoded []dto.BookingResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(decoded))
	}
}

func TestBookingHandlerListByUserEmpty(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{BookingsFn: func(context.Context, string, string) ([]model.Booking, error) {
		return nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/bookings/:userId", "/bookings/U1", NewBookingHandler(facade).ListByUser, asUser("U1"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "[]" {
		t.Fatalf("expected empty JSON array, got %s", got)
	}
}

func TestBookingHandlerListByUserForbidden(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{BookingsFn: func(context.Context, string, string) ([]model.Booking, error) {
		return nil, domainErrors.ErrForbidden
	}}
	resp := performRequest(t, http.MethodGet, "/bookings/:userId", "/bookings/U2", NewBookingHandler(facade).ListByUser, asUser("U1"), nil, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}
}

func TestSpaceHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/spaces", "/spaces", NewSpaceHandler(testhelpers.CatalogFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.SpaceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != len(catalog.Spaces()) {
		t.Fatalf("expected %d spaces, got %d", len(catalog.Spaces()), len(decoded))
	}
	for _, s := range decoded {
		if s.Type == catalog.Conference {
			if len(s.Options) != 1 || s.Options[0].Name != "Hourly" || s.Options[0].Price != 2000 || s.Options[0].Period != "hour" {
				t.Fatalf("unexpected conference offers %+v", s.Options)
			}
			return
		}
	}
	t.Fatal("conference room missing from catalog")
}

func TestHealthHandler(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/health", "/health", NewHealthHandler(testhelpers.HealthFacadeStub{}).Check, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/health", "/health", NewHealthHandler(testhelpers.HealthFacadeStub{Err: errors.New("db down")}).Check, nil, nil, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("complete: %w", ErrInvalidState("scheduled_service_not_pending"))

	if KindOf(err) != KindInvalidState {
		t.Fatalf("expected invalid_state, got %q", KindOf(err))
	}
	if !IsBusiness(err, "scheduled_service_not_pending") {
		t.Fatal("expected code match through wrapping")
	}
	if IsKind(errors.New("boom"), KindInvalidState) {
		t.Fatal("plain errors have no kind")
	}
	if IsKind(nil, "") {
		t.Fatal("nil is never a business error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatal("expected unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation is not unique violation")
	}
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrNotFound("appointment_not_found"), http.StatusNotFound, "appointment_not_found"},
		{ErrInvalidState("appointment_already_completed"), http.StatusConflict, "appointment_already_completed"},
		{ErrBusiness(KindBatchPartialMismatch, "commissions_not_found"), http.StatusUnprocessableEntity, "commissions_not_found"},
		{ErrEmptyCollection("no_services"), http.StatusBadRequest, "no_services"},
		{errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FromError(c, tc.err)

		if w.Code != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, w.Code)
		}
		var body HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Code != tc.code {
			t.Fatalf("expected code %s, got %s", tc.code, body.Code)
		}
	}
}

package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-medical-appointment/pkg/apperror"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"conflict", apperror.Conflict("This time slot is no longer available. Please choose another."), http.StatusConflict, "CONFLICT", "This time slot is no longer available. Please choose another."},
		{"policy", apperror.PolicyViolation("too late"), http.StatusUnprocessableEntity, "POLICY_VIOLATION", "too late"},
		{"forbidden", apperror.Forbidden("not yours"), http.StatusForbidden, "FORBIDDEN", "not yours"},
		{"plain error", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decode(t, rec)
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if body["message"] != tt.wantMsg {
				t.Errorf("message = %v, want %q", body["message"], tt.wantMsg)
			}
			errBody, _ := body["error"].(map[string]interface{})
			if errBody["code"] != tt.wantCode {
				t.Errorf("error.code = %v, want %s", errBody["code"], tt.wantCode)
			}
		})
	}
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, http.StatusOK, "ok", []string{"a"}, &Meta{Page: 2, Limit: 10, Total: 15, TotalPages: 2})

	body := decode(t, rec)
	meta, _ := body["meta"].(map[string]interface{})
	if meta["total_pages"] != float64(2) || meta["total"] != float64(15) {
		t.Errorf("meta = %v", meta)
	}
}

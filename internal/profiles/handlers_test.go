package profiles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FireBushtree/stronger-body/internal/kv"
)

func newTestHandler() *Handler {
	return NewHandler(NewStore(kv.NewMemory()))
}

func TestGetProfileEmpty(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	rec := httptest.NewRecorder()
	handler.HandleProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ProfileResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Profile != nil {
		t.Error("expected null profile")
	}
	if resp.Complete {
		t.Error("expected complete=false")
	}
}

func TestPutThenGetProfile(t *testing.T) {
	handler := newTestHandler()

	body := `{"height":180,"gender":"male","age":28,"currentWeight":82,"weeklyWorkIntensity":"heavy","targetWeight":75}`
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ProfileResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Profile == nil || !resp.Complete {
		t.Fatalf("expected a complete profile, got %+v", resp)
	}
	if resp.Profile.BMI != 25.3 {
		t.Errorf("expected BMI 25.3, got %v", resp.Profile.BMI)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	rec = httptest.NewRecorder()
	handler.HandleProfile(rec, req)

	var again ProfileResponse
	json.NewDecoder(rec.Body).Decode(&again)
	if again.Profile == nil || again.Profile.CurrentWeight != 82 {
		t.Errorf("expected persisted profile, got %+v", again)
	}
}

func TestPutProfileValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"negative height", `{"height":-1}`, "invalid_value"},
		{"bad gender", `{"gender":"other"}`, "invalid_gender"},
		{"bad intensity", `{"weeklyWorkIntensity":"crazy"}`, "invalid_intensity"},
		{"garbage body", `{`, "invalid_json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler()
			req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.HandleProfile(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var resp ErrorResponse
			json.NewDecoder(rec.Body).Decode(&resp)
			if resp.Error.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, resp.Error.Code)
			}
		})
	}
}

func TestTargetsRequireCompleteProfile(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/profile/targets", nil)
	rec := httptest.NewRecorder()
	handler.HandleTargets(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var resp ErrorResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Error.Code != "profile_incomplete" {
		t.Errorf("expected profile_incomplete, got %s", resp.Error.Code)
	}
}

func TestTargetsWithProfile(t *testing.T) {
	handler := newTestHandler()

	body := `{"height":170,"gender":"female","age":30,"currentWeight":70,"weeklyWorkIntensity":"moderate"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(body))
	handler.HandleProfile(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/v1/profile/targets", nil)
	rec := httptest.NewRecorder()
	handler.HandleTargets(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var targets NutritionTargets
	json.NewDecoder(rec.Body).Decode(&targets)
	if targets.BMR != 1452 || targets.TDEE != 2250 {
		t.Errorf("unexpected targets: %+v", targets)
	}
}

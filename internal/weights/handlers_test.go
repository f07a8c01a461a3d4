package weights

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FireBushtree/stronger-body/internal/datestore"
	"github.com/FireBushtree/stronger-body/internal/kv"
	"github.com/FireBushtree/stronger-body/internal/profiles"
)

func TestHandleAddAndRange(t *testing.T) {
	handler := NewHandler(NewStore(kv.NewMemory()), nil)

	body := `{"date":"2025-03-10","weight":71.5,"isFasting":true,"note":"晨起空腹"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/weights", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleWeights(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var saved WeightRecord
	json.NewDecoder(rec.Body).Decode(&saved)
	if saved.Weight != 71.5 || !saved.IsFasting || saved.Note != "晨起空腹" {
		t.Errorf("unexpected saved record: %+v", saved)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/weights?from=2025-03-01&to=2025-03-31", nil)
	rec = httptest.NewRecorder()
	handler.HandleWeights(rec, req)

	var resp RecordsResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if len(resp.Records) != 1 {
		t.Errorf("expected 1 record, got %d", len(resp.Records))
	}
}

func TestHandleAddValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"bad date", `{"date":"10.03.2025","weight":70}`, "invalid_date"},
		{"zero weight", `{"date":"2025-03-10","weight":0}`, "invalid_weight"},
		{"negative weight", `{"date":"2025-03-10","weight":-5}`, "invalid_weight"},
		{"garbage body", `{`, "invalid_json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(NewStore(kv.NewMemory()), nil)
			req := httptest.NewRequest(http.MethodPost, "/v1/weights", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.HandleWeights(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var resp profiles.ErrorResponse
			json.NewDecoder(rec.Body).Decode(&resp)
			if resp.Error.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, resp.Error.Code)
			}
		})
	}
}

func TestTodayWeighInRefreshesProfile(t *testing.T) {
	backend := kv.NewMemory()
	profileStore := profiles.NewStore(backend)
	profileStore.Set(httptest.NewRequest(http.MethodGet, "/", nil).Context(), profiles.ProfileUpdate{
		Height: 180, Gender: profiles.GenderMale, Age: 30, CurrentWeight: 80, WeeklyWorkIntensity: profiles.IntensityHeavy,
	})

	handler := NewHandler(NewStore(backend), profileStore)

	today := time.Now().Format(datestore.DateLayout)
	body := `{"date":"` + today + `","weight":78.2,"isFasting":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/weights", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleWeights(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	profile, _ := profileStore.Get(req.Context())
	if profile.CurrentWeight != 78.2 {
		t.Errorf("today's weigh-in must refresh the profile weight, got %v", profile.CurrentWeight)
	}
}

func TestBackdatedWeighInLeavesProfileAlone(t *testing.T) {
	backend := kv.NewMemory()
	profileStore := profiles.NewStore(backend)
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	profileStore.Set(ctx, profiles.ProfileUpdate{
		Height: 180, Gender: profiles.GenderMale, Age: 30, CurrentWeight: 80, WeeklyWorkIntensity: profiles.IntensityHeavy,
	})

	handler := NewHandler(NewStore(backend), profileStore)

	body := `{"date":"2020-01-01","weight":95,"isFasting":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/weights", strings.NewReader(body))
	handler.HandleWeights(httptest.NewRecorder(), req)

	profile, _ := profileStore.Get(ctx)
	if profile.CurrentWeight != 80 {
		t.Errorf("a backdated weigh-in must not touch the profile, got %v", profile.CurrentWeight)
	}
}

func TestHandleSeriesFastingOnly(t *testing.T) {
	backend := kv.NewMemory()
	store := NewStore(backend)
	handler := NewHandler(store, nil)

	today := time.Now().Format(datestore.DateLayout)
	store.Add(httptest.NewRequest(http.MethodGet, "/", nil).Context(), WeightRecord{Date: today, Weight: 71, IsFasting: false})

	req := httptest.NewRequest(http.MethodGet, "/v1/weights/series", nil)
	rec := httptest.NewRecorder()
	handler.HandleSeries(rec, req)

	var resp RecordsResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if len(resp.Records) != 0 {
		t.Errorf("non-fasting records must not appear in the series, got %d", len(resp.Records))
	}
}

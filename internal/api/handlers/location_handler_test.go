package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/clinicsite/internal/api/handlers"
	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
)

type stubLocationService struct {
	locations []*entities.Location
}

func (s *stubLocationService) List(_ context.Context, filter repositories.LocationFilter) []*entities.Location {
	out := []*entities.Location{}
	for _, l := range s.locations {
		if filter.ActiveOnly && !l.IsActive {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *stubLocationService) GetBySlug(_ context.Context, slug string) *entities.Location {
	for _, l := range s.locations {
		if l.Slug == slug && l.IsActive {
			return l
		}
	}
	return nil
}

func (s *stubLocationService) Create(_ context.Context, input services.LocationInput) *entities.Location {
	l := &entities.Location{ID: "l-new", Name: input.Name, Slug: "new", Address: input.Address, IsActive: true}
	s.locations = append(s.locations, l)
	return l
}

func (s *stubLocationService) Update(_ context.Context, id string, patch entities.LocationPatch) *entities.Location {
	for _, l := range s.locations {
		if l.ID == id {
			if patch.Phone != nil {
				l.Phone = *patch.Phone
			}
			return l
		}
	}
	return nil
}

func (s *stubLocationService) Delete(_ context.Context, id string) bool {
	for _, l := range s.locations {
		if l.ID == id {
			l.IsActive = false
			return true
		}
	}
	return false
}

func newStubLocationService() *stubLocationService {
	return &stubLocationService{locations: []*entities.Location{
		{ID: "l1", Slug: "downtown", Name: "Downtown", IsActive: true},
		{ID: "l2", Slug: "old-town", Name: "Old Town"},
	}}
}

func TestLocationHandler_ListLocations(t *testing.T) {
	handler := handlers.NewLocationHandler(newStubLocationService())

	req := httptest.NewRequest("GET", "/api/locations", nil)
	w := httptest.NewRecorder()
	handler.ListLocations(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var active []entities.Location
	require.NoError(t, json.NewDecoder(w.Body).Decode(&active))
	require.Len(t, active, 1)
	assert.Equal(t, "downtown", active[0].Slug)

	req = httptest.NewRequest("GET", "/api/admin/locations", nil)
	w = httptest.NewRecorder()
	handler.ListAllLocations(w, req)

	var all []entities.Location
	require.NoError(t, json.NewDecoder(w.Body).Decode(&all))
	assert.Len(t, all, 2)
}

func TestLocationHandler_GetLocation(t *testing.T) {
	handler := handlers.NewLocationHandler(newStubLocationService())

	req := httptest.NewRequest("GET", "/api/locations/downtown", nil)
	req.SetPathValue("slug", "downtown")
	w := httptest.NewRecorder()
	handler.GetLocation(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/api/locations/old-town", nil)
	req.SetPathValue("slug", "old-town")
	w = httptest.NewRecorder()
	handler.GetLocation(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLocationHandler_CreateLocation(t *testing.T) {
	service := newStubLocationService()
	handler := handlers.NewLocationHandler(service)

	req := httptest.NewRequest("POST", "/api/admin/locations", strings.NewReader(`{"name":"Harbor","address":"1 Pier","email":"not-an-email"}`))
	w := httptest.NewRecorder()
	handler.CreateLocation(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email must be a valid email address")

	req = httptest.NewRequest("POST", "/api/admin/locations", strings.NewReader(`{"name":"Harbor","address":"1 Pier","hours":{"monday":"9-5"}}`))
	w = httptest.NewRecorder()
	handler.CreateLocation(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, service.locations, 3)
}

func TestLocationHandler_UpdateAndSoftDelete(t *testing.T) {
	service := newStubLocationService()
	handler := handlers.NewLocationHandler(service)

	req := httptest.NewRequest("PATCH", "/api/admin/locations/l1", strings.NewReader(`{"phone":"555-0100"}`))
	req.SetPathValue("id", "l1")
	w := httptest.NewRecorder()
	handler.UpdateLocation(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "555-0100", service.locations[0].Phone)

	req = httptest.NewRequest("DELETE", "/api/admin/locations/l1", nil)
	req.SetPathValue("id", "l1")
	w = httptest.NewRecorder()
	handler.DeleteLocation(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, service.locations[0].IsActive)

	req = httptest.NewRequest("DELETE", "/api/admin/locations/l9", nil)
	req.SetPathValue("id", "l9")
	w = httptest.NewRecorder()
	handler.DeleteLocation(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLocationHandler_UpdateRejectsEmptySlug(t *testing.T) {
	service := newStubLocationService()
	handler := handlers.NewLocationHandler(service)

	req := httptest.NewRequest("PATCH", "/api/admin/locations/l1", strings.NewReader(`{"slug":"  ?? ","phone":"555-0100"}`))
	req.SetPathValue("id", "l1")
	w := httptest.NewRecorder()
	handler.UpdateLocation(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "downtown", service.locations[0].Slug)
	assert.Empty(t, service.locations[0].Phone)
}

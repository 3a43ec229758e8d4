package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/clinicsite/internal/api/handlers"
	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
)

type stubManagementTeamService struct {
	filters []repositories.ManagementTeamFilter
	deleted []string
}

func (s *stubManagementTeamService) List(_ context.Context, filter repositories.ManagementTeamFilter) []*entities.ManagementTeamMember {
	s.filters = append(s.filters, filter)
	return []*entities.ManagementTeamMember{}
}

func (s *stubManagementTeamService) Create(_ context.Context, input services.ManagementTeamInput) *entities.ManagementTeamMember {
	return &entities.ManagementTeamMember{ID: "m1", Name: input.Name, Title: input.Title, IsActive: true}
}

func (s *stubManagementTeamService) Update(_ context.Context, id string, patch entities.ManagementTeamMemberPatch) *entities.ManagementTeamMember {
	if id != "m1" {
		return nil
	}
	return &entities.ManagementTeamMember{ID: id}
}

func (s *stubManagementTeamService) Delete(_ context.Context, id string) bool {
	s.deleted = append(s.deleted, id)
	return id == "m1"
}

func TestManagementTeamHandler_Lists(t *testing.T) {
	service := &stubManagementTeamService{}
	handler := handlers.NewManagementTeamHandler(service)

	w := httptest.NewRecorder()
	handler.ListMembers(w, httptest.NewRequest("GET", "/api/management-team", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	handler.ListAllMembers(w, httptest.NewRequest("GET", "/api/admin/management-team", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []repositories.ManagementTeamFilter{{ActiveOnly: true}, {}}, service.filters)
}

func TestManagementTeamHandler_CreateMember(t *testing.T) {
	handler := handlers.NewManagementTeamHandler(&stubManagementTeamService{})

	req := httptest.NewRequest("POST", "/api/admin/management-team", strings.NewReader(`{"name":"Avery Stone"}`))
	w := httptest.NewRecorder()
	handler.CreateMember(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")

	req = httptest.NewRequest("POST", "/api/admin/management-team", strings.NewReader(`{"name":"Avery Stone","title":"CEO"}`))
	w = httptest.NewRecorder()
	handler.CreateMember(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestManagementTeamHandler_UpdateAndDelete(t *testing.T) {
	service := &stubManagementTeamService{}
	handler := handlers.NewManagementTeamHandler(service)

	req := httptest.NewRequest("PATCH", "/api/admin/management-team/m2", strings.NewReader(`{"bio":"x"}`))
	req.SetPathValue("id", "m2")
	w := httptest.NewRecorder()
	handler.UpdateMember(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest("DELETE", "/api/admin/management-team/m1", nil)
	req.SetPathValue("id", "m1")
	w = httptest.NewRecorder()
	handler.DeleteMember(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"m1"}, service.deleted)
}

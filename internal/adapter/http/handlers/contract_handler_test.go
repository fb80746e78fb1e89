package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"comercial_moveis/internal/adapter/http/handlers/mocks"
	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/usecase"
)

func TestContractHandler_GenerateContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc, testLocale())

		r := gin.New()
		r.POST("/v1/simulations/:session_id/contract", h.GenerateContract)

		uc.EXPECT().GenerateContract(gomock.Any(), "sess-1", "").Return(entities.Contract{ID: "ct-1", Number: "CT-20250115-ABCDEF12", Status: entities.ContractStatusGerado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/simulations/sess-1/contract", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["number"] != "CT-20250115-ABCDEF12" || body["status"] != "gerado" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("with budget link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc, testLocale())

		r := gin.New()
		r.POST("/v1/simulations/:session_id/contract", h.GenerateContract)

		uc.EXPECT().GenerateContract(gomock.Any(), "sess-1", "b-1").Return(entities.Contract{ID: "ct-1", BudgetID: "b-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/simulations/sess-1/contract", bytes.NewBufferString(`{"budget_id":" b-1 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc, testLocale())

		r := gin.New()
		r.POST("/v1/simulations/:session_id/contract", h.GenerateContract)

		req := httptest.NewRequest(http.MethodPost, "/v1/simulations/sess-1/contract", bytes.NewBufferString(`{"budget_id":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("plan not reconciled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc, testLocale())

		r := gin.New()
		r.POST("/v1/simulations/:session_id/contract", h.GenerateContract)

		uc.EXPECT().GenerateContract(gomock.Any(), "sess-1", "").Return(entities.Contract{}, usecase.ErrContractNotAllowed)

		req := httptest.NewRequest(http.MethodPost, "/v1/simulations/sess-1/contract", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestContractHandler_StatusAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc, testLocale())

		r := gin.New()
		r.PATCH("/v1/contracts/:contract_id/sign", h.SignContract)

		uc.EXPECT().Sign(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusAssinado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/ct-1/sign", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc, testLocale())

		r := gin.New()
		r.PATCH("/v1/contracts/:contract_id/cancel", h.CancelContract)

		uc.EXPECT().Cancel(gomock.Any(), "ct-1").Return(entities.Contract{}, usecase.ErrContractStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/ct-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc, testLocale())

		r := gin.New()
		r.GET("/v1/contracts/:contract_id", h.GetContract)

		uc.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{}, usecase.ErrContractNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/contracts/ct-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapContractError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidContractID, http.StatusBadRequest},
		{usecase.ErrContractNotAllowed, http.StatusUnprocessableEntity},
		{usecase.ErrContractNotFound, http.StatusNotFound},
		{usecase.ErrContractStatusTransition, http.StatusConflict},
		{usecase.ErrBudgetNotLinkable, http.StatusConflict},
		{usecase.ErrBudgetNotFound, http.StatusNotFound},
		{usecase.ErrSessionNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapContractError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}

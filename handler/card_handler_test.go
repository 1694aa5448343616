package handler_test

import (
	"bank-admin-api/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCardHandler_CreateCard(t *testing.T) {
	t.Run("valid card is created", func(t *testing.T) {
		cardSvc := new(MockCardService)
		r := testRouter(new(MockUserService), new(MockAccountService), cardSvc)

		created := &model.Card{
			Number:         4111111111111111,
			AccountNumber:  1001001001001001,
			ExpirationDate: time.Date(2027, 12, 1, 0, 0, 0, 0, time.UTC),
			CVV:            123,
		}
		cardSvc.On("Create", mock.MatchedBy(func(c *model.Card) bool {
			return c.Number == created.Number
		})).Return(created, nil).Once()

		body := `{"number":4111111111111111,"account":1001001001001001,"expirationDate":"2027-12-01T00:00:00Z","cvv":123}`
		req, _ := http.NewRequest("POST", "/api/card/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		cardSvc.AssertExpectations(t)
	})

	t.Run("fourteen-digit number is rejected", func(t *testing.T) {
		cardSvc := new(MockCardService)
		r := testRouter(new(MockUserService), new(MockAccountService), cardSvc)

		body := `{"number":41111111111111,"account":1001001001001001,"expirationDate":"2027-12-01T00:00:00Z","cvv":123}`
		req, _ := http.NewRequest("POST", "/api/card/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		cardSvc.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("missing cvv is rejected", func(t *testing.T) {
		cardSvc := new(MockCardService)
		r := testRouter(new(MockUserService), new(MockAccountService), cardSvc)

		body := `{"number":4111111111111,"account":1001001001001001,"expirationDate":"2027-12-01T00:00:00Z"}`
		req, _ := http.NewRequest("POST", "/api/card/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		cardSvc.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestCardHandler_DeleteCard(t *testing.T) {
	cardSvc := new(MockCardService)
	r := testRouter(new(MockUserService), new(MockAccountService), cardSvc)

	cardSvc.On("Delete", mock.Anything, int64(4111111111111)).Return(nil).Once()

	req, _ := http.NewRequest("DELETE", "/api/card/delete/4111111111111", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	cardSvc.AssertExpectations(t)
}

func TestCardHandler_UpdateCard(t *testing.T) {
	cardSvc := new(MockCardService)
	r := testRouter(new(MockUserService), new(MockAccountService), cardSvc)

	cardSvc.On("Update", int64(4111111111111), mock.MatchedBy(func(c *model.Card) bool {
		return c.CVV == 987
	})).Return(nil).Once()

	body := `{"account":1001001001001001,"expirationDate":"2030-06-01T00:00:00Z","cvv":987}`
	req, _ := http.NewRequest("PUT", "/api/card/update/4111111111111", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	cardSvc.AssertExpectations(t)
}

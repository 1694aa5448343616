package service

import (
	"bank-admin-api/common"
	"bank-admin-api/model"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCardServiceForTest(t *testing.T) (*CardService, *MockCardRepository, sqlmock.Sqlmock) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cardRepo := new(MockCardRepository)
	return NewCardService(db, cardRepo), cardRepo, dbMock
}

var testCard = &model.Card{
	Number:         4111111111111,
	AccountNumber:  1001001001001001,
	ExpirationDate: time.Date(2027, 12, 1, 0, 0, 0, 0, time.UTC),
	CVV:            123,
}

func TestCardService_GetByNumber(t *testing.T) {
	cardService, cardRepo, _ := newCardServiceForTest(t)

	t.Run("found", func(t *testing.T) {
		cardRepo.On("GetCardByNumber", testCard.Number).Return(testCard, nil).Once()

		card, err := cardService.GetByNumber(testCard.Number)

		assert.NoError(t, err)
		assert.Equal(t, testCard, card)
	})

	t.Run("not found", func(t *testing.T) {
		cardRepo.On("GetCardByNumber", int64(4999999999999)).Return(nil, sql.ErrNoRows).Once()

		_, err := cardService.GetByNumber(4999999999999)

		var notFound *common.NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, "card", notFound.Resource)
	})
}

func TestCardService_CreateThenGet(t *testing.T) {
	cardService, cardRepo, _ := newCardServiceForTest(t)

	cardRepo.On("CreateCard", testCard).Return(nil).Once()
	cardRepo.On("GetCardByNumber", testCard.Number).Return(testCard, nil).Once()

	created, err := cardService.Create(testCard)
	assert.NoError(t, err)

	got, err := cardService.GetByNumber(testCard.Number)
	assert.NoError(t, err)
	assert.Equal(t, created, got)
	cardRepo.AssertExpectations(t)
}

func TestCardService_Update(t *testing.T) {
	t.Run("merges account, expiration and cvv", func(t *testing.T) {
		cardService, cardRepo, _ := newCardServiceForTest(t)

		newExpiry := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
		cardRepo.On("GetCardByNumber", testCard.Number).Return(testCard, nil).Once()
		cardRepo.On("UpdateCard", mock.MatchedBy(func(c *model.Card) bool {
			return c.Number == testCard.Number && c.AccountNumber == 2002002002002002 &&
				c.ExpirationDate.Equal(newExpiry) && c.CVV == 987
		})).Return(nil).Once()

		detail := &model.Card{AccountNumber: 2002002002002002, ExpirationDate: newExpiry, CVV: 987}
		err := cardService.Update(testCard.Number, detail)

		assert.NoError(t, err)
		cardRepo.AssertExpectations(t)
	})

	t.Run("missing card never reaches the repository save", func(t *testing.T) {
		cardService, cardRepo, _ := newCardServiceForTest(t)

		cardRepo.On("GetCardByNumber", int64(4999999999999)).Return(nil, sql.ErrNoRows).Once()

		err := cardService.Update(4999999999999, testCard)

		var notFound *common.NotFoundError
		assert.ErrorAs(t, err, &notFound)
		cardRepo.AssertNotCalled(t, "UpdateCard", mock.Anything)
	})
}

func TestCardService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cardService, cardRepo, dbMock := newCardServiceForTest(t)

		cardRepo.On("GetCardByNumber", testCard.Number).Return(testCard, nil).Once()
		dbMock.ExpectBegin()
		cardRepo.On("DeleteCard", mock.Anything, testCard.Number).Return(nil).Once()
		dbMock.ExpectCommit()

		err := cardService.Delete(context.Background(), testCard.Number)

		assert.NoError(t, err)
		cardRepo.AssertExpectations(t)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		cardService, cardRepo, dbMock := newCardServiceForTest(t)

		cardRepo.On("GetCardByNumber", int64(4999999999999)).Return(nil, sql.ErrNoRows).Once()

		err := cardService.Delete(context.Background(), 4999999999999)

		var notFound *common.NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

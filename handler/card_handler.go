package handler

import (
	"bank-admin-api/common"
	"bank-admin-api/model"
	"context"
	"net/http"
)

// ICardService is the slice of the card service the handlers need.
type ICardService interface {
	GetAll() ([]*model.Card, error)
	Create(card *model.Card) (*model.Card, error)
	Update(number int64, detail *model.Card) error
	Delete(ctx context.Context, number int64) error
}

type CardHandler struct {
	service ICardService
}

func NewCardHandler(service ICardService) *CardHandler {
	return &CardHandler{service: service}
}

// GetAllCards godoc
// @Summary  List all cards
// @Tags     cards
// @Produce  json
// @Success  200  {array}  model.Card
// @Router   /api/card/all-cards [get]
func (h *CardHandler) GetAllCards(w http.ResponseWriter, r *http.Request) *common.AppError {
	cards, err := h.service.GetAll()
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusOK, cards)
	return nil
}

// CreateCard godoc
// @Summary  Create a card under a caller-supplied number
// @Tags     cards
// @Accept   json
// @Produce  json
// @Param    card  body      model.Card  true  "Card data"
// @Success  201   {object}  model.Card
// @Failure  400   {object}  common.AppError
// @Router   /api/card/create [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	var card model.Card
	if appErr := common.DecodeJSON(r, &card); appErr != nil {
		return appErr
	}
	if err := common.ValidateCard(&card); err != nil {
		return common.ToAppError(err)
	}
	if err := common.ValidateCardNumber(card.Number); err != nil {
		return common.ToAppError(err)
	}

	created, err := h.service.Create(&card)
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusCreated, created)
	return nil
}

// DeleteCard godoc
// @Summary  Delete a card
// @Tags     cards
// @Param    number  path  int  true  "Card number"
// @Success  204
// @Failure  400  {object}  common.AppError
// @Failure  404  {object}  common.AppError
// @Router   /api/card/delete/{number} [delete]
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	number, appErr := parseKey(r, "number")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateCardNumber(number); err != nil {
		return common.ToAppError(err)
	}

	if err := h.service.Delete(r.Context(), number); err != nil {
		return common.ToAppError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// UpdateCard godoc
// @Summary  Replace account, expiration date and CVV of a card
// @Tags     cards
// @Accept   json
// @Param    number  path  int         true  "Card number"
// @Param    card    body  model.Card  true  "Replacement fields"
// @Success  204
// @Failure  400  {object}  common.AppError
// @Failure  404  {object}  common.AppError
// @Router   /api/card/update/{number} [put]
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	number, appErr := parseKey(r, "number")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateCardNumber(number); err != nil {
		return common.ToAppError(err)
	}

	var detail model.Card
	if appErr := common.DecodeJSON(r, &detail); appErr != nil {
		return appErr
	}
	if err := common.ValidateCard(&detail); err != nil {
		return common.ToAppError(err)
	}

	if err := h.service.Update(number, &detail); err != nil {
		return common.ToAppError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

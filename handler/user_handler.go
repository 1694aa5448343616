package handler

import (
	"bank-admin-api/common"
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"context"
	"net/http"
)

// IUserService is the slice of the user service the handlers need.
type IUserService interface {
	GetAll() ([]*model.User, error)
	Create(user *model.User) (*model.User, error)
	Update(id int64, detail *model.User) error
	Delete(ctx context.Context, id int64) error
	GetAccounts(id int64) ([]*model.Account, error)
	GetCards(id int64) ([]*model.Card, error)
	GetOverallBalance(id int64) (float64, error)
}

type UserHandler struct {
	service IUserService
}

func NewUserHandler(service IUserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetAllUsers godoc
// @Summary  List all users
// @Tags     users
// @Produce  json
// @Success  200  {array}  model.User
// @Router   /api/user/all-users [get]
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.service.GetAll()
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusOK, users)
	return nil
}

// GetUserAccounts godoc
// @Summary  List a user's accounts
// @Tags     users
// @Produce  json
// @Param    id   path      int  true  "User ID"
// @Success  200  {array}   model.Account
// @Failure  400  {object}  common.AppError
// @Failure  404  {object}  common.AppError
// @Router   /api/user/{id}/accounts [get]
func (h *UserHandler) GetUserAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parseKey(r, "id")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateUserID(id); err != nil {
		return common.ToAppError(err)
	}

	accounts, err := h.service.GetAccounts(id)
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusOK, accounts)
	return nil
}

// GetUserCards godoc
// @Summary  List a user's cards across all accounts
// @Tags     users
// @Produce  json
// @Param    id   path      int  true  "User ID"
// @Success  200  {array}   model.Card
// @Failure  400  {object}  common.AppError
// @Failure  404  {object}  common.AppError
// @Router   /api/user/{id}/cards [get]
func (h *UserHandler) GetUserCards(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parseKey(r, "id")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateUserID(id); err != nil {
		return common.ToAppError(err)
	}

	cards, err := h.service.GetCards(id)
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusOK, cards)
	return nil
}

// GetOverallBalance godoc
// @Summary  Total balance over a user's accounts, in RUB
// @Tags     users
// @Produce  json
// @Param    id   path      int  true  "User ID"
// @Success  200  {number}  float64
// @Failure  400  {object}  common.AppError
// @Failure  404  {object}  common.AppError
// @Router   /api/user/{id}/balance [get]
func (h *UserHandler) GetOverallBalance(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parseKey(r, "id")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateUserID(id); err != nil {
		return common.ToAppError(err)
	}

	balance, err := h.service.GetOverallBalance(id)
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusOK, balance)
	return nil
}

// CreateUser godoc
// @Summary  Create a new user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    user  body      model.User  true  "User data (id is ignored)"
// @Success  201   {object}  model.User
// @Failure  400   {object}  common.AppError
// @Router   /api/user/create [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	var user model.User
	if appErr := common.DecodeJSON(r, &user); appErr != nil {
		return appErr
	}
	if err := common.ValidateUser(&user); err != nil {
		return common.ToAppError(err)
	}

	logger.Log.WithField("name", user.Name).Info("Create user request received")

	created, err := h.service.Create(&user)
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusCreated, created)
	return nil
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Deletes the user, all owned accounts and all their cards.
// @Tags         users
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/user/delete/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parseKey(r, "id")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateUserID(id); err != nil {
		return common.ToAppError(err)
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		return common.ToAppError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// UpdateUser godoc
// @Summary  Replace a user's fields
// @Tags     users
// @Accept   json
// @Param    id    path  int         true  "User ID"
// @Param    user  body  model.User  true  "Replacement fields"
// @Success  204
// @Failure  400  {object}  common.AppError
// @Failure  404  {object}  common.AppError
// @Router   /api/user/update/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parseKey(r, "id")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateUserID(id); err != nil {
		return common.ToAppError(err)
	}

	var detail model.User
	if appErr := common.DecodeJSON(r, &detail); appErr != nil {
		return appErr
	}
	if err := common.ValidateUser(&detail); err != nil {
		return common.ToAppError(err)
	}

	if err := h.service.Update(id, &detail); err != nil {
		return common.ToAppError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

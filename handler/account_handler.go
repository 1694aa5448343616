package handler

import (
	"bank-admin-api/common"
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// IAccountService is the slice of the account service the handlers need.
type IAccountService interface {
	GetAll() ([]*model.Account, error)
	Create(account *model.Account) (*model.Account, error)
	Update(number int64, detail *model.Account) error
	Delete(ctx context.Context, number int64) error
}

type AccountHandler struct {
	service IAccountService
}

func NewAccountHandler(service IAccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// GetAllAccounts godoc
// @Summary  List all accounts
// @Tags     accounts
// @Produce  json
// @Success  200  {array}  model.Account
// @Router   /api/account/all-accounts [get]
func (h *AccountHandler) GetAllAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	accounts, err := h.service.GetAll()
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusOK, accounts)
	return nil
}

// CreateAccount godoc
// @Summary  Create an account under a caller-supplied number
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    account  body      model.Account  true  "Account data"
// @Success  201      {object}  model.Account
// @Failure  400      {object}  common.AppError
// @Router   /api/account/create [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var account model.Account
	if appErr := common.DecodeJSON(r, &account); appErr != nil {
		return appErr
	}
	if err := common.ValidateAccount(&account); err != nil {
		return common.ToAppError(err)
	}
	if err := common.ValidateAccountNumber(account.Number); err != nil {
		return common.ToAppError(err)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_number": account.Number,
		"user_id":        account.UserID,
		"currency":       account.Currency,
	})
	log.Info("Create account request received")

	created, err := h.service.Create(&account)
	if err != nil {
		return common.ToAppError(err)
	}
	respondJSON(w, http.StatusCreated, created)
	return nil
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Deletes the account and every card bound to it.
// @Tags         accounts
// @Param        number  path  int  true  "Account number"
// @Success      204
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/account/delete/{number} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	number, appErr := parseKey(r, "number")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateAccountNumber(number); err != nil {
		return common.ToAppError(err)
	}

	if err := h.service.Delete(r.Context(), number); err != nil {
		return common.ToAppError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// UpdateAccount godoc
// @Summary  Replace owner, currency and balance of an account
// @Tags     accounts
// @Accept   json
// @Param    number   path  int            true  "Account number"
// @Param    account  body  model.Account  true  "Replacement fields"
// @Success  204
// @Failure  400  {object}  common.AppError
// @Failure  404  {object}  common.AppError
// @Router   /api/account/update/{number} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	number, appErr := parseKey(r, "number")
	if appErr != nil {
		return appErr
	}
	if err := common.ValidateAccountNumber(number); err != nil {
		return common.ToAppError(err)
	}

	var detail model.Account
	if appErr := common.DecodeJSON(r, &detail); appErr != nil {
		return appErr
	}
	if err := common.ValidateAccount(&detail); err != nil {
		return common.ToAppError(err)
	}

	if err := h.service.Update(number, &detail); err != nil {
		return common.ToAppError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

package service

import (
	"bank-admin-api/common"
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"bank-admin-api/repository"
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// UserService handles user CRUD and the derived reads over a user's
// accounts and cards. Deleting a user cascades through its accounts into
// their cards, all in one transaction.
type UserService struct {
	db          *sql.DB
	repo        repository.IUserRepository
	accountRepo repository.IAccountRepository
	accounts    *AccountService
	rates       IExchangeRates
}

func NewUserService(db *sql.DB, repo repository.IUserRepository, accountRepo repository.IAccountRepository, accounts *AccountService, rates IExchangeRates) *UserService {
	return &UserService{
		db:          db,
		repo:        repo,
		accountRepo: accountRepo,
		accounts:    accounts,
		rates:       rates,
	}
}

func (s *UserService) GetAll() ([]*model.User, error) {
	return s.repo.GetAllUsers()
}

func (s *UserService) GetByID(id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.NewNotFound("user", id)
		}
		return nil, err
	}
	return user, nil
}

// Create persists the user as given and returns it with the generated ID.
func (s *UserService) Create(user *model.User) (*model.User, error) {
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces name, birthdate and address of an existing user.
func (s *UserService) Update(id int64, detail *model.User) error {
	current, err := s.GetByID(id)
	if err != nil {
		return err
	}

	merged := mergeUser(*current, *detail)
	return s.repo.UpdateUser(&merged)
}

// Delete removes the user together with all owned accounts and their cards.
// The whole cascade runs in one transaction: a failure partway through
// rolls every prior deletion back.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	accounts, err := s.accountRepo.GetAccountsByUserID(id)
	if err != nil {
		return err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id":  id,
		"accounts": len(accounts),
	})
	log.Info("Starting cascading user delete")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, account := range accounts {
		if err := s.accounts.deleteTx(tx, account); err != nil {
			return err
		}
	}

	if err := s.repo.DeleteUser(tx, id); err != nil {
		return fmt.Errorf("could not delete user %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	s.accounts.invalidateUserCache(id)
	log.Info("User deleted")
	return nil
}

// GetAccounts lists the accounts owned by a user.
func (s *UserService) GetAccounts(id int64) ([]*model.Account, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	return s.accounts.GetAccountsByUser(id)
}

// GetCards lists the cards across all of a user's accounts.
func (s *UserService) GetCards(id int64) ([]*model.Card, error) {
	accounts, err := s.GetAccounts(id)
	if err != nil {
		return nil, err
	}

	var cards []*model.Card
	for _, account := range accounts {
		accountCards, err := s.accounts.GetCards(account.Number)
		if err != nil {
			return nil, err
		}
		cards = append(cards, accountCards...)
	}
	return cards, nil
}

// GetOverallBalance sums the user's balances in the base currency,
// converting foreign balances through the injected rate table.
func (s *UserService) GetOverallBalance(id int64) (float64, error) {
	accounts, err := s.GetAccounts(id)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, account := range accounts {
		balance := account.Balance
		if account.Currency != BaseCurrency {
			balance *= s.rates.Rate(account.Currency, BaseCurrency)
		}
		total += balance
	}
	return total, nil
}

func mergeUser(current, detail model.User) model.User {
	current.Name = detail.Name
	current.Birthdate = detail.Birthdate
	current.Address = detail.Address
	return current
}

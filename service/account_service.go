package service

import (
	"bank-admin-api/common"
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"bank-admin-api/repository"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const accountCacheTTL = 10 * time.Minute

// AccountService orchestrates account CRUD. Deleting an account removes its
// cards first, inside a single transaction.
type AccountService struct {
	db    *sql.DB
	repo  repository.IAccountRepository
	cards repository.ICardRepository
	cache ICacheClient
}

func NewAccountService(db *sql.DB, repo repository.IAccountRepository, cards repository.ICardRepository, cache ICacheClient) *AccountService {
	return &AccountService{
		db:    db,
		repo:  repo,
		cards: cards,
		cache: cache,
	}
}

func (s *AccountService) GetAll() ([]*model.Account, error) {
	return s.repo.GetAllAccounts()
}

func (s *AccountService) GetByNumber(number int64) (*model.Account, error) {
	account, err := s.repo.GetAccountByNumber(number)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.NewNotFound("account", number)
		}
		return nil, err
	}
	return account, nil
}

// Create persists the account as given. Validation is the caller's
// responsibility; the store rejects dangling owner references.
func (s *AccountService) Create(account *model.Account) (*model.Account, error) {
	if err := s.repo.CreateAccount(account); err != nil {
		return nil, err
	}
	s.invalidateUserCache(account.UserID)
	return account, nil
}

// Update replaces owner, currency and balance of an existing account.
func (s *AccountService) Update(number int64, detail *model.Account) error {
	current, err := s.GetByNumber(number)
	if err != nil {
		return err
	}

	merged := mergeAccount(*current, *detail)
	if err := s.repo.UpdateAccount(&merged); err != nil {
		return err
	}

	s.invalidateUserCache(current.UserID)
	if detail.UserID != current.UserID {
		s.invalidateUserCache(detail.UserID)
	}
	return nil
}

// Delete removes the account and its cards in one transaction, cards first,
// so the foreign key from cards to accounts is never violated.
func (s *AccountService) Delete(ctx context.Context, number int64) error {
	account, err := s.GetByNumber(number)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.deleteTx(tx, account); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	s.invalidateUserCache(account.UserID)
	logger.Log.WithField("account_number", number).Info("Account and its cards deleted")
	return nil
}

// deleteTx performs the card-then-account delete inside an open
// transaction. The user delete cascade reuses it per account.
func (s *AccountService) deleteTx(tx *sql.Tx, account *model.Account) error {
	if err := s.cards.DeleteCardsByAccount(tx, account.Number); err != nil {
		return fmt.Errorf("could not delete cards of account %d: %w", account.Number, err)
	}
	if err := s.repo.DeleteAccount(tx, account.Number); err != nil {
		return fmt.Errorf("could not delete account %d: %w", account.Number, err)
	}
	return nil
}

// GetCards lists the cards bound to an account.
func (s *AccountService) GetCards(number int64) ([]*model.Card, error) {
	return s.cards.GetCardsByAccountNumber(number)
}

// GetAccountsByUser lists a user's accounts, cache-aside.
func (s *AccountService) GetAccountsByUser(userID int64) ([]*model.Account, error) {
	cacheKey := accountCacheKey(userID)
	ctx := context.Background()

	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		var accounts []*model.Account
		if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
			return accounts, nil
		}
	}

	accounts, err := s.repo.GetAccountsByUserID(userID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(accounts)
	if err == nil {
		s.cache.Set(ctx, cacheKey, data, accountCacheTTL)
	}

	return accounts, nil
}

func (s *AccountService) invalidateUserCache(userID int64) {
	s.cache.Del(context.Background(), accountCacheKey(userID))
}

func accountCacheKey(userID int64) string {
	return fmt.Sprintf("accounts:%d", userID)
}

// mergeAccount applies the replacement fields onto the current record and
// returns the result; the account number never changes.
func mergeAccount(current, detail model.Account) model.Account {
	current.UserID = detail.UserID
	current.Currency = detail.Currency
	current.Balance = detail.Balance
	return current
}

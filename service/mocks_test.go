// Shared test doubles for the service package.
package service

import (
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// MockUserRepository is a mock for IUserRepository.
type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) GetAllUsers() ([]*model.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id int64) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(tx *sql.Tx, id int64) error {
	args := m.Called(tx, id)
	return args.Error(0)
}

// MockAccountRepository is a mock for IAccountRepository.
type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) GetAllAccounts() ([]*model.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetAccountByNumber(number int64) (*model.Account, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetAccountsByUserID(userID int64) ([]*model.Account, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(tx *sql.Tx, number int64) error {
	args := m.Called(tx, number)
	return args.Error(0)
}

// MockCardRepository is a mock for ICardRepository.
type MockCardRepository struct{ mock.Mock }

func (m *MockCardRepository) GetAllCards() ([]*model.Card, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Card), args.Error(1)
}

func (m *MockCardRepository) GetCardByNumber(number int64) (*model.Card, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardRepository) GetCardsByAccountNumber(accountNumber int64) ([]*model.Card, error) {
	args := m.Called(accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Card), args.Error(1)
}

func (m *MockCardRepository) CreateCard(card *model.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepository) UpdateCard(card *model.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteCard(tx *sql.Tx, number int64) error {
	args := m.Called(tx, number)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteCardsByAccount(tx *sql.Tx, accountNumber int64) error {
	args := m.Called(tx, accountNumber)
	return args.Error(0)
}

// stubCache is an in-memory ICacheClient so tests run without Redis.
type stubCache struct {
	store map[string]string
}

func newStubCache() *stubCache {
	return &stubCache{store: make(map[string]string)}
}

func (c *stubCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := c.store[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.store[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (c *stubCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(c.store, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

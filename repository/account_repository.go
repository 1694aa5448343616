package repository

import (
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"database/sql"

	"github.com/sirupsen/logrus"
)

type IAccountRepository interface {
	GetAllAccounts() ([]*model.Account, error)
	GetAccountByNumber(number int64) (*model.Account, error)
	GetAccountsByUserID(userID int64) ([]*model.Account, error)
	CreateAccount(account *model.Account) error
	UpdateAccount(account *model.Account) error
	DeleteAccount(tx *sql.Tx, number int64) error
}

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount inserts an account under its caller-supplied number.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": account.Number,
		"user_id":        account.UserID,
		"currency":       account.Currency,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (number, user_id, currency, balance) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(query, account.Number, account.UserID, account.Currency, account.Balance)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

func (r *AccountRepository) GetAccountByNumber(number int64) (*model.Account, error) {
	account := &model.Account{}
	query := `SELECT number, user_id, currency, balance FROM accounts WHERE number = $1`
	err := r.DB.QueryRow(query, number).Scan(&account.Number, &account.UserID, &account.Currency, &account.Balance)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("account_number", number).WithError(err).Error("Failed to execute get account query")
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByUserID retrieves all accounts owned by a specific user.
func (r *AccountRepository) GetAccountsByUserID(userID int64) ([]*model.Account, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to get accounts by user ID")

	query := `SELECT number, user_id, currency, balance FROM accounts WHERE user_id = $1`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for accounts by user ID")
		return nil, err
	}
	defer rows.Close()

	return scanAccounts(rows)
}

// GetAllAccounts retrieves every account. For admin use only.
func (r *AccountRepository) GetAllAccounts() ([]*model.Account, error) {
	query := `SELECT number, user_id, currency, balance FROM accounts`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all accounts")
		return nil, err
	}
	defer rows.Close()

	return scanAccounts(rows)
}

func (r *AccountRepository) UpdateAccount(account *model.Account) error {
	log := logger.Log.WithField("account_number", account.Number)
	log.Info("Executing query to update account")

	query := `UPDATE accounts SET user_id = $1, currency = $2, balance = $3 WHERE number = $4`
	_, err := r.DB.Exec(query, account.UserID, account.Currency, account.Balance, account.Number)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account query")
		return err
	}
	return nil
}

// DeleteAccount runs inside the caller's transaction; the account's cards
// must already be gone or the foreign key constraint rejects the delete.
func (r *AccountRepository) DeleteAccount(tx *sql.Tx, number int64) error {
	_, err := tx.Exec(`DELETE FROM accounts WHERE number = $1`, number)
	if err != nil {
		logger.Log.WithField("account_number", number).WithError(err).Error("Failed to execute delete account query")
	}
	return err
}

func scanAccounts(rows *sql.Rows) ([]*model.Account, error) {
	var accounts []*model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.Number, &acc.UserID, &acc.Currency, &acc.Balance); err != nil {
			logger.Log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

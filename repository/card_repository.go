package repository

import (
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"database/sql"
)

type ICardRepository interface {
	GetAllCards() ([]*model.Card, error)
	GetCardByNumber(number int64) (*model.Card, error)
	GetCardsByAccountNumber(accountNumber int64) ([]*model.Card, error)
	CreateCard(card *model.Card) error
	UpdateCard(card *model.Card) error
	DeleteCard(tx *sql.Tx, number int64) error
	DeleteCardsByAccount(tx *sql.Tx, accountNumber int64) error
}

type CardRepository struct {
	DB *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{DB: db}
}

func (r *CardRepository) GetAllCards() ([]*model.Card, error) {
	query := `SELECT number, account_number, expiration_date, cvv FROM cards`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCards(rows)
}

func (r *CardRepository) GetCardByNumber(number int64) (*model.Card, error) {
	card := &model.Card{}
	query := `SELECT number, account_number, expiration_date, cvv FROM cards WHERE number = $1`
	err := r.DB.QueryRow(query, number).Scan(&card.Number, &card.AccountNumber, &card.ExpirationDate, &card.CVV)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *CardRepository) GetCardsByAccountNumber(accountNumber int64) ([]*model.Card, error) {
	query := `SELECT number, account_number, expiration_date, cvv FROM cards WHERE account_number = $1`
	rows, err := r.DB.Query(query, accountNumber)
	if err != nil {
		logger.Log.WithField("account_number", accountNumber).WithError(err).Error("Failed to execute query for cards by account")
		return nil, err
	}
	defer rows.Close()

	return scanCards(rows)
}

func (r *CardRepository) CreateCard(card *model.Card) error {
	query := `INSERT INTO cards (number, account_number, expiration_date, cvv) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(query, card.Number, card.AccountNumber, card.ExpirationDate, card.CVV)
	return err
}

func (r *CardRepository) UpdateCard(card *model.Card) error {
	query := `UPDATE cards SET account_number = $1, expiration_date = $2, cvv = $3 WHERE number = $4`
	_, err := r.DB.Exec(query, card.AccountNumber, card.ExpirationDate, card.CVV, card.Number)
	return err
}

func (r *CardRepository) DeleteCard(tx *sql.Tx, number int64) error {
	_, err := tx.Exec(`DELETE FROM cards WHERE number = $1`, number)
	return err
}

// DeleteCardsByAccount removes every card bound to an account. It runs
// inside the caller's transaction as the first step of a cascading delete.
func (r *CardRepository) DeleteCardsByAccount(tx *sql.Tx, accountNumber int64) error {
	_, err := tx.Exec(`DELETE FROM cards WHERE account_number = $1`, accountNumber)
	return err
}

func scanCards(rows *sql.Rows) ([]*model.Card, error) {
	var cards []*model.Card
	for rows.Next() {
		var c model.Card
		if err := rows.Scan(&c.Number, &c.AccountNumber, &c.ExpirationDate, &c.CVV); err != nil {
			return nil, err
		}
		cards = append(cards, &c)
	}
	return cards, rows.Err()
}

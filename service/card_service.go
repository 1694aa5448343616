package service

import (
	"bank-admin-api/common"
	"bank-admin-api/model"
	"bank-admin-api/repository"
	"context"
	"database/sql"
	"fmt"
)

// CardService handles card CRUD. Cards are leaves of the entity tree, so
// deleting one cascades into nothing.
type CardService struct {
	db   *sql.DB
	repo repository.ICardRepository
}

func NewCardService(db *sql.DB, repo repository.ICardRepository) *CardService {
	return &CardService{db: db, repo: repo}
}

func (s *CardService) GetAll() ([]*model.Card, error) {
	return s.repo.GetAllCards()
}

func (s *CardService) GetByNumber(number int64) (*model.Card, error) {
	card, err := s.repo.GetCardByNumber(number)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.NewNotFound("card", number)
		}
		return nil, err
	}
	return card, nil
}

func (s *CardService) Create(card *model.Card) (*model.Card, error) {
	if err := s.repo.CreateCard(card); err != nil {
		return nil, err
	}
	return card, nil
}

// Update replaces account reference, expiration date and CVV of an
// existing card.
func (s *CardService) Update(number int64, detail *model.Card) error {
	current, err := s.GetByNumber(number)
	if err != nil {
		return err
	}

	merged := mergeCard(*current, *detail)
	return s.repo.UpdateCard(&merged)
}

func (s *CardService) Delete(ctx context.Context, number int64) error {
	if _, err := s.GetByNumber(number); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.repo.DeleteCard(tx, number); err != nil {
		return fmt.Errorf("could not delete card %d: %w", number, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func mergeCard(current, detail model.Card) model.Card {
	current.AccountNumber = detail.AccountNumber
	current.ExpirationDate = detail.ExpirationDate
	current.CVV = detail.CVV
	return current
}

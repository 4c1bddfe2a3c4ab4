package primary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bragi/internal/models"
	"bragi/internal/store"
)

// --- Deck Management ---

// CreateDeck inserts a deck and its slides in one transaction. Slide IDs
// are assigned here when missing; positions follow slice order.
func (s *StoreImpl) CreateDeck(ctx context.Context, deck *models.Deck) error {
	if deck.ID == uuid.Nil {
		deck.ID = uuid.New()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin deck insert: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO decks (id, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		deck.ID, deck.Title, now, now,
	).Scan(&deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("deck %s already exists: %w", deck.ID, store.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert deck: %w", err)
	}

	for i := range deck.Slides {
		slide := &deck.Slides[i]
		if slide.ID == uuid.Nil {
			slide.ID = uuid.New()
		}
		slide.DeckID = deck.ID
		slide.Position = i
		if slide.Content == nil {
			slide.Content = json.RawMessage("{}")
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO slides (id, deck_id, position, slide_type, content, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			slide.ID, slide.DeckID, slide.Position, slide.Type, slide.Content, now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert slide %d of deck %s: %w", i, deck.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit deck insert: %w", err)
	}
	return nil
}

// GetDeck loads a deck with its slides ordered by position.
func (s *StoreImpl) GetDeck(ctx context.Context, id uuid.UUID) (*models.Deck, error) {
	deck := &models.Deck{}
	err := s.db.QueryRow(ctx,
		`SELECT id, title, created_at, updated_at FROM decks WHERE id = $1`,
		id,
	).Scan(&deck.ID, &deck.Title, &deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("deck %s: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query deck %s: %w", id, err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, deck_id, position, slide_type, content, created_at, updated_at
		 FROM slides
		 WHERE deck_id = $1
		 ORDER BY position ASC`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query slides of deck %s: %w", id, err)
	}
	defer rows.Close()

	deck.Slides, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Slide, error) {
		var slide models.Slide
		err := row.Scan(
			&slide.ID,
			&slide.DeckID,
			&slide.Position,
			&slide.Type,
			&slide.Content,
			&slide.CreatedAt,
			&slide.UpdatedAt,
		)
		return slide, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan slides of deck %s: %w", id, err)
	}
	return deck, nil
}

// ListDecks returns decks without their slides, newest first.
func (s *StoreImpl) ListDecks(ctx context.Context, limit, offset int) ([]*models.Deck, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, title, created_at, updated_at
		 FROM decks
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query decks: %w", err)
	}
	defer rows.Close()

	decks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Deck, error) {
		deck := &models.Deck{}
		err := row.Scan(&deck.ID, &deck.Title, &deck.CreatedAt, &deck.UpdatedAt)
		return deck, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan decks: %w", err)
	}
	return decks, nil
}

// UpdateSlideContent replaces one slide's content document.
func (s *StoreImpl) UpdateSlideContent(ctx context.Context, slideID uuid.UUID, content json.RawMessage) error {
	if content == nil {
		content = json.RawMessage("{}")
	}
	cmdTag, err := s.db.Exec(ctx,
		`UPDATE slides SET content = $1, updated_at = $2 WHERE id = $3`,
		content, time.Now(), slideID,
	)
	if err != nil {
		return fmt.Errorf("failed to update content of slide %s: %w", slideID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("slide %s not found: %w", slideID, store.ErrNotFound)
	}
	return nil
}

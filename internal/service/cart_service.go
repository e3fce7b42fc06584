package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitoblarda/internal/cart"
	"github.com/kitoblarda/internal/constants"
	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/repository"
	"github.com/kitoblarda/internal/session"
)

// CartService manages the session shopping cart.
type CartService struct {
	store    session.Store
	bookRepo repository.BookRepository
}

// NewCartService creates a cart service.
func NewCartService(store session.Store, bookRepo repository.BookRepository) *CartService {
	return &CartService{store: store, bookRepo: bookRepo}
}

// CartLine is a display row combining the stored snapshot with current
// catalog data.
type CartLine struct {
	BookID    uint         `json:"book_id"`
	Title     string       `json:"title"`
	TitleRu   string       `json:"title_ru"`
	Slug      string       `json:"slug"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	LineTotal models.Money `json:"line_total"`
}

// CartDetail is the full cart view.
type CartDetail struct {
	Lines      []CartLine   `json:"lines"`
	TotalItems int          `json:"total_items"`
	TotalPrice models.Money `json:"total_price"`
}

// Load reads the cart from the session, returning an empty cart when
// none is stored yet.
func (s *CartService) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c := cart.New()
	found, err := s.store.Get(ctx, sessionID, constants.SessionCartKey, c)
	if err != nil {
		if errors.Is(err, session.ErrUnavailable) {
			return nil, ErrCartUnavailable
		}
		return nil, fmt.Errorf("load cart failed: %w", err)
	}
	if !found {
		return cart.New(), nil
	}
	return c, nil
}

// Save writes the cart back to the session.
func (s *CartService) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	if err := s.store.Set(ctx, sessionID, constants.SessionCartKey, c); err != nil {
		if errors.Is(err, session.ErrUnavailable) {
			return ErrCartUnavailable
		}
		return fmt.Errorf("save cart failed: %w", err)
	}
	return nil
}

// Add puts a book in the cart. The catalog price at this moment is
// snapshotted for new lines. Replace sets the quantity outright,
// otherwise it accumulates.
func (s *CartService) Add(ctx context.Context, sessionID string, bookID uint, quantity int, replace bool) (*CartDetail, error) {
	if bookID == 0 {
		return nil, ErrBookNotFound
	}
	book, err := s.bookRepo.GetByID(bookID)
	if err != nil {
		return nil, fmt.Errorf("fetch book failed: %w", err)
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if !book.IsActive {
		return nil, ErrBookNotAvailable
	}

	c, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Add(bookID, book.Price, quantity, replace)
	if err := s.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.buildDetail(c), nil
}

// SetQuantity sets a cart line's quantity outright. A quantity of
// zero or less removes the line instead.
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, bookID uint, quantity int) (*CartDetail, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, bookID)
	}
	return s.Add(ctx, sessionID, bookID, quantity, true)
}

// Remove drops a book from the cart. Removing a book that is not in
// the cart succeeds silently.
func (s *CartService) Remove(ctx context.Context, sessionID string, bookID uint) (*CartDetail, error) {
	c, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Remove(bookID)
	if err := s.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.buildDetail(c), nil
}

// Detail returns the current cart enriched with catalog data.
func (s *CartService) Detail(ctx context.Context, sessionID string) (*CartDetail, error) {
	c, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(c), nil
}

// Count returns the total item count, summing quantities.
func (s *CartService) Count(ctx context.Context, sessionID string) (int, error) {
	c, err := s.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.Len(), nil
}

// Clear drops the whole cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, sessionID, constants.SessionCartKey); err != nil {
		if errors.Is(err, session.ErrUnavailable) {
			return ErrCartUnavailable
		}
		return fmt.Errorf("clear cart failed: %w", err)
	}
	return nil
}

// buildDetail totals the cart and joins in current catalog fields.
// Lines whose book has since disappeared keep their snapshot and show
// without catalog data.
func (s *CartService) buildDetail(c *cart.Cart) *CartDetail {
	entries := c.Entries()
	detail := &CartDetail{
		Lines:      make([]CartLine, 0, len(entries)),
		TotalItems: c.Len(),
		TotalPrice: c.TotalPrice(),
	}
	if len(entries) == 0 {
		return detail
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.BookID)
	}
	booksByID := make(map[uint]models.Book, len(ids))
	if books, err := s.bookRepo.ListByIDs(ids); err == nil {
		for _, b := range books {
			booksByID[b.ID] = b
		}
	}

	for _, e := range entries {
		line := CartLine{
			BookID:    e.BookID,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
			LineTotal: e.LineTotal(),
		}
		if b, ok := booksByID[e.BookID]; ok {
			line.Title = b.Title
			line.TitleRu = b.TitleRu
			line.Slug = b.Slug
			line.Image = b.Image
		}
		detail.Lines = append(detail.Lines, line)
	}
	return detail
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/kitoblarda/internal/cache"
	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/repository"
)

const categoryCacheKey = "catalog:categories"
const categoryCacheTTL = 5 * time.Minute

// BookService owns the public catalog and its staff management.
type BookService struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
	paymentRepo  repository.PaymentSettingRepository
}

// NewBookService creates a catalog service.
func NewBookService(
	bookRepo repository.BookRepository,
	categoryRepo repository.CategoryRepository,
	paymentRepo repository.PaymentSettingRepository,
) *BookService {
	return &BookService{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		paymentRepo:  paymentRepo,
	}
}

// ListBooks returns a catalog page. Public callers see active books
// only.
func (s *BookService) ListBooks(filter repository.BookListFilter) ([]models.Book, int64, error) {
	return s.bookRepo.List(filter)
}

// GetBookBySlug returns a single active book.
func (s *BookService) GetBookBySlug(slug string) (*models.Book, error) {
	book, err := s.bookRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, fmt.Errorf("fetch book failed: %w", err)
	}
	if book == nil || !book.IsActive {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// GetBook returns any book for the staff screens.
func (s *BookService) GetBook(id uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("fetch book failed: %w", err)
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// ListCategories returns active categories, cached briefly since the
// list changes rarely and sits on every page.
func (s *BookService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if found, err := cache.GetJSON(ctx, categoryCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	categories, err := s.categoryRepo.ListActive()
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, categoryCacheKey, categories, categoryCacheTTL)
	return categories, nil
}

// ListAllCategories returns every category for the staff screens.
func (s *BookService) ListAllCategories() ([]models.Category, error) {
	return s.categoryRepo.ListAll()
}

// CreateBook inserts a catalog item, deriving a slug when none is
// given.
func (s *BookService) CreateBook(ctx context.Context, book *models.Book) error {
	category, err := s.categoryRepo.GetByID(book.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if strings.TrimSpace(book.Slug) == "" {
		book.Slug = Slugify(book.Title)
	}
	existing, err := s.bookRepo.GetBySlug(book.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}
	return s.bookRepo.Create(book)
}

// UpdateBook saves catalog changes.
func (s *BookService) UpdateBook(ctx context.Context, book *models.Book) error {
	current, err := s.bookRepo.GetByID(book.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrBookNotFound
	}
	if book.Slug != current.Slug {
		existing, err := s.bookRepo.GetBySlug(book.Slug)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != book.ID {
			return ErrSlugTaken
		}
	}
	return s.bookRepo.Update(book)
}

// DeleteBook removes a catalog item.
func (s *BookService) DeleteBook(ctx context.Context, id uint) error {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}
	return s.bookRepo.Delete(id)
}

// CreateCategory inserts a category and drops the cached list.
func (s *BookService) CreateCategory(ctx context.Context, category *models.Category) error {
	if strings.TrimSpace(category.Slug) == "" {
		category.Slug = Slugify(category.Name)
	}
	existing, err := s.categoryRepo.GetBySlug(category.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}
	_ = cache.Del(ctx, categoryCacheKey)
	return nil
}

// UpdateCategory saves category changes and drops the cached list.
func (s *BookService) UpdateCategory(ctx context.Context, category *models.Category) error {
	current, err := s.categoryRepo.GetByID(category.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrCategoryNotFound
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return err
	}
	_ = cache.Del(ctx, categoryCacheKey)
	return nil
}

// DeleteCategory removes a category and drops the cached list.
func (s *BookService) DeleteCategory(ctx context.Context, id uint) error {
	current, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrCategoryNotFound
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	_ = cache.Del(ctx, categoryCacheKey)
	return nil
}

// GetPaymentCard returns the active transfer card.
func (s *BookService) GetPaymentCard() (*models.PaymentSetting, error) {
	setting, err := s.paymentRepo.GetActive()
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrPaymentCardMissing
	}
	return setting, nil
}

// ReplacePaymentCard swaps the active transfer card.
func (s *BookService) ReplacePaymentCard(setting *models.PaymentSetting) error {
	return s.paymentRepo.Replace(setting)
}

// Slugify builds a URL slug from a title. Non-alphanumeric runs
// collapse to single dashes.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

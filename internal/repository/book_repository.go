package repository

import (
	"errors"

	"github.com/kitoblarda/internal/models"

	"gorm.io/gorm"
)

// BookRepository is the catalog data access interface.
type BookRepository interface {
	Create(book *models.Book) error
	Update(book *models.Book) error
	Delete(id uint) error
	GetByID(id uint) (*models.Book, error)
	GetBySlug(slug string) (*models.Book, error)
	ListByIDs(ids []uint) ([]models.Book, error)
	List(filter BookListFilter) ([]models.Book, int64, error)
	WithTx(tx *gorm.DB) *GormBookRepository
}

// GormBookRepository is the GORM implementation.
type GormBookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a book repository.
func NewBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormBookRepository) WithTx(tx *gorm.DB) *GormBookRepository {
	if tx == nil {
		return r
	}
	return &GormBookRepository{db: tx}
}

// Create inserts a book.
func (r *GormBookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

// Update saves book changes.
func (r *GormBookRepository) Update(book *models.Book) error {
	return r.db.Save(book).Error
}

// Delete soft-deletes a book.
func (r *GormBookRepository) Delete(id uint) error {
	return r.db.Delete(&models.Book{}, id).Error
}

// GetByID fetches a book by id, nil when absent.
func (r *GormBookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.Preload("Category").First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

// GetBySlug fetches a book by slug, nil when absent.
func (r *GormBookRepository) GetBySlug(slug string) (*models.Book, error) {
	var book models.Book
	if err := r.db.Preload("Category").Where("slug = ?", slug).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

// ListByIDs batch-fetches books, used at checkout to resolve cart
// lines with a single query.
func (r *GormBookRepository) ListByIDs(ids []uint) ([]models.Book, error) {
	var books []models.Book
	if len(ids) == 0 {
		return books, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// List returns a filtered catalog page with the total count.
func (r *GormBookRepository) List(filter BookListFilter) ([]models.Book, int64, error) {
	var books []models.Book
	query := r.db.Model(&models.Book{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"title LIKE ? OR title_ru LIKE ? OR author LIKE ? OR author_ru LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Category").Order("id desc").Find(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

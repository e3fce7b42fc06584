package staff

import (
	"strconv"

	"github.com/kitoblarda/internal/http/response"
	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/repository"

	"github.com/gin-gonic/gin"
)

type bookRequest struct {
	CategoryID    uint   `json:"category_id" binding:"required"`
	Title         string `json:"title" binding:"required"`
	TitleRu       string `json:"title_ru"`
	Author        string `json:"author"`
	AuthorRu      string `json:"author_ru"`
	Description   string `json:"description"`
	DescriptionRu string `json:"description_ru"`
	Price         string `json:"price" binding:"required"`
	CoverType     string `json:"cover_type"`
	Pages         int    `json:"pages"`
	Image         string `json:"image"`
	Slug          string `json:"slug"`
	IsActive      *bool  `json:"is_active"`
}

func (r bookRequest) apply(book *models.Book) error {
	price, err := models.NewMoneyFromString(r.Price)
	if err != nil {
		return err
	}
	book.CategoryID = r.CategoryID
	book.Title = r.Title
	book.TitleRu = r.TitleRu
	book.Author = r.Author
	book.AuthorRu = r.AuthorRu
	book.Description = r.Description
	book.DescriptionRu = r.DescriptionRu
	book.Price = price
	if r.CoverType != "" {
		book.CoverType = r.CoverType
	}
	book.Pages = r.Pages
	book.Image = r.Image
	if r.Slug != "" {
		book.Slug = r.Slug
	}
	if r.IsActive != nil {
		book.IsActive = *r.IsActive
	}
	return nil
}

// ListBooks returns the full catalog, inactive books included.
func (h *Handler) ListBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)

	books, total, err := h.BookService.ListBooks(repository.BookListFilter{
		CategoryID: uint(categoryID),
		Search:     c.Query("search"),
		OnlyActive: false,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, books, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// CreateBook adds a catalog item.
func (h *Handler) CreateBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	book := models.Book{IsActive: true, CoverType: "hard"}
	if err := req.apply(&book); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.BookService.CreateBook(c.Request.Context(), &book); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, book)
}

// UpdateBook saves catalog changes.
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	book, err := h.BookService.GetBook(id)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	if err := req.apply(book); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.BookService.UpdateBook(c.Request.Context(), book); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, book)
}

// DeleteBook removes a catalog item.
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.BookService.DeleteBook(c.Request.Context(), id); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

// UploadBookImage stores a cover image and returns its path.
func (h *Handler) UploadBookImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	path, err := h.UploadService.SaveFile(file, "book")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_type_invalid", err)
		return
	}
	response.Success(c, gin.H{"path": path})
}

type categoryRequest struct {
	Name      string `json:"name" binding:"required"`
	NameRu    string `json:"name_ru"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// ListCategories returns every category.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.BookService.ListAllCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category := models.Category{
		Name:      req.Name,
		NameRu:    req.NameRu,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := h.BookService.CreateCategory(c.Request.Context(), &category); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, category)
}

// UpdateCategory saves category changes.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category := models.Category{
		ID:        id,
		Name:      req.Name,
		NameRu:    req.NameRu,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := h.BookService.UpdateCategory(c.Request.Context(), &category); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.BookService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return 0, false
	}
	return uint(id), true
}

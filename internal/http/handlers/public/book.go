package public

import (
	"strconv"

	"github.com/kitoblarda/internal/http/response"
	"github.com/kitoblarda/internal/repository"
	"github.com/kitoblarda/internal/service"

	"github.com/gin-gonic/gin"
)

// ListBooks returns the public catalog page.
func (h *Handler) ListBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)

	filter := repository.BookListFilter{
		CategoryID: uint(categoryID),
		Search:     c.Query("search"),
		OnlyActive: true,
		Page:       page,
		PageSize:   pageSize,
	}
	books, total, err := h.BookService.ListBooks(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, books, buildPagination(page, pageSize, total))
}

// GetBookBySlug returns a single book page.
func (h *Handler) GetBookBySlug(c *gin.Context) {
	book, err := h.BookService.GetBookBySlug(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrBookNotFound, code: response.CodeNotFound, key: "error.book_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, book)
}

// ListCategories returns the active category list.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.BookService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// GetPaymentCard returns the card customers transfer to.
func (h *Handler) GetPaymentCard(c *gin.Context) {
	setting, err := h.BookService.GetPaymentCard()
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrPaymentCardMissing, code: response.CodeNotFound, key: "error.payment_card_missing"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, gin.H{
		"card_number": setting.CardNumber,
		"card_holder": setting.CardHolder,
	})
}

func buildPagination(page, pageSize int, total int64) response.Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}

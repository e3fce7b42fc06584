package public

import (
	"errors"

	"github.com/kitoblarda/internal/http/response"
	"github.com/kitoblarda/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a business error to its API response.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrBookNotFound, code: response.CodeNotFound, key: "error.book_not_found"},
	{target: service.ErrBookNotAvailable, code: response.CodeBadRequest, key: "error.book_not_available"},
	{target: service.ErrCartUnavailable, code: response.CodeInternal, key: "error.cart_unavailable"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrAddressRequired, code: response.CodeBadRequest, key: "error.address_required"},
	{target: service.ErrBookNotFound, code: response.CodeBadRequest, key: "error.book_not_found"},
	{target: service.ErrBookNotAvailable, code: response.CodeBadRequest, key: "error.book_not_available"},
	{target: service.ErrCartUnavailable, code: response.CodeInternal, key: "error.cart_unavailable"},
}

var paymentSubmitErrorRules = []mappedHandlerError{
	{target: service.ErrScreenshotRequired, code: response.CodeBadRequest, key: "error.screenshot_required"},
	{target: service.ErrNoActiveOrder, code: response.CodeNotFound, key: "error.no_active_order"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
	{target: service.ErrUploadTooLarge, code: response.CodeBadRequest, key: "error.upload_too_large"},
	{target: service.ErrUploadTypeInvalid, code: response.CodeBadRequest, key: "error.upload_type_invalid"},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrPhoneTaken, code: response.CodeConflict, key: "error.phone_taken"},
	{target: service.ErrInvalidPhone, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrWeakPassword, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
}

func respondPaymentSubmitError(c *gin.Context, err error) {
	respondWithMappedError(c, err, paymentSubmitErrorRules, response.CodeInternal, "error.internal")
}

func respondAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
}

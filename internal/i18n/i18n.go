// Package i18n resolves user-facing message text. Uzbek is the default
// locale, with Russian and English translations.
package i18n

import (
	"fmt"
	"strings"

	"github.com/kitoblarda/internal/constants"

	"github.com/gin-gonic/gin"
)

var messages = map[string]map[string]string{
	constants.LocaleUzbek: {
		"error.bad_request":            "So'rov noto'g'ri",
		"error.unauthorized":           "Avval tizimga kiring",
		"error.forbidden":              "Bu amal uchun ruxsat yo'q",
		"error.not_found":              "Topilmadi",
		"error.internal":               "Ichki xatolik yuz berdi",
		"error.too_many_requests":      "Urinishlar soni ko'p, keyinroq qayta urinib ko'ring",
		"error.book_not_found":         "Kitob topilmadi",
		"error.book_not_available":     "Kitob sotuvda mavjud emas",
		"error.cart_empty":             "Savat bo'sh",
		"error.cart_unavailable":       "Savat hozircha ishlamayapti, keyinroq urinib ko'ring",
		"error.order_not_found":        "Buyurtma topilmadi",
		"error.no_active_order":        "To'lov kutayotgan buyurtma topilmadi",
		"error.order_status_invalid":   "Buyurtma holati bu amalga mos emas",
		"error.screenshot_required":    "To'lov cheki rasmini yuklang",
		"error.phone_taken":            "Bu telefon raqami ro'yxatdan o'tgan",
		"error.invalid_credentials":    "Telefon raqami yoki parol noto'g'ri",
		"error.payment_card_missing":   "To'lov kartasi sozlanmagan",
		"error.category_not_found":     "Kategoriya topilmadi",
		"error.upload_too_large":       "Fayl hajmi juda katta",
		"error.upload_type_invalid":    "Fayl turi qo'llab-quvvatlanmaydi",
		"error.address_required":       "Yetkazib berish manzilini kiriting",
		"error.auth_header_missing":    "Avtorizatsiya sarlavhasi yo'q",
		"error.auth_header_invalid":    "Avtorizatsiya sarlavhasi noto'g'ri",
		"error.token_invalid":          "Token yaroqsiz, qaytadan kiring",
		"error.user_disabled":          "Hisob bloklangan",
		"error.rate_limited":           "Urinishlar juda ko'p, %d soniyadan keyin urinib ko'ring",
		"error.rate_limit_unavailable": "Xizmat vaqtincha band, keyinroq urinib ko'ring",
		"success.order_created":        "Buyurtma qabul qilindi",
		"success.payment_submitted":    "To'lov cheki qabul qilindi, tez orada tasdiqlanadi",
		"success.order_confirmed":      "Buyurtma tasdiqlandi",
		"success.order_cancelled":      "Buyurtma bekor qilindi",
		"success.order_ready":          "Buyurtma yetkazishga tayyor",
		"success.order_delivered":      "Buyurtma yetkazildi",
	},
	constants.LocaleRussian: {
		"error.bad_request":            "Некорректный запрос",
		"error.unauthorized":           "Сначала войдите в систему",
		"error.forbidden":              "Нет прав для этого действия",
		"error.not_found":              "Не найдено",
		"error.internal":               "Внутренняя ошибка",
		"error.too_many_requests":      "Слишком много попыток, попробуйте позже",
		"error.book_not_found":         "Книга не найдена",
		"error.book_not_available":     "Книга недоступна для продажи",
		"error.cart_empty":             "Корзина пуста",
		"error.cart_unavailable":       "Корзина временно недоступна, попробуйте позже",
		"error.order_not_found":        "Заказ не найден",
		"error.no_active_order":        "Нет заказа, ожидающего оплаты",
		"error.order_status_invalid":   "Статус заказа не допускает это действие",
		"error.screenshot_required":    "Загрузите скриншот оплаты",
		"error.phone_taken":            "Этот номер телефона уже зарегистрирован",
		"error.invalid_credentials":    "Неверный номер телефона или пароль",
		"error.payment_card_missing":   "Платёжная карта не настроена",
		"error.category_not_found":     "Категория не найдена",
		"error.upload_too_large":       "Файл слишком большой",
		"error.upload_type_invalid":    "Тип файла не поддерживается",
		"error.address_required":       "Укажите адрес доставки",
		"error.auth_header_missing":    "Отсутствует заголовок авторизации",
		"error.auth_header_invalid":    "Некорректный заголовок авторизации",
		"error.token_invalid":          "Токен недействителен, войдите заново",
		"error.user_disabled":          "Аккаунт заблокирован",
		"error.rate_limited":           "Слишком много попыток, повторите через %d сек.",
		"error.rate_limit_unavailable": "Сервис временно занят, попробуйте позже",
		"success.order_created":        "Заказ принят",
		"success.payment_submitted":    "Скриншот оплаты принят, скоро подтвердим",
		"success.order_confirmed":      "Заказ подтверждён",
		"success.order_cancelled":      "Заказ отменён",
		"success.order_ready":          "Заказ готов к доставке",
		"success.order_delivered":      "Заказ доставлен",
	},
	constants.LocaleEnglish: {
		"error.bad_request":            "Bad request",
		"error.unauthorized":           "Please sign in first",
		"error.forbidden":              "You are not allowed to do this",
		"error.not_found":              "Not found",
		"error.internal":               "Internal error",
		"error.too_many_requests":      "Too many attempts, try again later",
		"error.book_not_found":         "Book not found",
		"error.book_not_available":     "Book is not available",
		"error.cart_empty":             "Cart is empty",
		"error.cart_unavailable":       "Cart is temporarily unavailable, try again later",
		"error.order_not_found":        "Order not found",
		"error.no_active_order":        "No order awaiting payment",
		"error.order_status_invalid":   "Order status does not allow this action",
		"error.screenshot_required":    "Upload the payment screenshot",
		"error.phone_taken":            "This phone number is already registered",
		"error.invalid_credentials":    "Wrong phone number or password",
		"error.payment_card_missing":   "Payment card is not configured",
		"error.category_not_found":     "Category not found",
		"error.upload_too_large":       "File is too large",
		"error.upload_type_invalid":    "File type is not supported",
		"error.address_required":       "Enter the delivery address",
		"error.auth_header_missing":    "Authorization header is missing",
		"error.auth_header_invalid":    "Authorization header is malformed",
		"error.token_invalid":          "Token is invalid, sign in again",
		"error.user_disabled":          "Account is disabled",
		"error.rate_limited":           "Too many attempts, try again in %d seconds",
		"error.rate_limit_unavailable": "Service is busy, try again later",
		"success.order_created":        "Order accepted",
		"success.payment_submitted":    "Payment screenshot accepted, confirmation is on the way",
		"success.order_confirmed":      "Order confirmed",
		"success.order_cancelled":      "Order cancelled",
		"success.order_ready":          "Order is ready for delivery",
		"success.order_delivered":      "Order delivered",
	},
}

// ResolveLocale picks the response locale from the lang query parameter
// or the Accept-Language header, defaulting to Uzbek.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocaleUzbek
	}
	if lang := normalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if lang := normalizeLocale(tag); lang != "" {
			return lang
		}
	}
	return constants.LocaleUzbek
}

// T returns the message for the key in the given locale, falling back
// to Uzbek and finally to the key itself.
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[constants.LocaleUzbek][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats a translated message.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	if idx := strings.IndexAny(tag, "-_"); idx > 0 {
		tag = tag[:idx]
	}
	switch tag {
	case constants.LocaleUzbek, constants.LocaleRussian, constants.LocaleEnglish:
		return tag
	default:
		return ""
	}
}

package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T, target string, header map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("GET", target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestResolveLocaleDefaultsToUzbek(t *testing.T) {
	c := newTestContext(t, "/books", nil)
	if got := ResolveLocale(c); got != "uz" {
		t.Fatalf("expected uz, got %s", got)
	}
}

func TestResolveLocaleQueryWins(t *testing.T) {
	c := newTestContext(t, "/books?lang=ru", map[string]string{"Accept-Language": "en-US"})
	if got := ResolveLocale(c); got != "ru" {
		t.Fatalf("expected ru, got %s", got)
	}
}

func TestResolveLocaleAcceptLanguage(t *testing.T) {
	c := newTestContext(t, "/books", map[string]string{"Accept-Language": "fr-FR,en-US;q=0.8"})
	if got := ResolveLocale(c); got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestTFallsBackToUzbek(t *testing.T) {
	if got := T("de", "error.cart_empty"); got != "Savat bo'sh" {
		t.Fatalf("expected uz fallback, got %s", got)
	}
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	if got := T("uz", "no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key echo, got %s", got)
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/repository"
	"github.com/kitoblarda/internal/session"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func mustMoney(t *testing.T, s string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	return m
}

func seedBook(t *testing.T, db *gorm.DB, title, price string, active bool) *models.Book {
	t.Helper()
	category := models.Category{Name: "Adabiyot", Slug: Slugify("Adabiyot " + title), IsActive: true}
	if err := db.Where("slug = ?", category.Slug).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	book := &models.Book{
		CategoryID: category.ID,
		Title:      title,
		Price:      mustMoney(t, price),
		CoverType:  "hard",
		Slug:       Slugify(title),
		IsActive:   active,
	}
	if err := db.Create(book).Error; err != nil {
		t.Fatalf("seed book failed: %v", err)
	}
	return book
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(session.NewMemoryStore(), repository.NewBookRepository(db))
}

func TestCartAddAndDetail(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Otgan kunlar", "10000.00", true)

	if _, err := svc.Add(ctx, "s1", book.ID, 2, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	detail, err := svc.Add(ctx, "s1", book.ID, 1, false)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if detail.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %d", detail.TotalItems)
	}
	if detail.TotalPrice.String() != "30000.00" {
		t.Fatalf("expected total 30000.00, got %s", detail.TotalPrice)
	}
	if len(detail.Lines) != 1 || detail.Lines[0].Title != "Otgan kunlar" {
		t.Fatalf("unexpected lines: %+v", detail.Lines)
	}
}

func TestCartAddUnknownBook(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)

	if _, err := svc.Add(context.Background(), "s1", 999, 1, false); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestCartAddInactiveBook(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)
	book := seedBook(t, db, "Mehrobdan chayon", "8000.00", false)

	if _, err := svc.Add(context.Background(), "s1", book.ID, 1, false); !errors.Is(err, ErrBookNotAvailable) {
		t.Fatalf("expected ErrBookNotAvailable, got %v", err)
	}
}

func TestCartPriceSnapshotSurvivesCatalogEdit(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Sarob", "10000.00", true)

	if _, err := svc.Add(ctx, "s1", book.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(book).Update("price", "99000.00").Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	detail, err := svc.Detail(ctx, "s1")
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.TotalPrice.String() != "10000.00" {
		t.Fatalf("snapshot lost: got %s", detail.TotalPrice)
	}
}

func TestCartSetQuantity(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Ufq", "11000.00", true)

	if _, err := svc.Add(ctx, "s1", book.ID, 2, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	detail, err := svc.SetQuantity(ctx, "s1", book.ID, 5)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if detail.TotalItems != 5 {
		t.Fatalf("expected quantity replaced to 5, got %d", detail.TotalItems)
	}
}

func TestCartSetQuantityNonPositiveRemovesLine(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Qutlug qon", "14000.00", true)

	cases := []int{0, -1}
	for _, qty := range cases {
		if _, err := svc.Add(ctx, "s1", book.ID, 2, false); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		detail, err := svc.SetQuantity(ctx, "s1", book.ID, qty)
		if err != nil {
			t.Fatalf("set quantity %d failed: %v", qty, err)
		}
		if len(detail.Lines) != 0 || detail.TotalItems != 0 {
			t.Fatalf("expected line removed for quantity %d, got %+v", qty, detail.Lines)
		}
	}
}

func TestCartRemoveAbsentBook(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Ikki eshik orasi", "12000.00", true)

	if _, err := svc.Add(ctx, "s1", book.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	detail, err := svc.Remove(ctx, "s1", 777)
	if err != nil {
		t.Fatalf("remove of absent book must succeed: %v", err)
	}
	if detail.TotalItems != 1 {
		t.Fatalf("expected cart untouched, got %d items", detail.TotalItems)
	}
}

func TestCartCountAndClear(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	first := seedBook(t, db, "Yulduzli tunlar", "15000.00", true)
	second := seedBook(t, db, "Shum bola", "7000.00", true)

	if _, err := svc.Add(ctx, "s1", first.ID, 2, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Add(ctx, "s1", second.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	count, err := svc.Count(ctx, "s1")
	if err != nil || count != 3 {
		t.Fatalf("expected count 3, got %d err=%v", count, err)
	}

	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	count, err = svc.Count(ctx, "s1")
	if err != nil || count != 0 {
		t.Fatalf("expected count 0 after clear, got %d err=%v", count, err)
	}
}

func TestCartsIsolatedBySession(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Chol va dengiz", "9000.00", true)

	if _, err := svc.Add(ctx, "s1", book.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	count, err := svc.Count(ctx, "s2")
	if err != nil || count != 0 {
		t.Fatalf("expected empty cart for other session, got %d err=%v", count, err)
	}
}

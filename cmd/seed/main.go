package main

import (
	"github.com/kitoblarda/internal/config"
	"github.com/kitoblarda/internal/logger"
	"github.com/kitoblarda/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.PoolOptions{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	categories := []models.Category{
		{Name: "Badiiy adabiyot", NameRu: "Художественная литература", Slug: "badiiy-adabiyot", SortOrder: 1, IsActive: true},
		{Name: "Bolalar adabiyoti", NameRu: "Детская литература", Slug: "bolalar-adabiyoti", SortOrder: 2, IsActive: true},
		{Name: "Tarix", NameRu: "История", Slug: "tarix", SortOrder: 3, IsActive: true},
	}

	for i := range categories {
		cat := &categories[i]
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(cat).Error; err != nil {
				stdLog.Printf("failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("created category: %s", cat.Slug)
			}
		} else {
			*cat = existing
			stdLog.Printf("category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		categoryIDs[cat.Slug] = cat.ID
	}

	books := []models.Book{
		{
			CategoryID: categoryIDs["badiiy-adabiyot"],
			Title:      "O'tgan kunlar",
			TitleRu:    "Минувшие дни",
			Author:     "Abdulla Qodiriy",
			AuthorRu:   "Абдулла Кадыри",
			Price:      mustMoney("45000.00"),
			CoverType:  "hard",
			Pages:      432,
			Slug:       "otgan-kunlar",
			IsActive:   true,
		},
		{
			CategoryID: categoryIDs["badiiy-adabiyot"],
			Title:      "Mehrobdan chayon",
			TitleRu:    "Скорпион из алтаря",
			Author:     "Abdulla Qodiriy",
			AuthorRu:   "Абдулла Кадыри",
			Price:      mustMoney("38000.00"),
			CoverType:  "hard",
			Pages:      368,
			Slug:       "mehrobdan-chayon",
			IsActive:   true,
		},
		{
			CategoryID: categoryIDs["tarix"],
			Title:      "Yulduzli tunlar",
			TitleRu:    "Звёздные ночи",
			Author:     "Pirimqul Qodirov",
			AuthorRu:   "Пиримкул Кадыров",
			Price:      mustMoney("52000.00"),
			CoverType:  "hard",
			Pages:      560,
			Slug:       "yulduzli-tunlar",
			IsActive:   true,
		},
		{
			CategoryID: categoryIDs["bolalar-adabiyoti"],
			Title:      "Shum bola",
			TitleRu:    "Озорник",
			Author:     "G'afur G'ulom",
			AuthorRu:   "Гафур Гулям",
			Price:      mustMoney("25000.00"),
			CoverType:  "soft",
			Pages:      192,
			Slug:       "shum-bola",
			IsActive:   true,
		},
		{
			CategoryID: categoryIDs["badiiy-adabiyot"],
			Title:      "Sarob",
			TitleRu:    "Мираж",
			Author:     "Abdulla Qahhor",
			AuthorRu:   "Абдулла Каххар",
			Price:      mustMoney("33000.00"),
			CoverType:  "soft",
			Pages:      304,
			Slug:       "sarob",
			IsActive:   true,
		},
		{
			CategoryID: categoryIDs["badiiy-adabiyot"],
			Title:      "Ikki eshik orasi",
			TitleRu:    "Меж двух дверей",
			Author:     "O'tkir Hoshimov",
			AuthorRu:   "Уткир Хашимов",
			Price:      mustMoney("48000.00"),
			CoverType:  "hard",
			Pages:      624,
			Slug:       "ikki-eshik-orasi",
			IsActive:   true,
		},
	}

	for i := range books {
		book := &books[i]
		var existing models.Book
		if err := models.DB.Where("slug = ?", book.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(book).Error; err != nil {
				stdLog.Printf("failed to create book %s: %v", book.Slug, err)
			} else {
				stdLog.Printf("created book: %s", book.Slug)
			}
		} else {
			stdLog.Printf("book already exists: %s", book.Slug)
		}
	}

	if err := models.InitDefaultStaff(models.DB, "+998901234567", "staff-dev-password"); err != nil {
		stdLog.Printf("failed to seed staff user: %v", err)
	}
	if err := models.EnsurePaymentSetting(models.DB, "8600 0000 0000 0000", "KITOBLARDA LLC"); err != nil {
		stdLog.Printf("failed to seed payment setting: %v", err)
	}

	stdLog.Println("seed finished")
}

func mustMoney(value string) models.Money {
	money, err := models.NewMoneyFromString(value)
	if err != nil {
		panic(err)
	}
	return money
}

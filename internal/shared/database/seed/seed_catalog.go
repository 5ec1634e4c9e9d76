package seed

import (
	"context"
	"database/sql"
	"log"

	"go-wemall-api/internal/catalog"

	"github.com/shopspring/decimal"
)

func SeedCatalog(db *sql.DB) error {
	ctx := context.Background()
	repo := catalog.NewRepository(db)

	products := []struct {
		Name string
		Skus []struct {
			Price string
			Stock int32
		}
	}{
		{
			Name: "Wireless Earbuds",
			Skus: []struct {
				Price string
				Stock int32
			}{
				{Price: "59.90", Stock: 120},
				{Price: "79.90", Stock: 45},
			},
		},
		{
			Name: "Mechanical Keyboard",
			Skus: []struct {
				Price string
				Stock int32
			}{
				{Price: "129.00", Stock: 30},
			},
		},
		{
			Name: "USB-C Hub",
			Skus: []struct {
				Price string
				Stock int32
			}{
				{Price: "25.00", Stock: 0},
			},
		},
	}

	for _, p := range products {
		product, err := repo.CreateProduct(ctx, p.Name, true)
		if err != nil {
			log.Println("skip seed product:", err)
			continue
		}

		for _, s := range p.Skus {
			price, err := decimal.NewFromString(s.Price)
			if err != nil {
				return err
			}
			if _, err := repo.CreateSku(ctx, product.ID, price, s.Stock, true); err != nil {
				log.Println("skip seed sku:", err)
			}
		}
	}

	return nil
}

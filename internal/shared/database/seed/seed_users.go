package seed

import (
	"context"
	"database/sql"
	"log"

	"go-wemall-api/internal/auth"
)

func SeedUsers(db *sql.DB) error {
	ctx := context.Background()
	repo := auth.NewRepository(db)

	svc := auth.NewService(repo)

	users := []auth.RegisterRequest{
		{
			Email:    "admin@example.com",
			Name:     "Admin",
			Password: "admin-secret-1",
		},
		{
			Email:    "customer@example.com",
			Name:     "Demo Customer",
			Password: "customer-secret-1",
		},
	}

	for _, u := range users {
		if _, err := svc.Register(ctx, u); err != nil {
			// usually a duplicate email on re-run
			log.Println("skip seed user:", err)
			continue
		}
	}

	// the first seeded account acts as catalog admin
	_, err := db.ExecContext(ctx,
		`UPDATE users SET role = 'ADMIN' WHERE email = $1`, "admin@example.com")
	return err
}

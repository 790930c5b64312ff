package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/spszl/teacher-reviews/config"
	"github.com/spszl/teacher-reviews/internal/infrastructure/memory"
)

// Seeds the postgres backend with the default teacher profiles. The
// in-memory backend seeds itself at startup and does not need this.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, t := range memory.SeedTeachers() {
		var id int
		err := db.QueryRow(`
			INSERT INTO teachers (name, subject, image_url, description)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, t.Name, t.Subject, t.ImageURL, t.Description).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed teacher %q: %v", t.Name, err)
		}
		fmt.Printf("seeded teacher: id=%d name=%s subject=%s\n", id, t.Name, t.Subject)
	}
}

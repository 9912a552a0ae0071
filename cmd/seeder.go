package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"vacations", "attendances", "users"} {
				if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		seedUsers := []struct {
			Name    string
			Surname string
			Email   string
			Role    string
		}{
			{"Maria", "Lopez", "maria@mail.com", "admin"},
			{"Carlos", "Perez", "carlos@mail.com", "user"},
		}

		for _, u := range seedUsers {
			var exists int
			row := db.QueryRow("SELECT 1 FROM users WHERE email = $1", u.Email)
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("%s already exists, skipping\n", u.Email)
				continue
			}

			_, err := db.Exec(
				"INSERT INTO users (name, surname, email, password_hash, role, start_date, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, now(), now(), now())",
				u.Name, u.Surname, u.Email, string(hash), u.Role,
			)
			if err != nil {
				log.Fatalf("failed to insert %s: %v", u.Email, err)
			}
			fmt.Printf("Seeded %s user: %s\n", u.Role, u.Email)
		}
	},
}

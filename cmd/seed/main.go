package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"gameshelf/internal/catalog"
	"gameshelf/internal/config"
	"gameshelf/internal/db"
)

// Seeds the catalog from a CSV with the columns
// name,description,developer,publisher,releasedate,picture.
func main() {
	filePath := flag.String("file", "games.csv", "path to games csv")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	records, err := readGames(*filePath, cfg.DefaultPicture)
	if err != nil {
		log.Fatalf("failed to read games: %v", err)
	}

	store := catalog.NewStore(conn)
	inserted := 0
	for _, record := range records {
		game, err := store.AddGame(record)
		if err != nil {
			log.Fatalf("failed to insert game %q: %v", record.Name, err)
		}
		inserted++
		log.Printf("seeded game %d: %s", game.ID, game.Name)
	}
	log.Printf("seeded %d games", inserted)
}

func readGames(path, defaultPicture string) ([]catalog.GameInput, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var records []catalog.GameInput
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 5 {
			continue
		}
		record := catalog.GameInput{
			Name:        strings.TrimSpace(row[0]),
			Description: strings.TrimSpace(row[1]),
			Developer:   strings.TrimSpace(row[2]),
			Publisher:   strings.TrimSpace(row[3]),
			ReleaseDate: strings.TrimSpace(row[4]),
			Picture:     defaultPicture,
		}
		if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
			record.Picture = strings.TrimSpace(row[5])
		}
		records = append(records, record)
	}
	return records, nil
}

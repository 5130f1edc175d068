package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"reviewdb/internal/model"
	"reviewdb/pkg/config"
	"reviewdb/pkg/database"
	"reviewdb/pkg/logger"
	"reviewdb/pkg/s3"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	var (
		csvPath       = flag.String("csv", "", "path to a genre_title.csv file (two integer columns: title id, genre id)")
		fromS3        = flag.Bool("s3", false, "read the CSV from the configured S3 bucket instead of the local filesystem")
		adminUsername = flag.String("admin-username", "", "bootstrap an admin user with this username")
		adminEmail    = flag.String("admin-email", "", "email for the bootstrap admin user")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if *adminUsername != "" && *adminEmail != "" {
		if err := seedAdmin(db, *adminUsername, *adminEmail, log); err != nil {
			log.Error("Failed to seed admin user: %v", err)
			panic(err)
		}
	}

	if *csvPath != "" {
		reader, err := openCSV(cfg, *csvPath, *fromS3, log)
		if err != nil {
			log.Error("Failed to open CSV: %v", err)
			panic(err)
		}
		defer reader.Close()

		count, err := importTitleGenres(db, reader)
		if err != nil {
			log.Error("Failed to import title/genre links: %v", err)
			panic(err)
		}
		log.Info("Imported %d title/genre links from %s", count, *csvPath)
	}

	log.Info("Seeding finished")
}

func seedAdmin(db *gorm.DB, username, email string, log *logger.Logger) error {
	user := &model.UserModel{
		Username:         username,
		Email:            email,
		Role:             "admin",
		IsStaff:          true,
		ConfirmationCode: uuid.New().String(),
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}
	log.Info("Created admin user %q; confirmation code sent to %s via the usual signup flow", username, email)
	return nil
}

func openCSV(cfg *config.Config, path string, fromS3 bool, log *logger.Logger) (io.ReadCloser, error) {
	if !fromS3 {
		return os.Open(path)
	}

	client, err := s3.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Downloading %s from bucket %s", path, cfg.S3BucketName)
	return client.DownloadFile(path)
}

// importTitleGenres loads title/genre links from a fixed-format CSV: a header
// row, then two integer columns (title id, genre id). Existing links are
// skipped rather than duplicated.
func importTitleGenres(db *gorm.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse CSV: %w", err)
	}

	count := 0
	for i, row := range rows {
		if i == 0 {
			// header
			continue
		}
		if len(row) < 2 {
			return count, fmt.Errorf("row %d: expected two columns, got %d", i+1, len(row))
		}

		titleID, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return count, fmt.Errorf("row %d: bad title id %q", i+1, row[0])
		}
		genreID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return count, fmt.Errorf("row %d: bad genre id %q", i+1, row[1])
		}

		err = db.Exec(
			"INSERT INTO title_genres (title_model_id, genre_model_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			titleID, genreID,
		).Error
		if err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		count++
	}
	return count, nil
}

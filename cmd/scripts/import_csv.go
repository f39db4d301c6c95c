package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/luckypick/powerball-backend/internal/config"
	"github.com/luckypick/powerball-backend/internal/models"
	mongorepo "github.com/luckypick/powerball-backend/internal/repositories/mongodb"
	"github.com/luckypick/powerball-backend/pkg/mongodb"
)

// Imports historical draw results from a CSV file into MongoDB. Expected
// columns: drawDate (YYYY-MM-DD), five whiteballs, powerball, and an
// optional multiplier.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("MONGODB_DATABASE", "powerball")

	// Get CSV file path from command line arguments
	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	file, err := os.Open(csvFilePath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV file: %v", err)
	}

	var results []*models.DrawResult
	for i, row := range rows {
		if i == 0 && row[0] == "drawDate" {
			// Header row
			continue
		}
		result, err := parseRow(row)
		if err != nil {
			log.Fatalf("Row %d: %v", i+1, err)
		}
		results = append(results, result)
	}
	if len(results) == 0 {
		log.Fatal("CSV file contains no draw results")
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodb.NewClient(ctx, mongoURI)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	repo := mongorepo.NewDrawResultRepository(client.Database(dbName))
	if err := repo.CreateMany(context.Background(), results); err != nil {
		log.Fatalf("Failed to import draw results: %v", err)
	}

	log.Printf("Imported %d draw results into %s", len(results), dbName)
}

func parseRow(row []string) (*models.DrawResult, error) {
	if len(row) < 7 {
		return nil, fmt.Errorf("expected at least 7 columns, got %d", len(row))
	}

	drawDate, err := time.Parse("2006-01-02", row[0])
	if err != nil {
		return nil, err
	}

	whiteBalls := make([]int, 0, models.WhiteBallCount)
	for _, field := range row[1:6] {
		ball, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		whiteBalls = append(whiteBalls, ball)
	}

	powerBall, err := strconv.Atoi(row[6])
	if err != nil {
		return nil, err
	}

	multiplier := 0
	if len(row) > 7 && row[7] != "" {
		multiplier, err = strconv.Atoi(row[7])
		if err != nil {
			return nil, err
		}
	}

	return &models.DrawResult{
		DrawDate:   models.DrawDay(drawDate),
		WhiteBalls: whiteBalls,
		PowerBall:  powerBall,
		Multiplier: multiplier,
	}, nil
}

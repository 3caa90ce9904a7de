package configuration

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// LoadEnv reads .env if present; real environments set variables
// directly, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file loaded:", err)
	}
}

// Env returns the value of key, or fallback when unset.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConfigDB connects to MongoDB and returns the application database.
func ConfigDB(ctx context.Context) (*mongo.Database, error) {
	uri := Env("MONGO_URI", "mongodb://localhost:27017")
	name := Env("MONGO_DB", "docappoint")

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client.Database(name), nil
}

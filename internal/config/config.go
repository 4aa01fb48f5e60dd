package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// Defaults match the limits the locker has always shipped with.
	DefaultMaxUploadSize  = 50 * 1024 * 1024      // 50 MB per batch and per file
	DefaultMaxStorageSize = 3 * 512 * 1024 * 1024 // 1.5 GB per account
	DefaultDataFile       = "data/users.json"
)

type Settings struct {
	ServerPort     int
	RedisAddr      string
	RedisPassword  string
	DataFile       string
	SessionSecret  string
	MaxUploadSize  int64
	MaxStorageSize int64
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	viper.SetDefault("DATA_FILE", DefaultDataFile)
	viper.SetDefault("MAX_UPLOAD_SIZE", DefaultMaxUploadSize)
	viper.SetDefault("MAX_STORAGE_SIZE", DefaultMaxStorageSize)

	s := &Settings{
		ServerPort:     viper.GetInt("SERVER_PORT"),
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		RedisPassword:  viper.GetString("REDIS_PASSWORD"),
		DataFile:       viper.GetString("DATA_FILE"),
		SessionSecret:  viper.GetString("SESSION_SECRET"),
		MaxUploadSize:  viper.GetInt64("MAX_UPLOAD_SIZE"),
		MaxStorageSize: viper.GetInt64("MAX_STORAGE_SIZE"),
	}

	if s.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	if s.MaxStorageSize < s.MaxUploadSize {
		return nil, fmt.Errorf("MAX_STORAGE_SIZE must be at least MAX_UPLOAD_SIZE")
	}

	return s, nil
}

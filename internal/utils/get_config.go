package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`

	// Notion configuration
	NotionAPIKey          string `yaml:"NOTION_API_KEY"`
	NotionRecipesDBID     string `yaml:"NOTION_RECIPES_DB_ID"`
	NotionIngredientsDBID string `yaml:"NOTION_INGREDIENTS_DB_ID"`

	// Admin credential for write endpoints
	AdminPassword string `yaml:"ADMIN_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys read via os.Getenv elsewhere (middleware, storage)
	os.Setenv("ADMIN_PASSWORD", config.AdminPassword)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "NOTION_API_KEY":
		return config.NotionAPIKey
	case "NOTION_RECIPES_DB_ID":
		return config.NotionRecipesDBID
	case "NOTION_INGREDIENTS_DB_ID":
		return config.NotionIngredientsDBID
	case "ADMIN_PASSWORD":
		return config.AdminPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

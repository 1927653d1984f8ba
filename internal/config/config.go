package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Provider exposes the process-level settings the commands and the preview
// server need.
type Provider interface {
	GetSitePath() string
	GetPreviewAddr() string
	GetPreviewWatch() bool
}

// Config holds all process-level configuration for the application. Site
// content settings live in SiteConfig.
type Config struct {
	SitePath     string
	PreviewAddr  string
	PreviewWatch bool
}

var _ Provider = (*Config)(nil)

// New loads configuration from environment variables, reading a .env file
// first if one exists.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching
// .env files.
func FromEnv() *Config {
	return &Config{
		SitePath:     getEnv("SITE_CONFIG", "quartz.yaml"),
		PreviewAddr:  getEnv("PREVIEW_ADDR", ":8080"),
		PreviewWatch: getEnvBool("PREVIEW_WATCH", true),
	}
}

func (c *Config) GetSitePath() string    { return c.SitePath }
func (c *Config) GetPreviewAddr() string { return c.PreviewAddr }
func (c *Config) GetPreviewWatch() bool  { return c.PreviewWatch }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Ignoring invalid boolean %s=%q", key, v)
		return fallback
	}
	return b
}

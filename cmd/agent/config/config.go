package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL          string        `env:"DATABASE_URL,required"`
	HTTPTimeout          time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	MinDiscountPercent   float64       `env:"MIN_DISCOUNT_PERCENT" envDefault:"10"`
	MaxQueries           int           `env:"MAX_QUERIES" envDefault:"20"`
	TrendingKeywordLimit int           `env:"TRENDING_KEYWORD_LIMIT" envDefault:"10"`
	QueryDelay           time.Duration `env:"QUERY_DELAY" envDefault:"1s"`

	SerpAPI  SerpAPI
	RabbitMQ RabbitMQ
}

// SerpAPI holds shopping search API configuration.
type SerpAPI struct {
	APIKey       string `env:"SERP_API_KEY,required"`
	BaseURL      string `env:"SERP_API_BASE_URL" envDefault:"https://serpapi.com/search"`
	Engine       string `env:"SERP_API_ENGINE" envDefault:"google_shopping"`
	Country      string `env:"SERP_API_COUNTRY" envDefault:"tr"`
	Language     string `env:"SERP_API_LANGUAGE" envDefault:"tr"`
	GoogleDomain string `env:"SERP_API_GOOGLE_DOMAIN" envDefault:"google.com.tr"`
	NumResults   int    `env:"SERP_API_NUM_RESULTS" envDefault:"40"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL,required"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"shopping-agent"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"shopping-agent.runs"`
	ResultsKey string `env:"RABBITMQ_RESULTS_KEY" envDefault:"shopping-agent.results"`
}

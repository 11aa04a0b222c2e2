package env

import (
	"fmt"
	"os"

	"reviewmap_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type reviewYAML struct {
	Review struct {
		MinRating        int `yaml:"min_rating"`
		MaxRating        int `yaml:"max_rating"`
		MaxTitleLength   int `yaml:"max_title_length"`
		MaxContentLength int `yaml:"max_content_length"`
	} `yaml:"review"`
}

type reviewConfig struct {
	minRating        int
	maxRating        int
	maxTitleLength   int
	maxContentLength int
}

// NewReviewConfigFromYAML - читает лимиты валидации отзывов из YAML файла
func NewReviewConfigFromYAML(path string) (config.ReviewConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read review config: %w", err)
	}

	var parsed reviewYAML
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse review config: %w", err)
	}

	if parsed.Review.MaxRating <= parsed.Review.MinRating {
		return nil, fmt.Errorf("invalid rating bounds in review config")
	}

	return &reviewConfig{
		minRating:        parsed.Review.MinRating,
		maxRating:        parsed.Review.MaxRating,
		maxTitleLength:   parsed.Review.MaxTitleLength,
		maxContentLength: parsed.Review.MaxContentLength,
	}, nil
}

func (cfg *reviewConfig) MinRating() int {
	return cfg.minRating
}

func (cfg *reviewConfig) MaxRating() int {
	return cfg.maxRating
}

func (cfg *reviewConfig) MaxTitleLength() int {
	return cfg.maxTitleLength
}

func (cfg *reviewConfig) MaxContentLength() int {
	return cfg.maxContentLength
}

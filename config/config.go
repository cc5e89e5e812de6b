package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Quiz         Quiz
	Learning     Learning
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Quiz holds the tunables of quiz assembly.
type Quiz struct {
	MinQuestions     int
	MaxQuestions     int
	DefaultQuestions int
	DailyLimitHours  int
}

// Learning holds the tunables of the adaptive selection loop. Thresholds are
// percentages in [0,100]; WeakFocusProbability is a probability in [0,1].
type Learning struct {
	WeakThreshold        float64
	StrongThreshold      float64
	WeakFocusProbability float64
	DefaultDomain        string
	WindowDays           int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MIN_QUESTIONS_PER_QUIZ", 3)
	viper.SetDefault("MAX_QUESTIONS_PER_QUIZ", 20)
	viper.SetDefault("DEFAULT_QUESTIONS_PER_QUIZ", 5)
	viper.SetDefault("DAILY_LIMIT_HOURS", 24)
	viper.SetDefault("WEAK_TOPIC_THRESHOLD", 60.0)
	viper.SetDefault("STRONG_TOPIC_THRESHOLD", 80.0)
	viper.SetDefault("WEAK_FOCUS_PROBABILITY", 0.7)
	viper.SetDefault("DEFAULT_DOMAIN", "Python Programming")
	viper.SetDefault("PERFORMANCE_WINDOW_DAYS", 30)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Quiz.MinQuestions = viper.GetInt("MIN_QUESTIONS_PER_QUIZ")
	config.Quiz.MaxQuestions = viper.GetInt("MAX_QUESTIONS_PER_QUIZ")
	config.Quiz.DefaultQuestions = viper.GetInt("DEFAULT_QUESTIONS_PER_QUIZ")
	config.Quiz.DailyLimitHours = viper.GetInt("DAILY_LIMIT_HOURS")

	config.Learning.WeakThreshold = viper.GetFloat64("WEAK_TOPIC_THRESHOLD")
	config.Learning.StrongThreshold = viper.GetFloat64("STRONG_TOPIC_THRESHOLD")
	config.Learning.WeakFocusProbability = viper.GetFloat64("WEAK_FOCUS_PROBABILITY")
	config.Learning.DefaultDomain = viper.GetString("DEFAULT_DOMAIN")
	config.Learning.WindowDays = viper.GetInt("PERFORMANCE_WINDOW_DAYS")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("default_domain", config.Learning.DefaultDomain).Msg("Config loaded")
	return &config, nil
}

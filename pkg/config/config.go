package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Port        string `mapstructure:"PORT"`
	SqlitePath  string `mapstructure:"SQLITE_PATH"`
	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`
	ServiceName string `mapstructure:"SERVICE_NAME"`
}

func Read() *AppConfig {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	var appConfig AppConfig
	err := viper.Unmarshal(&appConfig)
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}

	return &appConfig
}

func bindEnvVariables() {
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("SQLITE_PATH")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("SERVICE_NAME")
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SQLITE_PATH", "items.db")
	viper.SetDefault("SERVICE_NAME", "catalog")
}

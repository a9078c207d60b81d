package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	// Institutional domain required on registrations (ex: "muj.manipal.edu").
	InstitutionDomain string `json:"institution_domain"`

	Security struct {
		JwtSecret     string `json:"jwt_secret"`
		OtpTTLMinutes int    `json:"otp_ttl_minutes"`
		BcryptCost    int    `json:"bcrypt_cost"`
	} `json:"security"`

	Mail struct {
		Host string `json:"host"`
		Port int    `json:"port"`
		User string `json:"user"`
		Pass string `json:"pass"`
		From string `json:"from"`
	} `json:"mail"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults
	if c.ApiPort == "" {
		c.ApiPort = "5000"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.InstitutionDomain == "" {
		c.InstitutionDomain = "muj.manipal.edu"
	}
	if c.Security.OtpTTLMinutes <= 0 {
		c.Security.OtpTTLMinutes = 10
	}
	if c.Security.BcryptCost <= 0 {
		c.Security.BcryptCost = 10
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if c.Mail.Port <= 0 {
		c.Mail.Port = 587
	}
	if c.Mail.From == "" {
		c.Mail.From = "UniLost <noreply@unilost.com>"
	}

	return c
}

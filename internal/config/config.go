package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	SessionSecret       string
	DatabaseURL         string
	RedisURL            string
	HubspotAccessToken  string
	HubspotPortalID     string
	FrontendURLEndsWith string
	DevPassword         string
	AllowCrossSiteDev   bool
}

// PropertyMap translates canonical project field names to the CRM deal
// property names requested from HubSpot. Declared statically and validated at
// load time so a renamed property fails the boot, not a request.
var PropertyMap = map[string]string{
	"name":         "dealname",
	"amount":       "amount",
	"stage":        "dealstage",
	"address":      "property_address",
	"location":     "pb_location",
	"systemSize":   "system_size_kwdc",
	"batteries":    "number_of_batteries",
	"batteryModel": "battery_model",
	"crew":         "install_crew",
	"daysInstall":  "install_days_on_site",
	"daysElec":     "electrical_install_days",
	"roofType":     "roof_type",
	"scheduleDate": "install_schedule_date",
	"type":         "service_line",
}

// requiredProperties must resolve in PropertyMap for the scheduler to work.
var requiredProperties = []string{
	"name", "amount", "stage", "location", "crew", "daysInstall", "scheduleDate",
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "3001"
	}
	env := viper.GetString("NODE_ENV")
	if env == "" {
		env = viper.GetString("APP_ENV")
	}
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL")
	if dbURL == "" {
		dbURL = "database/scheduler.db"
	}

	if err := ValidatePropertyMap(); err != nil {
		return nil, err
	}

	return &Config{
		Env:                 env,
		Port:                port,
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		DatabaseURL:         dbURL,
		RedisURL:            viper.GetString("REDIS_URL"),
		HubspotAccessToken:  viper.GetString("HUBSPOT_ACCESS_TOKEN"),
		HubspotPortalID:     portalID(viper.GetString("HUBSPOT_PORTAL_ID")),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev:   strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
	}, nil
}

// ValidatePropertyMap checks every canonical field the scheduler depends on
// maps to a non-empty CRM property name.
func ValidatePropertyMap() error {
	for _, field := range requiredProperties {
		if PropertyMap[field] == "" {
			return fmt.Errorf("property map: missing CRM property for %q", field)
		}
	}
	return nil
}

func portalID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "21710069"
	}
	return s
}

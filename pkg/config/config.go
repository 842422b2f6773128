package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Sheets SheetsConfig
	JWT    JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP y del frontend estático.
type HTTPConfig struct {
	Host        string
	Port        int
	FrontendDir string // carpeta con los archivos estáticos del frontend
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SheetsConfig configuración de la hoja de cálculo remota.
// La hoja debe estar compartida con el service account de las credenciales.
type SheetsConfig struct {
	SpreadsheetID    string // ID del documento de Google Sheets
	StockSheet       string // nombre de la pestaña de stock
	TransactionSheet string // nombre de la pestaña del log de transacciones
	CredentialsFile  string // ruta al credentials.json del service account
}

// JWTConfig configuración opcional de protección del endpoint de escritura.
// Con Secret vacío el endpoint queda público.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SPREADSHEET_ID, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "stock-sheets-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8000),
			FrontendDir: getString(v, "FRONTEND_DIR", "./frontend"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:    getString(v, "SPREADSHEET_ID", ""),
			StockSheet:       getString(v, "STOCK_SHEET_NAME", "Stock"),
			TransactionSheet: getString(v, "TRANSACTION_SHEET_NAME", "Transactions"),
			CredentialsFile:  getString(v, "GOOGLE_CREDENTIALS_PATH", "credentials.json"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "stock-sheets-api"),
		},
	}

	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("config: SPREADSHEET_ID es requerido")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

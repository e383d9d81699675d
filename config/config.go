package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig `json:"server"`

	// State persistence configuration
	Storage StorageConfig `json:"storage"`

	// Game tuning
	Game GameConfig `json:"game"`

	// Static content configuration
	Content ContentConfig `json:"content"`
}

// ServerConfig holds HTTP server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`
}

// StorageConfig holds state-slot specific configuration
type StorageConfig struct {
	// Storage driver (file or sqlite)
	Driver string `json:"driver"`

	// Path of the JSON state file (file driver)
	Path string `json:"path"`

	// Database connection string (sqlite driver)
	DSN string `json:"dsn"`

	// Key of the persisted state slot
	SlotKey string `json:"slot_key"`
}

// GameConfig holds game specific configuration
type GameConfig struct {
	// Budgeting-game allowance
	AllowanceTotal int `json:"allowance_total"`

	// Suggested allocation per category, informational only
	NeedsTarget   int `json:"needs_target"`
	WantsTarget   int `json:"wants_target"`
	SavingsTarget int `json:"savings_target"`

	// Shopping-game countdown in seconds
	ShoppingTime int `json:"shopping_time"`

	// Shopping-game timer tick period in seconds
	TickInterval int `json:"tick_interval"`

	// Shopping-game area size in pixels
	AreaWidth  int `json:"area_width"`
	AreaHeight int `json:"area_height"`

	// Character sprite size in pixels, used when clamping movement
	CharacterSize int `json:"character_size"`
}

// ContentConfig holds static-content configuration
type ContentConfig struct {
	// Directory holding JSON content overrides
	DataDir string `json:"data_dir"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
		},
		Storage: StorageConfig{
			Driver:  "file",
			Path:    "./data/app_state.json",
			DSN:     "./data/money-smart-kids.db",
			SlotKey: "moneySmartKids",
		},
		Game: GameConfig{
			AllowanceTotal: 20,
			NeedsTarget:    8,
			WantsTarget:    7,
			SavingsTarget:  5,
			ShoppingTime:   180,
			TickInterval:   1,
			AreaWidth:      800,
			AreaHeight:     500,
			CharacterSize:  64,
		},
		Content: ContentConfig{
			DataDir: "./assets/data",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		if err := SaveConfig(config, path); err != nil {
			return config, err
		}
		return config, nil
	}

	// Read config file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write config to file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}

package atolWorker

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DeviceConfig описывает подключение к одной ККТ.
type DeviceConfig struct {
	ID             string
	ConnectionType string // tcp, serial, usb
	Host           string
	Port           int
	SerialPort     string // COM3 или /dev/ttyS0
	BaudRate       int
}

// CommandChannel возвращает имя канала команд устройства.
func (d DeviceConfig) CommandChannel() string {
	return "command_fr_channel_" + d.ID
}

// ResponseChannel возвращает имя канала ответов устройства.
func (d DeviceConfig) ResponseChannel() string {
	return d.CommandChannel() + "_response"
}

type Config struct {
	KafkaBroker string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	TgToken string

	// Кассир по умолчанию (последняя ступень резолвера)
	CashierName string
	CashierINN  string

	UseEmulator bool

	Devices []DeviceConfig
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "atol_worker_db"),
		TgToken:     os.Getenv("TG_TOKEN"),
		CashierName: getEnv("CASHIER_NAME", "Кассир"),
		CashierINN:  os.Getenv("CASHIER_INN"),
		UseEmulator: getEnvBool("ATOL_USE_EMULATOR", false),
	}

	cfg.Devices = loadDeviceConfigs()

	return cfg
}

// loadDeviceConfigs разбирает список устройств из переменных окружения.
//
// Формат:
//
//	DEVICES=device1,device2
//	DEVICE_device1_TYPE=tcp
//	DEVICE_device1_HOST=192.168.1.100
//	DEVICE_device1_PORT=5555
//
// Незаданные поля берутся из общих ATOL_* переменных.
func loadDeviceConfigs() []DeviceConfig {
	var devices []DeviceConfig

	for _, id := range strings.Split(getEnv("DEVICES", "default"), ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		prefix := "DEVICE_" + id + "_"

		devices = append(devices, DeviceConfig{
			ID:             id,
			ConnectionType: getEnv(prefix+"TYPE", getEnv("ATOL_CONNECTION_TYPE", "tcp")),
			Host:           getEnv(prefix+"HOST", getEnv("ATOL_HOST", "localhost")),
			Port:           getEnvInt(prefix+"PORT", getEnvInt("ATOL_PORT", 5555)),
			SerialPort:     getEnv(prefix+"SERIAL_PORT", os.Getenv("ATOL_SERIAL_PORT")),
			BaudRate:       getEnvInt(prefix+"BAUDRATE", getEnvInt("ATOL_BAUDRATE", 115200)),
		})
	}

	return devices
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// BotMode 部署模式，决定本进程处理哪一类录入记录
type BotMode string

const (
	// ModeProjectLog 项目主档 + 跟进记录模式
	ModeProjectLog BotMode = "projectlog"
	// ModeCustomer 客户联系信息模式
	ModeCustomer BotMode = "customer"
)

// Config 应用配置
type Config struct {
	Port             int
	MongoURI         string
	MongoDB          string
	OpenAIKey        string
	OpenAIModel      string
	LineChannelToken string
	LineAPIBase      string
	BaseURL          string
	ExportDir        string
	Mode             BotMode
	Debug            bool
}

// LoadConfig 从环境变量加载配置，.env 文件可选
func LoadConfig() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	return &Config{
		Port:             port,
		MongoURI:         getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:          getEnv("MONGO_DB", "projectlogdb"),
		OpenAIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LineChannelToken: getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
		LineAPIBase:      getEnv("LINE_API_BASE", "https://api.line.me"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:8080"),
		ExportDir:        getEnv("EXPORT_DIR", os.TempDir()),
		Mode:             parseMode(os.Getenv("BOT_MODE")),
		Debug:            getEnv("GIN_MODE", "debug") == "debug",
	}
}

// parseMode 解析部署模式，未知值回退到项目日志模式
func parseMode(v string) BotMode {
	if BotMode(v) == ModeCustomer {
		return ModeCustomer
	}
	return ModeProjectLog
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

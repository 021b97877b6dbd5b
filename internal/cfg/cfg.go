package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/DRSN-tech/products-api/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http      *HTTPConfig
	Qdrant    *QdrantCfg
	Embedding *EmbeddingCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type QdrantCfg struct {
	Host           string
	Port           int
	ApiKey         string
	CollectionName string // имя коллекции товаров в Qdrant
	UseTLS         bool
	VectorSize     uint64 // размерность векторов; зафиксирована при создании коллекции
}

type EmbeddingCfg struct {
	BaseURL string // адрес OpenAI-совместимого embedding-эндпоинта
	ApiKey  string
	Model   string
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
// Отсутствие обязательной переменной — ошибка: процесс не должен стартовать частично.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	qdrant, err := loadQdrantCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	embedding, err := loadEmbeddingCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:      http,
		Qdrant:    qdrant,
		Embedding: embedding,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8000"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 30 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	// Таймаут записи больше обычного: ответ ждёт два сетевых вызова
	// (embedding + поиск в хранилище).
	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadQdrantCfg(log logger.Logger) (*QdrantCfg, error) {
	const (
		defaultQdrantGRPCPort = "6334"
		defaultUseTLS         = false
		defaultVectorSize     = "1536"
	)

	host := getEnv("QDRANT_HOST")
	if host == "" {
		err := fmt.Errorf("QDRANT_HOST is required")
		log.Errorf(err, "missing QDRANT_HOST")
		return nil, err
	}

	collection := getEnv("COLLECTION_NAME")
	if collection == "" {
		err := fmt.Errorf("COLLECTION_NAME is required")
		log.Errorf(err, "missing COLLECTION_NAME")
		return nil, err
	}

	strPort := getEnvOrDefault("QDRANT_GRPC_PORT", defaultQdrantGRPCPort)
	port, err := strconv.Atoi(strPort)
	if err != nil {
		log.Errorf(err, "invalid QDRANT_GRPC_PORT")
		return nil, err
	}

	useTLS, err := strconv.ParseBool(getEnvOrDefault("QDRANT_USE_TLS", strconv.FormatBool(defaultUseTLS)))
	if err != nil {
		log.Errorf(err, "invalid QDRANT_USE_TLS")
		return nil, err
	}

	strVectorSize := getEnvOrDefault("VECTOR_SIZE", defaultVectorSize)
	vectorSize, err := strconv.ParseUint(strVectorSize, 10, 64)
	if err != nil {
		log.Errorf(err, "invalid VECTOR_SIZE")
		return nil, err
	}

	return &QdrantCfg{
		Host:           host,
		Port:           port,
		ApiKey:         getEnv("QDRANT__SERVICE__API_KEY"),
		CollectionName: collection,
		UseTLS:         useTLS,
		VectorSize:     vectorSize,
	}, nil
}

func loadEmbeddingCfg(log logger.Logger) (*EmbeddingCfg, error) {
	const defaultModel = "text-embedding-3-small"

	baseURL := getEnv("EMBEDDING_ENDPOINT")
	if baseURL == "" {
		err := fmt.Errorf("EMBEDDING_ENDPOINT is required")
		log.Errorf(err, "missing EMBEDDING_ENDPOINT")
		return nil, err
	}

	apiKey := getEnv("EMBEDDING_API_KEY")
	if apiKey == "" {
		err := fmt.Errorf("EMBEDDING_API_KEY is required")
		log.Errorf(err, "missing EMBEDDING_API_KEY")
		return nil, err
	}

	return &EmbeddingCfg{
		BaseURL: baseURL,
		ApiKey:  apiKey,
		Model:   getEnvOrDefault("EMBEDDING_MODEL", defaultModel),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

package randomorg

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"credit-calculator/internal/config"
	"credit-calculator/internal/logger"
)

var (
	ErrServiceUnavailable = errors.New("random string service unavailable")
)

// Client - клиент сервиса random.org для генерации случайных строк.
// Таймаут запроса ограничен, чтобы внешний вызов не подвешивал запрос клиента.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает клиент с базовым URL и таймаутом из конфигурации
func NewClient() *Client {
	return &Client{
		baseURL: config.AppConfig.RandomOrgBaseURL,
		httpClient: &http.Client{
			Timeout: config.AppConfig.RandomOrgTimeout,
		},
	}
}

// NewClientWithBaseURL создает клиент с явным базовым URL (для тестов)
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: config.AppConfig.RandomOrgTimeout,
		},
	}
}

// Generate выполняет HTTP-запрос к random.org и возвращает случайные строки
// в виде текста. count - количество строк, length - длина каждой строки.
func (c *Client) Generate(count, length int) (string, error) {
	url := fmt.Sprintf(
		"%s/strings/?num=%d&len=%d&digits=on&upperalpha=on&loweralpha=on&unique=on&format=plain&rnd=new",
		c.baseURL, count, length,
	)

	logger.LogINFO("Sending random string request: " + url)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		logger.LogERROR("Failed to request random strings: " + err.Error())
		return "", ErrServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.LogERROR("Received non-200 response: " + strconv.Itoa(resp.StatusCode))
		return "", ErrServiceUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.LogERROR("Failed to read response: " + err.Error())
		return "", ErrServiceUnavailable
	}

	// Сервис отдает plain text со строкой на каждой линии
	return strings.TrimRight(string(body), "\n"), nil
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TradingViewCookie    string
	TradingViewChartURL  string
	TradingViewHost      string
	TradingViewUserAgent string
	DataBaseURL          string
	RedisURL             string
	FetchTimeoutSecs     int

	HTTPPort int

	MCPTransport          string
	MCPHTTPEnabled        bool
	MCPHTTPBind           string
	MCPHTTPPort           int
	MCPAuthToken          string
	MCPRequestTimeoutSecs int
	MCPRateLimitPerMin    int
}

func Load() *Config {
	cfg := &Config{
		TradingViewCookie: os.Getenv("TRADINGVIEW_COOKIE"),
		RedisURL:          os.Getenv("REDIS_URL"),
		MCPAuthToken:      os.Getenv("MCP_AUTH_TOKEN"),
	}

	if cfg.TradingViewCookie == "" {
		log.Println("Warning: TRADINGVIEW_COOKIE not set, indicator fetches requiring auth will fail")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, session token mirror disabled")
	}

	cfg.TradingViewChartURL = strings.TrimSpace(os.Getenv("TRADINGVIEW_URL"))
	if cfg.TradingViewChartURL == "" {
		cfg.TradingViewChartURL = "https://in.tradingview.com/chart/0M7cMdwj/?symbol=NSE%3ANIFTY"
	}

	cfg.TradingViewHost = strings.TrimSpace(os.Getenv("TRADINGVIEW_HOST"))
	if cfg.TradingViewHost == "" {
		cfg.TradingViewHost = "in.tradingview.com"
	}

	cfg.TradingViewUserAgent = strings.TrimSpace(os.Getenv("TRADINGVIEW_USER_AGENT"))
	if cfg.TradingViewUserAgent == "" {
		cfg.TradingViewUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:140.0) Gecko/20100101 Firefox/140.0"
	}

	cfg.DataBaseURL = strings.TrimSpace(os.Getenv("MARKETDATA_BASE_URL"))
	if cfg.DataBaseURL == "" {
		cfg.DataBaseURL = "https://scanner.tradingview.com"
	}

	cfg.FetchTimeoutSecs = 30
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutSecs = n
		}
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPEnabled = strings.EqualFold(strings.TrimSpace(os.Getenv("MCP_HTTP_ENABLED")), "true")

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}

	cfg.MCPHTTPPort = 8090
	if v := strings.TrimSpace(os.Getenv("MCP_HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPHTTPPort = n
		}
	}

	cfg.MCPRequestTimeoutSecs = 35
	if v := strings.TrimSpace(os.Getenv("MCP_REQUEST_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRequestTimeoutSecs = n
		}
	}

	cfg.MCPRateLimitPerMin = 60
	if v := strings.TrimSpace(os.Getenv("MCP_RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRateLimitPerMin = n
		}
	}

	return cfg
}

// Package catalog holds the static mappings the market data source
// understands: indicator ids and their output fields, timeframes,
// exchanges, news providers, and areas.
package catalog

import "strings"

// FieldMapping binds a source-side positional key to the stable output
// name the merged rows carry.
type FieldMapping struct {
	SourceKey  string
	OutputName string
}

type IndicatorSpec struct {
	ShortName     string
	SourceID      string
	SourceVersion string
	OutputFields  []FieldMapping
}

// MaxIndicatorsPerRequest is the upstream per-call quota. Requests
// for more indicators are split into batches of this size.
const MaxIndicatorsPerRequest = 2

var indicatorSpecs = []IndicatorSpec{
	{
		ShortName:     "RSI",
		SourceID:      "STD;RSI",
		SourceVersion: "44.0",
		OutputFields: []FieldMapping{
			{SourceKey: "2", OutputName: "Relative_Strength_Index"},
			{SourceKey: "0", OutputName: "Relative_Strength_Index_Moving_Average"},
		},
	},
	{
		ShortName:     "MACD",
		SourceID:      "STD;MACD",
		SourceVersion: "38.0",
		OutputFields: []FieldMapping{
			{SourceKey: "4", OutputName: "Moving_Average_Convergence_Divergence_macd"},
			{SourceKey: "5", OutputName: "Moving_Average_Convergence_Divergence_signal"},
			{SourceKey: "2", OutputName: "Moving_Average_Convergence_Divergence_histogram"},
		},
	},
	{
		ShortName:     "CCI",
		SourceID:      "STD;CCI",
		SourceVersion: "37.0",
		OutputFields: []FieldMapping{
			{SourceKey: "0", OutputName: "Commodity_Channel_Index"},
			{SourceKey: "1", OutputName: "Commodity_Channel_Index_Moving_Average"},
		},
	},
	{
		ShortName:     "BB",
		SourceID:      "STD;Bollinger_Bands",
		SourceVersion: "32.0",
		OutputFields: []FieldMapping{
			{SourceKey: "0", OutputName: "Bollinger_Bands_middle_line"},
			{SourceKey: "1", OutputName: "Bollinger_Bands_top_line"},
			{SourceKey: "2", OutputName: "Bollinger_Bands_bottom_line"},
		},
	},
}

var Timeframes = []string{"1m", "5m", "15m", "30m", "1h", "2h", "4h", "1d", "1w", "1M"}

var Areas = []string{"world", "americas", "europe", "asia", "oceania", "africa"}

// Markets are the screener regions the trading-analysis scan accepts.
var Markets = []string{"america", "india", "crypto", "forex", "bond", "futures"}

var NewsProviders = []string{
	"the_block", "cointelegraph", "beincrypto", "newsbtc", "dow-jones",
	"cryptonews", "coindesk", "cryptoglobe", "tradingview", "zycrypto",
	"todayq", "cryptopotato", "u_today", "cryptobriefing", "coindar",
	"bitcoin_com", "all",
}

var Exchanges = []string{
	"BINANCE", "BINANCEUS", "BITCOKE", "BITFINEX", "BITSTAMP", "BITTREX", "BYBIT",
	"CAPITALCOM", "CEXIO", "CURRENCYCOM", "EASYMARKETS", "EIGHTCAP", "EXMO",
	"FOREXCOM", "FTX", "FXCM", "GEMINI", "GLOBALPRIME", "INDEX", "KRAKEN", "OANDA",
	"OKCOIN", "PEPPERSTONE", "SAXO", "SKILLING", "TIMEX", "TRADESTATION", "VANTAGE",
	"KUCOIN", "ADX", "ALOR", "AMEX", "ASX", "ATHEX", "BAHRAIN", "BASESWAP", "BCBA",
	"BCS", "BELEX", "BER", "BET", "BINGX", "BIST", "BISWAP", "BITAZZA", "BITBNS",
	"BITFLYER", "BITGET", "BITHUMB", "BITKUB", "BITMART", "BITMEX", "BITPANDAPRO",
	"BITRUE", "BITVAVO", "BIVA", "BLACKBULL", "BLOFIN", "BME", "BMFBOVESPA", "BMV",
	"BSE", "BSSE", "BTSE", "BVB", "BVC", "BVCV", "BVL", "BVMT", "BX", "CAMELOT",
	"CAMELOT3ARBITRUM", "CBOE", "CBOT", "CBOT_MINI", "CFFEX", "CITYINDEX", "CME",
	"CME_MINI", "COINBASE", "COINEX", "COMEX", "COMEX_MINI", "CRYPTO", "CRYPTOCOM",
	"CRYPTOCAP", "CSE", "CSECY", "CSELK", "CSEMA", "CURVE", "DELTA", "DERIBIT",
	"DFM", "DJ", "DSEBD", "DUS", "DYDX", "ECONOMICS", "EGX", "EUREX", "EURONEXT",
	"EUROTLX", "FINRA", "FSE", "FTSEMYX", "FWB", "FX", "FX_IDC", "FXOPEN", "GATEIO",
	"GETTEX", "GPW", "HAM", "HAN", "HITBTC", "HKEX", "HNX", "HONEYSWAP",
	"HONEYSWAPPOLYGON", "HOSE", "HSI", "HTX", "HUOBI", "ICEAD", "ICEEUR", "ICESG",
	"ICEUS", "IDX", "JSE", "KATANA", "KRX", "KSE", "LS", "LSE", "LSIN", "LSX",
	"LUXSE", "MATBAROFEX", "MCX", "MERCADO", "MEXC", "MGEX", "MIL", "MMFINANCE",
	"MOEX", "MUN", "MYX", "NAG", "NASDAQ", "NASDAQDUBAI", "NCDEX", "NEO",
	"NEWCONNECT", "NGM", "NSE", "NSEKE", "NSENG", "NYMEX", "NYMEX_MINI", "NYSE",
	"NZX", "OKX", "OMXCOP", "OMXHEX", "OMXICE", "OMXRSE", "OMXSTO",
	"OMXTSE", "OMXVSE", "ORCA", "OSE", "OSL", "OTC", "PANCAKESWAP",
	"PANCAKESWAP3BSC", "PANCAKESWAP3ETH", "PANGOLIN", "PHEMEX", "PHILLIPNOVA",
	"PIONEX", "POLONIEX", "PSE", "PSECZ", "PSX", "PULSEX", "QSE", "QUICKSWAP",
	"QUICKSWAP3POLYGONZKEVM", "QUICKSWAP3POLYGON", "RAYDIUM", "RUS", "SAPSE",
	"SET", "SGX", "SHFE", "SIX", "SP", "SPARKS", "SPOOKYSWAP", "SSE", "SUSHISWAP",
	"SUSHISWAPPOLYGON", "SWB", "SZSE", "TADAWUL", "TAIFEX", "TASE", "TFEX", "TFX",
	"THRUSTER3", "TOCOM", "TOKENIZE", "TPEX", "TRADEGATE", "TRADERJOE", "TSE",
	"TSX", "TSXV", "TVC", "TWSE", "UNISWAP", "UNISWAP3ARBITRUM", "UNISWAP3AVALANCHE",
	"UNISWAP3BASE", "UNISWAP3BSC", "UNISWAP3ETH", "UNISWAP3OPTIMISM",
	"UNISWAP3POLYGON", "UPBIT", "UPCOM", "VELODROME", "VERSEETH", "VIE",
	"VVSFINANCE", "WAGYUSWAP", "WHITEBIT", "WOONETWORK", "XETR", "XEXCHANGE", "ZOOMEX",
}

var (
	indicatorByName = make(map[string]IndicatorSpec, len(indicatorSpecs))
	exchangeSet     = make(map[string]struct{}, len(Exchanges))
	timeframeSet    = make(map[string]struct{}, len(Timeframes))
	providerSet     = make(map[string]struct{}, len(NewsProviders))
	areaSet         = make(map[string]struct{}, len(Areas))
	marketSet       = make(map[string]struct{}, len(Markets))
)

func init() {
	for _, spec := range indicatorSpecs {
		indicatorByName[spec.ShortName] = spec
	}
	for _, e := range Exchanges {
		exchangeSet[e] = struct{}{}
	}
	for _, tf := range Timeframes {
		timeframeSet[tf] = struct{}{}
	}
	for _, p := range NewsProviders {
		providerSet[p] = struct{}{}
	}
	for _, a := range Areas {
		areaSet[a] = struct{}{}
	}
	for _, m := range Markets {
		marketSet[m] = struct{}{}
	}
}

// Indicator resolves a human indicator name (case-insensitive) to its spec.
func Indicator(name string) (IndicatorSpec, bool) {
	spec, ok := indicatorByName[strings.ToUpper(strings.TrimSpace(name))]
	return spec, ok
}

// IndicatorNames returns the recognized short names in catalog order.
func IndicatorNames() []string {
	names := make([]string, 0, len(indicatorSpecs))
	for _, spec := range indicatorSpecs {
		names = append(names, spec.ShortName)
	}
	return names
}

func ValidExchange(exchange string) bool {
	_, ok := exchangeSet[strings.ToUpper(strings.TrimSpace(exchange))]
	return ok
}

func ValidTimeframe(timeframe string) bool {
	_, ok := timeframeSet[timeframe]
	return ok
}

// NormalizeNewsProvider lowercases the provider and maps "all" to the
// empty string (meaning: no provider filter).
func NormalizeNewsProvider(provider string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(provider))
	if _, ok := providerSet[p]; !ok {
		return "", false
	}
	if p == "all" {
		return "", true
	}
	return p, true
}

func ValidArea(area string) bool {
	_, ok := areaSet[strings.ToLower(strings.TrimSpace(area))]
	return ok
}

func ValidMarket(market string) bool {
	_, ok := marketSet[strings.ToLower(strings.TrimSpace(market))]
	return ok
}

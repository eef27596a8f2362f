package domain

const (
	OptionCall = "call"
	OptionPut  = "put"
)

// Candle is one OHLCV bar as returned by the market data source.
type Candle struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
	Index     int     `json:"index"`
}

// SeriesPoint is one indicator reading. Fields are keyed by the
// source system's positional keys ("0", "1", ...); the catalog maps
// them to stable output names at merge time.
type SeriesPoint struct {
	Timestamp int64              `json:"timestamp"`
	Fields    map[string]float64 `json:"fields"`
}

// SeriesResult is the raw payload of one candles+indicators fetch.
// Indicators is keyed by source indicator id (e.g. "STD;RSI").
type SeriesResult struct {
	Candles    []Candle
	Indicators map[string][]SeriesPoint
}

// MergedRow is one candle with its matched indicator fields attached
// by output name. Indicator fields appear only when a series point
// with the exact same timestamp was found.
type MergedRow struct {
	Timestamp   int64              `json:"timestamp"`
	Open        float64            `json:"open"`
	High        float64            `json:"high"`
	Low         float64            `json:"low"`
	Close       float64            `json:"close"`
	Volume      float64            `json:"volume"`
	Index       int                `json:"index"`
	DatetimeIST string             `json:"datetime_ist"`
	Indicators  map[string]float64 `json:"indicators,omitempty"`
}

type HistoricalRequest struct {
	Exchange    string   `json:"exchange"`
	Symbol      string   `json:"symbol"`
	Timeframe   string   `json:"timeframe"`
	CandleCount int      `json:"candle_count"`
	Indicators  []string `json:"indicators"`
}

type HistoricalMetadata struct {
	Exchange    string   `json:"exchange"`
	Symbol      string   `json:"symbol"`
	Timeframe   string   `json:"timeframe"`
	CandleCount int      `json:"candles_count"`
	BatchCount  int      `json:"batch_count"`
	Indicators  []string `json:"indicators"`
}

type HistoricalResult struct {
	Success  bool               `json:"success"`
	Rows     []MergedRow        `json:"data"`
	Errors   []string           `json:"errors,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
	Metadata HistoricalMetadata `json:"metadata"`
}

// RawOptionRow is one option contract as returned by the market data
// source, before grouping. Expiry is a structured YYYYMMDD integer
// carried on every row so downstream code never parses it back out of
// the symbol string.
type RawOptionRow struct {
	Symbol    string  `json:"symbol"`
	Type      string  `json:"type"`
	Expiry    int     `json:"expiry"`
	Strike    float64 `json:"strike"`
	Bid       float64 `json:"bid"`
	Ask       float64 `json:"ask"`
	TheoPrice float64 `json:"theo_price"`
	Delta     float64 `json:"delta"`
	Gamma     float64 `json:"gamma"`
	Theta     float64 `json:"theta"`
	Vega      float64 `json:"vega"`
	Rho       float64 `json:"rho"`
	IV        float64 `json:"iv"`
	BidIV     float64 `json:"bid_iv"`
	AskIV     float64 `json:"ask_iv"`
}

// OptionLeg is one side of a strike after grouping. IntrinsicValue
// and TimeValue are derived from the spot price at group-build time.
type OptionLeg struct {
	Symbol         string  `json:"symbol"`
	Expiry         int     `json:"expiry"`
	Bid            float64 `json:"bid"`
	Ask            float64 `json:"ask"`
	TheoPrice      float64 `json:"theo_price"`
	Delta          float64 `json:"delta"`
	Gamma          float64 `json:"gamma"`
	Theta          float64 `json:"theta"`
	Vega           float64 `json:"vega"`
	Rho            float64 `json:"rho"`
	IV             float64 `json:"iv"`
	BidIV          float64 `json:"bid_iv"`
	AskIV          float64 `json:"ask_iv"`
	IntrinsicValue float64 `json:"intrinsic_value"`
	TimeValue      float64 `json:"time_value"`
}

// StrikeGroup pairs the call and put legs at one (expiry, strike).
// Either side may be nil when the source lists only one leg.
type StrikeGroup struct {
	Strike           float64    `json:"strike"`
	Expiry           int        `json:"expiry"`
	Call             *OptionLeg `json:"call,omitempty"`
	Put              *OptionLeg `json:"put,omitempty"`
	DistanceFromSpot float64    `json:"distance_from_spot"`
}

// ChainRow is one flattened per-leg row of the selected ITM/OTM window.
type ChainRow struct {
	OptionLeg
	Option           string  `json:"option"`
	StrikePrice      float64 `json:"strike_price"`
	DistanceFromSpot float64 `json:"distance_from_spot"`
}

type ChainAnalytics struct {
	TotalCallDelta float64 `json:"total_call_delta"`
	TotalPutDelta  float64 `json:"total_put_delta"`
	NetDelta       float64 `json:"net_delta"`
	ATMStrike      float64 `json:"atm_strike"`
	TotalStrikes   int     `json:"total_strikes"`
}

type ChainRequest struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
	Expiry   string `json:"expiry"`
	ITMCount int    `json:"itm_count"`
	OTMCount int    `json:"otm_count"`
}

// ChainResult is the analyzer output. Missing spot, empty chain, and
// unknown-expiry conditions are reported with Success=false and a
// message rather than an error, so batch callers can self-correct
// using AvailableExpiries.
type ChainResult struct {
	Success           bool            `json:"success"`
	Message           string          `json:"message,omitempty"`
	SpotPrice         float64         `json:"spot_price,omitempty"`
	Expiry            int             `json:"expiry,omitempty"`
	Rows              []ChainRow      `json:"data,omitempty"`
	Analytics         *ChainAnalytics `json:"analytics,omitempty"`
	AvailableExpiries []int           `json:"available_expiries,omitempty"`
	Warnings          []string        `json:"warnings,omitempty"`
}

type SpotQuote struct {
	Price      float64 `json:"price"`
	PriceScale int     `json:"price_scale"`
}

type NewsHeadline struct {
	Title     string `json:"title"`
	Provider  string `json:"provider"`
	Published int64  `json:"published"`
	Source    string `json:"source"`
	StoryPath string `json:"storyPath"`
}

type NewsArticle struct {
	Success   bool   `json:"success"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	StoryPath string `json:"story_path"`
	Error     string `json:"error,omitempty"`
}

type Idea struct {
	Title     string `json:"title"`
	Paragraph string `json:"paragraph"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Likes     int    `json:"likes"`
	Published int64  `json:"published"`
}

type MindPost struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Likes     int    `json:"likes"`
	Published int64  `json:"published"`
}

type IdeasResult struct {
	Success bool   `json:"success"`
	Ideas   []Idea `json:"ideas"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

type SnapshotResult struct {
	Success bool               `json:"success"`
	Data    map[string]float64 `json:"data,omitempty"`
	Message string             `json:"message,omitempty"`
}

type AnalysisBasicInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Exchange    string `json:"exchange"`
	Market      string `json:"market"`
}

type AnalysisPriceVolume struct {
	Close  float64 `json:"close"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume float64 `json:"volume"`
}

type AnalysisPerformance struct {
	Change     float64 `json:"change"`
	ChangeAbs  float64 `json:"change_abs"`
	Week       float64 `json:"week_performance"`
	Month1     float64 `json:"month_1_performance"`
	Month3     float64 `json:"month_3_performance"`
	Month6     float64 `json:"month_6_performance"`
	YearToDate float64 `json:"ytd_performance"`
	Year       float64 `json:"year_performance"`
}

type AnalysisTechnicals struct {
	RSI                float64 `json:"rsi"`
	RSIPrevious        float64 `json:"rsi_previous"`
	StochK             float64 `json:"stoch_k"`
	StochD             float64 `json:"stoch_d"`
	CCI                float64 `json:"cci"`
	ADX                float64 `json:"adx"`
	MACD               float64 `json:"macd"`
	MACDSignal         float64 `json:"macd_signal"`
	Momentum           float64 `json:"momentum"`
	AwesomeOscillator  float64 `json:"awesome_oscillator"`
	UltimateOscillator float64 `json:"ultimate_oscillator"`
	WilliamsR          float64 `json:"williams_r"`
	BBPower            float64 `json:"bb_power"`
	IchimokuBase       float64 `json:"ichimoku_base"`
	VWMA               float64 `json:"vwma"`
	HullMA             float64 `json:"hull_ma"`
}

type AnalysisMovingAverages struct {
	SMA10  float64 `json:"sma_10"`
	SMA20  float64 `json:"sma_20"`
	SMA50  float64 `json:"sma_50"`
	SMA100 float64 `json:"sma_100"`
	SMA200 float64 `json:"sma_200"`
	EMA10  float64 `json:"ema_10"`
	EMA20  float64 `json:"ema_20"`
	EMA50  float64 `json:"ema_50"`
	EMA100 float64 `json:"ema_100"`
	EMA200 float64 `json:"ema_200"`
}

// Recommendation scores are the screener's consensus values in
// [-1, 1]: negative sells, positive buys.
type AnalysisRecommendations struct {
	Overall        float64 `json:"overall_recommendation"`
	MovingAverages float64 `json:"ma_recommendation"`
	Other          float64 `json:"other_recommendation"`
}

// TradingAnalysis groups one screener row into readable sections.
type TradingAnalysis struct {
	BasicInfo           AnalysisBasicInfo       `json:"basic_info"`
	PriceVolume         AnalysisPriceVolume     `json:"price_volume"`
	Performance         AnalysisPerformance     `json:"performance"`
	TechnicalIndicators AnalysisTechnicals      `json:"technical_indicators"`
	MovingAverages      AnalysisMovingAverages  `json:"moving_averages"`
	Recommendations     AnalysisRecommendations `json:"recommendations"`
}

type AnalysisMetadata struct {
	Symbol      string `json:"symbol"`
	Exchange    string `json:"exchange"`
	Market      string `json:"market"`
	FieldsCount int    `json:"fields_count"`
}

type AnalysisResult struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Data     *TradingAnalysis `json:"data,omitempty"`
	Metadata AnalysisMetadata `json:"metadata"`
}

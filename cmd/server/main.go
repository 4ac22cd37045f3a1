package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
	"gopkg.in/yaml.v3"

	translationaccuracy "github.com/baditaflorin/go_translation_accuracy"
	"github.com/baditaflorin/go_translation_accuracy/internal/core/domain"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30
	DefaultWriteTimeout   = 30
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

// ServerConfig is the evaluation service configuration, loadable from a
// YAML file and overridable with command-line flags.
type ServerConfig struct {
	Port                int    `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	MaxRequestSize      int    `yaml:"max_request_size"`
	Concurrency         int    `yaml:"concurrency"`
	Normalize           bool   `yaml:"normalize"`
	Engine              string `yaml:"engine"` // "builtin" or "library"
	Parallelism         int    `yaml:"parallelism"`
	WarmUp              bool   `yaml:"warm_up"`
	LogFile             string `yaml:"log_file"`
}

// DefaultServerConfig returns the built-in defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:                DefaultPort,
		ReadTimeoutSeconds:  DefaultReadTimeout,
		WriteTimeoutSeconds: DefaultWriteTimeout,
		MaxRequestSize:      DefaultMaxRequestSize,
		Concurrency:         DefaultConcurrency,
		Normalize:           true,
		Engine:              "builtin",
		Parallelism:         runtime.NumCPU(),
		WarmUp:              true,
	}
}

var (
	comparator *translationaccuracy.Comparator
	logger     l.Logger
)

// CompareRequest represents a single comparison request.
type CompareRequest struct {
	Reference  string                 `json:"reference"`
	Hypothesis string                 `json:"hypothesis"`
	SourceInfo map[string]interface{} `json:"source_info,omitempty"`
}

// BatchRequest represents a batch comparison request.
type BatchRequest struct {
	Pairs []CompareRequest `json:"pairs"`
}

// ErrorDetailResponse is the wire form of one classified discrepancy.
type ErrorDetailResponse struct {
	Position   int    `json:"position"`
	Reference  string `json:"reference"`
	Hypothesis string `json:"hypothesis"`
	ErrorType  string `json:"error_type"`
}

// CompareResponse is the wire form of one comparison result.
type CompareResponse struct {
	Reference  string                 `json:"reference"`
	Hypothesis string                 `json:"hypothesis"`
	Accuracy   float64                `json:"accuracy"`
	WER        float64                `json:"wer"`
	CER        float64                `json:"cer"`
	BLEU       float64                `json:"bleu"`
	Errors     []ErrorDetailResponse  `json:"errors"`
	SourceInfo map[string]interface{} `json:"source_info,omitempty"`
}

// SummaryResponse is the wire form of a batch summary.
type SummaryResponse struct {
	TotalItems     int            `json:"total_items"`
	AvgAccuracy    float64        `json:"avg_accuracy"`
	AvgWER         float64        `json:"avg_wer"`
	AvgCER         float64        `json:"avg_cer"`
	AvgBLEU        float64        `json:"avg_bleu"`
	TotalErrors    int            `json:"total_errors"`
	ErrorBreakdown map[string]int `json:"error_breakdown"`
}

// BatchResponse carries per-pair results plus their aggregate summary.
type BatchResponse struct {
	Results []CompareResponse `json:"results"`
	Summary SummaryResponse   `json:"summary"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file path")
	port := flag.Int("port", DefaultPort, "HTTP server port")
	engine := flag.String("engine", "builtin", "Edit-distance engine: builtin or library")
	normalize := flag.Bool("normalize", true, "Canonicalize whitespace before comparison")
	parallelism := flag.Int("parallelism", runtime.NumCPU(), "Maximum pairs compared concurrently per batch")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	config := DefaultServerConfig()
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &config); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config file: %v\n", err)
			os.Exit(1)
		}
	}

	// Explicitly set flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			config.Port = *port
		case "engine":
			config.Engine = *engine
		case "normalize":
			config.Normalize = *normalize
		case "parallelism":
			config.Parallelism = *parallelism
		case "warm-up":
			config.WarmUp = *warmUp
		case "log-file":
			config.LogFile = *logFile
		}
	})

	var err error
	logger, err = createLogger(config.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting translation accuracy HTTP server",
		"port", config.Port,
		"engine", config.Engine,
		"normalize", config.Normalize,
		"parallelism", config.Parallelism,
	)

	initComparator(config)

	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           time.Duration(config.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:          time.Duration(config.WriteTimeoutSeconds) * time.Second,
		MaxRequestBodySize:    config.MaxRequestSize,
		Concurrency:           config.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", fmt.Sprintf(":%d", config.Port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", config.Port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// loadConfigFile overlays YAML settings onto config.
func loadConfigFile(path string, config *ServerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// initComparator builds the comparator from the server configuration.
func initComparator(config ServerConfig) {
	opts := []translationaccuracy.Option{
		translationaccuracy.WithNormalization(config.Normalize),
		translationaccuracy.WithParallelism(config.Parallelism),
		translationaccuracy.WithLogger(logger),
	}
	if config.Normalize {
		opts = append(opts, translationaccuracy.WithOptimizedNormalizer())
	}
	if config.Engine == "library" {
		opts = append(opts, translationaccuracy.WithLibraryDistance())
	}
	if config.WarmUp {
		opts = append(opts, translationaccuracy.WithWarmUp(true))
	}

	var err error
	comparator, err = translationaccuracy.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize comparator", "error", err)
		os.Exit(1)
	}

	logger.Info("Comparator initialized successfully",
		"engine", config.Engine,
		"warm_up", config.WarmUp,
		"cpus", runtime.NumCPU(),
	)
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "TranslationAccuracyServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/compare":
		handleCompare(ctx)
	case "/compare/batch":
		handleCompareBatch(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handleCompare handles single pair comparison requests
func handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	// Empty texts are valid input with defined metric outcomes, so no
	// emptiness validation here.
	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := comparator.CompareWithInfo(c, req.Reference, req.Hypothesis, req.SourceInfo)

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, toCompareResponse(result))
}

// handleCompareBatch handles batch comparison requests
func handleCompareBatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	pairs := make([]domain.TextPair, len(req.Pairs))
	for i, p := range req.Pairs {
		pairs[i] = domain.TextPair{
			Reference:  p.Reference,
			Hypothesis: p.Hypothesis,
			SourceInfo: p.SourceInfo,
		}
	}

	c, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	results := comparator.CompareBatch(c, pairs)
	summary := comparator.Summarize(results)

	response := BatchResponse{
		Results: make([]CompareResponse, len(results)),
		Summary: toSummaryResponse(summary),
	}
	for i, r := range results {
		response.Results[i] = toCompareResponse(r)
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// toCompareResponse maps a comparison result to its wire form.
func toCompareResponse(result domain.ComparisonResult) CompareResponse {
	response := CompareResponse{
		Reference:  result.Reference,
		Hypothesis: result.Hypothesis,
		Accuracy:   result.Accuracy,
		WER:        result.WER,
		CER:        result.CER,
		BLEU:       result.BLEU,
		Errors:     make([]ErrorDetailResponse, len(result.Errors)),
		SourceInfo: result.SourceInfo,
	}
	for i, e := range result.Errors {
		response.Errors[i] = ErrorDetailResponse{
			Position:   e.Position,
			Reference:  e.ReferenceText,
			Hypothesis: e.HypothesisText,
			ErrorType:  string(e.Type),
		}
	}
	return response
}

// toSummaryResponse maps a summary to its wire form.
func toSummaryResponse(summary domain.Summary) SummaryResponse {
	breakdown := make(map[string]int, len(summary.ErrorBreakdown))
	for errType, count := range summary.ErrorBreakdown {
		breakdown[string(errType)] = count
	}
	return SummaryResponse{
		TotalItems:     summary.TotalItems,
		AvgAccuracy:    summary.AvgAccuracy,
		AvgWER:         summary.AvgWER,
		AvgCER:         summary.AvgCER,
		AvgBLEU:        summary.AvgBLEU,
		TotalErrors:    summary.TotalErrors,
		ErrorBreakdown: breakdown,
	}
}

// Helper functions

// writeJSONResponse writes a JSON response to the context
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	errResponse := ErrorResponse{
		Error: message,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

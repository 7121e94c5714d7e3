// Package integration provides helpers and integration tests for the flight search system.
// Integration tests run the real engine, use cases, stores and HTTP layer together;
// only the clock is fixed.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-search/synthetic-flight-search/internal/adapter/http"
	"github.com/flight-search/synthetic-flight-search/internal/adapter/http/middleware"
	"github.com/flight-search/synthetic-flight-search/internal/adapter/store"
	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/engine"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/retry"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
	"github.com/flight-search/synthetic-flight-search/internal/reference"
	"github.com/flight-search/synthetic-flight-search/internal/usecase"
)

// SearchDay is the fixed "now" of every test server. Departure dates in the
// tests are later, so the departed-offer filter never applies.
var SearchDay = time.Date(2025, 8, 7, 9, 30, 0, 0, time.UTC)

// Options tunes a TestServer.
type Options struct {
	// Store defaults to an in-memory store seeded with the default configuration
	Store domain.PricingConfigStore

	Engine  engine.Options
	UseCase usecase.Config

	// CacheTTL of zero disables the pricing configuration cache
	CacheTTL time.Duration
}

// DefaultOptions returns the options of a production-like server.
func DefaultOptions() Options {
	return Options{
		Engine:   engine.DefaultOptions(),
		UseCase:  usecase.DefaultConfig(),
		CacheTTL: usecase.DefaultCacheTTL,
	}
}

// TestServer wraps an Echo instance and the components behind it.
type TestServer struct {
	Echo    *echo.Echo
	Clock   *timeutil.MockClock
	Store   domain.PricingConfigStore
	Pricing *usecase.PricingConfigService
	UseCase usecase.FlightSearchUseCase
}

// NewTestServer creates a test server with default options.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	return NewTestServerWithOptions(t, DefaultOptions())
}

// NewTestServerWithOptions creates a test server from the embedded reference data.
func NewTestServerWithOptions(t *testing.T, opts Options) *TestServer {
	t.Helper()

	catalog, err := reference.LoadEmbedded()
	if err != nil {
		t.Fatalf("load reference data: %v", err)
	}

	pricingStore := opts.Store
	if pricingStore == nil {
		pricingStore = store.NewMemoryStore(domain.DefaultPricingConfiguration())
	}

	clock := timeutil.NewMockClock(SearchDay)
	log := logger.Nop()

	pricingOpts := usecase.DefaultPricingConfigOptions()
	pricingOpts.CacheTTL = opts.CacheTTL
	pricingOpts.Retry = retry.StoreConfig.WithMaxAttempts(1)
	pricing := usecase.NewPricingConfigService(pricingStore, clock, log, &pricingOpts)

	ucConfig := opts.UseCase
	uc := usecase.NewFlightSearchUseCase(engine.New(catalog, opts.Engine), pricing, clock, log, &ucConfig)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log.Logger)
	httpAdapter.RegisterRoutes(e, httpAdapter.NewFlightHandler(uc), httpAdapter.NewPricingConfigHandler(pricing))

	return &TestServer{
		Echo:    e,
		Clock:   clock,
		Store:   pricingStore,
		Pricing: pricing,
		UseCase: uc,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// GetPricing reads the pricing configuration.
func (ts *TestServer) GetPricing() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/pricing-config",
	})
}

// PutPricing replaces the pricing configuration.
func (ts *TestServer) PutPricing(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/pricing-config",
		Body:   body,
	})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is the JSON body of a search.
type SearchRequestBody struct {
	Origin        string                        `json:"origin,omitempty"`
	Destination   string                        `json:"destination,omitempty"`
	CabinClass    string                        `json:"cabinClass,omitempty"`
	TripType      string                        `json:"tripType,omitempty"`
	DepartureDate string                        `json:"departureDate,omitempty"`
	ReturnDate    string                        `json:"returnDate,omitempty"`
	Legs          []httpAdapter.LegDTO          `json:"legs,omitempty"`
	Selected      *httpAdapter.SelectedOfferDTO `json:"selected,omitempty"`
}

// DepartureDate is later than SearchDay.
const DepartureDate = "2025-09-15"

// DefaultSearchRequest returns a valid transatlantic one-way search.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "JFK",
		Destination:   "LHR",
		CabinClass:    "Economy",
		TripType:      "One way",
		DepartureDate: DepartureDate,
	}
}

// MultiCitySearchRequest returns a valid three-leg search.
func MultiCitySearchRequest() SearchRequestBody {
	return SearchRequestBody{
		TripType: "Multi-city",
		Legs: []httpAdapter.LegDTO{
			{From: "JFK", To: "LHR", Date: DepartureDate},
			{From: "LHR", To: "CDG", Date: "2025-09-18"},
			{From: "CDG", To: "FCO", Date: "2025-09-21"},
		},
	}
}

// DefaultQuery returns the domain query of DefaultSearchRequest.
func DefaultQuery() domain.Query {
	return domain.Query{
		Origin:        "JFK",
		Destination:   "LHR",
		CabinClass:    domain.CabinEconomy,
		TripType:      domain.TripOneWay,
		DepartureDate: DepartureDate,
	}
}

// Package integration provides helpers and integration tests for the travel
// planning system. Integration tests verify that components work together
// correctly, including HTTP handlers, the planning engines, and the seeded
// sample inventories.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/travel-search-and-planning-system/internal/adapter/cache"
	httpAdapter "github.com/trip-planner/travel-search-and-planning-system/internal/adapter/http"
	"github.com/trip-planner/travel-search-and-planning-system/internal/adapter/inventory"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/timeutil"
	"github.com/trip-planner/travel-search-and-planning-system/internal/usecase"
)

// Today is the fixed "current" date all integration tests run against.
// The flight inventory generates departures for the 30 days after it.
const Today = "2025-06-01T08:00:00Z"

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.PlanningHandler
}

// NewTestServer creates a test server over the real seeded inventories, with
// caching disabled and a clock pinned to Today.
func NewTestServer() *TestServer {
	clock := timeutil.NewMockClockFromString(Today)

	uc := usecase.NewPlanningUseCase(
		inventory.NewFlightStore(clock),
		inventory.NewHotelStore(),
		usecase.NewItineraryStore(),
		cache.NewNoOpCache(),
		clock,
		nil,
		usecase.Config{MaxConcurrent: 8},
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewPlanningHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
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
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get makes a GET request against the given path.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// PostJSON makes a POST request with a JSON body.
func (ts *TestServer) PostJSON(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// PutJSON makes a PUT request with a JSON body.
func (ts *TestServer) PutJSON(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete makes a DELETE request against the given path.
func (ts *TestServer) Delete(path string) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: path})
}

// Decode unmarshals the response body into out.
func (r *Response) Decode(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

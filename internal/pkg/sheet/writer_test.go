package sheet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type recordedCall struct {
	Method string
	Path   string
	Input  string
	Body   sheets.ValueRange
}

func newSheetsServer(t *testing.T, status int) (*httptest.Server, *[]recordedCall) {
	t.Helper()

	var calls []recordedCall

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := recordedCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Input:  r.URL.Query().Get("valueInputOption"),
		}
		if r.Method == http.MethodPut {
			_ = json.NewDecoder(r.Body).Decode(&call.Body)
		}
		calls = append(calls, call)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= http.StatusBadRequest {
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"updatedRows":3}`))
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestWriter_Present(t *testing.T) {
	srv, calls := newSheetsServer(t, http.StatusOK)

	writer, err := NewWriter(context.Background(), "sheet-123", "Flights",
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	result := dto.NewTripResult()
	result.Append(dto.LegOutbound, dto.FlightResult{Date: "2025-09-11", Origin: "Budapest", Destination: "Corfu", Price: 89.99})
	result.Append(dto.LegInbound, dto.FlightResult{Date: "2025-09-18", Origin: "Corfu", Destination: "Budapest", Price: 120})

	require.NoError(t, writer.Present(context.Background(), result))

	require.Len(t, *calls, 2)

	clearCall := (*calls)[0]
	assert.Equal(t, http.MethodPost, clearCall.Method)
	assert.Equal(t, "/v4/spreadsheets/sheet-123/values/'Flights':clear", clearCall.Path)

	updateCall := (*calls)[1]
	assert.Equal(t, http.MethodPut, updateCall.Method)
	assert.Equal(t, "/v4/spreadsheets/sheet-123/values/'Flights'!A1", updateCall.Path)
	assert.Equal(t, "USER_ENTERED", updateCall.Input)
	require.Len(t, updateCall.Body.Values, 4)
	assert.Equal(t, "Origin", updateCall.Body.Values[0][0])
	assert.Equal(t, "Budapest", updateCall.Body.Values[1][0])
	assert.Empty(t, updateCall.Body.Values[2])
	assert.Equal(t, "Corfu", updateCall.Body.Values[3][0])
}

func TestWriter_Present_ClearFails(t *testing.T) {
	srv, calls := newSheetsServer(t, http.StatusForbidden)

	writer, err := NewWriter(context.Background(), "sheet-123", "Flights",
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	err = writer.Present(context.Background(), dto.NewTripResult())

	assert.ErrorContains(t, err, "clear sheet Flights")
	assert.Len(t, *calls, 1)
}

func TestQuoteSheetName(t *testing.T) {
	assert.Equal(t, "'Flights'", quoteSheetName("Flights"))
	assert.Equal(t, "'Summer ''25'", quoteSheetName("Summer '25"))
}

package admin

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commutedto "github.com/lumenhq/lumen/internal/application/commute/dto"
	"github.com/lumenhq/lumen/internal/interfaces/http/handlers/testutil"
	"github.com/lumenhq/lumen/internal/shared/errors"
)

func TestCommuteHandler_CreateRoute(t *testing.T) {
	svc := &mockCommuteService{route: &commutedto.RouteDTO{ID: "route_abc123", Name: "Office"}}
	handler := NewCommuteHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/commute", map[string]any{
		"name":           "Office",
		"originLat":      40.7128,
		"originLon":      -74.006,
		"destinationLat": 40.758,
		"destinationLon": -73.9855,
		"arrivalTime":    "09:00",
		"activeDays":     []string{"mon", "tue"},
	})

	handler.CreateRoute(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestCommuteHandler_CreateRoute_ValidationError(t *testing.T) {
	svc := &mockCommuteService{err: errors.NewValidationError("arrivalTime must be HH:MM")}
	handler := NewCommuteHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/commute", map[string]any{"name": "Office", "arrivalTime": "24:00"})

	handler.CreateRoute(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "arrivalTime must be HH:MM", resp.Error)
}

func TestCommuteHandler_UpdateRoute_MalformedID(t *testing.T) {
	svc := &mockCommuteService{}
	handler := NewCommuteHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/commute/cal_abc123", map[string]any{"name": "x"})
	testutil.SetURLParam(c, "id", "cal_abc123")

	handler.UpdateRoute(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.calls)
	var resp testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Commute route not found", resp.Error)
}

func TestCommuteHandler_SearchPlaces(t *testing.T) {
	t.Run("passes query", func(t *testing.T) {
		svc := &mockCommuteService{places: &commutedto.SearchPlacesResponse{Results: []commutedto.PlaceDTO{
			{Name: "Grand Central Terminal", Latitude: 40.7527, Longitude: -73.9772, Type: "POI"},
		}}}
		handler := NewCommuteHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/geocode/search", nil)
		testutil.SetQueryParams(c, map[string]string{"q": "grand central"})

		handler.SearchPlaces(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "grand central", svc.lastQuery)
		var resp commutedto.SearchPlacesResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.Len(t, resp.Results, 1)
	})

	t.Run("short query", func(t *testing.T) {
		svc := &mockCommuteService{err: errors.NewValidationError("Query must be between 2 and 100 characters")}
		handler := NewCommuteHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/geocode/search?q=a", nil)

		handler.SearchPlaces(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "a", svc.lastQuery)
	})
}

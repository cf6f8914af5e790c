package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tubefeed/pkg/media"
	"github.com/umputun/tubefeed/pkg/repository"
)

// apiServer runs the server on top of in-memory sqlite and a temp media dir
func apiServer(t *testing.T) *httptest.Server {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, ConnMaxLifetime: time.Hour})
	require.NoError(t, err)
	store, err := media.NewStore(t.TempDir(), 1024*1024)
	require.NoError(t, err)

	srv := New(testConfig(), Stores{Items: repos.FeedItem, Formulas: repos.Formula, Templates: repos.Template,
		Images: store}, "test", false)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		assert.NoError(t, repos.Close())
	})
	return ts
}

func call(t *testing.T, method, url string, body any, resp any) int {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	if resp != nil && len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, resp), string(data))
	}
	return r.StatusCode
}

func TestAPI_DailyFlow(t *testing.T) {
	ts := apiServer(t)
	api := ts.URL + "/api/v1"

	var formula map[string]any
	code := call(t, "POST", api+"/food-formulas", map[string]any{"name": "Peptamen", "default_quantity_ml": 250,
		"default_calories": 300, "default_protein_g": 10, "default_description": "standard"}, &formula)
	require.Equal(t, http.StatusCreated, code)
	formulaID := formula["id"]

	code = call(t, "POST", api+"/schedule-templates", map[string]any{"timing": "12:00", "food_formula": formulaID,
		"quantity_ml": 200, "calories": 500}, nil)
	require.Equal(t, http.StatusCreated, code)
	code = call(t, "POST", api+"/schedule-templates", map[string]any{"timing": "08:00", "food_formula": formulaID,
		"quantity_ml": 250}, nil)
	require.Equal(t, http.StatusCreated, code)

	var templates []map[string]any
	require.Equal(t, http.StatusOK, call(t, "GET", api+"/schedule-templates", nil, &templates))
	require.Len(t, templates, 2)
	assert.Equal(t, "08:00:00", templates[0]["timing"])
	assert.Equal(t, "Peptamen", templates[0]["display_name"])

	// first access generates the day from template
	var items []map[string]any
	require.Equal(t, http.StatusOK, call(t, "GET", api+"/feed-items?date=2025-03-10", nil, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "08:00:00", items[0]["timing"])
	assert.InDelta(t, 300, items[0]["calories"], 0.001)
	assert.Equal(t, "standard", items[0]["description"])
	assert.InDelta(t, 500, items[1]["calories"], 0.001)
	assert.Equal(t, "pending", items[1]["status"])
	noon := items[1]["id"]

	// second access doesn't duplicate
	require.Equal(t, http.StatusOK, call(t, "GET", api+"/feed-items?date=2025-03-10", nil, &items))
	require.Len(t, items, 2)

	var item map[string]any
	markURL := func(id any, action string) string {
		return api + "/feed-items/" + jsonNum(id) + "/" + action
	}
	require.Equal(t, http.StatusOK, call(t, "POST", markURL(noon, "mark-administered"), nil, &item))
	assert.Equal(t, "administered", item["status"])
	firstTime := item["administered_at"]
	require.NotNil(t, firstTime)

	// repeated administration is accepted and keeps the time
	require.Equal(t, http.StatusOK, call(t, "POST", markURL(noon, "mark-administered"), nil, &item))
	assert.Equal(t, firstTime, item["administered_at"])

	var errResp map[string]string
	require.Equal(t, http.StatusBadRequest, call(t, "POST", markURL(noon, "mark-skipped"), nil, &errResp))
	assert.Contains(t, errResp["detail"], "already marked as administered")

	var summary map[string]any
	require.Equal(t, http.StatusOK, call(t, "GET", api+"/summary?date=2025-03-10", nil, &summary))
	calories := summary["calories"].(map[string]any)
	assert.InDelta(t, 800, calories["total"], 0.001)
	assert.InDelta(t, 500, calories["consumed"], 0.001)
	assert.InDelta(t, 63, summary["percentage"], 0.001)

	require.Equal(t, http.StatusOK, call(t, "POST", markURL(noon, "mark-pending"), nil, &item))
	assert.Equal(t, "pending", item["status"])
	assert.Nil(t, item["administered_at"])

	require.Equal(t, http.StatusNotFound, call(t, "POST", markURL(9999, "mark-administered"), nil, nil))

	// deleting the formula removes template entries and their generated items
	require.Equal(t, http.StatusNoContent, call(t, "DELETE", api+"/food-formulas/"+jsonNum(formulaID), nil, nil))
	require.Equal(t, http.StatusOK, call(t, "GET", api+"/schedule-templates", nil, &templates))
	assert.Empty(t, templates)
	require.Equal(t, http.StatusOK, call(t, "GET", api+"/feed-items?date=2025-03-10", nil, &items))
	assert.Empty(t, items)
}

func TestAPI_AdHocItemWithImage(t *testing.T) {
	ts := apiServer(t)
	api := ts.URL + "/api/v1"

	req := multipartRequest(t, "POST", api+"/feed-items", map[string]string{
		"scheduled_date": "2025-03-11", "timing": "15:45", "food_name": "Yogurt", "quantity_ml": "120", "protein_g": "4.5",
	}, "snack.jpg", []byte("fake-jpeg"))
	req.RequestURI = ""
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var item map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.Equal(t, "03:45 PM", item["timing_display"])
	assert.Nil(t, item["source_template"])
	imageURL, ok := item["image"].(string)
	require.True(t, ok)

	img, err := http.Get(ts.URL + imageURL)
	require.NoError(t, err)
	defer img.Body.Close()
	data, err := io.ReadAll(img.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, img.StatusCode)
	assert.Equal(t, "fake-jpeg", string(data))

	// patch with json keeps image
	var patched map[string]any
	code := call(t, "PATCH", api+"/feed-items/"+jsonNum(item["id"]), map[string]any{"description": "after nap"}, &patched)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, imageURL, patched["image"])
	assert.Equal(t, "after nap", patched["description"])

	// null image removes the file
	code = call(t, "PATCH", api+"/feed-items/"+jsonNum(item["id"]), map[string]any{"image": nil}, &patched)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, patched["image"])
	gone, err := http.Get(ts.URL + imageURL)
	require.NoError(t, err)
	defer gone.Body.Close()
	assert.Equal(t, http.StatusNotFound, gone.StatusCode)

	require.Equal(t, http.StatusNoContent, call(t, "DELETE", api+"/feed-items/"+jsonNum(item["id"]), nil, nil))
	require.Equal(t, http.StatusNotFound, call(t, "GET", api+"/feed-items/"+jsonNum(item["id"]), nil, nil))
}

// jsonNum formats decoded JSON number as an id
func jsonNum(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatInt(int64(n), 10)
	case int:
		return strconv.Itoa(n)
	}
	return ""
}

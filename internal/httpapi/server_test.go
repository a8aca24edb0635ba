package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollomarton/naplo/internal/db"
	"github.com/hollomarton/naplo/internal/repository"
	"github.com/hollomarton/naplo/internal/service"
	"github.com/hollomarton/naplo/internal/testutil"
)

func newTestServer(t *testing.T) (http.Handler, repository.EntryRepo) {
	sqlDB := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(sqlDB)
	params := repository.NewSQLiteParamRepo(sqlDB)
	uow := db.NewSQLiteUnitOfWork(sqlDB)

	srv := NewServer(
		service.NewEntryService(entries, uow),
		service.NewReportService(entries),
		service.NewSearchService(entries),
		service.NewParamService(entries, params),
		log.New(io.Discard, "", 0),
	)
	return srv.Handler(), entries
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}

func TestCreateAndGetEntry(t *testing.T) {
	h, _ := newTestServer(t)

	rr := doRequest(t, h, http.MethodPost, "/api/entries", map[string]any{
		"datum":       "2025-03-10",
		"kezdet":      "23:30",
		"veg":         "00:15",
		"tevekenyseg": "olvasás",
		"kategoria":   "Pihenés",
		"fokusz":      []string{"P1_TUDAT"},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created entryPayload
	decodeBody(t, rr, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 45, created.Minutes, "midnight rollover")
	require.NotNil(t, created.Value)
	assert.Equal(t, 6, *created.Value, "omitted ertek gets the form default")

	rr = doRequest(t, h, http.MethodGet, "/api/entries/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got entryPayload
	decodeBody(t, rr, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "olvasás", got.Activity)
	assert.Equal(t, []string{"P1_TUDAT"}, got.FocusTags)
}

func TestCreateEntry_ExplicitNullValue(t *testing.T) {
	h, _ := newTestServer(t)

	rr := doRequest(t, h, http.MethodPost, "/api/entries", map[string]any{
		"datum":       "2025-03-10",
		"minutes":     30,
		"tevekenyseg": "séta",
		"ertek":       nil,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created entryPayload
	decodeBody(t, rr, &created)
	assert.Nil(t, created.Value)
	assert.Equal(t, 30, created.Minutes, "supplied duration kept without clock times")
}

func TestCreateEntry_Invalid(t *testing.T) {
	h, _ := newTestServer(t)

	cases := map[string]map[string]any{
		"missing activity": {"datum": "2025-03-10"},
		"missing date":     {"tevekenyseg": "x"},
		"bad date":         {"datum": "10/03/2025", "tevekenyseg": "x"},
		"bad clock":        {"datum": "2025-03-10", "kezdet": "kilenc", "tevekenyseg": "x"},
		"unknown focus":    {"datum": "2025-03-10", "tevekenyseg": "x", "fokusz": []string{"P9_X"}},
		"too many focus": {"datum": "2025-03-10", "tevekenyseg": "x",
			"fokusz": []string{"P1_TUDAT", "P2_ERTEK", "P3_EGESZSEG"}},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := doRequest(t, h, http.MethodPost, "/api/entries", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var e map[string]string
			decodeBody(t, rr, &e)
			assert.NotEmpty(t, e["error"])
		})
	}
}

func TestUpdateEntry(t *testing.T) {
	h, _ := newTestServer(t)

	rr := doRequest(t, h, http.MethodPost, "/api/entries", map[string]any{
		"datum": "2025-03-10", "kezdet": "09:00", "veg": "10:00", "tevekenyseg": "munka",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created entryPayload
	decodeBody(t, rr, &created)

	rr = doRequest(t, h, http.MethodPut, "/api/entries/"+created.ID, map[string]any{
		"datum": "2025-03-10", "kezdet": "09:00", "veg": "11:30", "tevekenyseg": "munka",
		"kategoria": "Munka",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated entryPayload
	decodeBody(t, rr, &updated)
	assert.Equal(t, 150, updated.Minutes)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	rr = doRequest(t, h, http.MethodPut, "/api/entries/no-such-id", map[string]any{
		"datum": "2025-03-10", "tevekenyseg": "munka",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetEntry_NotFound(t *testing.T) {
	h, _ := newTestServer(t)

	rr := doRequest(t, h, http.MethodGet, "/api/entries/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCategorySummary(t *testing.T) {
	h, entries := newTestServer(t)
	ctx := context.Background()

	seed := []struct {
		day      int
		activity string
		category string
		minutes  int
	}{
		{10, "kódolás", "Munka", 120},
		{11, "meeting", "Munka", 60},
		{10, "futás", "Sport", 45},
		{10, "éjszaka", "ALVÁS", 480},
		{20, "kívül esik", "Munka", 999},
	}
	for _, s := range seed {
		e := testutil.NewTestEntry(testutil.Day(2025, 3, s.day), s.activity,
			testutil.WithCategory(s.category),
			testutil.WithDuration(minutes(s.minutes)))
		require.NoError(t, entries.Create(ctx, e))
	}

	rr := doRequest(t, h, http.MethodGet, "/api/category-summary?start=2025-03-01&end=2025-03-15", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Items []struct {
			Category string `json:"kategoria"`
			Minutes  int    `json:"minutes"`
		} `json:"items"`
	}
	decodeBody(t, rr, &resp)

	require.Len(t, resp.Items, 2, "sleep excluded, out-of-range excluded")
	assert.Equal(t, "Munka", resp.Items[0].Category)
	assert.Equal(t, 180, resp.Items[0].Minutes)
	assert.Equal(t, "Sport", resp.Items[1].Category)
	assert.Equal(t, 45, resp.Items[1].Minutes)
}

func TestCategorySummary_RequiresRange(t *testing.T) {
	h, _ := newTestServer(t)

	for _, target := range []string{
		"/api/category-summary",
		"/api/category-summary?start=2025-03-01",
		"/api/category-summary?start=2025-03-01&end=soon",
	} {
		rr := doRequest(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestCategoryEntries(t *testing.T) {
	h, entries := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 10), "kódolás",
		testutil.WithCategory("Munka"), testutil.WithClock("09:00", "10:00"))))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 12), "meeting",
		testutil.WithCategory("Munka"), testutil.WithClock("14:00", "15:00"))))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 11), "futás",
		testutil.WithCategory("Sport"), testutil.WithClock("07:00", "08:00"))))

	rr := doRequest(t, h, http.MethodGet,
		"/api/category-entries?start=2025-03-01&end=2025-03-31&kategoria=Munka", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Items []struct {
			Date     string `json:"datum"`
			Activity string `json:"tevekenyseg"`
		} `json:"items"`
	}
	decodeBody(t, rr, &resp)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "2025-03-12", resp.Items[0].Date, "newest first")
	assert.Equal(t, "2025-03-10", resp.Items[1].Date)

	rr = doRequest(t, h, http.MethodGet, "/api/category-entries?start=2025-03-01&end=2025-03-31", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDayOverview(t *testing.T) {
	h, entries := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 10), "kódolás",
		testutil.WithCategory("Munka"), testutil.WithClock("09:00", "11:00"), testutil.WithValue(8))))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 10), "futás",
		testutil.WithCategory("Sport"), testutil.WithClock("07:00", "07:30"), testutil.WithValue(4))))

	rr := doRequest(t, h, http.MethodGet, "/api/day?date=2025-03-10", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Date         string  `json:"date"`
		TotalMinutes int     `json:"total_minutes"`
		TotalHuman   string  `json:"total_human"`
		AvgValue     float64 `json:"avg_ertek"`
		Entries      []struct {
			Activity string `json:"tevekenyseg"`
		} `json:"entries"`
	}
	decodeBody(t, rr, &resp)

	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, 150, resp.TotalMinutes)
	assert.Equal(t, "2 óra 30 perc", resp.TotalHuman)
	assert.Equal(t, 6.0, resp.AvgValue)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "futás", resp.Entries[0].Activity, "start time order")

	rr = doRequest(t, h, http.MethodGet, "/api/day?date=nem-datum", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDayOverview_DefaultsToNewestEntry(t *testing.T) {
	h, entries := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 10), "régi")))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 14), "új")))

	rr := doRequest(t, h, http.MethodGet, "/api/day", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Date string `json:"date"`
	}
	decodeBody(t, rr, &resp)
	assert.Equal(t, "2025-03-14", resp.Date)
}

func TestDashboard(t *testing.T) {
	h, entries := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 10), "gitár gyakorlás",
		testutil.WithClock("18:00", "19:00"))))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 12), "GITÁR koncert",
		testutil.WithClock("20:00", "22:00"))))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 11), "úszás")))

	rr := doRequest(t, h, http.MethodGet, "/api/dashboard?q=gitár", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Summary struct {
			Count        int `json:"count"`
			TotalMinutes int `json:"total_minutes"`
		} `json:"summary"`
		Results []struct {
			Activity string `json:"tevekenyseg"`
		} `json:"results"`
		DayNav []struct {
			Label string `json:"label"`
			Month int    `json:"month"`
		} `json:"day_nav"`
	}
	decodeBody(t, rr, &resp)

	assert.Equal(t, 2, resp.Summary.Count)
	assert.Equal(t, 180, resp.Summary.TotalMinutes)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "GITÁR koncert", resp.Results[0].Activity, "newest first")
	require.Len(t, resp.DayNav, 2)
	assert.Equal(t, "03.12", resp.DayNav[0].Label)
	assert.Equal(t, 3, resp.DayNav[0].Month)
}

func TestDashboard_BlankQuery(t *testing.T) {
	h, entries := newTestServer(t)
	require.NoError(t, entries.Create(context.Background(),
		testutil.NewTestEntry(testutil.Day(2025, 3, 10), "valami")))

	rr := doRequest(t, h, http.MethodGet, "/api/dashboard?q=%20%20&start=2025-01-01&end=2025-12-31", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Summary struct {
			Count int `json:"count"`
		} `json:"summary"`
		Results []any `json:"results"`
	}
	decodeBody(t, rr, &resp)
	assert.Zero(t, resp.Summary.Count)
	assert.Empty(t, resp.Results)
}

func TestRecentByCategory(t *testing.T) {
	h, entries := newTestServer(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 10+i), "munka",
			testutil.WithCategory("Munka"))))
	}

	rr := doRequest(t, h, http.MethodGet, "/api/recent-by-category?kategoria=Munka&limit=2", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Items []entryPayload `json:"items"`
	}
	decodeBody(t, rr, &resp)
	assert.Len(t, resp.Items, 2)

	rr = doRequest(t, h, http.MethodGet, "/api/recent-by-category", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFormDefaults(t *testing.T) {
	h, entries := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(testutil.Day(2025, 3, 10), "kódolás",
		testutil.WithCategory("Munka"), testutil.WithLabels("projekt", "fejlesztő", "flow"),
		testutil.WithClock("09:00", "10:00"))))

	rr := doRequest(t, h, http.MethodGet, "/api/form-defaults?category=Munka", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	decodeBody(t, rr, &resp)
	assert.Equal(t, "2025-03-10", resp["datum"])
	assert.Equal(t, "10:00", resp["kezdet"], "next block starts where the last ended")
	assert.Equal(t, "10:30", resp["veg"])
	assert.Equal(t, "Munka", resp["kategoria"])
	assert.Equal(t, "projekt", resp["kapcsolodo"])
	assert.Equal(t, "kódolás", resp["tevekenyseg"])
}

func TestParamsChoices(t *testing.T) {
	h, _ := newTestServer(t)

	rr := doRequest(t, h, http.MethodPost, "/api/entries", map[string]any{
		"datum": "2025-03-10", "tevekenyseg": "kódolás",
		"kategoria": "Munka", "szerep": "fejlesztő",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, h, http.MethodGet, "/api/params", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string][]string
	decodeBody(t, rr, &resp)
	assert.Equal(t, []string{"Munka"}, resp["kategoria"])
	assert.Equal(t, []string{"fejlesztő"}, resp["szerep"])
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tubefeed/pkg/client"
	"github.com/umputun/tubefeed/pkg/client/daily"
	"github.com/umputun/tubefeed/pkg/config"
	"github.com/umputun/tubefeed/pkg/domain"
	"github.com/umputun/tubefeed/pkg/media"
	"github.com/umputun/tubefeed/pkg/repository"
	"github.com/umputun/tubefeed/server"
)

func prepAPI(t *testing.T) *client.Client {
	t.Helper()
	color.NoColor = true
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, ConnMaxLifetime: time.Hour})
	require.NoError(t, err)
	store, err := media.NewStore(t.TempDir(), 1024)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Server.Location = "UTC"
	srv := server.New(cfg, server.Stores{Items: repos.FeedItem, Formulas: repos.Formula,
		Templates: repos.Template, Images: store}, "test", false)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		assert.NoError(t, repos.Close())
	})

	api := client.New(ts.URL, 5*time.Second)
	f, err := api.CreateFormula(context.Background(), domain.FoodFormula{Name: "Jevity",
		DefaultQuantityML: domain.IntPtr(240), DefaultCalories: domain.IntPtr(360)})
	require.NoError(t, err)
	_, err = api.CreateTemplate(context.Background(), domain.ScheduleTemplateEntry{Timing: domain.MustTimeOfDay("23:59"),
		FoodFormulaID: &f.ID, Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(240)}})
	require.NoError(t, err)
	return api
}

func TestRun(t *testing.T) {
	api := prepAPI(t)
	ctx := context.Background()
	now := func() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) }

	t.Run("formulas", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(ctx, "formulas", Opts{}, api, now, &out))
		assert.Contains(t, out.String(), "Jevity")
		assert.Contains(t, out.String(), "360 kcal")
	})

	t.Run("day", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(ctx, "day", Opts{}, api, now, &out))
		assert.Contains(t, out.String(), "2025-06-15")
		assert.Contains(t, out.String(), "11:59 PM")
		assert.Contains(t, out.String(), "calories 0/360 (0%)")
		assert.Contains(t, out.String(), "next: Jevity at 11:59 PM")
	})

	t.Run("mark", func(t *testing.T) {
		items, err := api.FeedItems(ctx, domain.MustDate("2025-06-15"))
		require.NoError(t, err)
		require.Len(t, items, 1)

		opts := Opts{}
		opts.Mark.ID = items[0].ID
		opts.Mark.Status = "administered"
		var out bytes.Buffer
		require.NoError(t, run(ctx, "mark", opts, api, now, &out))
		assert.Contains(t, out.String(), "calories 360/360 (100%)")
		assert.Contains(t, out.String(), "administered 1 of 1")
		assert.NotContains(t, out.String(), "next:")

		opts.Mark.Status = "skipped"
		err = run(ctx, "mark", opts, api, now, &out)
		require.Error(t, err)
		assert.Equal(t, client.KindValidation, client.KindOf(err))
	})

	t.Run("add", func(t *testing.T) {
		formulas, err := api.Formulas(ctx)
		require.NoError(t, err)
		require.Len(t, formulas, 1)

		opts := Opts{}
		opts.Add.Formula = formulas[0].ID
		opts.Add.Time = "14:00"
		opts.Add.Quantity = 120
		var out bytes.Buffer
		require.NoError(t, run(ctx, "add", opts, api, now, &out))
		assert.Contains(t, out.String(), "02:00 PM")
		assert.Contains(t, out.String(), "(ad-hoc)")
		assert.Contains(t, out.String(), "next: Jevity at 02:00 PM")

		items, err := api.FeedItems(ctx, domain.MustDate("2025-06-15"))
		require.NoError(t, err)
		require.Len(t, items, 2)
		added := items[0]
		assert.True(t, added.AdHoc())
		assert.Equal(t, 120, *added.QuantityML)
		assert.Equal(t, 360, *added.Calories, "unset values come from the formula")
		assert.Equal(t, formulas[0].ID, *added.SourceFormulaID)

		opts.Add.Formula = 999
		err = run(ctx, "add", opts, api, now, &bytes.Buffer{})
		require.Error(t, err)
		assert.Equal(t, client.KindPrecondition, client.KindOf(err))

		opts.Add.Formula = formulas[0].ID
		opts.Add.Time = "+8:00"
		err = run(ctx, "add", opts, api, now, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad time")
	})

	t.Run("template", func(t *testing.T) {
		formulas, err := api.Formulas(ctx)
		require.NoError(t, err)
		require.Len(t, formulas, 1)
		_, err = api.UpdateFormula(ctx, domain.FoodFormula{ID: formulas[0].ID, Name: "Jevity",
			DefaultQuantityML: domain.IntPtr(240), DefaultCalories: domain.IntPtr(360), DefaultDescription: "warm"})
		require.NoError(t, err)

		opts := Opts{}
		opts.Template.Formula = formulas[0].ID
		opts.Template.Time = "07:30"
		var out bytes.Buffer
		require.NoError(t, run(ctx, "template", opts, api, now, &out))
		assert.Contains(t, out.String(), "07:30 AM")
		assert.Contains(t, out.String(), "Jevity")
		assert.Contains(t, out.String(), "240 ml")

		entries, err := api.Templates(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		entry := entries[0]
		assert.Equal(t, domain.MustTimeOfDay("07:30"), entry.Timing)
		assert.Equal(t, 240, *entry.QuantityML)
		assert.Equal(t, 360, *entry.Calories)
		assert.Empty(t, entry.Description, "formula description is not copied into the entry")

		opts.Template.Formula = 999
		err = run(ctx, "template", opts, api, now, &bytes.Buffer{})
		require.Error(t, err)
		assert.Equal(t, client.KindNotFound, client.KindOf(err))
	})

	t.Run("bad date", func(t *testing.T) {
		opts := Opts{}
		opts.Day.Date = "15/06/2025"
		err := run(ctx, "day", opts, api, now, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad date")

		opts.Day.Date = "2024-01-01"
		err = run(ctx, "day", opts, api, now, &bytes.Buffer{})
		require.ErrorIs(t, err, daily.ErrOutOfRange)
	})

	t.Run("unknown command", func(t *testing.T) {
		require.Error(t, run(ctx, "nope", Opts{}, api, now, &bytes.Buffer{}))
	})
}

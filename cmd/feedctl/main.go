// feedctl is a terminal client for the tubefeed API: shows a day with its summary and next feed,
// marks and adds feeds, lists formulas and adds schedule template entries.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/tubefeed/pkg/client"
	"github.com/umputun/tubefeed/pkg/client/daily"
	"github.com/umputun/tubefeed/pkg/domain"
	"github.com/umputun/tubefeed/pkg/tracker"
)

// Opts with all CLI options and commands
type Opts struct {
	Server  string        `short:"s" long:"server" env:"TUBEFEED_URL" default:"http://localhost:8080" description:"tubefeed server url"`
	Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"request timeout"`

	Day struct {
		Date string `short:"d" long:"date" description:"date as YYYY-MM-DD, today if empty"`
	} `command:"day" description:"show feeds of a day"`

	Mark struct {
		Date   string `short:"d" long:"date" description:"date of the feed, today if empty"`
		ID     int64  `long:"id" required:"true" description:"feed item id"`
		Status string `long:"status" required:"true" choice:"administered" choice:"skipped" choice:"pending" description:"new status"`
	} `command:"mark" description:"change status of a feed"`

	Add struct {
		Date     string `short:"d" long:"date" description:"date of the feed, today if empty"`
		Formula  int64  `short:"f" long:"formula" required:"true" description:"food formula id"`
		Time     string `short:"t" long:"time" required:"true" description:"time of day as HH:MM"`
		Quantity int    `short:"q" long:"quantity" description:"quantity in ml, formula default if not set"`
	} `command:"add" description:"add an ad-hoc feed from a formula"`

	Template struct {
		Formula  int64  `short:"f" long:"formula" required:"true" description:"food formula id"`
		Time     string `short:"t" long:"time" required:"true" description:"time of day as HH:MM"`
		Quantity int    `short:"q" long:"quantity" description:"quantity in ml, formula default if not set"`
	} `command:"template" description:"add a daily schedule entry from a formula"`

	Formulas struct{} `command:"formulas" description:"list food formulas"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	if opts.Debug {
		lgr.Setup(lgr.Debug, lgr.Msec, lgr.LevelBraces)
	} else {
		lgr.Setup(lgr.Out(io.Discard), lgr.Err(io.Discard))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	api := client.New(opts.Server, opts.Timeout)
	if err := run(ctx, parser.Active.Name, opts, api, time.Now, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgHiRed).Sprint("error:"), err)
		os.Exit(1)
	}
}

// run executes the selected command and writes a human-readable result to out
func run(ctx context.Context, cmd string, opts Opts, api *client.Client, now func() time.Time, out io.Writer) error {
	ctrl := daily.New(api, now)

	switch cmd {
	case "day":
		if err := loadDate(ctx, ctrl, opts.Day.Date, now); err != nil {
			return err
		}
		printDay(out, ctrl.View())
		return nil
	case "mark":
		if err := loadDate(ctx, ctrl, opts.Mark.Date, now); err != nil {
			return err
		}
		if err := ctrl.SetStatus(ctx, opts.Mark.ID, domain.Status(opts.Mark.Status)); err != nil {
			return err
		}
		printDay(out, ctrl.View())
		return nil
	case "add":
		if err := loadDate(ctx, ctrl, opts.Add.Date, now); err != nil {
			return err
		}
		draft, err := draftItem(opts.Add.Time, opts.Add.Quantity)
		if err != nil {
			return err
		}
		if err := ctrl.AddFromFormula(ctx, opts.Add.Formula, draft); err != nil {
			return err
		}
		printDay(out, ctrl.View())
		return nil
	case "template":
		return addTemplate(ctx, api, opts, out)
	case "formulas":
		formulas, err := api.Formulas(ctx)
		if err != nil {
			return err
		}
		for _, f := range formulas {
			fmt.Fprintf(out, "%4d  %-30s %6s ml %6s kcal  %s\n", f.ID, f.Name, intText(f.DefaultQuantityML),
				intText(f.DefaultCalories), f.DefaultDescription)
		}
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func loadDate(ctx context.Context, ctrl *daily.Controller, value string, now func() time.Time) error {
	date := domain.DateOf(now())
	if value != "" {
		d, err := domain.ParseDate(value)
		if err != nil {
			return fmt.Errorf("bad date %q: %w", value, err)
		}
		date = d
	}
	return ctrl.Load(ctx, date)
}

// draftItem makes an item with the user given fields, the rest comes from the formula
func draftItem(timing string, quantity int) (domain.FeedItem, error) {
	tod, err := domain.ParseTimeOfDay(timing)
	if err != nil {
		return domain.FeedItem{}, fmt.Errorf("bad time: %w", err)
	}
	res := domain.FeedItem{Timing: tod}
	if quantity > 0 {
		res.QuantityML = domain.IntPtr(quantity)
	}
	return res, nil
}

func addTemplate(ctx context.Context, api *client.Client, opts Opts, out io.Writer) error {
	draft, err := draftItem(opts.Template.Time, opts.Template.Quantity)
	if err != nil {
		return err
	}
	f, err := api.Formula(ctx, opts.Template.Formula)
	if err != nil {
		return err
	}
	entry := tracker.EntryFromFormula(domain.ScheduleTemplateEntry{Timing: draft.Timing, Nutrients: draft.Nutrients}, *f)
	created, err := api.CreateTemplate(ctx, entry)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%4d  %-8s  %-30s %6s ml %6s kcal\n", created.ID, created.Timing.Display(), tracker.DisplayName(*created, f),
		intText(created.QuantityML), intText(created.Calories))
	return nil
}

func printDay(out io.Writer, v daily.View) {
	fmt.Fprintf(out, "%s\n", color.New(color.Bold).Sprint(v.Date))
	if len(v.Items) == 0 {
		fmt.Fprintln(out, "  no feeds scheduled")
	}
	for _, item := range v.Items {
		adHoc := ""
		if item.AdHoc() {
			adHoc = " (ad-hoc)"
		}
		fmt.Fprintf(out, "%4d  %-8s  %-30s %6s ml %6s kcal  %s%s\n", item.ID, item.TimingDisplay, item.FoodName,
			intText(item.QuantityML), intText(item.Calories), statusText(item.Status), adHoc)
	}

	s := v.Summary
	fmt.Fprintf(out, "calories %.0f/%.0f (%d%%), protein %.1f/%.1f g, carbs %.1f/%.1f g, fat %.1f/%.1f g\n",
		s.Calories.Consumed, s.Calories.Total, s.Percentage, s.Protein.Consumed, s.Protein.Total,
		s.Carbs.Consumed, s.Carbs.Total, s.Fat.Consumed, s.Fat.Total)
	fmt.Fprintf(out, "administered %d of %d\n", s.Administered, s.Total)
	if v.Next != nil {
		fmt.Fprintf(out, "next: %s at %s\n", v.Next.Item.FoodName, v.Next.Item.Timing.Display())
	}
}

func statusText(s domain.Status) string {
	switch s {
	case domain.StatusAdministered:
		return color.New(color.FgGreen).Sprint(s)
	case domain.StatusSkipped:
		return color.New(color.FgRed).Sprint(s)
	}
	return string(s)
}

func intText(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

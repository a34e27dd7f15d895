package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/eventcal/scheduler/internal/browser"
	"github.com/eventcal/scheduler/internal/client"
	"github.com/eventcal/scheduler/internal/composer"
	"github.com/eventcal/scheduler/internal/logger"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()
	logger.Init()

	app := &cli.App{
		Name:  "calctl",
		Usage: "Browse and compose calendar events against a scheduler backend.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Value:   "http://localhost:3001",
				Usage:   "Base URL of the scheduler API.",
				EnvVars: []string{"SCHEDULER_URL"},
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			createCommand(),
			getCommand(),
			updateCommand(),
			deleteCommand(),
			rangeCommand(),
			seedCommand(),
			healthCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		zlog.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.New(c.String("server"))
}

func eventFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: "Event title (required)."},
		&cli.StringFlag{Name: "description", Usage: "Event description."},
		&cli.StringFlag{Name: "start-date", Usage: "Start date, YYYY-MM-DD (defaults to today)."},
		&cli.StringFlag{Name: "end-date", Usage: "End date, YYYY-MM-DD (defaults to today)."},
		&cli.StringFlag{Name: "start-time", Usage: "Start time, HH:MM (required)."},
		&cli.StringFlag{Name: "end-time", Usage: "End time, HH:MM (required)."},
		&cli.StringFlag{Name: "name", Usage: "Your name (required)."},
		&cli.StringFlag{Name: "email", Usage: "Your email (required)."},
		&cli.StringFlag{Name: "location", Usage: "Event location."},
	}
}

func fillForm(f *composer.Form, c *cli.Context) {
	f.Fields.Title = c.String("title")
	f.Fields.Description = c.String("description")
	if v := c.String("start-date"); v != "" {
		f.Fields.StartDate = v
	}
	if v := c.String("end-date"); v != "" {
		f.Fields.EndDate = v
	}
	f.Fields.StartTime = c.String("start-time")
	f.Fields.EndTime = c.String("end-time")
	f.Fields.CreatorName = c.String("name")
	f.Fields.CreatorEmail = c.String("email")
	f.Fields.Location = c.String("location")
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Fetch all events and render them grouped by date.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "Show only events starting or ending on this date (YYYY-MM-DD)."},
			&cli.StringFlag{Name: "expand", Usage: "Event id whose extended detail should be shown."},
		},
		Action: func(c *cli.Context) error {
			b := browser.New(apiClient(c))
			if date := c.String("date"); date != "" {
				b.SetFilter(date)
			}
			if id := c.String("expand"); id != "" {
				b.Selection.Toggle(id)
			}

			if err := b.Refresh(c.Context); err != nil {
				fmt.Fprintln(c.App.Writer, b.View(time.Now()).Err)
				return err
			}

			renderView(c.App.Writer, b.View(time.Now()), &b.Selection)
			return nil
		},
	}
}

func renderView(w io.Writer, v browser.View, sel *browser.Selection) {
	if v.Empty != "" {
		fmt.Fprintln(w, v.Empty)
		return
	}

	for _, day := range v.Projection.Days {
		marker := ""
		if day.Status == browser.StatusToday {
			marker = "  [Today]"
		}
		fmt.Fprintf(w, "%s%s\n", day.Date, marker)
		for _, e := range day.Events {
			fmt.Fprintf(w, "  %s - %s  %s  (%s <%s>)\n", e.StartTime, e.EndTime, e.Title, e.CreatorName, e.CreatorEmail)
			fmt.Fprintf(w, "      id: %s\n", e.ID)
			if sel.Expanded(e.ID) {
				if e.Description != "" {
					fmt.Fprintf(w, "      Description: %s\n", e.Description)
				}
				if e.Location != "" {
					fmt.Fprintf(w, "      Location: %s\n", e.Location)
				}
				fmt.Fprintf(w, "      Created: %s\n", e.CreatedAt.Format(time.RFC3339))
			}
		}
	}
	if !v.Filtered {
		fmt.Fprintf(w, "\nTotal events: %d\n", v.Total)
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new event.",
		Flags: eventFlags(),
		Action: func(c *cli.Context) error {
			f := composer.NewForm(time.Now())
			fillForm(f, c)

			ev, err := f.Submit(c.Context, apiClient(c), time.Now())
			if err != nil {
				fmt.Fprintln(c.App.Writer, f.Message.Text)
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s (id: %s)\n", f.Message.Text, ev.ID)
			return nil
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show a single event by id.",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: calctl get <id>", 1)
			}
			ev, err := apiClient(c).GetEvent(c.Context, c.Args().First())
			if err != nil {
				return err
			}

			var sel browser.Selection
			sel.Toggle(ev.ID)
			renderView(c.App.Writer, browser.View{
				Projection: browser.Project([]client.Event{*ev}, time.Now()),
				Filtered:   true,
				Total:      1,
			}, &sel)
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Overwrite an event's fields. All fields are replaced, omitted ones with empty values.",
		ArgsUsage: "<id>",
		Flags:     eventFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: calctl update <id> [flags]", 1)
			}
			in := client.EventInput{
				Title:        c.String("title"),
				Description:  c.String("description"),
				StartDate:    c.String("start-date"),
				EndDate:      c.String("end-date"),
				StartTime:    c.String("start-time"),
				EndTime:      c.String("end-time"),
				CreatorName:  c.String("name"),
				CreatorEmail: c.String("email"),
				Location:     c.String("location"),
			}
			if err := apiClient(c).UpdateEvent(c.Context, c.Args().First(), in); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Event updated successfully")
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an event by id.",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: calctl delete <id>", 1)
			}
			if err := apiClient(c).DeleteEvent(c.Context, c.Args().First()); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Event deleted successfully")
			return nil
		},
	}
}

func rangeCommand() *cli.Command {
	return &cli.Command{
		Name:      "range",
		Usage:     "List events whose start date falls within an inclusive date range.",
		ArgsUsage: "<startDate> <endDate>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: calctl range <startDate> <endDate>", 1)
			}
			events, err := apiClient(c).ListEventsInRange(c.Context, c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return err
			}

			var sel browser.Selection
			renderView(c.App.Writer, browser.View{
				Projection: browser.Project(events, time.Now()),
				Filtered:   true,
				Total:      len(events),
				Empty:      emptyMessage(events),
			}, &sel)
			return nil
		},
	}
}

func emptyMessage(events []client.Event) string {
	if len(events) == 0 {
		return "No events found for the selected date."
	}
	return ""
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Create a handful of sample events.",
		Action: func(c *cli.Context) error {
			api := apiClient(c)
			for _, in := range sampleEvents() {
				ev, err := api.CreateEvent(c.Context, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "created %q (id: %s)\n", ev.Title, ev.ID)
			}
			return nil
		},
	}
}

func sampleEvents() []client.EventInput {
	return []client.EventInput{
		{
			Title:        "Team Meeting",
			Description:  "Weekly team sync-up meeting",
			StartDate:    "2025-09-20",
			EndDate:      "2025-09-20",
			StartTime:    "10:00",
			EndTime:      "11:00",
			CreatorName:  "John Doe",
			CreatorEmail: "john.doe@example.com",
			Location:     "Conference Room A",
		},
		{
			Title:        "Client Presentation",
			Description:  "Quarterly business review with ABC Corp",
			StartDate:    "2025-09-22",
			EndDate:      "2025-09-22",
			StartTime:    "14:00",
			EndTime:      "15:30",
			CreatorName:  "Jane Smith",
			CreatorEmail: "jane.smith@example.com",
			Location:     "Virtual Meeting",
		},
		{
			Title:        "Project Planning",
			Description:  "Q4 project planning session",
			StartDate:    "2025-09-25",
			EndDate:      "2025-09-25",
			StartTime:    "09:00",
			EndTime:      "12:00",
			CreatorName:  "Mike Johnson",
			CreatorEmail: "mike.johnson@example.com",
			Location:     "Main Office",
		},
	}
}

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check the backend's health endpoint.",
		Action: func(c *cli.Context) error {
			h, err := apiClient(c).GetHealth(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s (%s)\n", h.Status, h.Timestamp.Format(time.RFC3339))
			return nil
		},
	}
}

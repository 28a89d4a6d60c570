// Command attendly is a terminal consumer of the attendance API: login,
// roster aggregation, report download, and members template generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/attendly/attendance-backend-go/internal/client"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
)

const usage = `Usage: attendly <command> [flags]

Commands:
  login      authenticate as a global admin or vertical lead
  logout     revoke the current session
  meetings   list visible meetings
  summary    print the attendance summary
  report     download the low-attendance CSV report
  template   write the empty members .xlsx template

Environment:
  ATTENDLY_API_URL   API base URL (default http://localhost:8080)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	baseURL := os.Getenv("ATTENDLY_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	session := client.NewSession(sessionPath())
	if err := session.Init(); err != nil {
		fatal(err)
	}
	c, err := client.New(baseURL, session)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, c, os.Args[2:])
	case "logout":
		err = c.Logout(ctx)
	case "meetings":
		err = runMeetings(ctx, c)
	case "summary":
		err = runSummary(ctx, c, os.Args[2:])
	case "report":
		err = runReport(ctx, c, os.Args[2:])
	case "template":
		err = runTemplate(c, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func runLogin(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	asAdmin := fs.Bool("admin", false, "log in as a global admin (username/password)")
	username := fs.String("username", "", "admin username")
	rollNo := fs.String("roll-no", "", "vertical lead roll number")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var profile client.Profile
	var err error
	if *asAdmin {
		profile, err = c.LoginGlobalAdmin(ctx, *username, *password)
	} else {
		profile, err = c.LoginVerticalLead(ctx, *rollNo, *password)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", profile.Name, profile.Role)
	return nil
}

func runMeetings(ctx context.Context, c *client.Client) error {
	meetings, err := c.Meetings(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tVERTICAL\tMEETING\tID")
	for _, m := range meetings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Date.Format("2006-01-02"), m.Vertical, m.MeetingName, m.ID)
	}
	return tw.Flush()
}

func runSummary(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	vertical := fs.String("vertical", "", "filter by vertical")
	year := fs.String("year", "", "filter by year")
	local := fs.Bool("local", false, "aggregate client-side from per-meeting rosters")
	byVertical := fs.Bool("by-vertical", false, "print per-vertical averages instead of rows")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var rows []summary.Row
	var err error
	if *local {
		rows, err = c.FetchAllAttendance(ctx)
	} else {
		rows, err = c.Summary(ctx)
	}
	if err != nil {
		return err
	}

	rows = summary.Filter{Vertical: *vertical, Year: *year}.Apply(rows)

	if *byVertical {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VERTICAL\tAVG %")
		for _, avg := range summary.GroupByVertical(rows) {
			fmt.Fprintf(tw, "%s\t%.1f\n", avg.Vertical, avg.Percentage)
		}
		return tw.Flush()
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLL NO\tNAME\tVERTICAL\tYEAR\tATTENDED\tTOTAL\t%")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			row.RollNo, row.Name, row.Vertical, row.Year, row.Attended, row.Total, row.Percentage.String())
	}
	return tw.Flush()
}

func runReport(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	threshold := fs.Int("threshold", -2, "attendance percentage cutoff; -1 exports everyone")
	out := fs.String("out", "", "output path (default: server-suggested filename)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cutoff *int
	if *threshold != -2 {
		cutoff = threshold
	}

	tmp, err := os.CreateTemp("", "attendly-report-*.csv")
	if err != nil {
		return err
	}
	defer tmp.Close()

	name, err := c.DownloadAttendanceReport(ctx, tmp, cutoff)
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if *out != "" {
		name = *out
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", name)
	return nil
}

func runTemplate(c *client.Client, args []string) error {
	fs := flag.NewFlagSet("template", flag.ExitOnError)
	out := fs.String("out", "members-template.xlsx", "output path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.SaveMembersTemplate(*out); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", *out)
	return nil
}

func sessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "attendly", "session.json")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

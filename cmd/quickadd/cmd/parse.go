package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-quick-add/internal/task"
	"task-quick-add/internal/task/usecase"
	"task-quick-add/pkg/datemath"
	"task-quick-add/pkg/response"
)

var (
	parseNow      string
	parseTimezone string
	parseHours    []int
	parseJSON     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <title>",
	Short: "Extract the due date from a task title",
	Long: `Parses a task title and prints the title without its date expression
together with the resolved due date.

Examples:
  quickadd parse "Buy milk tomorrow at 5pm"
  quickadd parse --timezone Asia/Ho_Chi_Minh "Pay rent 1st"
  quickadd parse --now 2024-05-01T15:30:00Z --json "Dentist jun 21"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseNow, "now", "", "Reference instant in RFC3339 (default: current time)")
	parseCmd.Flags().StringVar(&parseTimezone, "timezone", "Local", "IANA timezone dates are resolved in")
	parseCmd.Flags().IntSliceVar(&parseHours, "hours", append([]int(nil), datemath.DefaultSlotHours...), "Hour slots used when a date has no clock time")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the result as JSON")
}

type parseResult struct {
	Text  string             `json:"text"`
	Title string             `json:"title"`
	Date  *response.DateTime `json:"date"`
	Found bool               `json:"found"`
}

func runParse(cmd *cobra.Command, args []string) error {
	var now time.Time
	if parseNow != "" {
		t, err := time.Parse(time.RFC3339, parseNow)
		if err != nil {
			return fmt.Errorf("%w: %v", task.ErrInvalidNow, err)
		}
		now = t
	}

	parser, err := datemath.NewParser(parseTimezone, datemath.WithNearestHour(datemath.SlotHours(parseHours)))
	if err != nil {
		return err
	}

	uc := usecase.New(newLogger(), parser, nil, "", 0)
	out, err := uc.Parse(cmd.Context(), task.ParseInput{
		Title: strings.Join(args, " "),
		Now:   now,
	})
	if err != nil {
		return err
	}

	result := parseResult{
		Text:  out.Text,
		Title: out.Title,
		Date:  response.NewDateTime(out.DueDate),
		Found: out.DueDate != nil,
	}
	if parseJSON {
		return printJSON(cmd.OutOrStdout(), result)
	}
	return printText(cmd.OutOrStdout(), result, out.DueDate)
}

func printJSON(w io.Writer, result parseResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func printText(w io.Writer, result parseResult, due *time.Time) error {
	date := "none"
	if due != nil {
		date = due.Format(response.DateTimeFormat) + " (" + due.Weekday().String() + ")"
	}
	_, err := fmt.Fprintf(w, "title: %s\ndate:  %s\n", result.Title, date)
	return err
}

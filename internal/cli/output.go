package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/monopoly-go/internal/api/response"
	"github.com/mcoot/monopoly-go/internal/model"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.SaveList:
		o.printSaveList(v)
	case SaveReport:
		o.printSaveReport(v)
	case MapReport:
		o.printMapReport(v)
	case []model.Standing:
		o.printStandings(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SaveReport is a saved game with its cash ranking
type SaveReport struct {
	Save      response.Save    `json:"save"`
	Standings []model.Standing `json:"standings"`
}

// MapReport is the validation result for one map file
type MapReport struct {
	Path string `json:"path"`
	response.MapValidation
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printSaveList(l response.SaveList) {
	if len(l.Saves) == 0 {
		o.printf("No save files available.\n")
		return
	}
	for _, name := range l.Saves {
		o.printf("%s\n", name)
	}
}

func (o *Output) printSaveReport(r SaveReport) {
	o.printf("Save: %s\n", r.Save.Name)
	o.printf("Round: %d\n", r.Save.RoundNum)
	o.printf("Map size: %d\n", r.Save.MapSize)
	o.printf("\n")
	for _, p := range r.Save.Players {
		status := ""
		switch {
		case p.Bankrupt:
			status = " [bankrupt]"
		case p.InJail:
			status = fmt.Sprintf(" [in jail, %d failed rolls]", p.JailTurns)
		}
		o.printf("%s: $%d at Square %d%s\n", p.Name, p.Cash, p.Position, status)
		o.printf("  Properties: %s\n", propertyList(p.Properties))
	}
	o.printf("\n")
	o.printStandings(r.Standings)
}

func (o *Output) printStandings(standings []model.Standing) {
	o.printf("Standings:\n")
	for _, s := range standings {
		marker := ""
		if s.Winner {
			marker = " (winner)"
		}
		o.printf("%d. %s $%d%s\n", s.Rank, s.Name, s.Cash, marker)
	}
}

func (o *Output) printMapReport(r MapReport) {
	for _, line := range r.Summary {
		o.printf("%s\n", line)
	}
	if r.Valid {
		o.printf("%s is a valid map.\n", r.Path)
		return
	}
	o.printf("%s is not a valid map:\n", r.Path)
	o.printf("  %s\n", strings.Join(r.Problems, "\n  "))
}

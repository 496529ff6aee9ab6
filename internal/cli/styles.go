package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/airscope/airscope/internal/airquality"
)

var (
	colorDim    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorTitle  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#E4E4E4"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorSource = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	liveStyle = lipgloss.NewStyle().
			Foreground(colorSource)

	fallbackStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Italic(true)
)

// levelStyle colours text with the category colour of a level.
func levelStyle(l airquality.Level) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(l.Color))
}

func levelByName(name string) airquality.Level {
	for _, l := range airquality.Levels() {
		if l.Name == name {
			return l
		}
	}
	return airquality.LevelFor(airquality.MaxIndex)
}

func sourceTag(s airquality.Source) string {
	if s == airquality.SourceLive {
		return liveStyle.Render(string(s))
	}
	return fallbackStyle.Render(string(s))
}

func renderReading(r airquality.Reading) string {
	level := r.Level()
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(r.LocationName))
	fmt.Fprintf(&b, "  AQI %s  %s\n",
		levelStyle(level).Render(fmt.Sprintf("%d", r.Index)),
		levelStyle(level).Render(level.Name))
	if r.DominantPollutant != "" {
		fmt.Fprintf(&b, "  dominant %s\n", r.DominantPollutant)
	}
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(level.Advisory))
	fmt.Fprintf(&b, "  source %s  measured %s\n", sourceTag(r.Source), r.MeasuredAt.Format("2006-01-02 15:04"))
	if r.Attribution != "" {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(r.Attribution))
	}
	return b.String()
}

func renderForecast(f airquality.Forecast) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(f.LocationName),
		dimStyle.Render(fmt.Sprintf("from AQI %d (%s)", f.BaseIndex, f.BaseSource)))
	for _, p := range f.Points {
		level := levelByName(p.Level)
		fmt.Fprintf(&b, "  %s  %s %-12s %s\n",
			p.Time.Format("Mon 15:04"),
			levelStyle(level).Render(fmt.Sprintf("%3d", p.Index)),
			p.Level,
			dimStyle.Render(fmt.Sprintf("%.0f%%", p.Confidence)))
	}
	fmt.Fprintf(&b, "%s\n", dimStyle.Render(f.Disclaimer))
	return b.String()
}

func renderStation(s airquality.Station) string {
	level := levelByName(s.Level)
	return fmt.Sprintf("%s  %s %-12s %s\n",
		levelStyle(level).Render(fmt.Sprintf("%3d", s.Index)),
		string(s.DominantPollutant),
		s.Level,
		titleStyle.Render(s.Name)+dimStyle.Render(", "+s.City))
}

func renderSuggestion(s airquality.Suggestion) string {
	return fmt.Sprintf("%s %s\n", s.Name,
		dimStyle.Render(fmt.Sprintf("(%.4f, %.4f) %s", s.Coordinates.Lat, s.Coordinates.Lng, s.Source)))
}

package forecast

import (
	"fmt"
	"math"
	"time"

	"forecastapi.app/internal/ports"
)

const (
	DefaultHourlyLimit = 8
	DefaultDailyLimit  = 5
)

// AggregatorDependencies holds the optional collaborators of the aggregator
type AggregatorDependencies struct {
	Logger  ports.Logger
	Metrics ports.ForecastMetrics
}

// Aggregator builds hourly and daily views from forecast samples.
// A nil logger or metrics sink is allowed; degraded samples are then handled silently.
type Aggregator struct {
	logger  ports.Logger
	metrics ports.ForecastMetrics
}

// NewAggregator creates a new aggregator
func NewAggregator(deps AggregatorDependencies) *Aggregator {
	return &Aggregator{
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}
}

// ViewParams is the input of BuildView
type ViewParams struct {
	City              string
	Current           *CurrentSnapshot
	Samples           []WeatherSample
	ForecastAvailable bool
	Location          *time.Location
	Hours             int
	Days              int
	Unit              Unit
}

// BuildHourly takes the first limit samples in input order and renders them in Celsius.
// A non-positive limit falls back to DefaultHourlyLimit.
func (a *Aggregator) BuildHourly(samples []WeatherSample, limit int, loc *time.Location) []HourlyEntry {
	return a.buildHourly(samples, limit, loc, a.noteDegraded)
}

// degradedFunc is told about a sample whose timestamp could not be resolved
type degradedFunc func(operation string, s WeatherSample)

func ignoreDegraded(string, WeatherSample) {}

func (a *Aggregator) buildHourly(samples []WeatherSample, limit int, loc *time.Location, degraded degradedFunc) []HourlyEntry {
	if limit <= 0 {
		limit = DefaultHourlyLimit
	}
	if limit > len(samples) {
		limit = len(samples)
	}

	entries := make([]HourlyEntry, 0, limit)
	for _, s := range samples[:limit] {
		entry := HourlyEntry{
			Timestamp:           s.Timestamp,
			DateText:            s.DateText,
			Temperature:         Convert(s.Temperature, UnitCelsius),
			FeelsLike:           Convert(s.FeelsLike, UnitCelsius),
			Humidity:            s.Humidity,
			WindSpeed:           s.WindSpeed,
			Cloudiness:          s.Cloudiness,
			PrecipitationChance: s.PrecipitationChance,
			Condition:           s.Condition,
			Description:         s.Description,
			Icon:                s.Icon,
			IconInfo:            resolveIcon(s.Icon, s.Condition),
		}

		if t, ok := resolveTime(s, loc); ok {
			entry.Time = FormatClock(t, loc)
		} else {
			entry.Time = fallbackClock(s.DateText)
			entry.Degraded = true
			degraded("hourly", s)
		}

		entries = append(entries, entry)
	}

	return entries
}

// GroupByDay partitions samples by local calendar date. Groups are ordered by first
// appearance and every sample lands in exactly one group.
func (a *Aggregator) GroupByDay(samples []WeatherSample, loc *time.Location) []DayGroup {
	return a.groupByDay(samples, loc, a.noteDegraded)
}

func (a *Aggregator) groupByDay(samples []WeatherSample, loc *time.Location, degraded degradedFunc) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)

	for _, s := range samples {
		key := dateKey(s, loc, degraded)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Date: key})
		}
		groups[i].Samples = append(groups[i].Samples, s)
	}

	return groups
}

// BuildDaily collapses samples into at most maxDays daily summaries in date order of
// first appearance. A non-positive maxDays falls back to DefaultDailyLimit.
func (a *Aggregator) BuildDaily(samples []WeatherSample, maxDays int, loc *time.Location) []DailySummary {
	return a.buildDaily(samples, maxDays, loc, a.noteDegraded)
}

func (a *Aggregator) buildDaily(samples []WeatherSample, maxDays int, loc *time.Location, degraded degradedFunc) []DailySummary {
	if maxDays <= 0 {
		maxDays = DefaultDailyLimit
	}

	groups := a.groupByDay(samples, loc, degraded)
	if len(groups) > maxDays {
		groups = groups[:maxDays]
	}

	summaries := make([]DailySummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, summarizeDay(g, loc))
	}

	return summaries
}

// BuildCurrent renders a current-conditions snapshot in the given unit
func (a *Aggregator) BuildCurrent(current CurrentSnapshot, unit Unit, loc *time.Location) CurrentView {
	return CurrentView{
		City:          current.City,
		Country:       current.Country,
		Temperature:   Convert(current.Temperature, unit),
		FeelsLike:     Convert(current.FeelsLike, unit),
		Min:           Convert(current.TempMin, unit),
		Max:           Convert(current.TempMax, unit),
		Condition:     current.Condition,
		Description:   current.Description,
		Icon:          current.Icon,
		IconInfo:      resolveIcon(current.Icon, current.Condition),
		Humidity:      fmt.Sprintf("%d%%", current.Humidity),
		HumidityLabel: HumidityLabel(current.Humidity),
		Wind:          fmt.Sprintf("%d m/s", int64(math.Round(current.WindSpeed))),
		Visibility:    fmt.Sprintf("%d km", current.Visibility/1000),
		Pressure:      fmt.Sprintf("%d hPa", current.Pressure),
		Cloudiness:    fmt.Sprintf("%d%%", current.Cloudiness),
		Sunrise:       FormatUnixClock(current.Sunrise, loc),
		Sunset:        FormatUnixClock(current.Sunset, loc),
	}
}

// HumidityLabel describes a relative humidity percentage
func HumidityLabel(humidity int) string {
	switch {
	case humidity < 20:
		return "Very dry"
	case humidity < 30:
		return "Dry"
	case humidity < 60:
		return "Comfortable"
	case humidity < 80:
		return "Humid"
	default:
		return "Very humid"
	}
}

// BuildView assembles the hourly, daily and current sections for one city in one unit
func (a *Aggregator) BuildView(params ViewParams) View {
	view := View{
		City:              params.City,
		Unit:              UnitCelsius,
		Hourly:            []HourlyEntry{},
		Daily:             []DailySummary{},
		ForecastAvailable: params.ForecastAvailable,
	}

	if params.Current != nil {
		current := a.BuildCurrent(*params.Current, UnitCelsius, params.Location)
		view.Current = &current
		if view.City == "" {
			view.City = current.City
		}
	}

	if params.ForecastAvailable {
		// each unresolvable sample is reported once per view, not once per section
		for _, s := range params.Samples {
			if _, ok := resolveTime(s, params.Location); !ok {
				a.noteDegraded("view", s)
			}
		}
		view.Hourly = a.buildHourly(params.Samples, params.Hours, params.Location, ignoreDegraded)
		view.Daily = a.buildDaily(params.Samples, params.Days, params.Location, ignoreDegraded)
	}

	return Retarget(view, params.Unit)
}

// Retarget re-renders every temperature in the view in another unit. Values are
// re-derived from their Celsius baselines, so repeated toggling never drifts.
// The input view is not modified.
func Retarget(view View, unit Unit) View {
	out := view
	out.Unit = unit

	if view.Current != nil {
		current := *view.Current
		current.Temperature = current.Temperature.In(unit)
		current.FeelsLike = current.FeelsLike.In(unit)
		current.Min = current.Min.In(unit)
		current.Max = current.Max.In(unit)
		out.Current = &current
	}

	out.Hourly = make([]HourlyEntry, len(view.Hourly))
	for i, h := range view.Hourly {
		h.Temperature = h.Temperature.In(unit)
		h.FeelsLike = h.FeelsLike.In(unit)
		out.Hourly[i] = h
	}

	out.Daily = make([]DailySummary, len(view.Daily))
	for i, d := range view.Daily {
		d.Min = d.Min.In(unit)
		d.Max = d.Max.In(unit)
		out.Daily[i] = d
	}

	return out
}

func dateKey(s WeatherSample, loc *time.Location, degraded degradedFunc) string {
	if t, ok := resolveTime(s, loc); ok {
		return t.Format(dateKeyLayout)
	}
	degraded("daily", s)
	return fallbackDateKey(s.DateText)
}

func (a *Aggregator) noteDegraded(operation string, s WeatherSample) {
	if a == nil {
		return
	}
	if a.logger != nil {
		a.logger.Warn("Unparseable forecast timestamp, using raw value",
			ports.F("operation", operation),
			ports.F("timestamp", s.Timestamp),
			ports.F("dateText", s.DateText))
	}
	if a.metrics != nil {
		a.metrics.RecordDegradedTimestamp()
	}
}

// summarizeDay takes the representative condition from the chronologically first
// sample of the group. Samples without a usable time keep their input position,
// and an earlier input wins on equal instants.
func summarizeDay(g DayGroup, loc *time.Location) DailySummary {
	rep := g.Samples[0]
	repTime, repKnown := resolveTime(rep, loc)

	lo, hi := sampleRange(rep)
	for _, s := range g.Samples[1:] {
		sLo, sHi := sampleRange(s)
		lo = math.Min(lo, sLo)
		hi = math.Max(hi, sHi)

		if t, ok := resolveTime(s, loc); ok && repKnown && t.Before(repTime) {
			rep, repTime = s, t
		}
	}

	return DailySummary{
		Date:        g.Date,
		Weekday:     WeekdayLabel(g.Date),
		Min:         Convert(lo, UnitCelsius),
		Max:         Convert(hi, UnitCelsius),
		Condition:   rep.Condition,
		Description: rep.Description,
		Icon:        rep.Icon,
		IconInfo:    resolveIcon(rep.Icon, rep.Condition),
		SampleCount: len(g.Samples),
	}
}

// sampleRange returns the sample's low and high, ordered even if the provider swapped them
func sampleRange(s WeatherSample) (float64, float64) {
	if s.MinTemperature > s.MaxTemperature {
		return s.MaxTemperature, s.MinTemperature
	}
	return s.MinTemperature, s.MaxTemperature
}

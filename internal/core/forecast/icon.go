package forecast

import "strings"

// IconKind is a symbolic icon independent of any rendering toolkit
type IconKind string

const (
	IconClearDay     IconKind = "clear-day"
	IconClearNight   IconKind = "clear-night"
	IconCloud        IconKind = "cloud"
	IconRain         IconKind = "rain"
	IconThunderstorm IconKind = "thunderstorm"
	IconSnow         IconKind = "snow"
	IconMist         IconKind = "mist"
)

const (
	colorClearDay   = "#FFC107"
	colorClearNight = "#455A64"
	colorRain       = "#6397E5"
)

// IconInfo describes how an icon code should be drawn
type IconInfo struct {
	Kind  IconKind `json:"kind"`
	Night bool     `json:"night"`
	Color string   `json:"color,omitempty"`
}

// IconFor maps an OpenWeatherMap style icon code ("10d", "01n") to an icon.
// The last character marks day or night; unknown codes render as a cloud.
func IconFor(code string) IconInfo {
	code = strings.ToLower(strings.TrimSpace(code))
	night := strings.HasSuffix(code, "n")

	base := code
	if len(base) > 0 {
		base = base[:len(base)-1]
	}

	switch base {
	case "01":
		if night {
			return IconInfo{Kind: IconClearNight, Night: true, Color: colorClearNight}
		}
		return IconInfo{Kind: IconClearDay, Color: colorClearDay}
	case "02", "03", "04":
		return IconInfo{Kind: IconCloud, Night: night}
	case "09", "10":
		return IconInfo{Kind: IconRain, Night: night, Color: colorRain}
	case "11":
		return IconInfo{Kind: IconThunderstorm, Night: night}
	case "13":
		return IconInfo{Kind: IconSnow, Night: night}
	case "50":
		return IconInfo{Kind: IconMist, Night: night}
	default:
		return IconInfo{Kind: IconCloud, Night: night}
	}
}

// ConditionCategory maps a condition label ("Rain", "Clouds") to an icon kind
func ConditionCategory(condition string) IconKind {
	switch strings.ToLower(strings.TrimSpace(condition)) {
	case "clear":
		return IconClearDay
	case "haze", "mist", "fog", "smoke", "dust", "sand":
		return IconMist
	case "clouds":
		return IconCloud
	case "rain", "drizzle":
		return IconRain
	case "thunderstorm":
		return IconThunderstorm
	case "snow":
		return IconSnow
	default:
		return IconCloud
	}
}

// resolveIcon prefers the icon code and falls back to the condition label
func resolveIcon(code, condition string) IconInfo {
	if strings.TrimSpace(code) != "" {
		return IconFor(code)
	}

	kind := ConditionCategory(condition)
	info := IconInfo{Kind: kind}
	switch kind {
	case IconClearDay:
		info.Color = colorClearDay
	case IconRain:
		info.Color = colorRain
	}
	return info
}

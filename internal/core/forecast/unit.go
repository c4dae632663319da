package forecast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the temperature unit a view is rendered in
type Unit int

const (
	UnitCelsius Unit = iota
	UnitFahrenheit
)

// String returns the string representation of the unit
func (u Unit) String() string {
	if u == UnitFahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// Symbol returns the display suffix of the unit
func (u Unit) Symbol() string {
	if u == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// IsValid checks if the unit value is valid
func (u Unit) IsValid() bool {
	return u == UnitCelsius || u == UnitFahrenheit
}

// ParseUnit converts a query or config value to a Unit. An empty value means Celsius.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "c", "celsius", "metric":
		return UnitCelsius, nil
	case "f", "fahrenheit", "imperial":
		return UnitFahrenheit, nil
	default:
		return UnitCelsius, fmt.Errorf("unknown temperature unit %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// DisplayTemperature pairs a raw Celsius baseline with its rendering in one unit.
// Celsius is the source of truth; Value and Formatted are always derived from it.
type DisplayTemperature struct {
	Celsius   float64 `json:"celsius"`
	Unit      Unit    `json:"unit"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// Convert renders a Celsius value in the requested unit.
// Rounding is half away from zero and happens only here. Any finite input gives a finite
// value; Fahrenheit results beyond the float64 range saturate at ±math.MaxFloat64.
func Convert(celsius float64, unit Unit) DisplayTemperature {
	value := celsius
	if unit == UnitFahrenheit {
		value = celsius*9/5 + 32
		if math.IsInf(value, 0) && !math.IsInf(celsius, 0) {
			value = math.Copysign(math.MaxFloat64, value)
		}
	}
	rounded := math.Round(value)
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}

	return DisplayTemperature{
		Celsius:   celsius,
		Unit:      unit,
		Value:     rounded,
		Formatted: strconv.FormatFloat(rounded, 'f', 0, 64) + unit.Symbol(),
	}
}

// In re-derives the temperature in another unit from the stored baseline
func (d DisplayTemperature) In(unit Unit) DisplayTemperature {
	return Convert(d.Celsius, unit)
}

// String returns the formatted temperature
func (d DisplayTemperature) String() string {
	return d.Formatted
}

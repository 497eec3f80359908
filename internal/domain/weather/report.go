package weather

import "time"

type Current struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Code        int     `json:"code"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

type Day struct {
	Date                string  `json:"date"`
	High                float64 `json:"high"`
	Low                 float64 `json:"low"`
	PrecipitationChance int     `json:"precipitationChance"`
	Code                int     `json:"code"`
	Condition           string  `json:"condition"`
	Icon                string  `json:"icon"`
}

// Report is the forecast payload of the display weather widget.
type Report struct {
	Current   Current   `json:"current"`
	Daily     []Day     `json:"daily"`
	Location  string    `json:"location"`
	Units     string    `json:"units"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDemo    bool      `json:"isDemo"`
}

// ForecastDays is the number of daily entries in a Report.
const ForecastDays = 5

// DemoReport is shown when the forecast provider cannot be reached.
func DemoReport(s Settings, now time.Time) Report {
	temps := [ForecastDays][2]float64{{72, 58}, {75, 60}, {68, 55}, {64, 50}, {70, 54}}
	codes := [ForecastDays]int{1, 0, 61, 3, 2}
	conditions := [ForecastDays]string{"Mainly Clear", "Clear Sky", "Slight Rain", "Overcast", "Partly Cloudy"}
	icons := [ForecastDays]string{"partly-sunny", "sunny", "rain", "cloudy", "partly-sunny"}

	convert := func(f float64) float64 { return f }
	if s.Units == UnitsCelsius {
		convert = func(f float64) float64 { return float64(int((f-32)*5/9*10+0.5)) / 10 }
	}

	daily := make([]Day, ForecastDays)
	for i := range daily {
		daily[i] = Day{
			Date:                now.AddDate(0, 0, i).Format(time.DateOnly),
			High:                convert(temps[i][0]),
			Low:                 convert(temps[i][1]),
			PrecipitationChance: []int{5, 0, 70, 20, 10}[i],
			Code:                codes[i],
			Condition:           conditions[i],
			Icon:                icons[i],
		}
	}
	return Report{
		Current: Current{
			Temperature: convert(68),
			FeelsLike:   convert(66),
			Humidity:    55,
			WindSpeed:   7,
			Code:        1,
			Condition:   "Mainly Clear",
			Icon:        "partly-sunny",
		},
		Daily:     daily,
		Location:  s.Location,
		Units:     s.Units,
		UpdatedAt: now,
		IsDemo:    true,
	}
}

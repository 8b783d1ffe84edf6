package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Free-text metric extraction. The patterns follow the user base's
// Spanish phrasing ("mido 1.80", "tengo 25", "80 kg"). This is a
// best-effort parser: extracted values are informational and never
// authoritative.
var (
	weightPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:kg|kilos?)`)
	heightPatterns = []*regexp.Regexp{
		regexp.MustCompile(`mido\s+(\d\.\d{2})`),
		regexp.MustCompile(`(\d{3})\s*cm`),
		regexp.MustCompile(`mido\s+(\d{3})`),
	}
	agePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s+años`),
		regexp.MustCompile(`edad\s+(\d+)`),
		regexp.MustCompile(`tengo\s+(\d+)`),
	}
)

// Plausibility windows for extracted values.
const (
	minPlausibleWeight, maxPlausibleWeight = 30, 200
	minPlausibleHeight, maxPlausibleHeight = 140, 220
	minPlausibleAge, maxPlausibleAge       = 16, 70
)

// Metrics holds whatever the extractor could find; absent fields stay
// unset.
type Metrics struct {
	WeightKg  float64
	HasWeight bool
	HeightCm  int
	HasHeight bool
	AgeYears  int
	HasAge    bool
}

// ExtractMetrics scans a user message for weight, height, and age.
func ExtractMetrics(text string) Metrics {
	lower := strings.ToLower(text)
	var m Metrics

	if match := weightPattern.FindStringSubmatch(lower); match != nil {
		if w, err := strconv.ParseFloat(match[1], 64); err == nil &&
			w >= minPlausibleWeight && w <= maxPlausibleWeight {
			m.WeightKg = w
			m.HasWeight = true
		}
	}

	for _, pattern := range heightPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		var height int
		if strings.Contains(match[1], ".") {
			// Meters-dot notation: 1.80 → 180 cm.
			meters, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			height = int(meters * 100)
		} else {
			h, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			height = h
		}
		if height >= minPlausibleHeight && height <= maxPlausibleHeight {
			m.HeightCm = height
			m.HasHeight = true
			break
		}
	}

	for _, pattern := range agePatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		age, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if age >= minPlausibleAge && age <= maxPlausibleAge {
			m.AgeYears = age
			m.HasAge = true
			break
		}
	}

	return m
}

// Analysis is the client-side fitness summary computed from a complete
// weight/height/age triple.
type Analysis struct {
	BMI          float64
	BMICategory  string
	BasalRate    int // Mifflin-St Jeor estimate, cal/day
	Maintenance  int
	FatLoss      int
	MuscleGain   int
	ProteinGrams int // g/day
}

// Activity multipliers applied to the basal estimate.
const (
	maintenanceFactor = 1.55
	fatLossFactor     = 1.2
	muscleGainFactor  = 1.8
)

// ComputeAnalysis applies the standard formulas: BMI = weight/height²,
// a Mifflin-St Jeor basal estimate, the activity multipliers, and a
// 1.8 g/kg daily protein target.
func ComputeAnalysis(weightKg float64, heightCm, ageYears int) Analysis {
	heightM := float64(heightCm) / 100
	bmi := weightKg / (heightM * heightM)

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Normal weight"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obesity"
	}

	bmr := 10*weightKg + 6.25*float64(heightCm) - 5*float64(ageYears) + 5

	return Analysis{
		BMI:          bmi,
		BMICategory:  category,
		BasalRate:    int(math.Round(bmr)),
		Maintenance:  int(math.Round(bmr * maintenanceFactor)),
		FatLoss:      int(math.Round(bmr * fatLossFactor)),
		MuscleGain:   int(math.Round(bmr * muscleGainFactor)),
		ProteinGrams: int(math.Round(weightKg * 1.8)),
	}
}

// Render formats the analysis as a chat-ready block.
func (a Analysis) Render() string {
	return fmt.Sprintf(
		"📊 YOUR PERSONALIZED ANALYSIS:\n"+
			"• BMI: %.1f (%s)\n"+
			"• Basal Metabolism: %d cal/day\n"+
			"• Maintenance: %d cal/day\n"+
			"• Fat Loss: %d cal/day\n"+
			"• Muscle Gain: %d cal/day\n"+
			"• Daily Protein: %dg/day",
		a.BMI, a.BMICategory, a.BasalRate, a.Maintenance, a.FatLoss, a.MuscleGain, a.ProteinGrams)
}

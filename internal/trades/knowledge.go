package trades

import (
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed trades.yaml
var knowledgeYAML []byte

// Pricing is the reference pricing for one trade, in whole AUD.
type Pricing struct {
	MinRate     int      `yaml:"minRate"`
	MaxRate     int      `yaml:"maxRate"`
	DefaultRate int      `yaml:"defaultRate"`
	Materials   []string `yaml:"materials"`
	Units       []string `yaml:"units"`
	Guidance    string   `yaml:"guidance"`
}

var (
	knowledge = mustLoadKnowledge(knowledgeYAML)

	majorCities = []string{"sydney", "melbourne", "brisbane", "perth", "adelaide"}
)

const (
	majorCityMultiplier = 1.12
	regionalMultiplier  = 0.95
)

func mustLoadKnowledge(data []byte) map[Type]Pricing {
	table, err := loadKnowledge(data)
	if err != nil {
		panic(err)
	}
	return table
}

func loadKnowledge(data []byte) (map[Type]Pricing, error) {
	var raw map[string]Pricing
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("trades: decode knowledge: %w", err)
	}

	table := make(map[Type]Pricing, len(All))
	for _, trade := range All {
		p, ok := raw[string(trade)]
		if !ok {
			return nil, fmt.Errorf("trades: no pricing for %q", trade)
		}
		if p.DefaultRate <= 0 || p.MinRate > p.DefaultRate || p.DefaultRate > p.MaxRate {
			return nil, fmt.Errorf("trades: inconsistent rates for %q", trade)
		}
		p.Guidance = strings.NewReplacer(
			"{min}", strconv.Itoa(p.MinRate),
			"{max}", strconv.Itoa(p.MaxRate),
		).Replace(p.Guidance)
		table[trade] = p
	}
	if len(raw) != len(table) {
		return nil, fmt.Errorf("trades: knowledge lists %d trades, want %d", len(raw), len(table))
	}
	return table, nil
}

// PricingFor returns the reference pricing for trade. Unknown trades get Other's.
func PricingFor(trade Type) Pricing {
	if p, ok := knowledge[trade]; ok {
		return p
	}
	return knowledge[Other]
}

// Guidance returns the prompt guidance paragraph for trade.
func Guidance(trade Type) string {
	return PricingFor(trade).Guidance
}

// DefaultRate returns trade's default hourly rate adjusted for location. Major
// metropolitan areas cost more, anywhere else named is treated as regional, and an
// empty location leaves the rate untouched.
func DefaultRate(trade Type, location string) int {
	rate := PricingFor(trade).DefaultRate
	if location == "" {
		return rate
	}

	lower := strings.ToLower(location)
	for _, city := range majorCities {
		if strings.Contains(lower, city) {
			return roundHalfUp(float64(rate) * majorCityMultiplier)
		}
	}
	return roundHalfUp(float64(rate) * regionalMultiplier)
}

func roundHalfUp(x float64) int {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return int(r)
}

package planner

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Trip carries the parameters a plan is generated from. Callers validate
// Days >= 1 and TripType before handing a Trip to the generator.
type Trip struct {
	HomeLocation string
	Destination  string
	Days         int
	TripType     string
	Interests    []string
}

var vibes = []string{"fun", "relaxing", "budget-friendly", "adventurous", "memorable"}

var travelTips = []string{
	"Carry a copy of your ID and keep digital backups of important documents.",
	"Book stays and intercity travel early to get better prices.",
	"Try the local food, but stick to busy stalls.",
	"Keep some cash handy; small vendors may not accept cards.",
	"Start your days early to beat the crowds at popular spots.",
}

var basePacking = []string{"Clothes", "Power bank", "ID card"}

type packingRule struct {
	keywords []string
	items    []string
}

// Checked in order; every matching rule contributes its items.
var packingRules = []packingRule{
	{keywords: []string{"beach", "beaches"}, items: []string{"Sunscreen", "Swimwear"}},
	{keywords: []string{"mountain", "mountains"}, items: []string{"Warm jacket", "Trekking shoes"}},
	{keywords: []string{"adventure"}, items: []string{"Comfortable shoes", "First-aid kit"}},
	{keywords: []string{"culture"}, items: []string{"Camera", "Notebook"}},
	{keywords: []string{"food", "cuisine"}, items: []string{"Reusable bottle", "Snacks"}},
}

// Generator assembles offline itineraries from an explicit random source.
// A Generator is not safe for concurrent use; callers create one per plan.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with the given value. Equal seeds
// produce byte-identical plans for the same trip and budget.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// SplitInterests normalizes free-form interests text: split on commas and
// newlines, trim whitespace, drop empty tokens, keep the original order.
func SplitInterests(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	interests := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field != "" {
			interests = append(interests, field)
		}
	}
	return interests
}

// Build produces the full plan text. The section structure is fixed; only
// the vibe adjective, the per-day interest picks, and the tips vary with
// the generator's seed.
func (g *Generator) Build(trip Trip, budget Budget) string {
	vibe := vibes[g.rng.Intn(len(vibes))]

	var b strings.Builder
	fmt.Fprintf(&b, "✈️ Your %s %d-day %s trip to %s from %s 🌍\n\n",
		vibe, trip.Days, trip.TripType, trip.Destination, trip.HomeLocation)

	b.WriteString("📅 Day-by-day plan:\n")
	for day := 1; day <= trip.Days; day++ {
		interest := "Local sights"
		if len(trip.Interests) > 0 {
			interest = trip.Interests[g.rng.Intn(len(trip.Interests))]
		}
		fmt.Fprintf(&b, "Day %d: Enjoy %s in %s.\n", day, interest, trip.Destination)
	}

	daily := budget.Amount
	if trip.Days > 0 {
		daily = budget.Amount / float64(trip.Days)
	}
	fmt.Fprintf(&b, "\n💰 Budget breakdown (around %s per day):\n", formatAmount(budget.Symbol, daily))
	fmt.Fprintf(&b, "- Accommodation: %s\n", formatAmount(budget.Symbol, daily*0.4))
	fmt.Fprintf(&b, "- Food & drinks: %s\n", formatAmount(budget.Symbol, daily*0.3))
	fmt.Fprintf(&b, "- Local travel: %s\n", formatAmount(budget.Symbol, daily*0.2))
	fmt.Fprintf(&b, "- Miscellaneous: %s\n", formatAmount(budget.Symbol, daily*0.1))

	b.WriteString("\n🎒 Packing list:\n")
	for _, item := range packingFor(trip.Interests) {
		fmt.Fprintf(&b, "- %s\n", item)
	}

	b.WriteString("\n💡 Travel tips:\n")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "- %s\n", travelTips[g.rng.Intn(len(travelTips))])
	}

	fmt.Fprintf(&b, "\nHave a great time in %s, and safe travels! 🌟\n", trip.Destination)
	return b.String()
}

// packingFor builds the packing list for the given interests: the base
// items plus every matching keyword rule's items, in rule order.
func packingFor(interests []string) []string {
	items := make([]string, 0, len(basePacking))
	items = append(items, basePacking...)

	joined := strings.ToLower(strings.Join(interests, "\n"))
	for _, rule := range packingRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(joined, keyword) {
				items = append(items, rule.items...)
				break
			}
		}
	}
	return items
}

// formatAmount floors the value and renders it with the currency symbol
// and comma-grouped thousands, e.g. "₹4,000".
func formatAmount(symbol string, value float64) string {
	return symbol + groupThousands(int64(math.Floor(value)))
}

func groupThousands(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

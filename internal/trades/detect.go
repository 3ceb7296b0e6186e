package trades

import "strings"

// minScore is the lowest winning score that still counts as a confident match.
const minScore = 5

type keywordSet struct {
	trade    Type
	keywords []string
	priority int
}

// keywordSets are the per-trade phrases; priority weights more specific trades higher.
var keywordSets = []keywordSet{
	{
		trade: Plumbing,
		keywords: []string{
			"plumb", "pipe", "tap", "faucet", "toilet", "bathroom", "kitchen sink",
			"drain", "blocked", "leak", "water", "hot water", "shower", "basin",
			"sewer", "waterproof", "downpipe", "water heater", "gas",
			"bathroom renovation", "bathroom install", "toilet install", "tap install",
		},
		priority: 10,
	},
	{
		trade: Electrical,
		keywords: []string{
			"electrical", "electric", "wiring", "wire", "rewire", "power point", "socket", "outlet",
			"light", "lighting", "switch", "circuit", "fuse", "breaker", "panel",
			"ceiling fan", "exhaust fan", "downlight", "led", "safety switch",
			"smoke alarm", "security light", "solar", "solar panel",
		},
		priority: 10,
	},
	{
		trade: Gardening,
		keywords: []string{
			"garden", "lawn", "mow", "mowing", "hedge", "trim", "trimming",
			"tree", "prune", "pruning", "landscaping", "mulch", "mulching",
			"weeding", "weed", "plant", "planting", "turf", "sod", "irrigation",
			"sprinkler", "paving", "retaining wall", "fence", "fencing",
		},
		priority: 8,
	},
	{
		trade: Painting,
		keywords: []string{
			"paint", "painting", "brush", "roller", "primer", "undercoat",
			"exterior paint", "interior paint", "wall", "ceiling", "trim",
			"door", "window", "render", "rendering", "spray paint",
		},
		priority: 9,
	},
	{
		trade: Roofing,
		keywords: []string{
			"roof", "roofing", "tile", "gutter", "downpipe", "eaves", "fascia",
			"valley", "ridge", "skylight", "roof repair", "roof replacement",
			"metal roof", "tile roof", "colorbond", "roof leak",
		},
		priority: 10,
	},
	{
		trade: Carpentry,
		keywords: []string{
			"carpenter", "carpentry", "cabinet", "cupboard", "shelf", "shelving",
			"deck", "decking", "verandah", "veranda", "pergola", "wall frame",
			"framing", "stud", "joist", "beam", "door install", "window install",
			"skirting", "architrave", "moulding", "molding", "frame wall", "frame new",
		},
		priority: 10,
	},
	{
		trade: Concrete,
		keywords: []string{
			"concrete", "cement", "slab", "driveway", "pathway", "path", "patio",
			"footpath", "foundation", "footing", "render", "rendering", "stencil",
			"exposed aggregate", "polished concrete",
		},
		priority: 9,
	},
	{
		trade: Handyman,
		keywords: []string{
			"handyman", "general", "repair", "fix", "install", "assembly",
			"mount", "hang", "shelf", "picture", "tv mount", "blinds", "curtain",
			"door handle", "lock", "hinge", "maintenance", "odd jobs",
		},
		priority: 5,
	},
}

// Detect returns the trade whose keywords best match description.
//
// Each trade scores count*priority, plus count*2 when more than one of its keywords
// matched. The strictly highest score wins, ties go to the earliest trade in All, and
// a best score under minScore yields Other.
func Detect(description string) Type {
	scores := Scores(description)

	best, bestScore := Other, 0
	for _, trade := range All {
		if score := scores[trade]; score > bestScore {
			best, bestScore = trade, score
		}
	}
	if bestScore < minScore {
		return Other
	}
	return best
}

// Scores returns the raw per-trade score for description. Trades without a match are
// absent from the map.
func Scores(description string) map[Type]int {
	lower := strings.ToLower(description)
	scores := make(map[Type]int, len(keywordSets))
	for _, set := range keywordSets {
		count := countMatches(lower, set.keywords)
		if count == 0 {
			continue
		}
		score := count * set.priority
		if count > 1 {
			score += count * 2
		}
		scores[set.trade] += score
	}
	return scores
}

// Confidence estimates how sure Detect was about trade for description, in [0, 1].
func Confidence(description string, trade Type) float64 {
	if trade == Other {
		return 0.3
	}

	set, ok := keywordSetFor(trade)
	if !ok {
		return 0.5
	}

	count := countMatches(strings.ToLower(description), set.keywords)
	return min(0.95, 0.5+float64(count)*0.1)
}

func keywordSetFor(trade Type) (keywordSet, bool) {
	for _, set := range keywordSets {
		if set.trade == trade {
			return set, true
		}
	}
	return keywordSet{}, false
}

func countMatches(lower string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}

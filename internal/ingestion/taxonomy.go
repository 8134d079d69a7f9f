package ingestion

// SkillCategory maps one taxonomy tag to its keyword synonyms. Keywords are
// matched as substrings of normalized text; the first hit confirms the
// category and stops the synonym scan.
type SkillCategory struct {
	Tag      string
	Keywords []string
}

// DefaultTaxonomy returns the standard skill taxonomy. Definition order is
// the output order of extracted tags, so changing it changes downstream
// display.
func DefaultTaxonomy() []SkillCategory {
	return []SkillCategory{
		{Tag: "engine", Keywords: []string{"engine", "timing belt", "cylinder head", "clutch", "oil change", "camshaft"}},
		{Tag: "braking", Keywords: []string{"brake", "braking", "disc", "pad", "abs", "caliper"}},
		{Tag: "electrical", Keywords: []string{"electrical", "battery", "alternator", "starter", "hybrid", "diagnostic", "scan-tool", "injection"}},
		{Tag: "tires", Keywords: []string{"tire", "tyre", "alignment", "balancing", "geometry"}},
		{Tag: "air-conditioning", Keywords: []string{"air conditioning", "air-conditioning", "a/c", "refrigerant", "recharge"}},
		{Tag: "bodywork", Keywords: []string{"bodywork", "paint", "dent removal", "body repair"}},
		{Tag: "utility-fleet", Keywords: []string{"utility vehicle", "light commercial", "fleet", "lcv"}},
	}
}

// DefaultGazetteer returns the ordered list of target cities: the home
// metropolitan region first, then other major cities. List order acts as the
// priority tie-break when a CV mentions several cities.
func DefaultGazetteer() []string {
	return []string{
		"marseille", "aix-en-provence", "aix en provence", "aubagne",
		"vitrolles", "cassis", "la ciotat", "martigues", "salon",
		"toulon", "nice", "cannes", "antibes", "avignon",
		"lyon", "toulouse", "paris", "bordeaux", "nantes",
	}
}

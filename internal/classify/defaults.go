package classify

import "github.com/pfrederiksen/ihcc-events/internal/event"

// DefaultRuleset returns the club's standard categorization rules.
//
// Order matters and is part of the contract: Golf outranks everything so a
// golf tournament isn't claimed by the generic Social "tournament"-adjacent
// keywords; Kids outranks Fitness so "Jr. Tennis" is a kids event rather
// than a tennis clinic; Social closes the list as the catch-all and is also
// the default for text matching nothing at all.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		Default: event.CategorySocial,
		Rules: []Rule{
			{
				Category: event.CategoryGolf,
				Keywords: []string{"golf", "tee", "course", "tournament", "scramble", "pro shop"},
			},
			{
				Category: event.CategoryKids,
				Keywords: []string{
					"jr.", "junior", "kids", "children", "son", "daughter",
					"youth", "father-son", "mother-daughter",
				},
				Pairs: []Pair{
					{Lead: "family", With: []string{"fun", "night", "activity"}},
				},
			},
			{
				Category: event.CategoryFitness,
				Keywords: []string{
					"fitness", "workout", "training", "cardio", "sculpt", "barre",
					"aqua", "pool", "circuit", "conditioning", "weights", "wow",
					"strength", "exercise", "yoga", "pilates", "zumba", "spin",
					"massage", "wellness", "h2o",
				},
				Pairs: []Pair{
					{Lead: "clinic", With: []string{"fitness", "training"}},
					{Lead: "tennis", With: []string{"clinic", "lesson"}},
				},
			},
			{
				Category: event.CategoryDining,
				Keywords: []string{
					"dining", "dinner", "lunch", "breakfast", "brunch", "wine",
					"tasting", "chef", "menu", "food", "cuisine", "restaurant",
					"buffet", "cocktail", "happy hour", "meal", "culinary",
				},
			},
			{
				Category: event.CategorySocial,
				Keywords: []string{
					"social", "party", "event", "member", "guest", "celebration",
					"night", "fun", "entertainment", "music", "dance", "mixer",
					"meeting", "trivia", "game",
				},
			},
		},
	}
}

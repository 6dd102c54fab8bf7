package catalog

import "github.com/dshills/axiom/internal/schema"

func colorRules() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "color-1",
			Category: "color",
			Title:    "60-30-10 Rule",
			Desc:     "60% Neutral (Bg/Text), 30% Secondary (Borders/Subtitles), 10% Primary (Action color).",
			Do:       "Mostly whites/greys, splashes of blue",
			Dont:     "Blue header, blue sidebar, blue buttons",
			Tags:     []string{"Balance"},
		},
		{
			ID:       "color-2",
			Category: "color",
			Title:    "Never Pure Black",
			Desc:     "Pure black (#000000) creates eye strain against white. Use a very dark grey or blue-grey.",
			Do:       "neutral-900 (#0f172a)",
			Dont:     "#000000",
			Tags:     []string{"Contrast"},
		},
		{
			ID:       "color-3",
			Category: "color",
			Title:    "Colored Shadows",
			Desc:     "Shadows in real life are rarely grey. They pick up the color of the object. Mix your brand color into the shadow.",
			Do:       "shadow-indigo-500/20",
			Dont:     "shadow-black/20",
			Tags:     []string{"Depth", "Vibe"},
		},
		{
			ID:       "color-4",
			Category: "color",
			Title:    "Semantic Colors",
			Desc:     "Don't use Red/Green/Yellow for decoration. Reserve them for status (Error/Success/Warning).",
			Do:       "Blue/Purple/Brand for accents",
			Dont:     "Red icon for a 'Like' button",
			Tags:     []string{"Meaning"},
		},
		{
			ID:       "color-5",
			Category: "color",
			Title:    "Border Colors",
			Desc:     "Borders should be subtle. If your text is neutral-900, your borders should be neutral-200.",
			Do:       "Border-neutral-200",
			Dont:     "Border-neutral-400 (Too heavy)",
			Tags:     []string{"Subtlety"},
		},
		{
			ID:       "color-6",
			Category: "color",
			Title:    "Double Contrast for Borders",
			Desc:     "If a button is an outline, the border needs to be darker than a regular divider to be visible.",
			Do:       "Border-neutral-300 for inputs/buttons",
			Dont:     "Border-neutral-100",
			Tags:     []string{"Accessibility"},
		},
		{
			ID:       "color-7",
			Category: "color",
			Title:    "Hover = Same Hue",
			Desc:     "Hover and active states should stay within the same hue. Only change lightness or saturation.",
			Do:       "Blue-600 -> Blue-700",
			Dont:     "Blue -> Green on hover",
			Tags:     []string{"States", "Consistency"},
		},
	}
}

// colorAdditions are the rules added to the category after its first release.
func colorAdditions() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "color-8",
			Category: "color",
			Title:    "Dark Mode Isn't Inverted",
			Desc:     "Dark mode is NOT just inverting colors. Reduce surface contrast, desaturate brand colors, and flip the elevation model (lighter = higher).",
			Do:       "Dark: gray-900 bg / gray-800 card / desaturated brand",
			Dont:     "filter: invert(1) on the whole page",
			Tags:     []string{"Dark Mode", "Theming"},
		},
		{
			ID:       "color-9",
			Category: "color",
			Title:    "Accessible Contrast Ratios",
			Desc:     "Text must meet WCAG AA contrast (4.5:1 for body, 3:1 for large text). Don't eyeball it — check it.",
			Do:       "Contrast ratio 4.5:1+ (checked)",
			Dont:     "Light grey text on white (#aaa on #fff)",
			Tags:     []string{"Accessibility", "WCAG"},
		},
		{
			ID:       "color-10",
			Category: "color",
			Title:    "Opacity Over New Colors",
			Desc:     "Use opacity to create hover/pressed states and subtle backgrounds (bg-blue-500/10) instead of picking new hex colors for every state.",
			Do:       "bg-blue-500/10 for tint",
			Dont:     "#e8f0fe custom hex per state",
			Tags:     []string{"States", "Efficiency"},
		},
	}
}

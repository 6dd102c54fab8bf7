package catalog

import "github.com/dshills/axiom/internal/schema"

func layoutRules() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "layout-1",
			Category: "layout",
			Title:    "The 4pt Grid System",
			Desc:     "Every margin, padding, and height must be divisible by 4. Stop picking random numbers.",
			Do:       "4px, 8px, 16px, 24px, 32px, 48px",
			Dont:     "13px, 21px, 5px",
			Tags:     []string{"Spacing", "Consistency"},
		},
		{
			ID:       "layout-2",
			Category: "layout",
			Title:    "Text Width Limits",
			Desc:     "Lines of text should be 45-75 characters long. Anything longer fatigues the eye.",
			Do:       "max-w-prose (approx 65ch)",
			Dont:     "width: 100% on a 27 inch monitor",
			Tags:     []string{"Readability"},
		},
		{
			ID:       "layout-3",
			Category: "layout",
			Title:    "Group by Proximity",
			Desc:     "Items related to each other should be closer than items that aren't. Space > Lines.",
			Do:       "Label (gap-2) Input (gap-6) Next Label",
			Dont:     "Label (gap-4) Input (gap-4) Next Label",
			Tags:     []string{"Gestalt", "Forms"},
		},
		{
			ID:       "layout-4",
			Category: "layout",
			Title:    "Visual vs Mathematical Center",
			Desc:     "Icons with asymmetric weight (like a Play triangle) look off-center if mathematically centered.",
			Do:       "Nudge Play icon right 1-2px",
			Dont:     "Absolute center",
			Tags:     []string{"Icons", "Polish"},
		},
		{
			ID:       "layout-5",
			Category: "layout",
			Title:    "Button Padding Formula",
			Desc:     "Horizontal padding should be roughly 1.5x - 2x the Vertical padding.",
			Do:       "Py-2 Px-4 (8px / 16px)",
			Dont:     "Py-2 Px-2 (Square padding looks odd on text)",
			Tags:     []string{"Buttons"},
		},
		{
			ID:       "layout-6",
			Category: "layout",
			Title:    "Optical Alignment of Icons",
			Desc:     "When placing an icon next to text, align the icon to the Cap Height of the text, not the full line height.",
			Do:       "Visual check alignment",
			Dont:     "Flex-center automatically (sometimes fails)",
			Tags:     []string{"Icons"},
		},
		{
			ID:       "layout-7",
			Category: "layout",
			Title:    "The Container Fallacy",
			Desc:     "Don't put everything in a box with a border. Use background color or just whitespace to separate sections.",
			Do:       "White card on light grey bg",
			Dont:     "White card with grey border on white bg",
			Tags:     []string{"Refactoring UI"},
		},
		{
			ID:       "layout-8",
			Category: "layout",
			Title:    "Consistent Gutters",
			Desc:     "Use a single gutter size within a layout region. Mixed gaps feel accidental.",
			Do:       "Cards: gap-6 throughout",
			Dont:     "Rows gap-6, columns gap-3",
			Tags:     []string{"Grids", "Consistency"},
		},
	}
}

// layoutAdditions are the rules added to the category after its first release.
func layoutAdditions() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "layout-9",
			Category: "layout",
			Title:    "Responsive Spacing Scaling",
			Desc:     "Don't use the same spacing at every breakpoint. Reduce padding/margins on smaller screens proportionally.",
			Do:       "p-6 lg / p-4 md / p-3 sm",
			Dont:     "p-6 at all breakpoints",
			Tags:     []string{"Responsive", "Mobile"},
		},
		{
			ID:       "layout-10",
			Category: "layout",
			Title:    "Vertical Rhythm",
			Desc:     "Baseline spacing between sections should follow a consistent scale (e.g., 24 → 48 → 72). Random jumps between section gaps feel disconnected.",
			Do:       "gap-6 → gap-12 → gap-18",
			Dont:     "gap-6 → gap-10 → gap-14",
			Tags:     []string{"Spacing", "Consistency"},
		},
		{
			ID:       "layout-11",
			Category: "layout",
			Title:    "Z-Index Scale",
			Desc:     "Define a z-index system (base: 0, dropdown: 100, sticky: 200, modal: 300, toast: 400). Never use arbitrary values.",
			Do:       "z-dropdown: 100, z-modal: 300",
			Dont:     "z-index: 9999",
			Tags:     []string{"System", "Layering"},
		},
	}
}

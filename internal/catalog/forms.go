package catalog

import "github.com/dshills/axiom/internal/schema"

func formRules() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "form-1",
			Category: "forms",
			Title:    "Labels Top Aligned",
			Desc:     "Top-aligned labels work best on mobile and allow for variable label length (translation friendly).",
			Do:       "Label above Input",
			Dont:     "Label left of Input (Desktop only)",
			Tags:     []string{"Layout"},
		},
		{
			ID:       "form-2",
			Category: "forms",
			Title:    "No Placeholders as Labels",
			Desc:     "Placeholders disappear when you type. Users forget what the field was. Use persistent labels.",
			Do:       "Label: Email / Placeholder: you@example.com",
			Dont:     "Placeholder: Email Address",
			Tags:     []string{"UX", "Accessibility"},
		},
		{
			ID:       "form-3",
			Category: "forms",
			Title:    "Mark Optional, Not Required",
			Desc:     "If 90% of fields are required, don't put red asterisks everywhere. Just mark the exceptions as (Optional).",
			Do:       "Phone Number (Optional)",
			Dont:     "Name* Email* Address* City*",
			Tags:     []string{"Noise Reduction"},
		},
		{
			ID:       "form-4",
			Category: "forms",
			Title:    "Input Width Hints",
			Desc:     "The width of the input should hint at the expected content length.",
			Do:       "Zip code = Short input / Address = Long input",
			Dont:     "Zip code = Full width input",
			Tags:     []string{"Affordance"},
		},
		{
			ID:       "form-5",
			Category: "forms",
			Title:    "Checkbox vs Radio",
			Desc:     "Radio = Select ONE. Checkbox = Select MANY. Never mix this mental model.",
			Do:       "Pick Plan: Radio",
			Dont:     "Pick Plan: Checkbox",
			Tags:     []string{"Logic"},
		},
		{
			ID:       "form-6",
			Category: "forms",
			Title:    "Dropdown vs Radio",
			Desc:     "If you have < 5 options, show them all as Radio buttons. Don't hide them in a dropdown.",
			Do:       "3 Options = Radios",
			Dont:     "3 Options = Dropdown (Extra click)",
			Tags:     []string{"Efficiency"},
		},
		{
			ID:       "form-7",
			Category: "forms",
			Title:    "Switch vs Checkbox",
			Desc:     "Switches imply immediate activation (like a light switch). Checkboxes imply 'Select now, Submit later'.",
			Do:       "Dark Mode = Switch",
			Dont:     "Subscribe to newsletter = Switch",
			Tags:     []string{"Semantics"},
		},
		{
			ID:       "form-8",
			Category: "forms",
			Title:    "Validate on Blur",
			Desc:     "Inline validation should trigger after the user finishes a field, not on every keystroke.",
			Do:       "Error appears after leaving field",
			Dont:     "Error flashes on first character",
			Tags:     []string{"Validation", "Timing"},
		},
		{
			ID:       "form-9",
			Category: "forms",
			Title:    "Format Hints",
			Desc:     "Show an example or format hint when a strict pattern is required.",
			Do:       "MM / YY hint",
			Dont:     "No format hint",
			Tags:     []string{"Clarity", "Data Entry"},
		},
	}
}

// formAdditions are the rules added to the category after its first release.
func formAdditions() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "form-10",
			Category: "forms",
			Title:    "Single Column Forms",
			Desc:     "Multi-column forms slow completion. Use single column unless fields are logically paired (First/Last name, City/State).",
			Do:       "Single column, stacked fields",
			Dont:     "Three columns of unrelated fields",
			Tags:     []string{"Layout", "Completion Rate"},
		},
		{
			ID:       "form-11",
			Category: "forms",
			Title:    "Smart Defaults",
			Desc:     "Pre-fill fields with the most common answer when possible (e.g., default country from locale, today's date for date pickers).",
			Do:       "Country auto-detected from locale",
			Dont:     "Empty country dropdown (200+ options)",
			Tags:     []string{"Efficiency", "UX"},
		},
		{
			ID:       "form-12",
			Category: "forms",
			Title:    "Success State Feedback",
			Desc:     "Show positive confirmation after successful submission (not just absence of errors). Users need to know it worked.",
			Do:       "Green checkmark + 'Saved successfully'",
			Dont:     "Form just resets silently",
			Tags:     []string{"Feedback", "Trust"},
		},
	}
}

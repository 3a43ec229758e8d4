package seed

import "github.com/zatekoja/clinicsite/internal/domain/entities"

// PageContent returns the default copy for every editable page
func PageContent() entities.PageContent {
	return entities.PageContent{
		"home": {
			"hero": {
				"title":    "Compassionate care, close to home",
				"subtitle": "Outpatient addiction and mental health treatment for adults and families.",
				"cta":      "Find a location",
			},
			"about": {
				"heading": "Why Harbor Health",
				"body":    "Our clinicians combine evidence-based treatment with a welcoming, judgement-free environment.",
			},
		},
		"about": {
			"hero": {
				"title":    "About Harbor Health",
				"subtitle": "Serving our community since 2009.",
			},
			"mission": {
				"heading": "Our mission",
				"body":    "To make high quality behavioural health care accessible to everyone who needs it.",
			},
		},
		"services": {
			"hero": {
				"title":    "Our services",
				"subtitle": "Care plans built around each patient.",
			},
			"outpatient": {
				"heading": "Intensive outpatient program",
				"body":    "Structured therapy three to five days a week while you keep living at home.",
			},
			"mat": {
				"heading": "Medication-assisted treatment",
				"body":    "FDA-approved medications combined with counselling and peer support.",
			},
		},
		"contact": {
			"hero": {
				"title":    "Contact us",
				"subtitle": "Call, email or stop by any of our locations.",
			},
			"details": {
				"phone": "(555) 010-2000",
				"email": "hello@harborhealth.example",
			},
		},
	}
}

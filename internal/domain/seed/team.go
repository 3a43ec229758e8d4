// Package seed holds the static records used to initialise empty stores and
// to answer reads when no store is reachable. Every function returns a fresh
// value, so callers may mutate what they receive.
package seed

import "github.com/zatekoja/clinicsite/internal/domain/entities"

// TeamMembers returns the clinical team roster
func TeamMembers() []entities.TeamMember {
	return []entities.TeamMember{
		{
			ID:          1,
			Name:        "Dr. Amara Okafor",
			Title:       "Medical Director",
			Email:       "a.okafor@harborhealth.example",
			Bio:         "Board-certified in family and addiction medicine, Dr. Okafor leads clinical care across all Harbor Health sites.",
			Education:   "MD, University of Michigan Medical School",
			Specialties: []string{"Addiction Medicine", "Family Medicine", "Medication-Assisted Treatment"},
			Image:       "/images/team/amara-okafor.jpg",
		},
		{
			ID:          2,
			Name:        "Daniel Reyes, LCSW",
			Title:       "Clinical Therapist",
			Email:       "d.reyes@harborhealth.example",
			Bio:         "Daniel provides individual and group therapy with a focus on trauma-informed care.",
			Education:   "MSW, Columbia University",
			Specialties: []string{"Trauma-Informed Care", "Group Therapy", "CBT"},
			Image:       "/images/team/daniel-reyes.jpg",
		},
		{
			ID:          3,
			Name:        "Priya Nair, PMHNP-BC",
			Title:       "Psychiatric Nurse Practitioner",
			Email:       "p.nair@harborhealth.example",
			Bio:         "Priya manages psychiatric evaluations and medication management for adults and adolescents.",
			Education:   "DNP, Johns Hopkins School of Nursing",
			Specialties: []string{"Psychiatry", "Medication Management", "Adolescent Care"},
			Image:       "/images/team/priya-nair.jpg",
		},
		{
			ID:          4,
			Name:        "Marcus Bell, CPRS",
			Title:       "Peer Recovery Specialist",
			Email:       "m.bell@harborhealth.example",
			Bio:         "Marcus draws on his own recovery to support patients through every stage of treatment.",
			Education:   "Certified Peer Recovery Specialist",
			Specialties: []string{"Peer Support", "Recovery Coaching"},
			Image:       "/images/team/marcus-bell.jpg",
		},
	}
}

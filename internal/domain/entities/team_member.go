package entities

// TeamMember is a clinician shown on the public team page. The roster is
// stored as one document and replaced as a whole.
type TeamMember struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Email       string   `json:"email"`
	Bio         string   `json:"bio"`
	Education   string   `json:"education"`
	Specialties []string `json:"specialties"`
	Image       string   `json:"image"`
}

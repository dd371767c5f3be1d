package candidateapimodels

type ProfileData struct {
	Headline     string `json:"headline"`
	Summary      string `json:"summary"`
	Skills       string `json:"skills"` // через запятую
	Location     string `json:"location"`
	Salary       int    `json:"salary"`
	LinkedinURL  string `json:"linkedin_url"`
	PortfolioURL string `json:"portfolio_url"`
}

type ProfileView struct {
	ProfileData
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

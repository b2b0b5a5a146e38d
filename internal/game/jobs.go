package game

// JobOffer is one position a player can accept.
type JobOffer struct {
	Title  string  `json:"title"`
	Salary float64 `json:"salary"`
}

// JobOffersFor returns the three positions open to an education tier.
// Tiers without a job market (still in school) get nothing.
func JobOffersFor(education string) []JobOffer {
	switch education {
	case EducationHighSchoolGrad:
		return []JobOffer{
			{Title: "Retail Associate", Salary: 25000},
			{Title: "Food Service Worker", Salary: 22000},
			{Title: "Warehouse Worker", Salary: 28000},
		}
	case EducationTradeSchool:
		return []JobOffer{
			{Title: "Electrician Apprentice", Salary: 35000},
			{Title: "Plumber Assistant", Salary: 32000},
			{Title: "HVAC Technician", Salary: 38000},
		}
	case EducationCollegeGrad:
		return []JobOffer{
			{Title: "Entry-Level Accountant", Salary: 50000},
			{Title: "Marketing Coordinator", Salary: 45000},
			{Title: "Software Developer", Salary: 65000},
		}
	default:
		return nil
	}
}

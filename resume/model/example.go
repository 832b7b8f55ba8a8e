package model

// Example returns the built-in sample resume shown when a user starts from
// the example seed instead of a blank document.
func Example() ResumeDocument {
	return ResumeDocument{
		Personal: PersonalInfo{
			FullName: "Jordan Reyes",
			Email:    "jordan.reyes@example.com",
			Phone:    "+1 (555) 014-2288",
			Location: "Austin, TX",
			LinkedIn: "https://linkedin.com/in/jordanreyes",
			GitHub:   "https://github.com/jordanreyes",
		},
		Summary: "Backend engineer with six years of experience building data-heavy services, focused on reliability and clear operational ownership.",
		Skills: Skills{
			Technical: []string{"Go", "PostgreSQL", "Kubernetes", "gRPC", "Terraform"},
			Soft:      []string{"Mentoring", "Incident response", "Technical writing"},
		},
		Work: []WorkEntry{
			{
				Title:       "Senior Software Engineer",
				Company:     "Brightline Systems",
				Location:    "Austin, TX",
				Description: "Own the billing ingestion pipeline processing 40M events/day; cut end-to-end latency by 60% and led the migration off a legacy queue.",
				StartDate:   "2022-03",
				EndDate:     "Present",
			},
			{
				Title:       "Software Engineer",
				Company:     "Harbor Analytics",
				Description: "Built customer-facing reporting APIs and the internal feature-flag service used by every product team.",
				StartDate:   "2019-06",
				EndDate:     "2022-02",
			},
		},
		Projects: []ProjectEntry{
			{
				Name:        "queuebird",
				TechStack:   "Go, NATS, SQLite",
				Description: "Single-binary job queue with at-least-once delivery and a built-in admin UI.",
				Link:        "https://github.com/jordanreyes/queuebird",
			},
		},
		Education: []EducationEntry{
			{
				School:    "University of Texas at Austin",
				Degree:    "B.S. Computer Science",
				StartDate: "2015",
				EndDate:   "2019",
				GPA:       "3.7",
			},
		},
		Certifications: []string{"CKA: Certified Kubernetes Administrator"},
		Extras: &Extras{
			Languages: []string{"English", "Spanish"},
			Interests: []string{"Climbing", "Home automation"},
		},
	}
}

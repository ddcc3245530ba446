package document

// Sample returns the built-in sample resume used by the "load sample" action.
func Sample() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			FullName: "Jordan Avery",
			Email:    "jordan.avery@email.com",
			Phone:    "+1 555 123 4567",
			Location: "Austin, TX",
			LinkedIn: "linkedin.com/in/jordanavery",
			GitHub:   "github.com/jordanavery",
			Website:  "jordanavery.dev",
		},
		Summary: "Senior backend engineer with 5+ years of experience building scalable web " +
			"services. Deep expertise in Go and cloud infrastructure, with a focus on performance, " +
			"reliability, and mentoring junior engineers.",
		Experience: []ExperienceEntry{
			{
				ID:        "1",
				Company:   "Northwind Labs",
				Position:  "Senior Backend Engineer",
				StartDate: "January 2021",
				EndDate:   "",
				Current:   true,
				Description: "• Redesigned the order-processing pipeline in Go, cutting p99 latency by 40%.\n" +
					"• Mentored a team of five junior engineers and ran the code review process.\n" +
					"• Worked with product and design to ship features that raised retention by 12%.",
			},
			{
				ID:        "2",
				Company:   "Acme Digital",
				Position:  "Software Engineer",
				StartDate: "June 2018",
				EndDate:   "December 2020",
				Current:   false,
				Description: "• Built and maintained REST APIs serving 20+ enterprise clients.\n" +
					"• Introduced integration testing that reduced production incidents by a third.\n" +
					"• Migrated legacy services to containerized deployments.",
			},
		},
		Education: []EducationEntry{
			{
				ID:        "1",
				School:    "University of Texas at Austin",
				Degree:    "B.S.",
				Field:     "Computer Science",
				StartDate: "2014",
				EndDate:   "2018",
				Current:   false,
			},
		},
		Skills: "Go, PostgreSQL, Kubernetes, gRPC, Docker, Git, REST API, GraphQL",
	}
}

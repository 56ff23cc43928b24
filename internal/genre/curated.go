package genre

// CuratedEntry is one row of the hand-maintained award table: prize winners
// and shortlisted titles served without any network call. The table is small
// on purpose; it exists to guarantee at least one prestige source even when
// every external provider is down.
type CuratedEntry struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Award       string `json:"award"`
	Year        int    `json:"year"`
	Description string `json:"description"`
}

func defaultCurated() []CuratedEntry {
	return []CuratedEntry{
		{
			Title:       "Demon Copperhead",
			Author:      "Barbara Kingsolver",
			Genre:       "fiction",
			Award:       "Pulitzer Prize for Fiction",
			Year:        2023,
			Description: "A modern retelling of David Copperfield set in Appalachia, following a boy born into poverty through foster care, addiction and survival.",
		},
		{
			Title:       "Trust",
			Author:      "Hernan Diaz",
			Genre:       "fiction",
			Award:       "Pulitzer Prize for Fiction",
			Year:        2023,
			Description: "Four nested narratives unravel the myth of a Wall Street tycoon and the wife written out of his story.",
		},
		{
			Title:       "The Netanyahus",
			Author:      "Joshua Cohen",
			Genre:       "fiction",
			Award:       "Pulitzer Prize for Fiction",
			Year:        2022,
			Description: "A campus comedy about an obscure historian asked to host the combative Netanyahu family for a faculty interview.",
		},
		{
			Title:       "Orbital",
			Author:      "Samantha Harvey",
			Genre:       "fiction",
			Award:       "Booker Prize",
			Year:        2024,
			Description: "Six astronauts circle the Earth over a single day, watching storms, borders and their own lives from above.",
		},
		{
			Title:       "Prophet Song",
			Author:      "Paul Lynch",
			Genre:       "fiction",
			Award:       "Booker Prize",
			Year:        2023,
			Description: "A mother tries to hold her family together as Ireland slides into authoritarianism and civil war.",
		},
		{
			Title:       "Tomorrow, and Tomorrow, and Tomorrow",
			Author:      "Gabrielle Zevin",
			Genre:       "fiction",
			Award:       "Goodreads Choice Award",
			Year:        2022,
			Description: "Two friends build video games together across three decades of creative partnership, love and loss.",
		},
		{
			Title:       "King: A Life",
			Author:      "Jonathan Eig",
			Genre:       "biography",
			Award:       "Pulitzer Prize for Biography",
			Year:        2024,
			Description: "The first full biography of Martin Luther King Jr. in decades, drawing on newly released FBI files and personal archives.",
		},
		{
			Title:       "The Wager",
			Author:      "David Grann",
			Genre:       "history",
			Award:       "National Book Award Finalist",
			Year:        2023,
			Description: "Shipwreck, mutiny and competing accounts of the truth after a British warship wrecks off Patagonia in 1741.",
		},
		{
			Title:       "Master Slave Husband Wife",
			Author:      "Ilyon Woo",
			Genre:       "history",
			Award:       "Pulitzer Prize for Biography",
			Year:        2024,
			Description: "The true story of Ellen and William Craft, who escaped slavery in 1848 with Ellen disguised as a white male planter.",
		},
		{
			Title:       "An Immense World",
			Author:      "Ed Yong",
			Genre:       "science",
			Award:       "Royal Society Science Book Prize",
			Year:        2023,
			Description: "A tour of animal senses, from electric fields to echolocation, and the hidden realities they reveal.",
		},
		{
			Title:       "Breath: The New Science of a Lost Art",
			Author:      "James Nestor",
			Genre:       "health",
			Award:       "Goodreads Choice Award",
			Year:        2020,
			Description: "An investigation into how breathing went wrong for modern humans and what ancient practices get right.",
		},
		{
			Title:       "Chip War",
			Author:      "Chris Miller",
			Genre:       "technology",
			Award:       "Financial Times Business Book of the Year",
			Year:        2022,
			Description: "How semiconductors became the world's most critical resource and the geopolitical fight to control them.",
		},
		{
			Title:       "The Anxious Generation",
			Author:      "Jonathan Haidt",
			Genre:       "psychology",
			Award:       "Goodreads Choice Award",
			Year:        2024,
			Description: "How the shift from play-based to phone-based childhood is driving an epidemic of adolescent mental illness.",
		},
		{
			Title:       "Empire of Pain",
			Author:      "Patrick Radden Keefe",
			Genre:       "current_affairs",
			Award:       "Baillie Gifford Prize",
			Year:        2021,
			Description: "Three generations of the Sackler family and the dynasty that built its fortune on OxyContin.",
		},
		{
			Title:       "Four Thousand Weeks",
			Author:      "Oliver Burkeman",
			Genre:       "philosophy",
			Award:       "Porchlight Business Book Award",
			Year:        2021,
			Description: "Time management for mortals: embracing finitude instead of optimizing every hour of a short life.",
		},
		{
			Title:       "The Creative Act",
			Author:      "Rick Rubin",
			Genre:       "self_help",
			Award:       "Goodreads Choice Award Nominee",
			Year:        2023,
			Description: "A meditation on creativity as a way of being, drawn from decades of producing era-defining records.",
		},
	}
}

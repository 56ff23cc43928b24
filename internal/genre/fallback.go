package genre

// FallbackBook is one entry of a static shelf served when the pipeline ends
// up with zero scored candidates. Fallback shelves are the degradation floor:
// the engine returns them instead of an error.
type FallbackBook struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

// FallbackFor returns the shelf for the given genre tag, or the general
// shelf when the tag has none.
func (t *Taxonomy) FallbackFor(tag string) []FallbackBook {
	if shelf, ok := t.Fallbacks[tag]; ok && len(shelf) > 0 {
		return shelf
	}
	return t.Fallbacks["general"]
}

func defaultFallbacks() map[string][]FallbackBook {
	return map[string][]FallbackBook{
		"general": {
			{Title: "Sapiens", Author: "Yuval Noah Harari", Genre: "history", Description: "A sweeping history of humankind from the Stone Age to the present."},
			{Title: "Atomic Habits", Author: "James Clear", Genre: "self_help", Description: "A practical framework for building good habits and breaking bad ones through tiny changes."},
			{Title: "Educated", Author: "Tara Westover", Genre: "biography", Description: "A memoir of growing up in a survivalist family in Idaho and the transformative power of education."},
			{Title: "Thinking, Fast and Slow", Author: "Daniel Kahneman", Genre: "psychology", Description: "The two systems that drive how we think, and the biases they produce."},
			{Title: "Project Hail Mary", Author: "Andy Weir", Genre: "fiction", Description: "A lone astronaut must save humanity armed with nothing but science and an unlikely ally."},
		},
		"fiction": {
			{Title: "The Midnight Library", Author: "Matt Haig", Genre: "fiction", Description: "Between life and death lies a library of all the lives you could have lived."},
			{Title: "A Gentleman in Moscow", Author: "Amor Towles", Genre: "fiction", Description: "A count sentenced to house arrest in a grand Moscow hotel builds a life of purpose within its walls."},
			{Title: "Klara and the Sun", Author: "Kazuo Ishiguro", Genre: "fiction", Description: "An artificial friend observes human love and loneliness with devastating clarity."},
			{Title: "The Overstory", Author: "Richard Powers", Genre: "fiction", Description: "Nine strangers are drawn together by trees in a novel about the world beneath human attention."},
		},
		"business": {
			{Title: "Zero to One", Author: "Peter Thiel", Genre: "business", Description: "Notes on startups, and how to build companies that create something new."},
			{Title: "The Hard Thing About Hard Things", Author: "Ben Horowitz", Genre: "business", Description: "Honest advice on the hardest problems of running a company, from a founder who lived them."},
			{Title: "Shoe Dog", Author: "Phil Knight", Genre: "business", Description: "The founder of Nike on the messy, improbable early years of the company."},
		},
		"science": {
			{Title: "The Gene", Author: "Siddhartha Mukherjee", Genre: "science", Description: "An intimate history of the gene and the quest to understand heredity."},
			{Title: "Astrophysics for People in a Hurry", Author: "Neil deGrasse Tyson", Genre: "science", Description: "The essentials of the cosmos, delivered in digestible chapters."},
			{Title: "Entangled Life", Author: "Merlin Sheldrake", Genre: "science", Description: "How fungi shape our world, our minds and our future."},
		},
		"history": {
			{Title: "The Splendid and the Vile", Author: "Erik Larson", Genre: "history", Description: "Churchill's first year as prime minister, told through the Blitz."},
			{Title: "SPQR", Author: "Mary Beard", Genre: "history", Description: "A history of ancient Rome that challenges the stories Rome told about itself."},
			{Title: "Guns, Germs, and Steel", Author: "Jared Diamond", Genre: "history", Description: "Why Eurasian civilizations conquered others, traced to geography rather than biology."},
		},
		"self_help": {
			{Title: "Deep Work", Author: "Cal Newport", Genre: "self_help", Description: "Rules for focused success in a distracted world."},
			{Title: "The Subtle Art of Not Giving a F*ck", Author: "Mark Manson", Genre: "self_help", Description: "A counterintuitive approach to living a good life by caring about less."},
			{Title: "Mindset", Author: "Carol S. Dweck", Genre: "psychology", Description: "How the belief that abilities can grow changes what people achieve."},
		},
		"biography": {
			{Title: "Steve Jobs", Author: "Walter Isaacson", Genre: "biography", Description: "The authorized biography of Apple's co-founder, from exclusive interviews."},
			{Title: "Born a Crime", Author: "Trevor Noah", Genre: "biography", Description: "Stories from a South African childhood under and after apartheid."},
			{Title: "When Breath Becomes Air", Author: "Paul Kalanithi", Genre: "biography", Description: "A young neurosurgeon faces terminal cancer and asks what makes life worth living."},
		},
	}
}

package portfolio

// AllCategories selects every tech item.
const AllCategories = "All"

// Tech is one tile in the tech-stack panel. Level is a 0-100 proficiency bar.
type Tech struct {
	Name     string
	Icon     string
	Category string
	Level    int
}

var TechStack = []Tech{
	{Name: "Python", Icon: "🐍", Category: "Languages", Level: 95},
	{Name: "TypeScript", Icon: "📘", Category: "Languages", Level: 90},
	{Name: "JavaScript", Icon: "💛", Category: "Languages", Level: 92},
	{Name: "React", Icon: "⚛️", Category: "Frontend", Level: 90},
	{Name: "Next.js", Icon: "▲", Category: "Frontend", Level: 88},
	{Name: "TailwindCSS", Icon: "🎨", Category: "Frontend", Level: 92},
	{Name: "Node.js", Icon: "💚", Category: "Backend", Level: 85},
	{Name: "FastAPI", Icon: "⚡", Category: "Backend", Level: 88},
	{Name: "PostgreSQL", Icon: "🐘", Category: "Database", Level: 82},
	{Name: "TensorFlow", Icon: "🧠", Category: "ML/AI", Level: 90},
	{Name: "PyTorch", Icon: "🔥", Category: "ML/AI", Level: 88},
	{Name: "Docker", Icon: "🐳", Category: "DevOps", Level: 80},
}

// Categories lists AllCategories followed by each distinct category in
// first-seen order.
func Categories(items []Tech) []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, t := range items {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// Filter returns the items in category, or all items for AllCategories or "".
func Filter(items []Tech, category string) []Tech {
	if category == "" || category == AllCategories {
		return append([]Tech(nil), items...)
	}
	var out []Tech
	for _, t := range items {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

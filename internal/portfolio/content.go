// Package portfolio holds the site's static content.
package portfolio

var (
	Name  = "John Doe"
	Email = "hello@johndoe.dev"

	Tagline = `Crafting digital experiences where logic meets creativity.
	Specializing in scalable web architecture and intelligent systems.`

	Roles = []string{
		"Machine Learning Engineer",
		"Full Stack Developer",
		"Data Scientist",
		"AI Researcher",
	}
)

// Experience is one entry on the timeline.
type Experience struct {
	Year         string
	Title        string
	Company      string
	Description  string
	Technologies []string
}

var Experiences = []Experience{
	{
		Year:         "2024",
		Title:        "Senior ML Engineer",
		Company:      "TechCorp AI",
		Description:  "Leading the development of large-scale machine learning systems for real-time prediction and recommendation engines.",
		Technologies: []string{"Python", "TensorFlow", "Kubernetes", "AWS"},
	},
	{
		Year:         "2022",
		Title:        "Full Stack Developer",
		Company:      "InnovateTech",
		Description:  "Built and maintained scalable web applications serving millions of users with React and Node.js.",
		Technologies: []string{"React", "Node.js", "PostgreSQL", "Redis"},
	},
	{
		Year:         "2020",
		Title:        "Junior Data Scientist",
		Company:      "DataDriven Inc",
		Description:  "Developed predictive models and data pipelines for business intelligence and analytics solutions.",
		Technologies: []string{"Python", "Pandas", "Scikit-learn", "SQL"},
	},
	{
		Year:         "2019",
		Title:        "Software Engineer Intern",
		Company:      "StartupHub",
		Description:  "Contributed to frontend development and learned best practices in agile software development.",
		Technologies: []string{"JavaScript", "Vue.js", "Firebase"},
	},
}

// Project is one card in the gallery.
type Project struct {
	ID           int
	Title        string
	Caption      string
	Description  string
	Thumbnail    string
	Technologies []string
	Link         string
	GitHub       string
}

var Projects = []Project{
	{
		ID:           1,
		Title:        "Neural Vision AI",
		Caption:      "Real-time object detection and tracking system",
		Description:  "An advanced computer vision system using deep learning for real-time object detection, tracking, and classification with 98% accuracy.",
		Thumbnail:    "/images/projects/neural-vision.jpg",
		Technologies: []string{"Python", "TensorFlow", "OpenCV", "CUDA"},
	},
	{
		ID:           2,
		Title:        "Smart Analytics Dashboard",
		Caption:      "Business intelligence platform with ML insights",
		Description:  "A comprehensive analytics platform that processes large datasets and provides actionable insights using machine learning algorithms.",
		Thumbnail:    "/images/projects/analytics.jpg",
		Technologies: []string{"React", "Node.js", "Python", "PostgreSQL"},
	},
	{
		ID:           3,
		Title:        "Quantum ML Framework",
		Caption:      "Quantum computing meets machine learning",
		Description:  "An experimental framework exploring the intersection of quantum computing and machine learning for solving complex optimization problems.",
		Thumbnail:    "/images/projects/quantum.jpg",
		Technologies: []string{"Python", "Qiskit", "PyTorch", "NumPy"},
	},
	{
		ID:           4,
		Title:        "NLP Chatbot Engine",
		Caption:      "Context-aware conversational AI system",
		Description:  "A sophisticated chatbot engine using transformer models for natural, context-aware conversations with multi-language support.",
		Thumbnail:    "/images/projects/chatbot.jpg",
		Technologies: []string{"Python", "Transformers", "FastAPI", "Redis"},
	},
	{
		ID:           5,
		Title:        "AutoML Platform",
		Caption:      "Automated machine learning pipeline builder",
		Description:  "A platform that automates the entire ML pipeline from data preprocessing to model deployment, reducing development time by 70%.",
		Thumbnail:    "/images/projects/automl.jpg",
		Technologies: []string{"Python", "Scikit-learn", "Docker", "Kubernetes"},
	},
	{
		ID:           6,
		Title:        "Edge AI Deployment",
		Caption:      "ML models optimized for edge devices",
		Description:  "A toolkit for optimizing and deploying machine learning models on edge devices with minimal latency and resource usage.",
		Thumbnail:    "/images/projects/edge-ai.jpg",
		Technologies: []string{"TensorFlow Lite", "ONNX", "C++", "Rust"},
	},
}

// ProjectByID looks up a project card.
func ProjectByID(id int) (Project, bool) {
	for _, p := range Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

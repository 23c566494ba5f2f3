package content

var (
	navigation = []NavItem{
		{Name: "Home", Href: "#home"},
		{Name: "Skills", Href: "#skills"},
		{Name: "Resume", Href: "#resume"},
		{Name: "Portfolio", Href: "#portfolio"},
		{Name: "Contact", Href: "#contact"},
	}

	skillCategories = []SkillCategory{
		{
			Title:  "Programming & Frameworks",
			Icon:   "code",
			Skills: []string{"Python", "HTML-CSS", "JavaScript", "Django", "Flask", "React", "Tailwind"},
		},
		{
			Title: "Databases & APIs",
			Icon:  "database",
			Skills: []string{"PostgreSQL", "MySQL", "SQLite", "Firebase", "RESTful APIs", "OpenAI", "Claude AI",
				"Celery", "Twilio", "Stripe", "PayPal"},
		},
		{
			Title:  "Cloud & DevOps",
			Icon:   "cloud",
			Skills: []string{"AWS", "Azure", "GCP", "Git", "GitHub", "GitHub Actions", "Celery Beat", "Docker", "Kubernetes"},
		},
		{
			Title: "Tools & Libraries",
			Icon:  "terminal",
			Skills: []string{"Pandas", "NumPy", "Scikit-learn", "Matplotlib", "Selenium", "BeautifulSoup", "DRF",
				"Requests", "Jupyter", "VSCode", "Google Colab", "Cursor", "Antigravity"},
		},
	}

	experience = []ResumeEntry{
		{
			Role:     "Software Engineer",
			Company:  "Sajal Tech Solution Private Limited",
			Location: "Panna, Madhya Pradesh",
			Period:   "Feb 2024 - Present",
			Bullets: []string{
				"Designed and deployed scalable Django-based backend architectures using Celery, Celery Beat, Twilio, AWS EC2, WebSockets, Django Channels, and Daphne",
				"Engineered RESTful APIs to fetch and process live data from platforms such as YouTube and Instagram",
				"Integrated secure authentication mechanisms including Google OAuth, Facebook OAuth, 2FA, OTP validation, and email verification",
				"Optimized relational databases (PostgreSQL, MySQL) to improve query performance and scalability",
				"Established CI/CD pipelines using GitHub Actions to automate deployments",
				"Integrated AI capabilities using OpenAI and Anthropic Claude APIs for chatbots and content generation",
			},
		},
		{
			Role:     "Trainee Data Science",
			Company:  "Lepton Software",
			Location: "Gurugram, Haryana",
			Period:   "June 2023 - Dec 2023",
			Bullets: []string{
				"Built a FastAPI system tracking fuel prices from Live Mint into PostgreSQL for trend analysis with automated daily updates via Cron Jobs",
				"Created a Google Maps Scraper App integrating Places API to generate map URLs and scrape ratings, reviews, addresses, phone numbers, and coordinates",
				"Engineered an India Polling Data Extraction App using Tkinter for GUI and PyInstaller for .exe conversion",
				"Developed an OCR Tool for extracting voter details from PDFs in multiple Indian languages with over 90% accuracy",
				"Worked on Geospatial Data Analysis using GeoPandas, Shapely, and Fiona",
			},
		},
		{
			Role:     "Data Science",
			Company:  "iNeuron",
			Location: "Remote",
			Period:   "Jan 2022 - May 2023",
			Bullets: []string{
				"Developed multiple Supervised & Unsupervised Machine Learning, Deep Learning Projects and Dashboards",
				"Identified valuable data sources and automated collection and pre-processed structured and unstructured data",
				"Presented information using data visualization techniques and deployed multiple AI/ML solutions",
				"Utilized GitHub, Python, NumPy, Pandas, Matplotlib, Seaborn, and Scikit-Learn",
			},
		},
	}

	education = []ResumeEntry{
		{
			Role:     "Integrated B. Tech + M. Tech",
			Company:  "Gautam Buddha University",
			Location: "Greater Noida, UP",
			Period:   "2015-2020",
			Bullets: []string{
				"Major in Mechanical Engineering/ Design Engineering",
				"CGPA: 7.43/10",
				"Coursework included Advanced Mathematics, Design Optimization, and Engineering Mechanics",
			},
		},
	}

	contactInfo = []ContactItem{
		{Label: "Location", Value: "Rampur, Uttar Pradesh, 244901", Href: "#"},
		{Label: "Email", Value: "adilalpha2@gmail.com", Href: "mailto:adilalpha2@gmail.com"},
		{Label: "Phone", Value: "+91 7701922985", Href: "tel:+917701922985"},
	}

	socialLinks = []SocialLink{
		{Label: "GitHub", Href: "https://github.com/adilcr01"},
		{Label: "LinkedIn", Href: "https://linkedin.com/in/anwar-adil/"},
	}
)

func projects(links Links) []Project {
	return []Project{
		{
			Title:       "Thyroid Risk Prediction",
			Description: "An ML application utilizing classification algorithms to predict thyroid disease risk with high accuracy. Deployed on Azure.",
			Image:       "project-1.jpg",
			Category:    "AI / ML",
			Tech:        []string{"Flask", "Scikit-Learn", "Azure"},
			LiveURL:     orHash(links.ThyroidPrediction),
			GitHubURL:   "https://github.com/adilcr01/Thyroid-Disease-Prediction",
		},
		{
			Title:       "Scalable E-Commerce Core",
			Description: "Designed a robust backend using Django & Celery to handle async tasks, real-time notifications, and high-load traffic.",
			Image:       "project-2.jpg",
			Category:    "Backend",
			Tech:        []string{"Django", "Celery", "Redis"},
			LiveURL:     orHash(links.GitHubProfile),
			GitHubURL:   "https://github.com/adilcr01",
		},
		{
			Title:       "Flight Price Prediction",
			Description: "Predictive analytics dashboard that forecasts flight prices based on historical data patterns and seasonal trends.",
			Image:       "project-3.jpg",
			Category:    "AI / ML",
			Tech:        []string{"Python", "Pandas", "Matplotlib"},
			LiveURL:     orHash(links.FlightPrediction),
			GitHubURL:   "https://github.com/adilcr01/Flight-Price-Prediction",
		},
		{
			Title:       "Google Maps Scraper",
			Description: "Automated tool utilizing Places API to extract business data, ratings, and reviews, exporting directly to PostgreSQL.",
			Image:       "project-4.jpg",
			Category:    "Tools & Scrapers",
			Tech:        []string{"Python", "API", "PostgreSQL"},
			LiveURL:     orHash(links.GitHubProfile),
			GitHubURL:   "https://github.com/adilcr01",
		},
		{
			Title:       "Live Chat Application",
			Description: "Real-time messaging platform built with Django Channels and WebSockets for instant communication and notifications.",
			Image:       "project-5.jpg",
			Category:    "Backend",
			Tech:        []string{"WebSockets", "Django Channels"},
			LiveURL:     orHash(links.GitHubProfile),
			GitHubURL:   "https://github.com/adilcr01",
		},
		{
			Title:       "Agentic RAG Engine",
			Description: "A custom Retrieval-Augmented Generation system using Hugging Face Endpoints, FAISS vector search, and RapidOCR.",
			Image:       "project-6.jpg",
			Category:    "AI / ML",
			Tech:        []string{"Hugging Face", "Gemma", "FAISS", "RapidOCR"},
			LiveURL:     orHash(links.RAGEngine),
			GitHubURL:   "https://github.com/adilcr01/RAG-Engine",
		},
	}
}

package taxonomy

// Compiled-in default datasets. These seed the store when no dataset files are
// present; loading a dataset file for a concern replaces that concern wholesale.

func defaultSkills() map[string]map[string][]string {
	return map[string]map[string][]string{
		"technology": {
			"programming": {
				"Python", "JavaScript", "Java", "C++", "C#", "PHP", "Ruby",
				"Go", "Rust", "SQL", "TypeScript",
			},
			"web_development": {
				"HTML", "CSS", "React", "Angular", "Vue", "Node.js",
				"API Development", "Frontend Development", "Backend Development",
				"Full Stack Development", "Responsive Design",
			},
			"databases": {
				"MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQLite",
			},
			"cloud": {
				"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Terraform",
			},
			"data": {
				"Machine Learning", "Data Analysis", "TensorFlow", "PyTorch",
				"Pandas", "NumPy", "Data Visualization",
			},
			"tools": {"Git", "Jira", "Confluence", "Linux"},
		},
		"marketing": {
			"digital_marketing": {
				"SEO", "SEM", "Google Ads", "Facebook Ads", "Content Marketing",
				"Email Marketing",
			},
			"analytics": {
				"Google Analytics", "Adobe Analytics", "Tableau", "Power BI", "Excel",
			},
			"social_media": {"Social Media Management", "Hootsuite", "Buffer"},
			"content": {
				"Copywriting", "Content Creation", "Blogging", "Video Editing",
				"Graphic Design",
			},
		},
		"finance": {
			"accounting": {
				"QuickBooks", "SAP", "GAAP", "IFRS", "Financial Modeling",
			},
			"analysis": {
				"Financial Analysis", "Risk Management", "Investment Analysis",
				"Budgeting", "Forecasting",
			},
			"tools": {"Excel", "Bloomberg Terminal", "MATLAB", "R", "Python", "SQL"},
		},
		"healthcare": {
			"clinical": {
				"Patient Care", "Medical Records", "HIPAA", "Clinical Research",
				"Medical Coding", "Phlebotomy",
			},
			"administrative": {
				"Healthcare Administration", "Insurance", "Billing", "Scheduling",
			},
			"technical": {"Epic", "Cerner", "Allscripts", "EMR Systems"},
		},
		"sales": {
			"techniques": {
				"Cold Calling", "Lead Generation", "Negotiation", "Closing",
				"Prospecting",
			},
			"crm": {"Salesforce", "HubSpot", "Pipedrive", "Dynamics 365"},
			"analysis": {
				"Sales Analytics", "Forecasting", "Pipeline Management",
				"Territory Management",
			},
		},
		"education": {
			"teaching": {
				"Curriculum Development", "Lesson Planning", "Classroom Management",
				"Student Assessment", "Educational Technology", "Student Mentoring",
				"Exam Preparation",
			},
			"technology": {
				"Learning Management Systems", "Blackboard", "Canvas", "Moodle",
				"Google Classroom", "Online Teaching",
			},
			"administration": {
				"Academic Advising", "School Administration", "Student Records",
				"Parent Communication",
			},
		},
		"design": {
			"ux_ui": {
				"User Experience Design", "User Interface Design", "Wireframing",
				"Prototyping", "User Research", "Usability Testing",
				"Interaction Design",
			},
			"tools": {"Sketch", "Figma", "Adobe XD", "InVision", "Zeplin"},
			"research": {
				"User Interviews", "Surveys", "A/B Testing", "Persona Development",
				"Journey Mapping",
			},
		},
		"human_resources": {
			"recruitment": {
				"Talent Acquisition", "Interviewing", "Onboarding", "ATS Systems",
			},
			"compliance": {
				"Employment Law", "HR Policies", "Benefits Administration", "Payroll",
			},
			"systems": {"Workday", "BambooHR", "ADP", "SuccessFactors"},
		},
		"operations": {
			"management": {
				"Project Management", "Process Improvement", "Lean", "Six Sigma",
				"Agile", "Scrum",
			},
			"supply_chain": {
				"Inventory Management", "Logistics", "Procurement",
				"Vendor Management",
			},
			"quality": {"Quality Assurance", "ISO Standards", "Continuous Improvement"},
		},
		"soft_skills": {
			"leadership": {
				"Team Leadership", "Mentoring", "Coaching", "Strategic Thinking",
				"Decision Making",
			},
			"communication": {
				"Public Speaking", "Presentation", "Writing", "Interpersonal",
				"Negotiation",
			},
			"problem_solving": {
				"Analytical Thinking", "Creative Problem Solving", "Troubleshooting",
				"Innovation",
			},
			"personal": {
				"Time Management", "Adaptability", "Attention To Detail",
				"Multitasking", "Organization",
			},
		},
	}
}

func defaultJobTitles() map[string][]string {
	return map[string][]string{
		"technology": {
			"Software Engineer", "Developer", "Programmer", "Web Developer",
			"Data Scientist", "Systems Analyst", "Database Administrator",
			"Network Engineer", "Cybersecurity Analyst", "DevOps Engineer",
			"Product Manager", "Technical Lead", "Architect", "QA Engineer",
		},
		"marketing": {
			"Marketing Manager", "Digital Marketer", "Content Marketer",
			"SEO Specialist", "Brand Manager", "Social Media Manager",
			"Marketing Coordinator", "Marketing Analyst",
		},
		"finance": {
			"Financial Analyst", "Accountant", "Controller", "Investment Banker",
			"Financial Advisor", "Credit Analyst", "Budget Analyst",
			"Audit Manager", "Risk Analyst", "Compliance Officer",
		},
		"healthcare": {
			"Registered Nurse", "Physician", "Medical Assistant",
			"Healthcare Administrator", "Physical Therapist", "Pharmacist",
			"Medical Technician", "Clinical Coordinator", "Medical Coder",
		},
		"sales": {
			"Sales Representative", "Account Manager", "Business Development Manager",
			"Sales Manager", "Inside Sales Representative", "Sales Coordinator",
			"Key Account Manager", "Sales Engineer", "Regional Sales Manager",
		},
		"education": {
			"Teacher", "Professor", "Instructor", "Academic Advisor", "Principal",
			"Curriculum Coordinator", "Tutor", "Training Specialist",
			"Instructional Designer", "Mathematics Teacher", "Science Teacher",
		},
		"design": {
			"UX Designer", "UI Designer", "Product Designer", "Interaction Designer",
			"Visual Designer", "Graphic Designer", "Web Designer", "Design Lead",
			"Senior Designer", "Design Manager",
		},
		"human_resources": {
			"HR Manager", "Recruiter", "HR Coordinator", "Talent Acquisition Specialist",
			"HR Business Partner", "Compensation Analyst", "HR Generalist",
			"Training Manager", "HR Director",
		},
		"operations": {
			"Operations Manager", "Project Manager", "Program Manager",
			"Business Analyst", "Supply Chain Manager", "Logistics Coordinator",
			"Operations Analyst", "Quality Manager",
		},
	}
}

func defaultCertifications() map[string][]string {
	return map[string][]string{
		"technology": {
			"AWS Certified", "Microsoft Certified", "Google Cloud Certified",
			"Cisco Certified", "CompTIA Security+", "CISSP", "CISA",
			"ITIL", "Scrum Master",
		},
		"finance": {
			"CPA", "CFA", "FRM", "CAIA", "CFP", "CIA", "CMA", "ACCA",
		},
		"healthcare": {
			"BLS", "ACLS", "CPR", "Medical License", "Nursing License",
			"Pharmacy License",
		},
		"marketing": {
			"Google Ads Certified", "HubSpot Certified", "Facebook Blueprint",
			"Google Analytics Certified", "Marketo Certified",
		},
		"project_management": {
			"PMP", "PRINCE2", "Agile Certified", "Lean Six Sigma", "CAPM",
		},
		"human_resources": {
			"SHRM-CP", "SHRM-SCP", "PHR", "SPHR", "CIPD",
		},
		"design": {
			"Adobe Certified Expert", "Google UX Design Certificate",
			"Interaction Design Certification",
		},
	}
}

func defaultIndustryKeywords() map[string][]string {
	return map[string][]string{
		"technology": {
			"software", "programming", "developer", "engineer", "tech",
			"computer", "it services", "telecommunications", "internet",
		},
		"finance": {
			"finance", "banking", "investment", "accounting", "financial",
			"insurance", "fintech",
		},
		"healthcare": {
			"medical", "healthcare", "nurse", "doctor", "hospital", "clinical",
			"pharmaceutical", "patient",
		},
		"marketing": {
			"marketing", "advertising", "digital marketing", "social media",
			"brand", "campaign",
		},
		"sales": {
			"sales", "business development", "account management",
			"customer relations", "quota",
		},
		"education": {
			"teacher", "professor", "education", "academic", "school",
			"curriculum", "classroom",
		},
		"design": {
			"design", "ux", "ui", "user experience", "prototype", "visual",
		},
		"human_resources": {
			"human resources", "recruiting", "talent", "hr", "onboarding",
		},
		"operations": {
			"operations", "logistics", "supply chain", "process improvement",
			"procurement",
		},
		"consulting": {
			"consultant", "consulting", "advisory", "strategy",
		},
	}
}

func defaultEducationVocabulary() EducationVocabulary {
	return EducationVocabulary{
		DegreeTypes: []string{
			"bachelor", "bachelor's", "bachelors", "master", "master's", "masters",
			"phd", "ph.d", "doctorate", "doctoral", "associate", "associates",
			"diploma", "certificate", "certification", "mba", "m.b.a", "md", "m.d",
			"jd", "j.d", "b.s.", "b.a.", "m.s.", "m.a.", "bsc", "msc",
		},
		Institutions: []string{
			"university", "college", "institute", "school", "academy",
			"polytechnic", "community college", "technical college",
		},
		Fields: []string{
			"computer science", "business administration", "engineering",
			"marketing", "finance", "psychology", "biology", "chemistry",
			"physics", "mathematics", "economics", "accounting", "nursing",
			"medicine", "law", "education", "graphic design",
			"human computer interaction", "user experience", "statistics",
			"data science", "communications", "journalism",
		},
		Honors: []string{
			"summa cum laude", "magna cum laude", "cum laude", "with honors",
			"dean's list", "honor roll", "phi beta kappa", "first class",
			"distinction", "merit", "valedictorian", "salutatorian",
		},
	}
}

package content

// Default returns the built-in portfolio.
func Default() *Content {
	return &Content{
		Profile: Profile{
			Name: "Asanka Madushan",
			Headlines: []string{
				"Mobile App Developer",
				"Full-Stack Developer",
				"Electrical and Information Engineer",
			},
			Tagline: "Building high-performance digital products with React, Node.js, Flutter, and automation workflows. " +
				"I focus on scalable architecture, smooth user experience, and practical engineering outcomes.",
			Bio: "Have a project in mind? Looking to hire a skilled developer? " +
				"Let's connect and build something amazing together.",
			Email:     "nnamadushan@gmail.com",
			Phone:     "+94 71 777 5812",
			Location:  "Matara, Sri Lanka",
			ResumeURL: "/Asanka_Madushan.pdf",
			Socials: []Social{
				{Name: "LinkedIn", URL: "https://www.linkedin.com/in/asanka-madushan-84ba73211"},
				{Name: "GitHub", URL: "https://github.com/NnAsankaMadushan"},
				{Name: "Facebook", URL: "https://web.facebook.com/profile.php?id=100005216388114"},
				{Name: "YouTube", URL: "https://www.youtube.com/@aSaBytes"},
				{Name: "Instagram", URL: "https://www.instagram.com/asa___nka/"},
			},
			Assistant: Assistant{
				Instruction: "You are an AI assistant for Asanka Madushan, an Electrical and Information Engineering student. " +
					"Expertise: Web (React, Node, Tailwind), Mobile (React Native, Flutter), ML. Education: University of Ruhuna. " +
					"Tone: Professional, technical, helpful. Keep answers concise.",
				Greeting: "Hi! I'm Asanka's AI assistant. Ask me anything about his engineering skills or projects!",
			},
		},
		Skills: []Skill{
			{Name: "HTML5"}, {Name: "CSS3"}, {Name: "JavaScript"}, {Name: "React"},
			{Name: "Node.js"}, {Name: "Python"}, {Name: "Flutter"}, {Name: "React Native"},
			{Name: "Machine Learning"}, {Name: "Figma"}, {Name: "n8n Automation"},
		},
		Experience: []Experience{
			{Role: "Web Developer", Company: "Sri Lanka Ports Authority as an intern", Period: "2023 Oct - 2024 Jan"},
			{Role: "React Native and Flutter Mobile App Developer", Company: "BotCalm Private Limited as an intern", Period: "2024 MAR - 2024 Aug"},
			{Role: "Associate Mobile App Developer (React Native and Flutter Mobile App Developer)", Company: "BotCalm Private Limited", Period: "2024 Aug - Present"},
			{Role: "Videographer and Photographer", Company: "REF Media, Faculty of Engineering, University of Ruhuna", Period: "2021 - 2024"},
		},
		Education: Education{
			Degree:     "B.Sc.Eng. in Electrical and Information Engineering",
			University: "University of Ruhuna",
		},
		Specializations: []string{
			"Web Development",
			"Mobile Development",
			"UI/UX Designing",
			"Machine Learning",
			"Power Systems Engineering",
			"Electronic Engineering",
			"Telecommunication Engineering",
		},
		Projects: []Project{
			{
				ID:              "1",
				Title:           "Fuel Management System",
				Category:        "Web Application",
				Description:     "Fuel Management System with four type of users (Vehicle, Station Owner, Operator and Admin).",
				LongDescription: "Fuel Management System with four type of users (Vehicle, Station Owner, Operator and Admin). Showing available fuel quota and creating the QR code for each vehicle. Operator have the access to scan the QR code and check the available fuel quota and give supply whether it's possible.",
				Image:           "/projects/Fuel Management System/fuel.png",
				Video:           "/projects/Fuel Management System/fmq.mp4",
				Tags:            []string{"React", "Node.js", "MongoDB", "React Native", "QR Code"},
				Link:            "https://github.com/Pradeep717/FuelQuotaManagementSystem",
				Stats:           []Stat{{"Users", "4 Types"}, {"Features", "QR System"}, {"Tech", "MERN Stack"}},
			},
			{
				ID:              "2",
				Title:           "Job Portal System",
				Category:        "Web Application",
				Description:     "This project aims to create a job bank website that connects three primary user roles: companies, students, and lecturers.",
				LongDescription: "This software project aims to create a job bank website that connects three primary user roles: companies, students, and lecturers. Companies will be able to post job opportunities, students can apply for those jobs, and lecturers can provide recommendations for students. Built using React, Node.js, and PostgreSQL with modern authentication and authorization mechanisms.",
				Image:           "/projects/Job Portal System/job.png",
				Video:           "/projects/Job Portal System/job.mp4",
				Tags:            []string{"React", "Node.js", "PostgreSQL", "JWT"},
				Link:            "https://github.com/Malkith99/Job-Portal-System-FRONTEND.git",
				Stats:           []Stat{{"Users", "3 Roles"}, {"Features", "Job Matching"}, {"Security", "JWT Auth"}},
			},
			{
				ID:              "3",
				Title:           "Enhanced IoT Security through Zero Trust Architecture Implementation",
				Category:        "IoT Security",
				Description:     "This project implements a cutting-edge Zero Trust Architecture (ZTA) to ensure that no device is trusted by default, enhancing IoT network security with real-time, dynamic controls.",
				LongDescription: "This project implements a cutting-edge Zero Trust Architecture (ZTA) to ensure that no device is trusted by default, enhancing IoT network security with real-time, dynamic controls. Machine Learning Model Development: Trained and implemented an autoencoder-based anomaly detection model to identify unusual network patterns. Built a React-based interface to display real-time data on connected devices, trust scores, and security statuses.",
				Image:           "/projects/Enhanced IoT Security through Zero Trust Architecture Implementation/anomaly.png",
				Tags:            []string{"Python", "Machine Learning", "React", "Flask", "Raspberry Pi"},
				Link:            "https://github.com/NnAsankaMadushan/Anomaly-Detection",
				Stats:           []Stat{{"Security", "Zero Trust"}, {"Detection", "Real-time"}, {"ML Model", "Autoencoder"}},
			},
			{
				ID:              "8",
				Title:           "Reminder Buddy",
				Category:        "Mobile App",
				Description:     "A voice-based smart reminder app that turns natural-language text or speech into structured reminders with offline parsing and calendar-aware workflows.",
				LongDescription: "Reminder Buddy is a Flutter mobile app that converts natural-language text and voice inputs into structured reminders using an offline rule-based NLP parser for date, time, and location extraction. It uses BLoC for modular state management, Hive for local persistence, and supports full reminder lifecycle flows including create, edit, delete, and reschedule with real-time calendar updates.",
				Image:           "/projects/Reminder Buddy/Reminder Buddy.png",
				Video:           "/projects/Reminder Buddy/Reminder Buddy.mp4",
				Tags:            []string{"Flutter", "BLoC", "Hive", "Offline NLP", "Local Notifications", "Google Calendar API"},
				Link:            "#",
				Stats:           []Stat{{"Platform", "Mobile"}, {"Parsing", "Offline NLP"}, {"Sync", "Calendar Ready"}},
			},
			{
				ID:              "4",
				Title:           "Money Mate App",
				Category:        "Mobile App",
				Description:     "This project implements platform with see the bills and online bill paying system.",
				LongDescription: "This project implements platform with see the bills and online bill paying system. A comprehensive financial management application that helps users track their expenses, manage bills, and make online payments securely.",
				Image:           "/projects/Money Mate App/money.png",
				Video:           "/projects/Money Mate App/moneymate.mp4",
				Tags:            []string{"React Native", "Node.js", "MongoDB"},
				Link:            "https://github.com/NnAsankaMadushan/MoneyMate-frontend",
				Stats:           []Stat{{"Platform", "Mobile"}, {"Features", "Bill Payment"}, {"Type", "FinTech"}},
			},
			{
				ID:              "5",
				Title:           "Job Seek App",
				Category:        "Mobile App",
				Description:     "This project implements platform with job seeking for employees easily.",
				LongDescription: "QuickHire - A mobile application that makes job seeking easy for employees. This platform connects job seekers with employers, providing a seamless experience for finding and applying to jobs.",
				Image:           "/projects/Job Seek App/Job.png",
				Video:           "/projects/Job Seek App/Quickhire.mp4",
				Tags:            []string{"Flutter", "Firebase"},
				Link:            "https://github.com/NnAsankaMadushan/QuickHireApp",
				Stats:           []Stat{{"Platform", "Mobile"}, {"Features", "Job Search"}, {"Type", "Employment"}},
			},
			{
				ID:              "6",
				Title:           "Train App",
				Category:        "UI/UX Design",
				Description:     "Prototype of a train App using Figma.",
				LongDescription: "Prototype of a train app with including train tracking, tickets booking and time of the train using Figma. A comprehensive design showcasing modern UI/UX principles for a transportation application.",
				Image:           "/projects/Train App/train App.png",
				Video:           "/projects/Train App/train.mp4",
				Tags:            []string{"Figma", "UI/UX", "Prototyping"},
				Link:            "#",
				Stats:           []Stat{{"Tool", "Figma"}, {"Type", "Prototype"}, {"Features", "Booking"}},
			},
			{
				ID:              "7",
				Title:           "Driver App",
				Category:        "Mobile App",
				Description:     "This project implements platform drivers to find hires easily.",
				LongDescription: "This project implements a platform for drivers to find hires easily. A mobile application that connects drivers with customers, making it easy to find and manage ride requests.",
				Image:           "/projects/Driver App/Driving.png",
				Video:           "/projects/Driver App/driver app.mp4",
				Tags:            []string{"React Native", "Node.js", "Google Maps API"},
				Link:            "https://github.com/Waverista/Driver-App.git",
				Stats:           []Stat{{"Platform", "Mobile"}, {"Features", "Ride Matching"}, {"Type", "Transportation"}},
			},
		},
		Certifications: []Certification{
			{ID: "c1", Title: "Python for Data Science, AI & Development", Issuer: "IBM", Date: "2023", Image: "/certificates/8.png",
				Description: "Proficiency in Python programming for data science, artificial intelligence, and development, including NumPy and Pandas."},
			{ID: "c2", Title: "Lens-Kubernetes IDE", Issuer: "KodeKloud", Date: "2023", Image: "/certificates/9.png",
				Description: "Cluster management, resource monitoring, and Kubernetes workflow optimization with the Lens IDE."},
			{ID: "c3", Title: "Web Design for Beginners", Issuer: "University of Moratuwa", Date: "2022", Image: "/certificates/7.png",
				Description: "Web design principles covering HTML, CSS, responsive design, and modern web development practices."},
			{ID: "c4", Title: "Introduction to HTML", Issuer: "Coursera", Date: "2022", Image: "/certificates/4.png",
				Description: "HTML5 fundamentals, semantic markup, and document structure."},
			{ID: "c5", Title: "Introduction to Back-End Development", Issuer: "Coursera", Date: "2022", Image: "/certificates/3.png",
				Description: "Server-side programming, databases, APIs, and back-end frameworks."},
			{ID: "c6", Title: "Introduction to Front-End Development", Issuer: "Coursera", Date: "2022", Image: "/certificates/5.png",
				Description: "HTML, CSS, JavaScript, and modern frameworks for interactive user interfaces."},
			{ID: "c7", Title: "Supervised Machine Learning: Regression and Classification", Issuer: "Coursera", Date: "2023", Image: "/certificates/6.png",
				Description: "Supervised learning algorithms, regression models, and classification techniques with hands-on projects."},
		},
	}
}

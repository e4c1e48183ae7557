package seed

// seedCourse describes one catalog entry. Dialogues is empty when the
// course satisfies no dialogues requirement.
type seedCourse struct {
	Name      string
	Number    string
	Major     string
	Dialogues string
	Delivery  string
}

// trumanSchoolName is the school the default catalog belongs to.
const trumanSchoolName = "Truman State University"

// trumanCourses is a selection of Truman State University courses loaded
// at startup so a fresh install has something to browse.
var trumanCourses = []seedCourse{
	// Computer Science
	{Name: "Introduction to Computer Science", Number: "CS 170", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Data Structures", Number: "CS 180", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Computer Organization", Number: "CS 210", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Programming Languages", Number: "CS 240", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Algorithms", Number: "CS 300", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Database Systems", Number: "CS 320", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Software Engineering", Number: "CS 330", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Operating Systems", Number: "CS 340", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Computer Networks", Number: "CS 350", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Artificial Intelligence", Number: "CS 420", Major: "Computer Science", Delivery: "In-Person"},
	{Name: "Machine Learning", Number: "CS 430", Major: "Computer Science", Delivery: "In-Person"},

	// Biology
	{Name: "General Biology I", Number: "BIOL 100", Major: "Biology", Dialogues: "Natural & Physical World", Delivery: "In-Person"},
	{Name: "General Biology II", Number: "BIOL 101", Major: "Biology", Dialogues: "Natural & Physical World", Delivery: "In-Person"},
	{Name: "Cell Biology", Number: "BIOL 200", Major: "Biology", Delivery: "In-Person"},
	{Name: "Genetics", Number: "BIOL 210", Major: "Biology", Delivery: "In-Person"},
	{Name: "Ecology", Number: "BIOL 220", Major: "Biology", Delivery: "In-Person"},
	{Name: "Microbiology", Number: "BIOL 300", Major: "Biology", Delivery: "In-Person"},
	{Name: "Molecular Biology", Number: "BIOL 310", Major: "Biology", Delivery: "In-Person"},
	{Name: "Evolution", Number: "BIOL 320", Major: "Biology", Delivery: "In-Person"},
	{Name: "Human Anatomy", Number: "BIOL 330", Major: "Biology", Delivery: "In-Person"},
	{Name: "Physiology", Number: "BIOL 340", Major: "Biology", Delivery: "In-Person"},

	// Chemistry
	{Name: "General Chemistry I", Number: "CHEM 131", Major: "Chemistry", Dialogues: "Natural & Physical World", Delivery: "In-Person"},
	{Name: "General Chemistry II", Number: "CHEM 132", Major: "Chemistry", Dialogues: "Natural & Physical World", Delivery: "In-Person"},
	{Name: "Organic Chemistry I", Number: "CHEM 331", Major: "Chemistry", Delivery: "In-Person"},
	{Name: "Organic Chemistry II", Number: "CHEM 332", Major: "Chemistry", Delivery: "In-Person"},
	{Name: "Physical Chemistry I", Number: "CHEM 350", Major: "Chemistry", Delivery: "In-Person"},
	{Name: "Physical Chemistry II", Number: "CHEM 351", Major: "Chemistry", Delivery: "In-Person"},
	{Name: "Biochemistry", Number: "CHEM 420", Major: "Chemistry", Delivery: "In-Person"},
	{Name: "Analytical Chemistry", Number: "CHEM 410", Major: "Chemistry", Delivery: "In-Person"},
	{Name: "Inorganic Chemistry", Number: "CHEM 430", Major: "Chemistry", Delivery: "In-Person"},

	// Mathematics
	{Name: "Calculus I", Number: "MATH 198", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Calculus II", Number: "MATH 199", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Calculus III", Number: "MATH 263", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Linear Algebra", Number: "MATH 280", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Differential Equations", Number: "MATH 300", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Abstract Algebra", Number: "MATH 350", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Real Analysis", Number: "MATH 360", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Probability and Statistics", Number: "MATH 320", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Number Theory", Number: "MATH 370", Major: "Mathematics", Delivery: "In-Person"},
	{Name: "Topology", Number: "MATH 380", Major: "Mathematics", Delivery: "In-Person"},

	// Psychology
	{Name: "Introduction to Psychology", Number: "PSYC 166", Major: "Psychology", Dialogues: "Social & Behavioral", Delivery: "In-Person"},
	{Name: "Developmental Psychology", Number: "PSYC 200", Major: "Psychology", Delivery: "In-Person"},
	{Name: "Abnormal Psychology", Number: "PSYC 210", Major: "Psychology", Delivery: "In-Person"},
	{Name: "Cognitive Psychology", Number: "PSYC 220", Major: "Psychology", Delivery: "In-Person"},
	{Name: "Social Psychology", Number: "PSYC 230", Major: "Psychology", Delivery: "In-Person"},
	{Name: "Research Methods", Number: "PSYC 300", Major: "Psychology", Delivery: "In-Person"},
	{Name: "Biological Psychology", Number: "PSYC 310", Major: "Psychology", Delivery: "In-Person"},
	{Name: "Personality Psychology", Number: "PSYC 320", Major: "Psychology", Delivery: "In-Person"},
	{Name: "Clinical Psychology", Number: "PSYC 400", Major: "Psychology", Delivery: "In-Person"},

	// English
	{Name: "World Literature", Number: "ENGL 200", Major: "English", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "British Literature I", Number: "ENGL 210", Major: "English", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "British Literature II", Number: "ENGL 211", Major: "English", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "American Literature I", Number: "ENGL 220", Major: "English", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "American Literature II", Number: "ENGL 221", Major: "English", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "Creative Writing", Number: "ENGL 300", Major: "English", Delivery: "In-Person"},
	{Name: "Shakespeare", Number: "ENGL 310", Major: "English", Delivery: "In-Person"},
	{Name: "Modern Poetry", Number: "ENGL 320", Major: "English", Delivery: "In-Person"},
	{Name: "Literary Theory", Number: "ENGL 400", Major: "English", Delivery: "In-Person"},

	// Physics
	{Name: "General Physics I", Number: "PHYS 185", Major: "Physics", Dialogues: "Natural & Physical World", Delivery: "In-Person"},
	{Name: "General Physics II", Number: "PHYS 186", Major: "Physics", Dialogues: "Natural & Physical World", Delivery: "In-Person"},
	{Name: "Mechanics", Number: "PHYS 300", Major: "Physics", Delivery: "In-Person"},
	{Name: "Electricity and Magnetism", Number: "PHYS 310", Major: "Physics", Delivery: "In-Person"},
	{Name: "Thermodynamics", Number: "PHYS 320", Major: "Physics", Delivery: "In-Person"},
	{Name: "Quantum Mechanics", Number: "PHYS 400", Major: "Physics", Delivery: "In-Person"},
	{Name: "Optics", Number: "PHYS 410", Major: "Physics", Delivery: "In-Person"},

	// History
	{Name: "World History I", Number: "HIST 100", Major: "History", Dialogues: "Historical Perspectives", Delivery: "In-Person"},
	{Name: "World History II", Number: "HIST 101", Major: "History", Dialogues: "Historical Perspectives", Delivery: "In-Person"},
	{Name: "American History I", Number: "HIST 200", Major: "History", Dialogues: "Historical Perspectives", Delivery: "In-Person"},
	{Name: "American History II", Number: "HIST 201", Major: "History", Dialogues: "Historical Perspectives", Delivery: "In-Person"},
	{Name: "European History", Number: "HIST 300", Major: "History", Delivery: "In-Person"},
	{Name: "Ancient History", Number: "HIST 310", Major: "History", Delivery: "In-Person"},
	{Name: "Medieval History", Number: "HIST 320", Major: "History", Delivery: "In-Person"},
	{Name: "Modern European History", Number: "HIST 330", Major: "History", Delivery: "In-Person"},

	// Business
	{Name: "Principles of Accounting I", Number: "ACCT 200", Major: "Business", Delivery: "In-Person"},
	{Name: "Principles of Accounting II", Number: "ACCT 201", Major: "Business", Delivery: "In-Person"},
	{Name: "Principles of Management", Number: "MGMT 200", Major: "Business", Delivery: "In-Person"},
	{Name: "Marketing Principles", Number: "MKTG 200", Major: "Business", Delivery: "In-Person"},
	{Name: "Financial Management", Number: "FIN 300", Major: "Business", Delivery: "In-Person"},
	{Name: "Business Law", Number: "BUS 300", Major: "Business", Delivery: "In-Person"},
	{Name: "Organizational Behavior", Number: "MGMT 310", Major: "Business", Delivery: "In-Person"},
	{Name: "Strategic Management", Number: "MGMT 400", Major: "Business", Delivery: "In-Person"},

	// Economics
	{Name: "Principles of Microeconomics", Number: "ECON 200", Major: "Economics", Dialogues: "Social & Behavioral", Delivery: "In-Person"},
	{Name: "Principles of Macroeconomics", Number: "ECON 201", Major: "Economics", Dialogues: "Social & Behavioral", Delivery: "In-Person"},
	{Name: "Intermediate Microeconomics", Number: "ECON 300", Major: "Economics", Delivery: "In-Person"},
	{Name: "Intermediate Macroeconomics", Number: "ECON 301", Major: "Economics", Delivery: "In-Person"},
	{Name: "Econometrics", Number: "ECON 400", Major: "Economics", Delivery: "In-Person"},
	{Name: "International Economics", Number: "ECON 410", Major: "Economics", Delivery: "In-Person"},

	// Political Science
	{Name: "American Government", Number: "POL 100", Major: "Political Science", Dialogues: "Social & Behavioral", Delivery: "In-Person"},
	{Name: "Comparative Politics", Number: "POL 200", Major: "Political Science", Delivery: "In-Person"},
	{Name: "International Relations", Number: "POL 300", Major: "Political Science", Delivery: "In-Person"},
	{Name: "Political Theory", Number: "POL 310", Major: "Political Science", Delivery: "In-Person"},
	{Name: "Public Policy", Number: "POL 400", Major: "Political Science", Delivery: "In-Person"},

	// Philosophy
	{Name: "Introduction to Philosophy", Number: "PHIL 100", Major: "Philosophy", Dialogues: "Values & Beliefs", Delivery: "In-Person"},
	{Name: "Ethics", Number: "PHIL 200", Major: "Philosophy", Dialogues: "Values & Beliefs", Delivery: "In-Person"},
	{Name: "Logic", Number: "PHIL 210", Major: "Philosophy", Delivery: "In-Person"},
	{Name: "Ancient Philosophy", Number: "PHIL 300", Major: "Philosophy", Delivery: "In-Person"},
	{Name: "Modern Philosophy", Number: "PHIL 310", Major: "Philosophy", Delivery: "In-Person"},

	// Communication
	{Name: "Public Speaking", Number: "COMM 100", Major: "Communication", Delivery: "In-Person"},
	{Name: "Interpersonal Communication", Number: "COMM 200", Major: "Communication", Delivery: "In-Person"},
	{Name: "Mass Media", Number: "COMM 300", Major: "Communication", Delivery: "In-Person"},
	{Name: "Rhetoric and Persuasion", Number: "COMM 310", Major: "Communication", Delivery: "In-Person"},

	// Education
	{Name: "Introduction to Education", Number: "EDUC 100", Major: "Education", Delivery: "In-Person"},
	{Name: "Educational Psychology", Number: "EDUC 200", Major: "Education", Delivery: "In-Person"},
	{Name: "Curriculum Development", Number: "EDUC 300", Major: "Education", Delivery: "In-Person"},
	{Name: "Classroom Management", Number: "EDUC 310", Major: "Education", Delivery: "In-Person"},

	// Art
	{Name: "Drawing I", Number: "ART 100", Major: "Art", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "Painting I", Number: "ART 200", Major: "Art", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "Art History I", Number: "ART 300", Major: "Art", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "Sculpture", Number: "ART 310", Major: "Art", Delivery: "In-Person"},

	// Music
	{Name: "Music Theory I", Number: "MUS 100", Major: "Music", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "Music History", Number: "MUS 200", Major: "Music", Dialogues: "Aesthetic & Interpretive", Delivery: "In-Person"},
	{Name: "Orchestration", Number: "MUS 300", Major: "Music", Delivery: "In-Person"},

	// Online and hybrid offerings
	{Name: "Introduction to Statistics", Number: "STAT 200", Major: "Statistics", Delivery: "Online"},
	{Name: "Web Development", Number: "CS 250", Major: "Computer Science", Delivery: "Hybrid"},
	{Name: "Digital Marketing", Number: "MKTG 310", Major: "Business", Delivery: "Online"},
}

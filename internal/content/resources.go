package content

// Resource is a vendor resource page: rules, support contacts and the exams
// the vendor delivers through FETS centers.
type Resource struct {
	ID          string
	Name        string
	Description string
	Rules       []string
	Support     Support
	Exams       []Exam
	LogoURL     string
}

type Support struct {
	Phone string
	Email string
	URL   string
}

type Exam struct {
	Name       string
	Window     string
	Guidelines string
}

// ResourceOrder fixes the navigation order of vendor pages.
var ResourceOrder = []string{"Prometric", "Pearson VUE", "PSI", "FETS"}

// ResourceByName returns the page for a vendor name.
func ResourceByName(name string) (Resource, bool) {
	r, ok := resources[name]
	return r, ok
}

var resources = map[string]Resource{
	"Prometric": {
		ID:          "prometric",
		Name:        "Prometric",
		Description: "Leading global provider of comprehensive testing and assessment services. Delivers the CMA USA and other high-stakes professional certifications.",
		Rules: []string{
			"Two forms of valid government-issued ID required (Primary & Secondary).",
			"Full body scan via metal detector wand upon entry.",
			"No personal items in testing room; lockers provided.",
			"Arrive 30 minutes prior to appointment time.",
		},
		Support: Support{
			Phone: "1-800-853-6769",
			Email: "candidate.care@prometric.com",
			URL:   "https://www.prometric.com",
		},
		Exams: []Exam{
			{Name: "CMA USA (Certified Management Accountant)", Window: "Jan/Feb, May/Jun, Sep/Oct", Guidelines: "Financial planning, performance, and analytics."},
			{Name: "USMLE Step 1 & 2", Window: "Year-round", Guidelines: "Biometric check-in mandatory."},
			{Name: "TOEFL iBT", Window: "Continuous", Guidelines: "Headset check required during tutorial."},
		},
		LogoURL: "https://logo.clearbit.com/prometric.com",
	},
	"Pearson VUE": {
		ID:          "pearson",
		Name:        "Pearson VUE",
		Description: "The global leader in computer-based testing, delivering exams for Microsoft, RCS England, and AWS.",
		Rules: []string{
			"Palm vein authentication strictly enforced.",
			"Digital signature and photograph required.",
			"Erasable whiteboard provided; no paper allowed.",
			"Glasses inspection required at check-in.",
		},
		Support: Support{
			Phone: "1-877-392-6433",
			Email: "support@pearsonvue.com",
			URL:   "https://home.pearsonvue.com",
		},
		Exams: []Exam{
			{Name: "Microsoft Certified: Azure Solutions Architect", Window: "On-demand", Guidelines: "Case studies included. Labs may be presented."},
			{Name: "RCS (Royal College of Surgeons)", Window: "Specific Dates", Guidelines: "High-security protocols. ID must match registration exactly."},
			{Name: "PTE Academic", Window: "Daily", Guidelines: "AI-scored English language test."},
		},
		LogoURL: "https://logo.clearbit.com/pearsonvue.com",
	},
	"PSI": {
		ID:          "psi",
		Name:        "PSI Services",
		Description: "Trusted provider of licensure and certification exams for insurance, real estate, and government agencies.",
		Rules: []string{
			"Government ID must contain signature.",
			"Remote proctoring: 360-degree room scan required.",
			"No talking or mouthing words during exam.",
			"Calculators permitted only for specific exams.",
		},
		Support: Support{
			Phone: "1-800-733-9267",
			Email: "examschedule@psionline.com",
			URL:   "https://www.psiexams.com",
		},
		Exams: []Exam{
			{Name: "Real Estate Salesperson & Broker", Window: "State dependent", Guidelines: "State-specific law components included."},
			{Name: "Insurance Producer (Life/Health)", Window: "Daily", Guidelines: "Instant pass/fail results provided."},
			{Name: "AWS Cloud Practitioner (PSI Option)", Window: "On-demand", Guidelines: "Foundational cloud concepts."},
		},
		LogoURL: "https://logo.clearbit.com/psiexams.com",
	},
	"FETS": {
		ID:          "fets",
		Name:        "Forun Educational & Testing Services",
		Description: "Internal testing operations, staff training, and compliance hub for Forun centers.",
		Rules: []string{
			"Employee ID badge must be worn visible.",
			"Yellow lockers designated for staff personal items.",
			"Clean desk policy in reception and proctor stations.",
			"Annual NDA and security training renewal.",
		},
		Support: Support{
			Phone: "+1 (555) 012-3456",
			Email: "ops@forun.edu",
			URL:   "https://fets.hub",
		},
		Exams: []Exam{
			{Name: "TCA (Test Center Administrator) Cert", Window: "Monthly", Guidelines: "Policy mastery and incident reporting."},
			{Name: "Proctor L2 Authorization", Window: "Quarterly", Guidelines: "Advanced monitoring and intervention techniques."},
			{Name: "IT Infrastructure Safety", Window: "Annual", Guidelines: "Server room protocols and network security."},
		},
	},
}

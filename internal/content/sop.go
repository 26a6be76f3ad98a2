// Package content holds the fixed reference material: operating procedure
// sections and vendor resource pages. Lookups never fail hard; an unknown
// identifier returns ok=false and the UI renders a not-found state.
package content

// SOPStep is one heading with its bullet points.
type SOPStep struct {
	Heading string
	Content []string
}

// SOPSection is one chapter of the operating procedures.
type SOPSection struct {
	ID               string
	Title            string
	Purpose          string
	Scope            string
	Responsibilities []string
	Steps            []SOPStep
}

// SOPOrder fixes the navigation order of the sections.
var SOPOrder = []string{"overview", "opening", "checkin", "monitoring", "emergency", "closing", "compliance"}

// SOPByID returns the section for a stable identifier.
func SOPByID(id string) (SOPSection, bool) {
	s, ok := sopSections[id]
	return s, ok
}

var sopSections = map[string]SOPSection{
	"overview": {
		ID:      "overview",
		Title:   "Overview & Daily Operations",
		Purpose: "To define the standardized procedures for Test Administrators at FETS Online Examination & Testing Centres, ensuring uniform operations, secure exam delivery, and effective emergency response.",
		Scope:   "This SOP applies to all Test Administrators involved in assessment operations across all FETS branches.",
		Responsibilities: []string{
			"Maintain exam integrity, confidentiality, and fairness.",
			"Execute secure candidate check-in, monitoring, and incident reporting.",
			"Follow emergency protocols and ensure end-of-day compliance.",
		},
		Steps: []SOPStep{
			{
				Heading: "Core Operational Philosophy",
				Content: []string{
					"Uniformity: Every candidate experiences the same conditions.",
					"Security: Prevention of malpractice is the primary goal.",
					"Service: Professional and calm demeanor at all times.",
				},
			},
		},
	},
	"opening": {
		ID:      "opening",
		Title:   "Branch Opening Procedure",
		Purpose: "To ensure all facility and technical systems are fully operational before the first candidate arrives.",
		Scope:   "Daily morning routine for the Test Administrator.",
		Responsibilities: []string{
			"Arrive at least 60 minutes before the first scheduled exam.",
			"Complete facility and technical checks before admitting candidates.",
		},
		Steps: []SOPStep{
			{
				Heading: "Facility Checks",
				Content: []string{
					"Disarm security system and inspect premises for tampering.",
					"Inspect exam hall for cleanliness, ventilation, and leftover debris.",
					"Unlock and inspect lockers for functionality.",
				},
			},
			{
				Heading: "Technical Setup",
				Content: []string{
					"Power on Server PC first, followed by Admin Station.",
					"Power on all candidate workstations.",
					"Verify internet connectivity and speed.",
					"Launch Exam Delivery Software (Proctor Station) and verify connection to central servers.",
					"Test biometric devices and cameras.",
				},
			},
			{
				Heading: "Administrative Prep",
				Content: []string{
					"Review the Daily Schedule Report.",
					"Print necessary rosters or scratch paper logs.",
					"Complete the \"Pre-Exam Checklist\".",
				},
			},
		},
	},
	"checkin": {
		ID:      "checkin",
		Title:   "Candidate Check-In Procedure",
		Purpose: "To verify candidate identity and prevent unauthorized materials from entering the testing room.",
		Scope:   "Applies to every candidate entering the facility.",
		Responsibilities: []string{
			"Act as both Greeter and Security Enforcer.",
			"Verify ID authenticity.",
			"Enforce personal item storage policies.",
		},
		Steps: []SOPStep{
			{
				Heading: "Identity Verification",
				Content: []string{
					"Greet candidate professionally.",
					"Request valid, government-issued ID (original only).",
					"Match photo on ID with the candidate standing in front of you.",
					"Compare ID photo with exam roster/previous attempt photos if available.",
					"Check ID expiration date and signature.",
				},
			},
			{
				Heading: "Security & Storage",
				Content: []string{
					"Direct candidate to place ALL personal items (phone, watch, wallet, bags) in an assigned locker.",
					"Candidate must turn pockets inside out.",
					"Inspect eyewear for cameras/electronics.",
					"Check sleeves and ankles for hidden notes.",
					"Hand over locker key to candidate.",
				},
			},
			{
				Heading: "Exam Admission",
				Content: []string{
					"Capture candidate photo/biometrics (if required by exam sponsor).",
					"Provide scratch paper/pencils as per specific exam rules.",
					"Read the \"Exam Rules Script\" to the candidate.",
					"Escort candidate to their assigned workstation.",
				},
			},
		},
	},
	"monitoring": {
		ID:      "monitoring",
		Title:   "Exam Monitoring Procedure",
		Purpose: "To detect and prevent academic dishonesty and ensure a distraction-free environment.",
		Scope:   "Duration of all active exam sessions.",
		Responsibilities: []string{
			"Maintain constant visual and audio surveillance.",
			"Address technical issues immediately.",
			"Log all irregularities.",
		},
		Steps: []SOPStep{
			{
				Heading: "Surveillance Requirements",
				Content: []string{
					"NEVER leave the monitoring area unattended while candidates are testing.",
					"Keep surveillance audio ON to hear whispering or unauthorized noises.",
					"Monitor screen views on the Admin Station for unauthorized applications.",
				},
			},
			{
				Heading: "Active Proctoring",
				Content: []string{
					"Perform a silent physical walk-through of the exam room every 15-20 minutes.",
					"Stand behind candidates (out of immediate view) to observe behavior.",
					"Look for: Excessive fidgeting, looking at other screens, mouthing words, reaching into pockets.",
				},
			},
			{
				Heading: "Intervention",
				Content: []string{
					"If a minor rule is broken (e.g., talking to self), issue a soft warning.",
					"If fraud is observed (e.g., cheat sheet), pause exam immediately and confiscate evidence.",
					"Log all breaks, technical errors, and warnings in the Daily Occurrence Book.",
				},
			},
		},
	},
	"emergency": {
		ID:      "emergency",
		Title:   "Emergency & Incident Response",
		Purpose: "To ensure safety of candidates and integrity of exam data during unforeseen events.",
		Scope:   "Power outages, fire alarms, medical emergencies, or server failures.",
		Responsibilities: []string{
			"Prioritize human safety above exam results.",
			"Communicate clearly and calmly.",
			"Report to FETS HQ immediately.",
		},
		Steps: []SOPStep{
			{
				Heading: "Power Failure / Technical Crash",
				Content: []string{
					"Immediately note the time of failure.",
					"Ask candidates to remain seated; do not let them leave the room.",
					"Check UPS/Generator status.",
					"If outage > 10 mins, contact Vendor Support Helpline.",
					"If exam cannot resume, file \"Exam Interruption Report\" for rescheduling.",
				},
			},
			{
				Heading: "Fire / Building Evacuation",
				Content: []string{
					"Stop all exams immediately.",
					"Instruct candidates to leave belongings and evacuate via nearest exit.",
					"Take the Daily Attendance Roster with you.",
					"Conduct head count at assembly point.",
					"Notify FETS Management.",
				},
			},
		},
	},
	"closing": {
		ID:      "closing",
		Title:   "End-of-Day Closing Procedure",
		Purpose: "To secure the facility and data after operations conclude.",
		Scope:   "Daily evening routine.",
		Responsibilities: []string{
			"Verify all candidates have departed.",
			"Secure data and hardware.",
			"Power down facility.",
		},
		Steps: []SOPStep{
			{
				Heading: "Operational Shutdown",
				Content: []string{
					"Ensure all candidates have finished exams and collected belongings.",
					"Verify all lockers are empty and keys returned.",
					"Collect used scratch paper and shred/store securely.",
					"Upload any offline exam logs to the central server.",
				},
			},
			{
				Heading: "Facility Shutdown",
				Content: []string{
					"Shut down all candidate workstations.",
					"Shut down Admin and Server PCs (unless night updates scheduled).",
					"Turn off lights and HVAC.",
					"Ensure windows and emergency exits are locked.",
					"Activate security alarm system.",
					"Lock main entrance.",
				},
			},
			{
				Heading: "Reporting",
				Content: []string{
					"Complete the \"Post-Exam Checklist\".",
					"Send \"End of Day Report\" email to Supervisors.",
				},
			},
		},
	},
	"compliance": {
		ID:      "compliance",
		Title:   "Compliance & Penalties",
		Purpose: "To outline the consequences of failing to adhere to FETS SOPs.",
		Scope:   "All employees and contractors.",
		Responsibilities: []string{
			"Adhere strictly to all outlined procedures.",
			"Report any witnessed non-compliance.",
		},
		Steps: []SOPStep{
			{
				Heading: "Zero Tolerance Policy",
				Content: []string{
					"Collusion with candidates (helping them cheat) results in immediate termination and legal action.",
					"Theft of exam content is a criminal offense.",
				},
			},
			{
				Heading: "Consequences of SOP Breach",
				Content: []string{
					"Minor (Procedural): Retraining and Written Warning.",
					"Major (Security/Integrity): Suspension pending investigation.",
					"Critical (Fraud/Theft): Contract termination and Blacklisting.",
				},
			},
			{
				Heading: "Guidance",
				Content: []string{
					"When unsure about a procedure, ALWAYS consult your immediate supervisor.",
					"Ignorance of the SOP is not a valid defense.",
				},
			},
		},
	},
}

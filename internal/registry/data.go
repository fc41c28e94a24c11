package registry

import "unidocs/internal/model"

var universities = map[string]model.UniversityProfile{
	"harvard": {
		Code:       "harvard",
		Name:       "Harvard University",
		Address:    "Cambridge, MA 02138",
		Phone:      "(617) 495-1000",
		Website:    "harvard.edu",
		ThemeColor: "8B0000",
	},
	"stanford": {
		Code:       "stanford",
		Name:       "Stanford University",
		Address:    "Stanford, CA 94305",
		Phone:      "(650) 723-2300",
		Website:    "stanford.edu",
		ThemeColor: "CC0000",
	},
	"mit": {
		Code:       "mit",
		Name:       "Massachusetts Institute of Technology",
		Address:    "Cambridge, MA 02139",
		Phone:      "(617) 253-1000",
		Website:    "mit.edu",
		ThemeColor: "8A2BE2",
	},
	"generic": {
		Code:       "generic",
		Name:       "University",
		Address:    "University Address",
		Phone:      "University Phone",
		Website:    "university.edu",
		ThemeColor: "2F4F4F",
	},
}

var templates = map[string]model.DocumentTemplate{
	"bonafide": {
		TypeCode: "bonafide",
		Title:    "BONAFIDE CERTIFICATE",
		Body:     "This is to certify that {student_name}, Roll No: {roll_number}, is a bonafide student of this institution. He/She has been studying in this institution since {admission_date} in the {course} program in the Department of {department}. This certificate is issued for the purpose of {purpose}.",
	},
	"noc": {
		TypeCode: "noc",
		Title:    "NO OBJECTION CERTIFICATE",
		Body:     "This is to certify that we have no objection to {student_name}, Roll No: {roll_number}, a student of {course} program in the Department of {department}, for {purpose}. The student is in good academic standing and has no disciplinary issues.",
	},
	"character": {
		TypeCode: "character",
		Title:    "CHARACTER CERTIFICATE",
		Body:     "This is to certify that {student_name}, Roll No: {roll_number}, is a student of {course} program in the Department of {department}. During his/her stay in this institution, his/her character and conduct have been found to be satisfactory. This certificate is issued for {purpose}.",
	},
	"transfer": {
		TypeCode: "transfer",
		Title:    "TRANSFER CERTIFICATE",
		Body:     "This is to certify that {student_name}, Roll No: {roll_number}, was a student of this institution from {admission_date} studying {course} in the Department of {department}. He/She is now seeking transfer for {purpose}. His/Her character and conduct during the stay were satisfactory.",
	},
	"fee_structure": {
		TypeCode: "fee_structure",
		Title:    "FEE STRUCTURE LETTER",
		Body:     "This letter provides the official fee structure for {student_name}, Roll No: {roll_number}, enrolled in {course} program in the Department of {department}. This information is provided for {purpose}. Please contact the finance office for detailed fee breakdown.",
	},
	"transcript": {
		TypeCode: "transcript",
		Title:    "ACADEMIC TRANSCRIPT REQUEST",
		Body:     "This acknowledges the request for official academic transcripts for {student_name}, Roll No: {roll_number}, enrolled in {course} program in the Department of {department}. The transcripts are requested for {purpose}. Official transcripts will be processed within 5-7 business days.",
	},
}

// Static option lists advertised by the system-info endpoint.
var (
	Courses = []string{
		"Bachelor of Science (B.Sc.)",
		"Bachelor of Arts (B.A.)",
		"Bachelor of Engineering (B.E.)",
		"Bachelor of Technology (B.Tech)",
		"Bachelor of Business Administration (B.B.A.)",
		"Master of Science (M.Sc.)",
		"Master of Arts (M.A.)",
		"Master of Engineering (M.E.)",
		"Master of Technology (M.Tech)",
		"Master of Business Administration (M.B.A.)",
		"Doctor of Philosophy (Ph.D.)",
		"Bachelor of Medicine (M.B.B.S.)",
		"Bachelor of Laws (L.L.B.)",
		"Master of Laws (L.L.M.)",
	}

	Departments = []string{
		"Computer Science",
		"Electrical Engineering",
		"Mechanical Engineering",
		"Civil Engineering",
		"Chemical Engineering",
		"Biotechnology",
		"Mathematics",
		"Physics",
		"Chemistry",
		"Biology",
		"Economics",
		"Business Administration",
		"Law",
		"Medicine",
		"Arts and Humanities",
		"Social Sciences",
	}

	YearOptions = []string{
		"1st Year",
		"2nd Year",
		"3rd Year",
		"4th Year",
		"5th Year",
		"6th Year",
	}
)

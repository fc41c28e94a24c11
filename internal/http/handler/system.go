package handler

import (
	"github.com/gofiber/fiber/v2"

	"unidocs/internal/model"
	"unidocs/internal/registry"
	"unidocs/internal/service"
)

// SystemInfoResponse advertises the reference data and form options.
type SystemInfoResponse struct {
	Universities  []model.UniversityProfile `json:"universities"`
	DocumentTypes []model.DocumentTypeInfo  `json:"document_types"`
	Courses       []string                  `json:"courses"`
	Departments   []string                  `json:"departments"`
	YearOptions   []string                  `json:"year_options"`
}

// SystemInfo handles GET /system-info.
func SystemInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(SystemInfoResponse{
			Universities:  registry.Universities(),
			DocumentTypes: registry.TemplateTypes(),
			Courses:       registry.Courses,
			Departments:   registry.Departments,
			YearOptions:   registry.YearOptions,
		})
	}
}

// ValidateResponse is the dry-run validation verdict.
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateRequest handles POST /validate-request: full request validation
// without generating a document.
func ValidateRequest(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.DocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		problems := svc.Validate(req)
		return c.JSON(ValidateResponse{Valid: len(problems) == 0, Errors: problems})
	}
}

// sampleStudents are fixture records for trying the API out.
var sampleStudents = []model.StudentData{
	{
		StudentName:   "John Smith",
		RollNumber:    "CS2024001",
		Course:        "Bachelor of Science (B.Sc.)",
		Department:    "Computer Science",
		YearOfStudy:   "2nd Year",
		AdmissionDate: "2023-08-15",
		Email:         "john.smith@university.edu",
		Phone:         "+1-555-0123",
		Purpose:       "Internship application",
	},
	{
		StudentName:   "Sarah Johnson",
		RollNumber:    "EE2024002",
		Course:        "Bachelor of Engineering (B.E.)",
		Department:    "Electrical Engineering",
		YearOfStudy:   "3rd Year",
		AdmissionDate: "2022-09-01",
		Email:         "sarah.johnson@university.edu",
		Phone:         "+1-555-0124",
		Purpose:       "Study abroad program",
	},
	{
		StudentName:   "Michael Chen",
		RollNumber:    "MBA2024003",
		Course:        "Master of Business Administration (M.B.A.)",
		Department:    "Business Administration",
		YearOfStudy:   "1st Year",
		AdmissionDate: "2024-01-15",
		Email:         "michael.chen@university.edu",
		Phone:         "+1-555-0125",
		Purpose:       "Professional certification",
	},
}

// SampleData handles GET /sample-data.
func SampleData() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"sample_students": sampleStudents})
	}
}

package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// หมวดปัญหาที่ฟอร์มรับ (closed list)
var IssueTypes = []string{
	"Lighting issues",
	"Sanitary problems",
	"Heating, ventilation or air conditioning issues",
	"Cleaning needs due to heavy soiling",
	"Network/internet problems",
	"Issues with/lack of IT equipment",
}

var ImportanceLevels = []string{"Low", "Medium", "High"}
var StatusLevels = []string{"Pending", "In Progress", "Resolved"}

const maxCommentLength = 500

var (
	// รับเฉพาะเมลของมหาวิทยาลัย
	emailPattern = regexp.MustCompile(`^[\w.]+@(student\.)?unisg\.ch$`)
	// รูปแบบห้อง เช่น "A 09-001"
	roomPattern      = regexp.MustCompile(`^[A-Z] \d{2}-\d{3}$`)
	roomMissingSpace = regexp.MustCompile(`^([A-Z])\s*(\d{2}-\d{3})$`)
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type SubmissionInput struct {
	Name        string `json:"name"`
	HsgEmail    string `json:"hsgEmail"`
	IssueType   string `json:"issueType"`
	RoomNumber  string `json:"roomNumber"`
	Importance  string `json:"importance"`
	UserComment string `json:"userComment"`
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeRoom แปลงเป็นรูปแบบมาตรฐาน เช่น "a09-001" → "A 09-001"
func NormalizeRoom(s string) string {
	room := strings.ToUpper(strings.TrimSpace(s))
	if m := roomMissingSpace.FindStringSubmatch(room); m != nil {
		return m[1] + " " + m[2]
	}
	return room
}

func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func ValidRoomNumber(s string) bool {
	return roomPattern.MatchString(s)
}

func isKnownIssueType(s string) bool {
	for _, t := range IssueTypes {
		if s == t {
			return true
		}
	}
	return false
}

func isKnownImportance(s string) bool {
	for _, l := range ImportanceLevels {
		if s == l {
			return true
		}
	}
	return false
}

func isKnownStatus(s string) bool {
	for _, l := range StatusLevels {
		if s == l {
			return true
		}
	}
	return false
}

// ValidateSubmission คาดว่า input ผ่าน normalize มาแล้ว
func ValidateSubmission(in SubmissionInput) []FieldError {
	var errs []FieldError

	if in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required."})
	}

	if in.HsgEmail == "" {
		errs = append(errs, FieldError{Field: "hsgEmail", Message: "HSG Email Address is required."})
	} else if !ValidEmail(in.HsgEmail) {
		errs = append(errs, FieldError{Field: "hsgEmail", Message: "Invalid mail address. Use ...@unisg.ch or ...@student.unisg.ch."})
	}

	if in.RoomNumber == "" {
		errs = append(errs, FieldError{Field: "roomNumber", Message: "Room Number is required."})
	} else if !ValidRoomNumber(in.RoomNumber) {
		errs = append(errs, FieldError{Field: "roomNumber", Message: "Invalid room number format. Example: 'A 09-001'."})
	}

	if !isKnownIssueType(in.IssueType) {
		errs = append(errs, FieldError{Field: "issueType", Message: "Invalid issue type selection."})
	}

	if !isKnownImportance(in.Importance) {
		errs = append(errs, FieldError{Field: "importance", Message: "Invalid importance selection."})
	}

	if in.UserComment == "" {
		errs = append(errs, FieldError{Field: "userComment", Message: "Problem Description is required."})
	} else if utf8.RuneCountInString(in.UserComment) > maxCommentLength {
		errs = append(errs, FieldError{Field: "userComment", Message: "Problem Description must be at most 500 characters."})
	}

	return errs
}

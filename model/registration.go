package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Department string

const (
	DeptAutoMech Department = "auto_mech"
	DeptCseAiml  Department = "cse_aiml"
	DeptEeeEce   Department = "eee_ece"
	DeptCivil    Department = "civil"
	DeptMlt      Department = "mlt"
)

// Departments lists every department in display order. Registration
// partitions are concatenated in this order by the admin viewer.
var Departments = []Department{DeptAutoMech, DeptCseAiml, DeptEeeEce, DeptCivil, DeptMlt}

var DepartmentNames = map[Department]string{
	DeptAutoMech: "AUTO / MECH",
	DeptCseAiml:  "CSE / AIML",
	DeptEeeEce:   "EEE / ECE",
	DeptCivil:    "CIVIL",
	DeptMlt:      "MLT",
}

func (d Department) IsValid() bool {
	_, ok := DepartmentNames[d]
	return ok
}

type EventType string

const (
	EventTechnical         EventType = "technical"
	EventNonTechnical      EventType = "non_technical"
	EventPaperPresentation EventType = "paper_presentation"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventTechnical, EventNonTechnical, EventPaperPresentation:
		return true
	}
	return false
}

// Registration partitions, one collection per department plus a shared
// collection for non-technical signups.
var RegistrationCollections = map[Department]string{
	DeptAutoMech: "registrations_auto_mech",
	DeptCseAiml:  "registrations_cse_aiml",
	DeptEeeEce:   "registrations_eee_ece",
	DeptCivil:    "registrations_civil",
	DeptMlt:      "registrations_mlt",
}

const NonTechnicalCollection = "registrations_non_technical"

// RegistrationCollection routes a signup to its partition: technical and
// paper-presentation registrations land in the department collection,
// everything else in the shared non-technical collection.
func RegistrationCollection(dept Department, eventType EventType) string {
	if eventType == EventTechnical || eventType == EventPaperPresentation {
		return RegistrationCollections[dept]
	}
	return NonTechnicalCollection
}

type Registration struct {
	Id                primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	College           string             `json:"college" bson:"college"`
	Department        Department         `json:"department" bson:"department"`
	Year              string             `json:"year" bson:"year"`
	Phone             string             `json:"phone" bson:"phone"`
	Email             string             `json:"email" bson:"email"`
	EventType         EventType          `json:"event_type" bson:"event_type"`
	EventName         string             `json:"event_name" bson:"event_name"`
	PaymentScreenshot string             `json:"payment_screenshot" bson:"payment_screenshot"`
	PaperFile         string             `json:"paper_file,omitempty" bson:"paper_file,omitempty"`
	PaperFileName     string             `json:"paper_file_name,omitempty" bson:"paper_file_name,omitempty"`
	Timestamp         time.Time          `json:"timestamp" bson:"timestamp"`
}

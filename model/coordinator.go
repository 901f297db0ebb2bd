package model

type Coordinator struct {
	Id         string     `json:"id" bson:"id"`
	Name       string     `json:"name" bson:"name"`
	Role       string     `json:"role" bson:"role"` // staff or student
	Phone      string     `json:"phone" bson:"phone"`
	Department Department `json:"department" bson:"department"`
}

// DepartmentInfo groups the coordinators shown on the public
// coordinators section, one document per department.
type DepartmentInfo struct {
	Id       Department    `json:"id" bson:"_id"`
	Name     string        `json:"name" bson:"name"`
	Staff    []Coordinator `json:"staff" bson:"staff"`
	Students []Coordinator `json:"students" bson:"students"`
}

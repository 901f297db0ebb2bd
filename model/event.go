package model

type TechEvent struct {
	Id          string     `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Department  Department `json:"department" bson:"department"`
	Type        EventType  `json:"type" bson:"type"`
	Description string     `json:"description" bson:"description"`
}

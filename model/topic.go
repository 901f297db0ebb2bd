package model

// PaperTopic lists the suggested paper-presentation topics for one
// department, keyed by the department id.
type PaperTopic struct {
	Department Department `json:"department" bson:"_id"`
	Topics     []string   `json:"topics" bson:"topics"`
}

package model

import (
	"regexp"
	"strings"
	"time"
)

// EventRule holds the rule sheet shown in the rules modal before a
// participant registers for an event.
type EventRule struct {
	Id          string    `json:"id" bson:"_id"`
	EventName   string    `json:"event_name" bson:"event_name"`
	Title       string    `json:"title" bson:"title"`
	Rules       []string  `json:"rules" bson:"rules"`
	LastUpdated time.Time `json:"last_updated" bson:"last_updated"`
}

var ruleIdStrip = regexp.MustCompile(`[^a-z0-9_]`)

// RuleId derives the rule document id from its event name, e.g.
// "Code Sprint!" -> "code_sprint".
func RuleId(eventName string) string {
	id := strings.ToLower(eventName)
	id = strings.Join(strings.Fields(id), "_")
	return ruleIdStrip.ReplaceAllString(id, "")
}

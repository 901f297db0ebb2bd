package model

// EventDetail is the symposium-wide singleton rendered on the hero
// section: dates, fee, prize pool, deadline. At most one live document
// exists, stored under a fixed id.
type EventDetail struct {
	College              string `json:"college" bson:"college"`
	Location             string `json:"location" bson:"location"`
	EventName            string `json:"event_name" bson:"event_name"`
	Tagline              string `json:"tagline" bson:"tagline"`
	EventDate            string `json:"event_date" bson:"event_date"`
	RegistrationFee      string `json:"registration_fee" bson:"registration_fee"`
	RegistrationDeadline string `json:"registration_deadline" bson:"registration_deadline"`
	IntimationDate       string `json:"intimation_date" bson:"intimation_date"`
	PrizeWorth           string `json:"prize_worth" bson:"prize_worth"`
	Website              string `json:"website" bson:"website"`
	SpotRegistration     bool   `json:"spot_registration" bson:"spot_registration"`
}

// EventDetailDocId is the fixed document id of the singleton.
const EventDetailDocId = "main"

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"symposium-portal/config"
	"symposium-portal/model"
)

// ErrNotFound is returned when a requested rule, event or detail
// document is absent from the store.
var ErrNotFound = errors.New("document not found")

const opTimeout = 5 * time.Second

var (
	EventsCollection      *mongo.Collection
	RulesCollection       *mongo.Collection
	DepartmentsCollection *mongo.Collection
	TopicsCollection      *mongo.Collection
	DetailsCollection     *mongo.Collection

	registrationCollections map[string]*mongo.Collection
)

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// DBInit dials the document store once and binds every collection
// handle the portal uses: the catalog collections plus the six
// registration partitions.
func DBInit() error {
	connString, err := config.GetSecret(config.MongoConnStringKey)
	if err != nil {
		return fmt.Errorf("cannot find connection string for DB in the environment: %v", err)
	}

	ctx, cancel := opCtx()
	defer cancel()

	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("cannot connect to the db: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("db is not available: %v", err)
	}

	db := client.Database(config.DatabaseName)

	EventsCollection = db.Collection("events")
	RulesCollection = db.Collection("event_rules")
	DepartmentsCollection = db.Collection("departments_info")
	TopicsCollection = db.Collection("paper_topics")
	DetailsCollection = db.Collection("event_details")

	registrationCollections = make(map[string]*mongo.Collection)
	for _, dept := range model.Departments {
		name := model.RegistrationCollections[dept]
		registrationCollections[name] = db.Collection(name)
	}
	registrationCollections[model.NonTechnicalCollection] = db.Collection(model.NonTechnicalCollection)

	return nil
}

func fetchAll(coll *mongo.Collection, out interface{}) error {
	ctx, cancel := opCtx()
	defer cancel()

	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("server side problem occured while reading from database: %v", err)
	}
	return cur.All(ctx, out)
}

// UpsertCollectionItem writes the full document back under its id,
// creating it when absent. Last write wins, there is no optimistic
// concurrency across admin sessions.
func UpsertCollectionItem(id interface{}, doc interface{}, coll *mongo.Collection) error {
	ctx, cancel := opCtx()
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
	return err
}

func DeleteFromCollection(id interface{}, coll *mongo.Collection) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveRegistration routes the signup to its partition and inserts it
// with a server-assigned timestamp. Returns the generated document id
// and the partition it was written to. Duplicate signups are allowed.
func SaveRegistration(reg model.Registration) (string, string, error) {
	collName := model.RegistrationCollection(reg.Department, reg.EventType)
	coll, ok := registrationCollections[collName]
	if !ok || coll == nil {
		return "", collName, fmt.Errorf("no partition %v configured", collName)
	}

	reg.Timestamp = time.Now().UTC()

	ctx, cancel := opCtx()
	defer cancel()

	res, err := coll.InsertOne(ctx, reg)
	if err != nil {
		return "", collName, fmt.Errorf("failed to save registration: %v", err)
	}

	id := ""
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	return id, collName, nil
}

// GetAllRegistrations concatenates all six partitions, department
// partitions in display order followed by the shared non-technical one.
func GetAllRegistrations() ([]model.Registration, error) {
	all := []model.Registration{}

	partitions := make([]string, 0, len(model.Departments)+1)
	for _, dept := range model.Departments {
		partitions = append(partitions, model.RegistrationCollections[dept])
	}
	partitions = append(partitions, model.NonTechnicalCollection)

	for _, name := range partitions {
		coll, ok := registrationCollections[name]
		if !ok || coll == nil {
			return nil, fmt.Errorf("no partition %v configured", name)
		}
		regs := []model.Registration{}
		if err := fetchAll(coll, &regs); err != nil {
			return nil, err
		}
		all = append(all, regs...)
	}

	return all, nil
}

func GetEvents() ([]model.TechEvent, error) {
	events := []model.TechEvent{}
	err := fetchAll(EventsCollection, &events)
	return events, err
}

func SaveEvent(event model.TechEvent) error {
	return UpsertCollectionItem(event.Id, event, EventsCollection)
}

func DeleteEvent(eventId string) error {
	return DeleteFromCollection(eventId, EventsCollection)
}

func GetRules() ([]model.EventRule, error) {
	rules := []model.EventRule{}
	err := fetchAll(RulesCollection, &rules)
	return rules, err
}

func GetRule(eventName string) (model.EventRule, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var rule model.EventRule
	err := RulesCollection.FindOne(ctx, bson.M{"event_name": eventName}).Decode(&rule)
	if err == mongo.ErrNoDocuments {
		return model.EventRule{}, ErrNotFound
	}
	if err != nil {
		return model.EventRule{}, fmt.Errorf("server side problem occured while reading rule from database: %v", err)
	}
	return rule, nil
}

// SaveRule stamps LastUpdated server-side on every write.
func SaveRule(rule model.EventRule) error {
	rule.LastUpdated = time.Now().UTC()
	return UpsertCollectionItem(rule.Id, rule, RulesCollection)
}

func DeleteRule(eventName string) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := RulesCollection.DeleteOne(ctx, bson.M{"event_name": eventName})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func GetDepartments() ([]model.DepartmentInfo, error) {
	departments := []model.DepartmentInfo{}
	err := fetchAll(DepartmentsCollection, &departments)
	return departments, err
}

func SaveDepartment(dept model.DepartmentInfo) error {
	return UpsertCollectionItem(dept.Id, dept, DepartmentsCollection)
}

func GetPaperTopics() ([]model.PaperTopic, error) {
	topics := []model.PaperTopic{}
	err := fetchAll(TopicsCollection, &topics)
	return topics, err
}

func SavePaperTopics(topic model.PaperTopic) error {
	return UpsertCollectionItem(topic.Department, topic, TopicsCollection)
}

func GetEventDetail() (model.EventDetail, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var detail model.EventDetail
	err := DetailsCollection.FindOne(ctx, bson.M{"_id": model.EventDetailDocId}).Decode(&detail)
	if err == mongo.ErrNoDocuments {
		return model.EventDetail{}, ErrNotFound
	}
	if err != nil {
		return model.EventDetail{}, fmt.Errorf("server side problem occured while reading event details from database: %v", err)
	}
	return detail, nil
}

func SaveEventDetail(detail model.EventDetail) error {
	ctx, cancel := opCtx()
	defer cancel()

	update := bson.M{"$set": detail}
	opts := options.Update().SetUpsert(true)
	_, err := DetailsCollection.UpdateOne(ctx, bson.M{"_id": model.EventDetailDocId}, update, opts)
	return err
}

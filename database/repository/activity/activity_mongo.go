package activityRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"kidsbook/database"
	"kidsbook/models"
)

// ErrInsufficientSpots is returned when a slot cannot cover the requested units.
var ErrInsufficientSpots = errors.New("slot has insufficient spots remaining")

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo returns an ActivityRepository backed by MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	return &mongoActivityRepo{coll: database.Collection("activities")}
}

func (r *mongoActivityRepo) Create(ctx context.Context, activity *models.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	for i := range activity.Slots {
		if activity.Slots[i].ID == "" {
			activity.Slots[i].ID = uuid.New().String()
		}
		activity.Slots[i].ActivityID = activity.ID
	}

	_, err := r.coll.InsertOne(ctx, activity)
	return err
}

func (r *mongoActivityRepo) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var activity models.Activity
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *mongoActivityRepo) List(ctx context.Context) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *mongoActivityRepo) DecrementSlotSpots(ctx context.Context, activityID, slotID string, units int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Guarded update: only matches while the slot still has `units` spots.
	filter := bson.M{
		"id": activityID,
		"slots": bson.M{"$elemMatch": bson.M{
			"id":        slotID,
			"spotsLeft": bson.M{"$gte": units},
		}},
	}
	update := bson.M{"$inc": bson.M{"slots.$.spotsLeft": -units}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrInsufficientSpots
	}
	return nil
}

func (r *mongoActivityRepo) RestoreSlotSpots(ctx context.Context, activityID, slotID string, units int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":       activityID,
		"slots.id": slotID,
	}
	update := bson.M{"$inc": bson.M{"slots.$.spotsLeft": units}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

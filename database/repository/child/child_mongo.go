package childRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"kidsbook/database"
	"kidsbook/models"
)

type mongoChildRepo struct {
	coll *mongo.Collection
}

// NewMongoChildRepo returns a ChildRepository backed by MongoDB.
func NewMongoChildRepo() ChildRepository {
	return &mongoChildRepo{coll: database.Collection("children")}
}

func (r *mongoChildRepo) Create(ctx context.Context, child *models.Child) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if child.ID == "" {
		child.ID = uuid.New().String()
	}
	child.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, child)
	return err
}

func (r *mongoChildRepo) GetByID(ctx context.Context, id string) (*models.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var child models.Child
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&child); err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *mongoChildRepo) ListByGuardian(ctx context.Context, guardianID string) ([]models.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"guardianId": guardianID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var children []models.Child
	if err := cursor.All(ctx, &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (r *mongoChildRepo) Update(ctx context.Context, child *models.Child) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	child.UpdatedAt = time.Now()
	filter := bson.M{"id": child.ID, "guardianId": child.GuardianID}
	update := bson.M{"$set": bson.M{
		"name":      child.Name,
		"birthDate": child.BirthDate,
		"updatedAt": child.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoChildRepo) Delete(ctx context.Context, guardianID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "guardianId": guardianID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

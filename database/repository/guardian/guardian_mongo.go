package guardianRepo

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

// ErrInsufficientCredits is returned when a deduction exceeds the wallet balance.
var ErrInsufficientCredits = errors.New("insufficient credits")

type mongoGuardianRepo struct {
	coll *mongo.Collection
}

// NewMongoGuardianRepo returns a GuardianRepository backed by MongoDB.
func NewMongoGuardianRepo() GuardianRepository {
	return &mongoGuardianRepo{coll: database.Collection("guardians")}
}

func (r *mongoGuardianRepo) Create(ctx context.Context, guardian *models.Guardian) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if guardian.ID == "" {
		guardian.ID = uuid.New().String()
	}
	guardian.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, guardian)
	return err
}

func (r *mongoGuardianRepo) GetByID(ctx context.Context, id string) (*models.Guardian, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var guardian models.Guardian
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guardian); err != nil {
		return nil, err
	}
	return &guardian, nil
}

func (r *mongoGuardianRepo) GetByEmail(ctx context.Context, email string) (*models.Guardian, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var guardian models.Guardian
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&guardian); err != nil {
		return nil, err
	}
	return &guardian, nil
}

func (r *mongoGuardianRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGuardianRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGuardianRepo) AddCredits(ctx context.Context, id string, amount int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"credits": amount}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGuardianRepo) DeductCredits(ctx context.Context, id string, amount int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Guarded update: only matches while the balance covers the deduction.
	filter := bson.M{"id": id, "credits": bson.M{"$gte": amount}}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"credits": -amount}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrInsufficientCredits
	}
	return nil
}

func (r *mongoGuardianRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.Update(ctx, id, map[string]interface{}{"tokenHash": tokenHash})
}

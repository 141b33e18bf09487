package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobboard/internal/models"
)

type JobRepository interface {
	Find(ctx context.Context, filter bson.M, skip, limit int) ([]models.Job, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	Insert(ctx context.Context, job *models.Job) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Job, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type jobRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func NewJobRepository(db *DB, log *logrus.Logger) JobRepository {
	return &jobRepository{coll: db.Collection(jobsCollection), log: log}
}

func (r *jobRepository) Find(ctx context.Context, filter bson.M, skip, limit int) ([]models.Job, error) {
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Errorf("Failed to query jobs: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		r.log.Errorf("Failed to decode jobs: %v", err)
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

func (r *jobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var job models.Job
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		r.log.Errorf("Failed to find job: %v", err)
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Insert(ctx context.Context, job *models.Job) error {
	res, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		r.log.Errorf("Failed to insert job: %v", err)
		return err
	}
	job.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateByID applies the $set atomically and returns the updated document, so
// a concurrent delete is reported as ErrNotFound rather than racing a
// separate existence check.
func (r *jobRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Job, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job models.Job
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		r.log.Errorf("Failed to update job: %v", err)
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Errorf("Failed to delete job: %v", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

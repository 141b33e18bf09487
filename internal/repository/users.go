package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jobboard/internal/models"
)

// ErrNotFound and ErrDuplicateEmail translate the store's signals so callers
// never depend on driver error types.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func NewUserRepository(db *DB, log *logrus.Logger) UserRepository {
	return &userRepository{coll: db.Collection(usersCollection), log: log}
}

// Create inserts the user and fills in the generated id. The unique email
// index makes the insert itself the authority on duplicates.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		r.log.Errorf("Failed to insert user: %v", err)
		return err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		r.log.Errorf("Failed to find user by email: %v", err)
		return nil, err
	}
	return &user, nil
}

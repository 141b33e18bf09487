package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jobboard/internal/models"
	"jobboard/internal/pagination"
	"jobboard/internal/repository"
)

var (
	ErrInvalidJobID = errors.New("invalid job ID")
	ErrJobNotFound  = errors.New("job not found")
)

type CreateJobInput struct {
	JobTitle       string
	SeniorityLevel string
	Status         string
	Company        string
	Location       string
	PostDate       string
	Headquarter    string
	Industry       string
	Ownership      string
	CompanySize    string
	Revenue        string
	Salary         string
	Skills         string
}

// UpdateJobInput carries only the fields present in the request; nil fields
// are left untouched. createdBy is deliberately absent.
type UpdateJobInput struct {
	JobTitle       *string
	SeniorityLevel *string
	Status         *string
	Company        *string
	Location       *string
	PostDate       *string
	Headquarter    *string
	Industry       *string
	Ownership      *string
	CompanySize    *string
	Revenue        *string
	Salary         *string
	Skills         *string
}

type JobService interface {
	List(ctx context.Context, search string, params pagination.Params) ([]models.Job, int64, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, userID string, in CreateJobInput) (*models.Job, error)
	Update(ctx context.Context, id string, in UpdateJobInput) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

type jobService struct {
	jobs   repository.JobRepository
	logger *zap.Logger
}

func NewJobService(jobs repository.JobRepository, logger *zap.Logger) JobService {
	return &jobService{jobs: jobs, logger: logger}
}

// List returns one page of jobs plus the unpaginated match count. A search
// term does case-insensitive substring matching over title, company and
// location.
func (s *jobService) List(ctx context.Context, search string, params pagination.Params) ([]models.Job, int64, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"job_title": pattern},
			bson.M{"company": pattern},
			bson.M{"location": pattern},
		}
	}

	total, err := s.jobs.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	jobs, err := s.jobs.Find(ctx, filter, params.Skip, params.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, total, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*models.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	job, err := s.jobs.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

func (s *jobService) Create(ctx context.Context, userID string, in CreateJobInput) (*models.Job, error) {
	now := time.Now().UTC()
	job := &models.Job{
		JobTitle:       in.JobTitle,
		SeniorityLevel: in.SeniorityLevel,
		Status:         in.Status,
		Company:        in.Company,
		Location:       in.Location,
		PostDate:       in.PostDate,
		Headquarter:    in.Headquarter,
		Industry:       in.Industry,
		Ownership:      in.Ownership,
		CompanySize:    in.CompanySize,
		Revenue:        in.Revenue,
		Salary:         in.Salary,
		Skills:         in.Skills,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.jobs.Insert(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.logger.Info("Job created", zap.String("id", job.ID.Hex()), zap.String("createdBy", userID))
	return job, nil
}

func (s *jobService) Update(ctx context.Context, id string, in UpdateJobInput) (*models.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for field, value := range map[string]*string{
		"job_title":       in.JobTitle,
		"seniority_level": in.SeniorityLevel,
		"status":          in.Status,
		"company":         in.Company,
		"location":        in.Location,
		"post_date":       in.PostDate,
		"headquarter":     in.Headquarter,
		"industry":        in.Industry,
		"ownership":       in.Ownership,
		"company_size":    in.CompanySize,
		"revenue":         in.Revenue,
		"salary":          in.Salary,
		"skills":          in.Skills,
	} {
		if value != nil {
			set[field] = *value
		}
	}

	job, err := s.jobs.UpdateByID(ctx, oid, set)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	s.logger.Info("Job updated", zap.String("id", id))
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidJobID
	}

	if err := s.jobs.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.logger.Info("Job deleted", zap.String("id", id))
	return nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Job struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	JobTitle       string             `bson:"job_title" json:"job_title"`
	SeniorityLevel string             `bson:"seniority_level,omitempty" json:"seniority_level,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	Company        string             `bson:"company" json:"company"`
	Location       string             `bson:"location" json:"location"`
	PostDate       string             `bson:"post_date,omitempty" json:"post_date,omitempty"`
	Headquarter    string             `bson:"headquarter,omitempty" json:"headquarter,omitempty"`
	Industry       string             `bson:"industry,omitempty" json:"industry,omitempty"`
	Ownership      string             `bson:"ownership,omitempty" json:"ownership,omitempty"`
	CompanySize    string             `bson:"company_size,omitempty" json:"company_size,omitempty"`
	Revenue        string             `bson:"revenue,omitempty" json:"revenue,omitempty"`
	Salary         string             `bson:"salary,omitempty" json:"salary,omitempty"`
	Skills         string             `bson:"skills,omitempty" json:"skills,omitempty"`
	CreatedBy      string             `bson:"createdBy" json:"createdBy"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/sirupsen/logrus"

	"jobboard/internal/httperr"
	"jobboard/internal/middleware"
	"jobboard/internal/pagination"
	"jobboard/internal/service"
)

type JobsHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type jobsHandler struct {
	jobService service.JobService
	log        *logrus.Logger
}

func NewJobsHandler(jobService service.JobService, log *logrus.Logger) JobsHandler {
	return &jobsHandler{jobService: jobService, log: log}
}

type CreateJobRequest struct {
	JobTitle       string `json:"job_title"`
	SeniorityLevel string `json:"seniority_level"`
	Status         string `json:"status"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	PostDate       string `json:"post_date"`
	Headquarter    string `json:"headquarter"`
	Industry       string `json:"industry"`
	Ownership      string `json:"ownership"`
	CompanySize    string `json:"company_size"`
	Revenue        string `json:"revenue"`
	Salary         string `json:"salary"`
	Skills         string `json:"skills"`
}

func (r CreateJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.JobTitle, validation.Required.Error("Job title is required")),
		validation.Field(&r.Company, validation.Required.Error("Company is required")),
		validation.Field(&r.Location, validation.Required.Error("Location is required")),
	)
}

type UpdateJobRequest struct {
	JobTitle       *string `json:"job_title"`
	SeniorityLevel *string `json:"seniority_level"`
	Status         *string `json:"status"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
	PostDate       *string `json:"post_date"`
	Headquarter    *string `json:"headquarter"`
	Industry       *string `json:"industry"`
	Ownership      *string `json:"ownership"`
	CompanySize    *string `json:"company_size"`
	Revenue        *string `json:"revenue"`
	Salary         *string `json:"salary"`
	Skills         *string `json:"skills"`
}

func (h *jobsHandler) List(c *gin.Context) {
	params := pagination.ParseParams(c.Query("page"), c.Query("limit"))

	jobs, total, err := h.jobService.List(c.Request.Context(), c.Query("search"), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       jobs,
		"pagination": pagination.NewMeta(total, params.Page, params.Limit),
	})
}

func (h *jobsHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    job,
	})
}

func (h *jobsHandler) Create(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		_ = c.Error(httperr.Unauthorized("User not authenticated"))
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for job creation: %v", err)
		_ = c.Error(httperr.BadRequest("Invalid request body"))
		return
	}

	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.Company = strings.TrimSpace(req.Company)
	req.Location = strings.TrimSpace(req.Location)
	if err := req.Validate(); err != nil {
		_ = c.Error(httperr.FromValidation(err))
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), userID.(string), service.CreateJobInput{
		JobTitle:       req.JobTitle,
		SeniorityLevel: req.SeniorityLevel,
		Status:         req.Status,
		Company:        req.Company,
		Location:       req.Location,
		PostDate:       req.PostDate,
		Headquarter:    req.Headquarter,
		Industry:       req.Industry,
		Ownership:      req.Ownership,
		CompanySize:    req.CompanySize,
		Revenue:        req.Revenue,
		Salary:         req.Salary,
		Skills:         req.Skills,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job created successfully",
		"data":    job,
	})
}

func (h *jobsHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for job update: %v", err)
		_ = c.Error(httperr.BadRequest("Invalid request body"))
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), c.Param("id"), service.UpdateJobInput{
		JobTitle:       req.JobTitle,
		SeniorityLevel: req.SeniorityLevel,
		Status:         req.Status,
		Company:        req.Company,
		Location:       req.Location,
		PostDate:       req.PostDate,
		Headquarter:    req.Headquarter,
		Industry:       req.Industry,
		Ownership:      req.Ownership,
		CompanySize:    req.CompanySize,
		Revenue:        req.Revenue,
		Salary:         req.Salary,
		Skills:         req.Skills,
	})
	if err != nil {
		_ = c.Error(mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated successfully",
		"data":    job,
	})
}

func (h *jobsHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully",
	})
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidJobID):
		return httperr.BadRequest("Invalid job ID")
	case errors.Is(err, service.ErrJobNotFound):
		return httperr.NotFound("Job not found")
	default:
		return err
	}
}

package api

import "time"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler  healthHandler
	projectHandler projectHandler
	tagHandler     tagHandler
	postHandler    postHandler
	contactHandler contactHandler
	adminHandler   adminHandler
	uploadHandler  uploadHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// MessageResponse is returned by deletes and other writes with nothing else to report.
type MessageResponse struct {
	Message string `json:"message" example:"Project deleted"`
}

type projectRequest struct {
	Title       string  `json:"title" validate:"notblank"`
	Description string  `json:"description"`
	TechStack   string  `json:"tech_stack"`
	LiveURL     *string `json:"live_url"`
	GithubURL   *string `json:"github_url"`
	ImageURL    *string `json:"image_url"`
	Featured    bool    `json:"featured"`
	TagIDs      []int64 `json:"tag_ids" validate:"omitempty,dive,gt=0"`
}

type tagRequest struct {
	Name string `json:"name" validate:"notblank,max=64"`
}

type postRequest struct {
	Title     string `json:"title" validate:"notblank"`
	Content   string `json:"content" validate:"notblank"`
	Slug      string `json:"slug"`
	Published bool   `json:"published"`
}

type contactRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

type contactResponse struct {
	Message   string    `json:"message"`
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

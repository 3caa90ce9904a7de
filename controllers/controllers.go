package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/olawale021/Docappointapp/registration"
	"github.com/olawale021/Docappointapp/scheduling"
	"github.com/olawale021/Docappointapp/store"
)

// Controller holds the injected collaborators the route handlers use.
type Controller struct {
	Store        *store.Store
	Scheduler    *scheduling.Service
	Registration *registration.Service
	Redis        *redis.Client
	UploadDir    string
}

func New(st *store.Store, sched *scheduling.Service, reg *registration.Service, rdb *redis.Client, uploadDir string) *Controller {
	return &Controller{
		Store:        st,
		Scheduler:    sched,
		Registration: reg,
		Redis:        rdb,
		UploadDir:    uploadDir,
	}
}

// respondSchedulingError maps the booking error taxonomy onto distinct
// user-facing messages. Anything unrecognized is a store-layer failure
// and becomes a generic operation-failed response.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrPastDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot book appointments on past dates"})
	case errors.Is(err, scheduling.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "The selected doctor is not available at the chosen date and time"})
	case errors.Is(err, scheduling.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time slot format"})
	case errors.Is(err, scheduling.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

// respondRegistrationError maps registration validation failures onto
// the specific violated rule.
func respondRegistrationError(c *gin.Context, err error) {
	var missing *registration.MissingFieldsError
	var short *registration.UsernameTooShortError
	var phone *registration.InvalidPhoneFormatError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "fields": missing.Fields})
	case errors.As(err, &short):
		c.JSON(http.StatusBadRequest, gin.H{"error": short.Error()})
	case errors.As(err, &phone):
		c.JSON(http.StatusBadRequest, gin.H{"error": phone.Error()})
	case errors.Is(err, registration.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already registered"})
	case errors.Is(err, registration.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No account found with that username"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olawale021/Docappointapp/authentication"
	"github.com/olawale021/Docappointapp/models"
	"github.com/olawale021/Docappointapp/registration"
)

// PatientSignup registers a new patient account as pending.
func (ct *Controller) PatientSignup(c *gin.Context) {
	var patient models.Patient
	if err := c.BindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ct.Registration.RegisterPatient(c.Request.Context(), patient); err != nil {
		respondRegistrationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Patient registration successful. Awaiting admin approval",
	})
}

// PatientLogin checks credentials and returns a token.
func (ct *Controller) PatientLogin(c *gin.Context) {
	ct.login(c, models.RolePatient)
}

// login is the shared credential check over the role-tagged account view.
func (ct *Controller) login(c *gin.Context, role models.Role) {
	var loginReq struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := ct.Store.FindAccount(c.Request.Context(), role, loginReq.Username)
	if err != nil || !registration.VerifyPassword(account.PasswordHash, loginReq.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	var token string
	switch role {
	case models.RolePatient:
		token, err = authentication.GeneratePatientToken(account.Username)
	case models.RoleDoctor:
		token, err = authentication.GenerateDoctorToken(account.Username)
	default:
		token, err = authentication.GenerateAdminToken(account.Username)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Login successful",
		"token":   token,
	})
}

// PatientDashboard gates on the registration status: approved patients
// get the booking data, pending ones a waiting message, anything else an
// error sending them back home.
func (ct *Controller) PatientDashboard(c *gin.Context) {
	username := c.GetString("patient_username")

	patient, err := ct.Store.Patients.FindByUsername(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient data not found"})
		return
	}

	switch patient.RegistrationStatus {
	case models.RegistrationApproved:
		doctors, err := ct.Store.Doctors.FindApproved(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
			return
		}
		busy, err := ct.Scheduler.BusyDates(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"Status":               "Success",
			"patient_full_name":    patient.FullName(),
			"doctors":              doctors,
			"busy_dates_by_doctor": busy,
		})
	case models.RegistrationPending:
		c.JSON(http.StatusForbidden, gin.H{
			"Status":  "Pending",
			"Message": "Your registration is awaiting admin approval",
		})
	default:
		c.JSON(http.StatusForbidden, gin.H{
			"error":    "Your registration was not approved",
			"redirect": "/",
		})
	}
}

// PatientLogout revokes the presented token.
func (ct *Controller) PatientLogout(c *gin.Context) {
	ct.logout(c)
}

func (ct *Controller) logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}
	if err := authentication.RevokeToken(c.Request.Context(), ct.Redis, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You are successfully logged out"})
}

package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/olawale021/Docappointapp/models"
	"github.com/olawale021/Docappointapp/store"
)

// AdminRegister creates an admin account. Admins have no approval
// workflow of their own.
func (ct *Controller) AdminRegister(c *gin.Context) {
	var admin models.Admin
	if err := c.BindJSON(&admin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	admin.Password = string(hash)

	if err := ct.Store.Admins.Insert(c.Request.Context(), admin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Admin registration successful"})
}

// AdminLogin checks credentials and returns a token.
func (ct *Controller) AdminLogin(c *gin.Context) {
	ct.login(c, models.RoleAdmin)
}

// AdminLogout revokes the presented token.
func (ct *Controller) AdminLogout(c *gin.Context) {
	ct.logout(c)
}

// PendingRegistrations lists the patient and doctor accounts awaiting a
// decision.
func (ct *Controller) PendingRegistrations(c *gin.Context) {
	patients, err := ct.Store.Patients.FindByStatus(c.Request.Context(), models.RegistrationPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}
	doctors, err := ct.Store.Doctors.FindByStatus(c.Request.Context(), models.RegistrationPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":           "Success",
		"pending_patients": patients,
		"pending_doctors":  doctors,
	})
}

// ApproveRegistration marks an account approved.
func (ct *Controller) ApproveRegistration(c *gin.Context) {
	ct.decideRegistration(c, models.RegistrationApproved)
}

// RejectRegistration marks an account rejected.
func (ct *Controller) RejectRegistration(c *gin.Context) {
	ct.decideRegistration(c, models.RegistrationRejected)
}

func (ct *Controller) decideRegistration(c *gin.Context, status string) {
	username := c.Param("username")

	changed, err := ct.Registration.Decide(c.Request.Context(), username, status)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}
	if !changed {
		c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "No changes made"})
		return
	}

	// Decision mail is best effort.
	if err := ct.sendDecisionMail(c.Request.Context(), username, status); err != nil {
		log.Println("registration decision mail:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Registration for " + username + " " + status,
	})
}

// AdminAppointments lists every appointment record.
func (ct *Controller) AdminAppointments(c *gin.Context) {
	appts, err := ct.Store.Appointments.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointments fetched successfully",
		"data":    appts,
	})
}

// BookingStatusCounts reports how many appointments sit in each
// lifecycle state.
func (ct *Controller) BookingStatusCounts(c *gin.Context) {
	counts := gin.H{}
	for _, status := range []string{models.StatusRequested, models.StatusApproved, models.StatusCancelled} {
		n, err := ct.Store.Appointments.CountByStatus(c.Request.Context(), status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
			return
		}
		counts[status] = n
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "data": counts})
}

// DeletePatient removes a patient account. Accounts are only ever
// hard-deleted through this explicit admin action.
func (ct *Controller) DeletePatient(c *gin.Context) {
	username := c.Param("username")

	if err := ct.Store.Patients.Delete(c.Request.Context(), username); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No patient with that username"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Patient deleted"})
}

// DeleteDoctor removes a doctor account.
func (ct *Controller) DeleteDoctor(c *gin.Context) {
	username := c.Param("username")

	if err := ct.Store.Doctors.Delete(c.Request.Context(), username); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No doctor with that username"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Doctor deleted"})
}

package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olawale021/Docappointapp/models"
)

// DoctorSignup registers a new doctor account as pending.
func (ct *Controller) DoctorSignup(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ct.Registration.RegisterDoctor(c.Request.Context(), doctor); err != nil {
		respondRegistrationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor registration successful. Awaiting admin approval",
	})
}

// DoctorLogin checks credentials and returns a token.
func (ct *Controller) DoctorLogin(c *gin.Context) {
	ct.login(c, models.RoleDoctor)
}

// DoctorLogout revokes the presented token.
func (ct *Controller) DoctorLogout(c *gin.Context) {
	ct.logout(c)
}

// DoctorDashboard returns the doctor's appointment requests and fixed
// appointments, both joined with patient display data.
func (ct *Controller) DoctorDashboard(c *gin.Context) {
	username := c.GetString("doctor_username")

	doctor, err := ct.Store.Doctors.FindByUsername(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if doctor.RegistrationStatus == models.RegistrationPending {
		c.JSON(http.StatusForbidden, gin.H{
			"Status":  "Pending",
			"Message": "Your registration is awaiting admin approval",
		})
		return
	}
	if doctor.RegistrationStatus != models.RegistrationApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your registration was not approved", "redirect": "/"})
		return
	}

	requests, err := ct.Scheduler.Requests(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}
	fixed, err := ct.Scheduler.Fixed(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":               "Success",
		"doctor_full_name":     doctor.FullName(),
		"appointment_requests": requests,
		"fixed_appointments":   fixed,
	})
}

// ApproveAppointment moves an appointment to approved and sends the
// patient a confirmation mail with the appointment summary attached.
func (ct *Controller) ApproveAppointment(c *gin.Context) {
	id := c.Param("appointment_id")

	changed, err := ct.Scheduler.Approve(c.Request.Context(), id)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if !changed {
		c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "No changes made"})
		return
	}

	// Confirmation mail is best effort; the approval already happened.
	if err := ct.sendApprovalMail(c.Request.Context(), id); err != nil {
		log.Println("appointment confirmation mail:", err)
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointment approved"})
}

// CancelAppointment moves an appointment to cancelled. The record stays
// around until someone deletes it.
func (ct *Controller) CancelAppointment(c *gin.Context) {
	id := c.Param("appointment_id")

	changed, err := ct.Scheduler.Cancel(c.Request.Context(), id)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if !changed {
		c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "No changes made"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointment cancelled"})
}

// DeleteAppointment removes the appointment record outright.
func (ct *Controller) DeleteAppointment(c *gin.Context) {
	id := c.Param("appointment_id")

	if err := ct.Scheduler.Delete(c.Request.Context(), id); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointment deleted"})
}

// UpdateDoctorProfile edits the free-form profile fields of the
// logged-in doctor.
func (ct *Controller) UpdateDoctorProfile(c *gin.Context) {
	username := c.GetString("doctor_username")

	var upd models.DoctorProfileUpdate
	if err := c.BindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ct.Store.Doctors.SetProfile(c.Request.Context(), username, upd); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Profile updated successfully"})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BookAppointment creates a requested appointment for the logged-in
// patient after the date and slot checks pass.
func (ct *Controller) BookAppointment(c *gin.Context) {
	var booking struct {
		DoctorUsername string `json:"doctor_username" binding:"required"`
		Date           string `json:"date" binding:"required"`
		TimeSlot       string `json:"time_slot" binding:"required"`
	}
	if err := c.BindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := c.GetString("patient_username")
	if patient == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Patient not authenticated"})
		return
	}

	appt, err := ct.Scheduler.Book(c.Request.Context(), patient, booking.DoctorUsername, booking.Date, booking.TimeSlot)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment request has been submitted successfully",
		"data":    appt,
	})
}

// PatientAppointments lists the patient's appointments enriched with
// doctor display data.
func (ct *Controller) PatientAppointments(c *gin.Context) {
	patient := c.GetString("patient_username")

	appts, err := ct.Scheduler.ForPatient(c.Request.Context(), patient)
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

// BusyDates returns each doctor's occupied dates for calendar grey-out.
func (ct *Controller) BusyDates(c *gin.Context) {
	if doctor := c.Query("doctor"); doctor != "" {
		dates, err := ct.Scheduler.BusyDatesFor(c.Request.Context(), doctor)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"Status": "Success", "data": gin.H{doctor: dates}})
		return
	}

	busy, err := ct.Scheduler.BusyDates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "data": busy})
}

// ListDoctors returns the approved doctors a patient can book with.
func (ct *Controller) ListDoctors(c *gin.Context) {
	doctors, err := ct.Store.Doctors.FindApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctors list fetched successfully",
		"data":    doctors,
	})
}

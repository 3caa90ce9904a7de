package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olawale021/Docappointapp/uploads"
)

// UploadPatientImage stores a profile picture and sets its reference on
// the logged-in patient.
func (ct *Controller) UploadPatientImage(c *gin.Context) {
	username := c.GetString("patient_username")

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	url, err := uploads.Save(ct.UploadDir, fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := ct.Store.Patients.SetImage(c.Request.Context(), username, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":    "Success",
		"Message":   "Profile image updated",
		"image_url": url,
	})
}

// UploadDoctorImage stores a profile picture and sets its reference on
// the logged-in doctor.
func (ct *Controller) UploadDoctorImage(c *gin.Context) {
	username := c.GetString("doctor_username")

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	url, err := uploads.Save(ct.UploadDir, fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := ct.Store.Doctors.SetImage(c.Request.Context(), username, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":    "Success",
		"Message":   "Profile image updated",
		"image_url": url,
	})
}

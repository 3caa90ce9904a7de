package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/olawale021/Docappointapp/authentication"
	"github.com/olawale021/Docappointapp/controllers"
)

// SetupRoutes builds the gin engine with the public endpoints and the
// three role-guarded groups.
func SetupRoutes(ct *controllers.Controller, rdb *redis.Client, uploadDir string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", uploadDir)

	// public
	r.POST("/patients/signup", ct.PatientSignup)
	r.POST("/patients/login", ct.PatientLogin)
	r.POST("/doctors/signup", ct.DoctorSignup)
	r.POST("/doctors/login", ct.DoctorLogin)
	r.POST("/admin/register", ct.AdminRegister)
	r.POST("/admin/login", ct.AdminLogin)

	patient := r.Group("/patient")
	patient.Use(authentication.PatientAuthMiddleware(rdb))
	{
		patient.GET("/dashboard", ct.PatientDashboard)
		patient.GET("/doctors", ct.ListDoctors)
		patient.GET("/busy-dates", ct.BusyDates)
		patient.POST("/book/appointment", ct.BookAppointment)
		patient.GET("/appointments", ct.PatientAppointments)
		patient.POST("/profile/image", ct.UploadPatientImage)
		patient.GET("/logout", ct.PatientLogout)
	}

	doctor := r.Group("/doctor")
	doctor.Use(authentication.DoctorAuthMiddleware(rdb))
	{
		doctor.GET("/dashboard", ct.DoctorDashboard)
		doctor.POST("/appointment/:appointment_id/approve", ct.ApproveAppointment)
		doctor.POST("/appointment/:appointment_id/cancel", ct.CancelAppointment)
		doctor.POST("/appointment/:appointment_id/delete", ct.DeleteAppointment)
		doctor.PATCH("/profile", ct.UpdateDoctorProfile)
		doctor.POST("/profile/image", ct.UploadDoctorImage)
		doctor.GET("/logout", ct.DoctorLogout)
	}

	admin := r.Group("/admin")
	admin.Use(authentication.AdminAuthMiddleware(rdb))
	{
		admin.GET("/pending", ct.PendingRegistrations)
		admin.POST("/approve_registration/:username", ct.ApproveRegistration)
		admin.POST("/reject_registration/:username", ct.RejectRegistration)
		admin.GET("/appointments", ct.AdminAppointments)
		admin.GET("/appointments/status-counts", ct.BookingStatusCounts)
		admin.POST("/appointment/:appointment_id/approve", ct.ApproveAppointment)
		admin.POST("/appointment/:appointment_id/cancel", ct.CancelAppointment)
		admin.POST("/appointment/:appointment_id/delete", ct.DeleteAppointment)
		admin.POST("/patient/:username/delete", ct.DeletePatient)
		admin.POST("/doctor/:username/delete", ct.DeleteDoctor)
		admin.GET("/logout", ct.AdminLogout)
	}

	return r
}

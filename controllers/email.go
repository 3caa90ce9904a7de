package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-gomail/gomail"
	"github.com/jung-kurt/gofpdf"

	"github.com/olawale021/Docappointapp/models"
)

// SendEmail sends a plain-text mail with an optional attachment. When no
// SMTP sender is configured it is a no-op so the app runs without mail.
func SendEmail(subject, msg, email, attachmentName string, attachmentData []byte) error {
	senderEmail := os.Getenv("SMTP_EMAIL")
	senderPassword := os.Getenv("SMTP_PASSWORD")
	if senderEmail == "" || email == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", msg)

	if len(attachmentData) > 0 {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachmentData)
			return err
		}))
	}

	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

// sendApprovalMail mails the patient a booking confirmation with the
// appointment summary PDF attached.
func (ct *Controller) sendApprovalMail(ctx context.Context, appointmentID string) error {
	appt, err := ct.Scheduler.Get(ctx, appointmentID)
	if err != nil {
		return err
	}
	patient, err := ct.Store.Patients.FindByUsername(ctx, appt.PatientUsername)
	if err != nil {
		return err
	}
	doctor, err := ct.Store.Doctors.FindByUsername(ctx, appt.DoctorUsername)
	if err != nil {
		return err
	}

	pdfData, err := generateAppointmentPDF(appt, doctor, patient)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Hello %s,\n\nYour appointment with Dr. %s on %s (%s) has been confirmed.",
		patient.FullName(), doctor.FullName(), appt.Date, appt.TimeSlot)
	return SendEmail("Appointment confirmed", msg, patient.Email, "appointment.pdf", pdfData)
}

// sendDecisionMail notifies an account of the admin's registration
// decision. The username may belong to a patient or a doctor.
func (ct *Controller) sendDecisionMail(ctx context.Context, username, status string) error {
	var email, name string
	if p, err := ct.Store.Patients.FindByUsername(ctx, username); err == nil {
		email, name = p.Email, p.FullName()
	} else if d, err := ct.Store.Doctors.FindByUsername(ctx, username); err == nil {
		email, name = d.Email, d.FullName()
	} else {
		return err
	}

	msg := fmt.Sprintf("Hello %s,\n\nYour registration has been %s.", name, status)
	return SendEmail("Registration "+status, msg, email, "", nil)
}

// generateAppointmentPDF renders the confirmed appointment as a one-page
// summary document.
func generateAppointmentPDF(appt models.Appointment, doctor models.Doctor, patient models.Patient) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "Doctor Appointment Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Confirmation", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Appointment ID", appt.ID.Hex(), true)
	addDetail(pdf, "Doctor", doctor.FullName(), true)
	addDetail(pdf, "Specialty", doctor.Specialty, true)
	addDetail(pdf, "Hospital", doctor.Hospital, true)
	addDetail(pdf, "Patient", patient.FullName(), true)
	addDetail(pdf, "Date", appt.Date, false)
	addDetail(pdf, "Time Slot", appt.TimeSlot, false)
	addDetail(pdf, "Status", appt.Status, false)

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated document", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// addDetail adds a label/value line to the PDF.
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}

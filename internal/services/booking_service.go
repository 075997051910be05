package services

import (
	"strings"

	"wtl-backend/internal/domain"
	"wtl-backend/internal/domain/models"
	"wtl-backend/internal/repositories"
)

// BookingService keeps the local trip history of confirmed bookings.
type BookingService struct {
	Repo repositories.BookingRepo
}

// SaveConfirmed stores a confirmed submission for /my-trip style listings.
func (s BookingService) SaveConfirmed(sub models.BookingSubmission, bookingID string) error {
	q := sub.Quote

	returnDate := ""
	if domain.IsRoundTrip(q.TripType) {
		returnDate = q.ReturnDate
	}

	rec := models.BookingRecord{
		BookingID:      bookingID,
		UserID:         strings.TrimSpace(sub.UserID),
		CabID:          q.CabID,
		ModelName:      q.ModelName,
		TripType:       q.TripType,
		PickupLocation: q.PickupLocation,
		DropLocation:   q.DropLocation,
		Date:           q.Date,
		ReturnDate:     returnDate,
		Time:           q.Time,
		Name:           sub.Contact.Name,
		Email:          sub.Contact.Email,
		Phone:          sub.Contact.Phone,
		ServiceCharge:  sub.ServiceCharge,
		GST:            sub.GST,
		Total:          sub.Total,
		PaymentMethod:  sub.PaymentMethod,
		PaymentType:    sub.PaymentType,
		PaymentStatus:  sub.PaymentStatus,
		AmountPaid:     sub.AmountPaid,
		Remaining:      sub.RemainingAmount,
	}

	_, err := s.Repo.Insert(rec)
	return err
}

func (s BookingService) ListByUser(userID string) ([]models.BookingRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.ValidationError{Field: "userId", Msg: "user id is required"}
	}
	recs, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return recs, nil
}

func (s BookingService) GetByID(id int64) (models.BookingRecord, error) {
	if id <= 0 {
		return models.BookingRecord{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return models.BookingRecord{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.BookingRecord{}, domain.InternalError{Err: err}
	}
	return rec, nil
}

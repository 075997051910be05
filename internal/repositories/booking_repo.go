package repositories

import (
	"database/sql"
	"fmt"

	"wtl-backend/internal/domain/models"
)

type BookingRepo struct {
	DB *sql.DB
}

// EnsureSchema creates the local history table when missing.
func (r BookingRepo) EnsureSchema() error {
	if r.DB == nil {
		return fmt.Errorf("db not available")
	}
	ddl := `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id VARCHAR(100) NOT NULL,
	user_id VARCHAR(100) NOT NULL DEFAULT '',
	cab_id VARCHAR(100) NOT NULL DEFAULT '',
	model_name VARCHAR(255) NOT NULL DEFAULT '',
	trip_type VARCHAR(50) NOT NULL DEFAULT '',
	pickup_location VARCHAR(255) NOT NULL DEFAULT '',
	drop_location VARCHAR(255) NOT NULL DEFAULT '',
	trip_date VARCHAR(50) NOT NULL DEFAULT '',
	return_date VARCHAR(50) NOT NULL DEFAULT '',
	trip_time VARCHAR(50) NOT NULL DEFAULT '',
	contact_name VARCHAR(255) NOT NULL DEFAULT '',
	contact_email VARCHAR(255) NOT NULL DEFAULT '',
	contact_phone VARCHAR(50) NOT NULL DEFAULT '',
	service_charge BIGINT NOT NULL DEFAULT 0,
	gst BIGINT NOT NULL DEFAULT 0,
	total BIGINT NOT NULL DEFAULT 0,
	payment_method VARCHAR(50) NOT NULL DEFAULT '',
	payment_type VARCHAR(50) NOT NULL DEFAULT '',
	payment_status VARCHAR(50) NOT NULL DEFAULT '',
	amount_paid BIGINT NOT NULL DEFAULT 0,
	remaining_amount BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_booking (booking_id),
	KEY idx_user (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.DB.Exec(ddl)
	return err
}

func (r BookingRepo) Insert(rec models.BookingRecord) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO bookings (
			booking_id, user_id, cab_id, model_name, trip_type,
			pickup_location, drop_location, trip_date, return_date, trip_time,
			contact_name, contact_email, contact_phone,
			service_charge, gst, total,
			payment_method, payment_type, payment_status, amount_paid, remaining_amount
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE payment_status=VALUES(payment_status), amount_paid=VALUES(amount_paid), remaining_amount=VALUES(remaining_amount)
	`,
		rec.BookingID, rec.UserID, rec.CabID, rec.ModelName, rec.TripType,
		rec.PickupLocation, rec.DropLocation, rec.Date, rec.ReturnDate, rec.Time,
		rec.Name, rec.Email, rec.Phone,
		rec.ServiceCharge, rec.GST, rec.Total,
		rec.PaymentMethod, rec.PaymentType, rec.PaymentStatus, rec.AmountPaid, rec.Remaining,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const bookingColumns = `
	id, booking_id, user_id, cab_id, model_name, trip_type,
	pickup_location, drop_location, trip_date, return_date, trip_time,
	contact_name, contact_email, contact_phone,
	service_charge, gst, total,
	payment_method, payment_type, payment_status, amount_paid, remaining_amount,
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')`

func (r BookingRepo) GetByID(id int64) (models.BookingRecord, error) {
	if id <= 0 {
		return models.BookingRecord{}, fmt.Errorf("invalid id")
	}
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	return scanBooking(row)
}

func (r BookingRepo) ListByUser(userID string) ([]models.BookingRecord, error) {
	rows, err := r.DB.Query(`SELECT `+bookingColumns+` FROM bookings WHERE user_id=? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.BookingRecord, 0)
	for rows.Next() {
		rec, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.BookingRecord, error) {
	var rec models.BookingRecord
	err := row.Scan(
		&rec.ID, &rec.BookingID, &rec.UserID, &rec.CabID, &rec.ModelName, &rec.TripType,
		&rec.PickupLocation, &rec.DropLocation, &rec.Date, &rec.ReturnDate, &rec.Time,
		&rec.Name, &rec.Email, &rec.Phone,
		&rec.ServiceCharge, &rec.GST, &rec.Total,
		&rec.PaymentMethod, &rec.PaymentType, &rec.PaymentStatus, &rec.AmountPaid, &rec.Remaining,
		&rec.CreatedAt,
	)
	return rec, err
}

package upstream

import (
	"fmt"

	"roomly/models"
)

// Wire shapes of the reservation service. Dates travel as "2006-01-02"
// strings and are converted to domain values here, at the ingestion boundary,
// so malformed ranges never reach the classifier.

type dateRangeDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (d dateRangeDTO) toInterval() (models.DateInterval, error) {
	start, err := models.ParseDate(d.StartDate)
	if err != nil {
		return models.DateInterval{}, err
	}
	end, err := models.ParseDate(d.EndDate)
	if err != nil {
		return models.DateInterval{}, err
	}
	return models.NewDateInterval(start, end)
}

type reservationDTO struct {
	ReservationID int64   `json:"reservationId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	AddedDate     string  `json:"addedDate"`
	Status        string  `json:"status"`
	RoomID        int64   `json:"roomId"`
	RoomNumber    int     `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	Username      string  `json:"username"`
	PhotoURL      string  `json:"photoUrl"`
}

func (d reservationDTO) toModel() (models.ReservationRecord, error) {
	iv, err := dateRangeDTO{StartDate: d.StartDate, EndDate: d.EndDate}.toInterval()
	if err != nil {
		return models.ReservationRecord{}, fmt.Errorf("reservation %d: %w", d.ReservationID, err)
	}

	record := models.ReservationRecord{
		ReservationID: d.ReservationID,
		StartDate:     iv.Start,
		EndDate:       iv.End,
		RoomID:        d.RoomID,
		RoomNumber:    d.RoomNumber,
		RoomType:      d.RoomType,
		PricePerNight: d.PricePerNight,
		Username:      d.Username,
		PhotoURL:      d.PhotoURL,
	}

	if d.AddedDate != "" {
		added, err := models.ParseDate(d.AddedDate)
		if err != nil {
			return models.ReservationRecord{}, fmt.Errorf("reservation %d: %w", d.ReservationID, err)
		}
		record.AddedDate = added
	}

	if status, ok := models.ParseReservationStatus(d.Status); ok {
		record.Status = status
	} else {
		record.Status = models.ReservationStatus(d.Status)
	}
	return record, nil
}

func toRecords(dtos []reservationDTO) ([]models.ReservationRecord, error) {
	records := make([]models.ReservationRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := dto.toModel()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

type historyPageDTO struct {
	Content    []reservationDTO `json:"content"`
	TotalPages int              `json:"totalPages"`
}

type reservationDatesDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	AddedDate string `json:"addedDate"`
}

type submitDTO struct {
	AppUserID        int64               `json:"appUserId"`
	RoomID           int64               `json:"roomId"`
	ReservationDates reservationDatesDTO `json:"reservationDates"`
	Status           string              `json:"status"`
}

type updateDatesDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type updateStatusDTO struct {
	Status string `json:"status"`
}

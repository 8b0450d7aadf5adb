package models

// RoomType is the closed set of room categories the reporting layer knows
// about. Records with an unrecognized type are skipped during aggregation
// rather than silently miscounted.
type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
)

// RoomTypes lists the known categories in display order.
func RoomTypes() []RoomType {
	return []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite}
}

// ParseRoomType maps a raw room type string onto the closed set.
func ParseRoomType(s string) (RoomType, bool) {
	switch RoomType(s) {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return RoomType(s), true
	default:
		return "", false
	}
}

// RoomContent describes the furnishing of a room.
type RoomContent struct {
	Chairs    int `json:"chairs"`
	Beds      int `json:"beds"`
	Desks     int `json:"desks"`
	Balconies int `json:"balconies"`
	TVs       int `json:"tvs"`
	Fridges   int `json:"fridges"`
	Kettles   int `json:"kettles"`
}

// Room mirrors the room resource owned by the reservation service.
type Room struct {
	ID            int64       `json:"id"`
	RoomNumber    int         `json:"roomNumber"`
	RoomType      string      `json:"roomType"`
	PricePerNight float64     `json:"pricePerNight"`
	PhotoURL      string      `json:"photoUrl"`
	Capacity      int         `json:"capacity"`
	RoomContent   RoomContent `json:"roomContent"`
}

package dto

// GeocodeRequest is a place-name search issued by the map search box.
type GeocodeRequest struct {
	Query string `json:"q" validate:"required,min=2"`
}

package dto

type Theme struct {
	Theme string `json:"theme" example:"dark"`
}

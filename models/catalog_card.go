package models

// PageState is where a catalog page load ended up.
type PageState string

const (
	PageIdle    PageState = "idle"
	PageLoading PageState = "loading"
	PageLoaded  PageState = "loaded"
	PageFailed  PageState = "failed"
)

// CatalogCard is one rendered card of a catalog page.
type CatalogCard struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Image        string   `json:"image,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	HasPrice     bool     `json:"hasPrice"`
	CategoryName string   `json:"categoryName,omitempty"`
	Tag          string   `json:"tag,omitempty"`
	Clickable    bool     `json:"clickable"`
	Action       string   `json:"action"`
	Route        string   `json:"route,omitempty"`
	Reservation  string   `json:"reservation,omitempty"`
}

// PageResult is the response of a catalog page load.
type PageResult struct {
	Slug    string        `json:"slug"`
	Lang    string        `json:"lang"`
	State   PageState     `json:"state"`
	Cards   []CatalogCard `json:"cards"`
	Empty   bool          `json:"empty"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}

package entity

import (
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// BlogSummary is a blog entity as returned by the blog API. The studio never
// mutates one except to patch counters after a like/share response.
type BlogSummary struct {
	ID             string          `json:"_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	SubCategory    string          `json:"subCategory"`
	CancerStage    string          `json:"cancerStage"`
	Spotlight      bool            `json:"spotlight"`
	WrittenBy      string          `json:"writtenBy"`
	ImageURL       string          `json:"imageUrl"`
	Metadata       []string        `json:"metadata"`
	VideoLinks     []string        `json:"videoLinks"`
	ViewsCount     int             `json:"viewsCount"`
	LikesCount     int             `json:"likesCount"`
	SharesCount    int             `json:"sharesCount"`
	Comments       []Comment       `json:"comments"`
	BlogImages     []GalleryImage  `json:"blogImage"`
	AdminStatement *AdminStatement `json:"adminStatement"`
	Faqs           []FAQ           `json:"faqs"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type Comment struct {
	ID          string    `json:"_id"`
	Comment     string    `json:"comment"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AdminStatement struct {
	Quotation   string `json:"quotation"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (f FAQ) IsBlank() bool {
	return strings.TrimSpace(f.Question) == "" && strings.TrimSpace(f.Answer) == ""
}

// GalleryImage appears in API responses either as a bare URL string or as an
// object with an imageUrl field.
type GalleryImage struct {
	ImageURL string `json:"imageUrl"`
}

func (g *GalleryImage) UnmarshalJSON(data []byte) error {
	var asString string
	if err := jsoniter.Unmarshal(data, &asString); err == nil {
		g.ImageURL = asString
		return nil
	}

	var asObject struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := jsoniter.Unmarshal(data, &asObject); err != nil {
		return err
	}
	g.ImageURL = asObject.ImageURL
	return nil
}

type Category struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

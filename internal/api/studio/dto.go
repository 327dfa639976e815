package studio

import (
	"BlogStudio/internal/entity"
	"time"
)

// Draft field names accepted by the update-field intent.
const (
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldMetadata         = "metadata"
	FieldVideoLinks       = "videoLinks"
	FieldCategory         = "category"
	FieldSubCategory      = "subCategory"
	FieldCancerStage      = "cancerStage"
	FieldWrittenBy        = "writtenBy"
	FieldAdminQuotation   = "adminQuotation"
	FieldAdminName        = "adminName"
	FieldAdminDesignation = "adminDesignation"
)

// Cancer stage values accepted by the blog API.
const (
	StageAny            = "ANY"
	StageInTreatment    = "IN_TREATMENT"
	StageNewlyTreatment = "NEWLY_TREATMENT"
	StagePostTreatment  = "POST_TREATMENT"
)

// File slots of the draft.
const (
	FileKeyImage      = "image"
	FileKeyAdminPhoto = "adminPhoto"
	FileKeyBlogImage  = "blogImage"
)

// Editor modes.
const (
	ModeCreating = "creating"
	ModeEditing  = "editing"
)

// StagedFile is a file picked for the draft, held in memory until submission.
type StagedFile struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
	Size        int64  `json:"size"`
}

// Payload is the multipart-encoded draft ready to send to the blog API.
type Payload struct {
	ContentType string
	Body        []byte
}

type UpdateFieldRequest struct {
	Name  string `json:"name" validate:"required,oneof=title description metadata videoLinks category subCategory cancerStage writtenBy adminQuotation adminName adminDesignation"`
	Value string `json:"value"`
}

type SpotlightRequest struct {
	Spotlight *bool `json:"spotlight" validate:"required"`
}

type FaqUpdateRequest struct {
	Field string `json:"field" validate:"required,oneof=question answer"`
	Value string `json:"value"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type PageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

type AddCategoryRequest struct {
	Name string `json:"name"`
}

type AddSubcategoryRequest struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}

// SelectTaxonomyRequest carries the chosen id; an empty id clears the
// selection, matching a dropdown reset to its placeholder.
type SelectTaxonomyRequest struct {
	ID string `json:"id"`
}

type StatusView struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type HeaderView struct {
	TotalBlogs int    `json:"totalBlogs"`
	Mode       string `json:"mode"`
}

type CommentView struct {
	Text        string `json:"text"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

type BlogCard struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Category      string        `json:"category"`
	SubCategory   string        `json:"subCategory"`
	WrittenBy     string        `json:"writtenBy"`
	CancerStage   string        `json:"cancerStage"`
	ImageURL      string        `json:"imageUrl"`
	Metadata      []string      `json:"metadata"`
	ViewsCount    int           `json:"viewsCount"`
	LikesCount    int           `json:"likesCount"`
	SharesCount   int           `json:"sharesCount"`
	CommentsCount int           `json:"commentsCount"`
	Comments      []CommentView `json:"comments"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type LibraryView struct {
	Loading     bool       `json:"loading"`
	Blogs       []BlogCard `json:"blogs"`
	SearchQuery string     `json:"searchQuery"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	TotalBlogs  int        `json:"totalBlogs"`
	Status      StatusView `json:"status"`
}

type DraftView struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Metadata         string `json:"metadata"`
	VideoLinks       string `json:"videoLinks"`
	Spotlight        bool   `json:"spotlight"`
	Category         string `json:"category"`
	SubCategory      string `json:"subCategory"`
	CancerStage      string `json:"cancerStage"`
	WrittenBy        string `json:"writtenBy"`
	AdminQuotation   string `json:"adminQuotation"`
	AdminName        string `json:"adminName"`
	AdminDesignation string `json:"adminDesignation"`
}

type FilesView struct {
	Image      *StagedFile  `json:"image"`
	AdminPhoto *StagedFile  `json:"adminPhoto"`
	BlogImages []StagedFile `json:"blogImage"`
}

type SubcategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryView struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Subcategories []SubcategoryView `json:"subcategories"`
}

type EditorView struct {
	SelectedID            string         `json:"selectedId"`
	Mode                  string         `json:"mode"`
	Draft                 DraftView      `json:"draft"`
	Faqs                  []entity.FAQ   `json:"faqs"`
	Files                 FilesView      `json:"files"`
	Categories            []CategoryView `json:"categories"`
	SelectedCategoryID    string         `json:"selectedCategoryId"`
	SelectedSubcategoryID string         `json:"selectedSubcategoryId"`
	Saving                bool           `json:"saving"`
	Status                StatusView     `json:"status"`
}

type PreviewView struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category"`
	SubCategory    string                 `json:"subCategory"`
	WrittenBy      string                 `json:"writtenBy"`
	CancerStage    string                 `json:"cancerStage"`
	Spotlight      bool                   `json:"spotlight"`
	Metadata       []string               `json:"metadata"`
	VideoLinks     []string               `json:"videoLinks"`
	ImageURL       string                 `json:"imageUrl"`
	GalleryImages  []string               `json:"galleryImages"`
	AdminStatement *entity.AdminStatement `json:"adminStatement"`
	Faqs           []entity.FAQ           `json:"faqs"`
	Comments       []CommentView          `json:"comments"`
	ViewsCount     int                    `json:"viewsCount"`
	LikesCount     int                    `json:"likesCount"`
	SharesCount    int                    `json:"sharesCount"`
	CreatedAt      time.Time              `json:"createdAt"`
}

package studio

import "BlogStudio/pkg/response"

var (
	// Draft validation, checked in this order before any network call.
	ErrRequiredFieldsMissing = response.NewError(400, "Title, description, category, and author are required.")
	ErrMainImageRequired     = response.NewError(400, "Main image is required for new blogs.")
	ErrTwoBlogImagesRequired = response.NewError(400, "Upload exactly two blog images.")
	ErrBothBlogImagesNeeded  = response.NewError(400, "When updating, provide both blog images.")

	// Taxonomy intents.
	ErrCategoryNameRequired    = response.NewError(400, "Category name is required.")
	ErrSubcategoryNameRequired = response.NewError(400, "Subcategory name is required.")
	ErrSelectCategoryFirst     = response.NewError(400, "Select a category first.")

	// Editor intents.
	ErrUnknownField       = response.NewError(400, "unknown draft field")
	ErrUnknownFileKey     = response.NewError(400, "unknown file key")
	ErrInvalidCancerStage = response.NewError(400, "invalid cancer stage")
	ErrFaqIndexOutOfRange = response.NewError(400, "faq index out of range")
	ErrLastFaqSlot        = response.NewError(400, "at least one FAQ slot must remain")
	ErrSaveInFlight       = response.NewError(409, "A save is already in progress.")
	ErrBlogNotLoaded      = response.NewError(404, "blog is not in the loaded list")
)

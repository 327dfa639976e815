package studioHandler

import (
	studioStore "BlogStudio/internal/api/studio/store"
	"BlogStudio/internal/middleware"
	"BlogStudio/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StudioHandler struct {
	log        *logrus.Logger
	validator  *validator.Validate
	middleware middleware.Middleware
	stores     *studioStore.Stores
	utils      utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	stores *studioStore.Stores,
	utilsInstance utils.IUtils,
) *StudioHandler {
	return &StudioHandler{
		log:        log,
		validator:  validate,
		middleware: middleware,
		stores:     stores,
		utils:      utilsInstance,
	}
}

func (h *StudioHandler) Start(srv fiber.Router) {
	studio := srv.Group("/studio", h.middleware.NewRateLimiter)

	studio.Get("/header", h.GetHeader)

	library := studio.Group("/library")
	library.Get("", h.GetLibrary)
	library.Post("/search", h.SearchBlogs)
	library.Post("/page", h.SetPage)
	library.Post("/refresh", h.RefreshLibrary)
	library.Get("/preview/:id", h.PreviewBlog)

	blogs := studio.Group("/blogs")
	blogs.Post("/:id/like", h.LikeBlog)
	blogs.Post("/:id/share", h.ShareBlog)
	blogs.Delete("/:id", h.DeleteBlog)

	editor := studio.Group("/editor")
	editor.Get("", h.GetEditor)
	editor.Post("/select/:id", h.SelectBlog)
	editor.Post("/reset", h.ResetEditor)
	editor.Post("/fields", h.UpdateField)
	editor.Post("/spotlight", h.SetSpotlight)
	editor.Post("/faqs", h.AddFaq)
	editor.Put("/faqs/:index", h.UpdateFaq)
	editor.Delete("/faqs/:index", h.RemoveFaq)
	editor.Post("/files/:key", h.UploadFiles)
	editor.Delete("/files/:key", h.ClearFiles)
	editor.Post("/submit", h.SubmitDraft)

	taxonomy := studio.Group("/taxonomy")
	taxonomy.Post("/categories", h.AddCategory)
	taxonomy.Post("/subcategories", h.AddSubcategory)
	taxonomy.Post("/select/category", h.SelectCategory)
	taxonomy.Post("/select/subcategory", h.SelectSubcategory)
}

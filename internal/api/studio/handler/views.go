package studioHandler

import (
	"BlogStudio/internal/api/studio"
	"BlogStudio/internal/entity"
)

const excerptLength = 160

func (h *StudioHandler) statusView() studio.StatusView {
	kind, message := h.stores.Status.Snapshot()
	return studio.StatusView{Type: kind, Message: message}
}

func (h *StudioHandler) buildHeaderView() studio.HeaderView {
	return studio.HeaderView{
		TotalBlogs: h.stores.List.Total(),
		Mode:       h.stores.Form.Mode(),
	}
}

func (h *StudioHandler) buildLibraryView() studio.LibraryView {
	snapshot := h.stores.List.Snapshot()
	page := h.stores.List.CurrentPageSlice()

	cards := make([]studio.BlogCard, 0, len(page))
	for _, blog := range page {
		cards = append(cards, h.buildBlogCard(blog))
	}

	return studio.LibraryView{
		Loading:     snapshot.Loading,
		Blogs:       cards,
		SearchQuery: snapshot.Query,
		CurrentPage: snapshot.CurrentPage,
		TotalPages:  snapshot.TotalPages,
		TotalBlogs:  len(snapshot.Blogs),
		Status:      h.statusView(),
	}
}

func (h *StudioHandler) buildBlogCard(blog entity.BlogSummary) studio.BlogCard {
	return studio.BlogCard{
		ID:            blog.ID,
		Title:         blog.Title,
		Excerpt:       h.utils.BuildExcerpt(h.utils.StripHTML(blog.Description), excerptLength),
		Category:      blog.Category,
		SubCategory:   blog.SubCategory,
		WrittenBy:     blog.WrittenBy,
		CancerStage:   blog.CancerStage,
		ImageURL:      blog.ImageURL,
		Metadata:      blog.Metadata,
		ViewsCount:    blog.ViewsCount,
		LikesCount:    blog.LikesCount,
		SharesCount:   blog.SharesCount,
		CommentsCount: len(blog.Comments),
		Comments:      buildCommentViews(blog.Comments),
		CreatedAt:     blog.CreatedAt,
	}
}

func buildCommentViews(comments []entity.Comment) []studio.CommentView {
	views := make([]studio.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, studio.CommentView{
			Text:        comment.Comment,
			Name:        comment.Name,
			PhoneNumber: comment.PhoneNumber,
		})
	}
	return views
}

func (h *StudioHandler) buildEditorView() studio.EditorView {
	form := h.stores.Form.Snapshot()
	taxonomy := h.stores.Taxonomy.Snapshot()

	categories := make([]studio.CategoryView, 0, len(taxonomy.Categories))
	for _, category := range taxonomy.Categories {
		subcategories := make([]studio.SubcategoryView, 0, len(category.Subcategories))
		for _, subcategory := range category.Subcategories {
			subcategories = append(subcategories, studio.SubcategoryView{
				ID:   subcategory.ID,
				Name: subcategory.Name,
			})
		}
		categories = append(categories, studio.CategoryView{
			ID:            category.ID,
			Name:          category.Name,
			Subcategories: subcategories,
		})
	}

	return studio.EditorView{
		SelectedID: form.SelectedID,
		Mode:       h.stores.Form.Mode(),
		Draft: studio.DraftView{
			Title:            form.Draft.Title,
			Description:      form.Draft.Description,
			Metadata:         form.Draft.Metadata,
			VideoLinks:       form.Draft.VideoLinks,
			Spotlight:        form.Draft.Spotlight,
			Category:         form.Draft.Category,
			SubCategory:      form.Draft.SubCategory,
			CancerStage:      form.Draft.CancerStage,
			WrittenBy:        form.Draft.WrittenBy,
			AdminQuotation:   form.Draft.AdminQuotation,
			AdminName:        form.Draft.AdminName,
			AdminDesignation: form.Draft.AdminDesignation,
		},
		Faqs: form.Faqs,
		Files: studio.FilesView{
			Image:      form.Files.Image,
			AdminPhoto: form.Files.AdminPhoto,
			BlogImages: form.Files.BlogImages,
		},
		Categories:            categories,
		SelectedCategoryID:    taxonomy.SelectedCategoryID,
		SelectedSubcategoryID: taxonomy.SelectedSubcategoryID,
		Saving:                form.Saving,
		Status:                h.statusView(),
	}
}

func buildPreviewView(blog entity.BlogSummary) studio.PreviewView {
	gallery := make([]string, 0, len(blog.BlogImages))
	for _, image := range blog.BlogImages {
		gallery = append(gallery, image.ImageURL)
	}

	return studio.PreviewView{
		ID:             blog.ID,
		Title:          blog.Title,
		Description:    blog.Description,
		Category:       blog.Category,
		SubCategory:    blog.SubCategory,
		WrittenBy:      blog.WrittenBy,
		CancerStage:    blog.CancerStage,
		Spotlight:      blog.Spotlight,
		Metadata:       blog.Metadata,
		VideoLinks:     blog.VideoLinks,
		ImageURL:       blog.ImageURL,
		GalleryImages:  gallery,
		AdminStatement: blog.AdminStatement,
		Faqs:           blog.Faqs,
		Comments:       buildCommentViews(blog.Comments),
		ViewsCount:     blog.ViewsCount,
		LikesCount:     blog.LikesCount,
		SharesCount:    blog.SharesCount,
		CreatedAt:      blog.CreatedAt,
	}
}

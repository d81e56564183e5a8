package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger/api/auth"
	"blogger/services"
)

// CreateBlogHandler godoc
// @Summary      Create blog
// @Description  Create a blog owned by the caller. title, description and content are required; type defaults to Other.
// @Tags         blogs
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body      dto.CreateBlogRequest  true  "Blog fields"
// @Success      201   {object}  dto.BlogResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Security     AccessToken
// @Router       /blog/create [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := auth.IdentityFrom(c)
		if !ok {
			respondError(c, services.NewUnauthorizedError("Unauthorized request", nil))
			return
		}

		req, err := bindBlogRequest(c)
		if err != nil {
			respondError(c, err)
			return
		}

		view, err := svc.CreateBlog(c.Request.Context(), services.CreateBlogInput{
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			Tags:        req.tags,
			Type:        req.Type,
		}, actor)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, view, "Blog Created successfully!!")
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete blog
// @Description  Permanently delete one of the caller's blogs.
// @Tags         blogs
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body      dto.DeleteBlogRequest  true  "Blog id"
// @Success      200   {object}  dto.ResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      403   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Security     AccessToken
// @Router       /blog/delete [post]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := auth.IdentityFrom(c)
		if !ok {
			respondError(c, services.NewUnauthorizedError("Unauthorized request", nil))
			return
		}

		req, err := bindBlogRequest(c)
		if err != nil {
			respondError(c, err)
			return
		}

		if err := svc.DeleteBlog(c.Request.Context(), deref(req.BlogID), actor); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, nil, "Blog deleted successfully")
	}
}

// UpdateBlogHandler godoc
// @Summary      Update blog
// @Description  Partially update one of the caller's blogs. Blank text fields are ignored; tags are replaced only when an array is sent.
// @Tags         blogs
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body      dto.UpdateBlogRequest  true  "Blog id and fields to change"
// @Success      200   {object}  dto.BlogResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      403   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Security     AccessToken
// @Router       /blog/update [post]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := auth.IdentityFrom(c)
		if !ok {
			respondError(c, services.NewUnauthorizedError("Unauthorized request", nil))
			return
		}

		req, err := bindBlogRequest(c)
		if err != nil {
			respondError(c, err)
			return
		}

		view, err := svc.UpdateBlog(c.Request.Context(), deref(req.BlogID), actor, services.BlogPatch{
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			Tags:        req.tags,
			TagsSet:     req.tagsSet,
			Type:        req.Type,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, view, "Blog updated successfully")
	}
}

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  List every blog, newest first, without content.
// @Tags         blogs
// @Param        page   query  int  false  "Page number (1-based)"
// @Param        limit  query  int  false  "Page size (default 3)"
// @Produce      json
// @Success      200  {object}  dto.BlogPageResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/get [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.ListBlogs(c.Request.Context(), services.PageQuery{
			Page:  c.Query("page"),
			Limit: c.Query("limit"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, page, "Fetched all blogs successfully")
	}
}

// ListMyBlogsHandler godoc
// @Summary      List my blogs
// @Description  List the caller's blogs, newest first, with content.
// @Tags         blogs
// @Param        page   query  int  false  "Page number (1-based)"
// @Param        limit  query  int  false  "Page size (default 5)"
// @Produce      json
// @Success      200  {object}  dto.BlogPageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Security     AccessToken
// @Router       /blog/getmyblogs [get]
func ListMyBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := auth.IdentityFrom(c)
		if !ok {
			respondError(c, services.NewUnauthorizedError("Unauthorized request", nil))
			return
		}

		page, err := svc.ListMyBlogs(c.Request.Context(), actor, services.PageQuery{
			Page:  c.Query("page"),
			Limit: c.Query("limit"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, page, "Fetched your blogs successfully")
	}
}

// GetBlogHandler godoc
// @Summary      Get blog
// @Description  Get a single blog with content and creator.
// @Tags         blogs
// @Param        blog_id  path  string  true  "Blog ObjectID"
// @Produce      json
// @Success      200  {object}  dto.BlogResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Security     AccessToken
// @Router       /blog/getblog/{blog_id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.GetBlog(c.Request.Context(), c.Param("blog_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, view, "Fetched blog successfully")
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

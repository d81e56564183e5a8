package dto

// Request and response shapes used only by the API docs. Handlers bind the
// body themselves to tell absent fields from empty ones.

type CreateBlogRequest struct {
	Title       string   `json:"title" example:"Hello World"`
	Description string   `json:"description" example:"A test post"`
	Content     string   `json:"content" example:"body"`
	Tags        []string `json:"tags" example:"go,mongo"`
	Type        string   `json:"type" example:"Technical" enums:"Literary,Technical,Other"`
}

type UpdateBlogRequest struct {
	BlogID      string   `json:"blog_id" example:"665f1c2b9d3e4a0087654321"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Type        string   `json:"type,omitempty" enums:"Literary,Technical,Other"`
}

type DeleteBlogRequest struct {
	BlogID string `json:"blog_id" example:"665f1c2b9d3e4a0087654321"`
}

type BlogResponseDTO struct {
	ResponseDTO
	Data BlogDTO `json:"data"`
}

type BlogPageResponseDTO struct {
	ResponseDTO
	Data BlogPageDTO `json:"data"`
}
